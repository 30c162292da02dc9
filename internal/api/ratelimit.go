package api

import (
	"sync"
	"time"
)

const (
	loginWindow      = 5 * time.Minute
	loginMaxAttempts = 5
	loginBlock       = 15 * time.Minute
)

// LoginRateLimiter throttles login attempts per IP+username key: five
// attempts inside a five-minute window, then a fifteen-minute block.
type LoginRateLimiter struct {
	attempts map[string]*loginAttempt
	mu       sync.Mutex
}

type loginAttempt struct {
	count     int
	firstTry  time.Time
	blockedAt *time.Time
}

// NewLoginRateLimiter creates a rate limiter with a background sweep of
// stale entries.
func NewLoginRateLimiter() *LoginRateLimiter {
	rl := &LoginRateLimiter{attempts: make(map[string]*loginAttempt)}
	go rl.cleanup()
	return rl
}

// Allow reports whether another attempt may proceed and, when blocked,
// how long the caller has to wait.
func (rl *LoginRateLimiter) Allow(key string) (bool, time.Duration) {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	now := time.Now()
	attempt, exists := rl.attempts[key]
	if !exists {
		rl.attempts[key] = &loginAttempt{count: 1, firstTry: now}
		return true, 0
	}

	if attempt.blockedAt != nil {
		if now.Sub(*attempt.blockedAt) < loginBlock {
			return false, loginBlock - now.Sub(*attempt.blockedAt)
		}
		attempt.count = 1
		attempt.firstTry = now
		attempt.blockedAt = nil
		return true, 0
	}

	if now.Sub(attempt.firstTry) > loginWindow {
		attempt.count = 1
		attempt.firstTry = now
		return true, 0
	}

	attempt.count++
	if attempt.count > loginMaxAttempts {
		attempt.blockedAt = &now
		return false, loginBlock
	}
	return true, 0
}

// Reset clears the counter after a successful login
func (rl *LoginRateLimiter) Reset(key string) {
	rl.mu.Lock()
	defer rl.mu.Unlock()
	delete(rl.attempts, key)
}

func (rl *LoginRateLimiter) cleanup() {
	ticker := time.NewTicker(10 * time.Minute)
	for range ticker.C {
		rl.mu.Lock()
		now := time.Now()
		for key, attempt := range rl.attempts {
			if now.Sub(attempt.firstTry) > 30*time.Minute {
				delete(rl.attempts, key)
			}
		}
		rl.mu.Unlock()
	}
}

// Package database - connection pools for the five backing schemas
package database

import (
	"fmt"
	"time"

	"github.com/arkline/marketdesk/internal/config"
	"github.com/go-sql-driver/mysql"
	gormmysql "gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Pools holds one gorm handle per schema. The struct is constructed once
// at startup and injected into stores; nothing else in the codebase opens
// connections.
type Pools struct {
	Admin    *gorm.DB
	Stock    *gorm.DB
	Earnings *gorm.DB
	Market   *gorm.DB
	Fund     *gorm.DB
}

// Open connects all five pools. Any failure closes the pools opened so far
// and returns the error.
func Open(set config.DatabaseSet) (*Pools, error) {
	p := &Pools{}
	targets := []struct {
		name string
		cfg  config.DatabaseConfig
		dst  **gorm.DB
	}{
		{"admin", set.Admin, &p.Admin},
		{"stock", set.Stock, &p.Stock},
		{"earnings", set.Earnings, &p.Earnings},
		{"market", set.Market, &p.Market},
		{"fund", set.Fund, &p.Fund},
	}

	for _, t := range targets {
		db, err := open(t.cfg)
		if err != nil {
			p.Close()
			return nil, fmt.Errorf("open %s pool: %w", t.name, err)
		}
		*t.dst = db
	}
	return p, nil
}

func open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	dsn := buildDSN(cfg)
	db, err := gorm.Open(gormmysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return db, nil
}

// buildDSN constructs the MySQL connection string
func buildDSN(cfg config.DatabaseConfig) string {
	mc := mysql.NewConfig()
	mc.Net = "tcp"
	mc.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	mc.User = cfg.User
	mc.Passwd = cfg.Password
	mc.DBName = cfg.Name
	mc.ParseTime = true
	mc.Loc = time.UTC
	return mc.FormatDSN()
}

// ForEach calls fn for every pool in a fixed order.
func (p *Pools) ForEach(fn func(name string, db *gorm.DB) error) error {
	for _, t := range []struct {
		name string
		db   *gorm.DB
	}{
		{"admin", p.Admin},
		{"stock", p.Stock},
		{"earnings", p.Earnings},
		{"market", p.Market},
		{"fund", p.Fund},
	} {
		if t.db == nil {
			continue
		}
		if err := fn(t.name, t.db); err != nil {
			return err
		}
	}
	return nil
}

// Ping verifies every pool is reachable.
func (p *Pools) Ping() error {
	return p.ForEach(func(name string, db *gorm.DB) error {
		sqlDB, err := db.DB()
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if err := sqlDB.Ping(); err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		return nil
	})
}

// Close releases every underlying connection pool.
func (p *Pools) Close() {
	p.ForEach(func(_ string, db *gorm.DB) error {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
		return nil
	})
}

// Package api contains the HTTP handlers and router for the admin backend
package api

import (
	stderrors "errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/arkline/marketdesk/internal/errors"
	"github.com/arkline/marketdesk/internal/store"
)

// respondData writes the success envelope with a data payload
func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
	})
}

// respondMessage writes the success envelope with a message only
func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
	})
}

// respondPage writes the list envelope with pagination counters
func respondPage[T any](c *gin.Context, page *store.Page[T]) {
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"data":        page.Data,
		"total":       page.Total,
		"totalPages":  page.TotalPages,
		"currentPage": page.CurrentPage,
	})
}

// respondError maps an error to the {success:false, message} envelope.
// store.ErrNotFound becomes a 404 naming the resource; anything not
// already an APIError is a database failure and gets logged.
func respondError(c *gin.Context, resource string, err error) {
	if stderrors.Is(err, store.ErrNotFound) {
		err = errors.NewNotFoundError(resource)
	}
	if _, ok := err.(errors.APIError); !ok {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	}
	status, body := errors.ToHTTPError(err)
	c.JSON(status, body)
}

// respondBadRequest wraps a binding failure in the validation envelope
func respondBadRequest(c *gin.Context, err error) {
	respondError(c, "", errors.NewValidationError("", err.Error()))
}

// idParam parses the :id path segment
func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		respondError(c, "", errors.NewValidationError("id", "invalid id"))
		return 0, false
	}
	return uint(id), true
}

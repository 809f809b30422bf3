package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lshigami/meowcdd/internal/dto"
	"github.com/lshigami/meowcdd/internal/service"
	"github.com/rs/zerolog/log"
)

// ParseID reads a uint path parameter. On failure it writes a 400 and returns false.
func ParseID(c *gin.Context, param, label string) (uint, bool) {
	raw := c.Param(param)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + label + " format", Details: []string{err.Error()}})
		return 0, false
	}
	return uint(id), true
}

// BindJSON binds the request body. On failure it writes a 400 and returns false.
func BindJSON(c *gin.Context, req any, handler string) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		log.Warn().Err(err).Str("handler", handler).Msg("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: []string{err.Error()}})
		return false
	}
	return true
}

// BindQuery binds query parameters into each target in order.
func BindQuery(c *gin.Context, handler string, targets ...any) bool {
	for _, target := range targets {
		if err := c.ShouldBindQuery(target); err != nil {
			log.Warn().Err(err).Str("handler", handler).Msg("Failed to bind query")
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid query parameters", Details: []string{err.Error()}})
			return false
		}
	}
	return true
}

// RespondError maps service errors onto HTTP status codes.
func RespondError(c *gin.Context, err error, message string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, service.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrDuplicate):
		status = http.StatusConflict
	case errors.Is(err, service.ErrInvalidInput):
		status = http.StatusBadRequest
	}

	event := log.Warn()
	if status == http.StatusInternalServerError {
		event = log.Error()
	}
	event.Err(err).Str("path", c.FullPath()).Int("status", status).Msg(message)

	c.JSON(status, dto.ErrorResponse{Message: message, Details: []string{err.Error()}})
}

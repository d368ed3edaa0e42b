package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/adil-123-dev/Insight-loop/internal/dto"
	"github.com/adil-123-dev/Insight-loop/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// parseIDParam reads a positive integer path parameter, replying 400 itself
// when the value is malformed.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(id), true
}

// respondError maps service sentinel errors to HTTP statuses; anything
// unexpected becomes a 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrConflict):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
	default:
		log.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled service error")
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Internal server error"})
	}
}

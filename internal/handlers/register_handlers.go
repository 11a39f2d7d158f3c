package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/ledger_display/internal/apperrors"
	portssvc "github.com/SscSPs/ledger_display/internal/core/ports/services"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(r *gin.Engine, services *portssvc.ServiceContainer) {
	r.GET("/", getHome(r))
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	v1 := r.Group("/api/v1")
	registerDisplayRoutes(v1, services.Display)
	registerImportRoutes(v1, services.Import)
}

// respondError maps service errors onto HTTP statuses.
// Validation problems are the caller's fault and echo the message; anything else is a 500.
func respondError(c *gin.Context, logger *slog.Logger, err error, publicMsg string) {
	if errors.Is(err, apperrors.ErrValidation) {
		logger.Warn("Validation error", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	logger.Error(publicMsg, slog.String("error", err.Error()))
	c.JSON(http.StatusInternalServerError, gin.H{"error": publicMsg})
}

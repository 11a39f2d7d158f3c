package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledger_display/internal/core/ports/services"
	"github.com/SscSPs/ledger_display/internal/dto"
	"github.com/SscSPs/ledger_display/internal/middleware"
	"github.com/gin-gonic/gin"
)

// importHandler handles HTTP requests for CSV import previews.
type importHandler struct {
	importService portssvc.ImportService
}

func newImportHandler(is portssvc.ImportService) *importHandler {
	return &importHandler{
		importService: is,
	}
}

func registerImportRoutes(rg *gin.RouterGroup, importService portssvc.ImportService) {
	h := newImportHandler(importService)

	imports := rg.Group("/imports")
	{
		imports.POST("/preview", h.preview)
	}
}

// preview godoc
// @Summary Preview a CSV import
// @Description Resolves each row's amount against the column mapping and flags in-batch duplicates
// @Tags imports
// @Accept  json
// @Produce  json
// @Param   request body dto.ImportPreviewRequest true "Rows keyed by header and the column mapping"
// @Success 200 {object} dto.ImportPreviewResponse
// @Failure 400 {object} map[string]string "Invalid input format or invalid mapping"
// @Failure 500 {object} map[string]string "Failed to preview import"
// @Router /imports/preview [post]
func (h *importHandler) preview(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.ImportPreviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ImportPreview", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	logger.Info("Received import preview request", slog.Int("row_count", len(req.Rows)))

	resp, err := h.importService.Preview(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to preview import")
		return
	}
	c.JSON(http.StatusOK, resp)
}

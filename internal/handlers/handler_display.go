package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/ledger_display/internal/core/ports/services"
	"github.com/SscSPs/ledger_display/internal/dto"
	"github.com/SscSPs/ledger_display/internal/middleware"
	"github.com/gin-gonic/gin"
)

// displayHandler handles HTTP requests that turn stored ledger values into display values.
type displayHandler struct {
	displayService portssvc.DisplayService
}

func newDisplayHandler(ds portssvc.DisplayService) *displayHandler {
	return &displayHandler{
		displayService: ds,
	}
}

func registerDisplayRoutes(rg *gin.RouterGroup, displayService portssvc.DisplayService) {
	h := newDisplayHandler(displayService)

	display := rg.Group("/display")
	{
		display.POST("/transactions", h.transactionView)
		display.POST("/balances", h.balanceSheet)
	}
	rg.POST("/format", h.format)
}

// transactionView godoc
// @Summary Normalize an account's journal lines for display
// @Tags display
// @Accept  json
// @Produce  json
// @Param   request body dto.TransactionViewRequest true "Account classification and journal lines"
// @Success 200 {object} dto.TransactionViewResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to build transaction view"
// @Router /display/transactions [post]
func (h *displayHandler) transactionView(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.TransactionViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for TransactionView", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.displayService.TransactionView(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to build transaction view")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// balanceSheet godoc
// @Summary Normalize account balances and compute net worth
// @Tags display
// @Accept  json
// @Produce  json
// @Param   request body dto.BalanceSheetRequest true "Accounts with stored balances"
// @Success 200 {object} dto.BalanceSheetResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 500 {object} map[string]string "Failed to build balance sheet"
// @Router /display/balances [post]
func (h *displayHandler) balanceSheet(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.BalanceSheetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for BalanceSheet", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.displayService.BalanceSheet(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to build balance sheet")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// format godoc
// @Summary Format an amount in a currency
// @Tags display
// @Accept  json
// @Produce  json
// @Param   request body dto.FormatRequest true "Amount and format options"
// @Success 200 {object} dto.FormatResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Router /format [post]
func (h *displayHandler) format(c *gin.Context) {
	logger := middleware.GetLoggerFromContext(c)
	var req dto.FormatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for Format", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	resp, err := h.displayService.Format(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to format amount")
		return
	}
	c.JSON(http.StatusOK, resp)
}

package services

import (
	portssvc "github.com/SscSPs/ledger_display/internal/core/ports/services"
	"github.com/SscSPs/ledger_display/internal/platform/config"
	"github.com/SscSPs/ledger_display/internal/utils"
)

// NewServiceContainer creates a new service container from configuration
func NewServiceContainer(cfg *config.Config) *portssvc.ServiceContainer {
	preset := utils.FormatPreset(cfg.DefaultFormatPreset)
	return &portssvc.ServiceContainer{
		Display: NewDisplayService(
			WithDefaultCurrency(cfg.DefaultCurrency),
			WithDefaultPreset(preset),
		),
		Import: NewImportService(
			WithImportDefaults(cfg.DefaultCurrency, preset),
		),
	}
}

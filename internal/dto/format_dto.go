package dto

import "github.com/SscSPs/ledger_display/internal/utils"

// FormatRequest describes one amount to render.
type FormatRequest struct {
	Amount               *float64           `json:"amount" binding:"required"`
	CurrencyCode         string             `json:"currencyCode" binding:"required,currency_code"`
	Preset               utils.FormatPreset `json:"preset" binding:"omitempty,format_preset"`
	Decimals             *int               `json:"decimals" binding:"omitempty,min=0,max=12"`
	Grouping             *bool              `json:"grouping"`
	UseCurrencyPrecision bool               `json:"useCurrencyPrecision"`
}

// FormatResponse is the rendered amount.
type FormatResponse struct {
	Formatted string `json:"formatted"`
	Rounded   string `json:"rounded"` // plain number at the currency's precision
	Symbol    string `json:"symbol"`
}

// FormatOptions translates the request into formatter options.
func (r FormatRequest) FormatOptions(defaultPreset utils.FormatPreset) []utils.FormatOption {
	preset := r.Preset
	if preset == "" {
		preset = defaultPreset
	}
	opts := []utils.FormatOption{utils.WithPreset(preset)}
	if r.Decimals != nil {
		opts = append(opts, utils.WithDecimals(*r.Decimals))
	}
	if r.Grouping != nil {
		opts = append(opts, utils.WithGrouping(*r.Grouping))
	}
	if r.UseCurrencyPrecision {
		opts = append(opts, utils.WithCurrencyPrecision())
	}
	return opts
}

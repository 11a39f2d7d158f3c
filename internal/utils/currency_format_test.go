package utils_test

import (
	"testing"

	"github.com/SscSPs/ledger_display/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrencyAmount(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		currency string
		opts     []utils.FormatOption
		want     string
	}{
		{"summary positive", 1234.56, "USD", nil, "$1,234.56"},
		{"summary negative", -1234567.89, "USD", nil, "-$1,234,567.89"},
		{"small number", 5, "EUR", nil, "€5.00"},
		{"pound", 999.999, "GBP", nil, "£1,000.00"},
		{"yen two decimals by default", 1500, "JPY", nil, "¥1,500.00"},
		{"yen currency precision", 1500.4, "JPY", []utils.FormatOption{utils.WithCurrencyPrecision()}, "¥1,500"},
		{"code preset", 1234.56, "USD", []utils.FormatOption{utils.WithPreset(utils.PresetCode)}, "1,234.56 USD"},
		{"code preset negative", -42, "EUR", []utils.FormatOption{utils.WithPreset(utils.PresetCode)}, "-42.00 EUR"},
		{"no grouping", 1234567.5, "USD", []utils.FormatOption{utils.WithGrouping(false)}, "$1234567.50"},
		{"zero decimals", 1234.5, "USD", []utils.FormatOption{utils.WithDecimals(0)}, "$1,235"},
		{"three decimals", 1.2345, "USD", []utils.FormatOption{utils.WithDecimals(3)}, "$1.235"},
		{"negative decimals clamp", 12.7, "USD", []utils.FormatOption{utils.WithDecimals(-2)}, "$13"},
		{"unmapped code", 10, "XYZ", nil, "XYZ 10.00"},
		{"unmapped code preset", -10, "XYZ", []utils.FormatOption{utils.WithPreset(utils.PresetCode)}, "-10.00 XYZ"},
		{"lowercase code", 3, "usd", nil, "$3.00"},
		{"word symbol", 250, "CHF", nil, "CHF 250.00"},
		{"floating noise", -1e-13, "USD", nil, "$0.00"},
		{"rounds to zero", -0.004, "USD", nil, "$0.00"},
		{"exact boundary", 1000, "USD", nil, "$1,000.00"},
		{"under a thousand", 999, "USD", nil, "$999.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, utils.FormatCurrencyAmount(tt.amount, tt.currency, tt.opts...))
		})
	}
}

func TestFormatCurrencyAmount_NegativeContainsSignAndGrouping(t *testing.T) {
	got := utils.FormatCurrencyAmount(-1234567.89, "USD")
	assert.Contains(t, got, "-")
	assert.Contains(t, got, "1,234,567.89")
	assert.NotContains(t, utils.FormatCurrencyAmount(10, "USD"), "+")
}

func TestLookupCurrency(t *testing.T) {
	usd := utils.LookupCurrency("USD")
	assert.Equal(t, "$", usd.Symbol)
	assert.Equal(t, 2, usd.Precision)

	jpy := utils.LookupCurrency(" jpy ")
	assert.Equal(t, "JPY", jpy.CurrencyCode)
	assert.Equal(t, "¥", jpy.Symbol)
	assert.Equal(t, 0, jpy.Precision)

	unknown := utils.LookupCurrency("QQQ")
	assert.Equal(t, "QQQ", unknown.Symbol)
	assert.Equal(t, 2, unknown.Precision)
}

func TestFormatWithPrecision(t *testing.T) {
	amount := decimal.RequireFromString("12.3456")
	assert.Equal(t, "12.35", utils.FormatWithCurrencyPrecision(amount, utils.LookupCurrency("USD")))
	assert.Equal(t, "12", utils.FormatWithCurrencyPrecision(amount, utils.LookupCurrency("JPY")))
	assert.Equal(t, "12.346", utils.FormatWithPrecision(amount, 3))
	assert.Equal(t, "12.50", utils.FormatWithCurrencyPrecision(decimal.RequireFromString("12.5"), utils.LookupCurrency("EUR")))
}

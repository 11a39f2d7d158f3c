package utils

import (
	"math"
	"strings"
	"unicode"

	"github.com/Rhymond/go-money"
	"github.com/SscSPs/ledger_display/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FormatPreset selects where the currency marker goes.
type FormatPreset string

const (
	// PresetSummary puts the symbol first: "-$1,234.56".
	PresetSummary FormatPreset = "summary"
	// PresetCode appends the ISO code: "-1,234.56 USD".
	PresetCode FormatPreset = "code"
)

// Amounts closer to zero than this are floating-point noise and render as 0.
const zeroEpsilon = 1e-9

const defaultDecimals = 2

// currencySymbols overrides the go-money graphemes where those are ambiguous.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CNY": "¥",
	"INR": "₹",
	"KRW": "₩",
	"RUB": "₽",
	"BRL": "R$",
	"CAD": "C$",
	"AUD": "A$",
	"NZD": "NZ$",
	"HKD": "HK$",
	"SGD": "S$",
	"MXN": "MX$",
	"CHF": "CHF",
	"SEK": "kr",
	"NOK": "kr",
	"DKK": "kr",
	"PLN": "zł",
	"TRY": "₺",
	"ILS": "₪",
	"ZAR": "R",
}

type formatOptions struct {
	preset            FormatPreset
	decimals          int
	grouping          bool
	currencyPrecision bool
}

// FormatOption configures FormatCurrencyAmount.
type FormatOption func(*formatOptions)

// WithPreset selects the summary or code layout. Unknown presets fall back to summary.
func WithPreset(p FormatPreset) FormatOption {
	return func(o *formatOptions) {
		o.preset = p
	}
}

// WithDecimals sets the number of decimal places. Negative values are treated as 0.
func WithDecimals(n int) FormatOption {
	return func(o *formatOptions) {
		o.decimals = max(n, 0)
		o.currencyPrecision = false
	}
}

// WithGrouping turns thousands separators on or off.
func WithGrouping(on bool) FormatOption {
	return func(o *formatOptions) {
		o.grouping = on
	}
}

// WithCurrencyPrecision uses the currency's minor-unit count (JPY 0, USD 2, BHD 3).
func WithCurrencyPrecision() FormatOption {
	return func(o *formatOptions) {
		o.currencyPrecision = true
	}
}

// LookupCurrency resolves the display symbol and precision of a currency code.
// The symbol falls back to the code itself when nothing is known about it.
func LookupCurrency(code string) domain.Currency {
	code = strings.ToUpper(strings.TrimSpace(code))
	cur := domain.Currency{CurrencyCode: code, Symbol: code, Precision: defaultDecimals}
	if mc := money.GetCurrency(code); mc != nil {
		cur.Precision = mc.Fraction
		if mc.Grapheme != "" {
			cur.Symbol = mc.Grapheme
		}
	}
	if sym, ok := currencySymbols[code]; ok {
		cur.Symbol = sym
	}
	return cur
}

// FormatCurrencyAmount renders a signed amount for display.
// Positive values carry no sign; negative values get a leading "-".
func FormatCurrencyAmount(amount float64, currencyCode string, opts ...FormatOption) string {
	o := formatOptions{preset: PresetSummary, decimals: defaultDecimals, grouping: true}
	for _, opt := range opts {
		opt(&o)
	}

	cur := LookupCurrency(currencyCode)
	decimals := o.decimals
	if o.currencyPrecision {
		decimals = cur.Precision
	}

	if math.IsNaN(amount) || math.IsInf(amount, 0) || math.Abs(amount) < zeroEpsilon {
		amount = 0
	}

	rounded := decimal.NewFromFloat(amount).Round(int32(decimals))
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	magnitude := rounded.Abs().StringFixed(int32(decimals))
	if o.grouping {
		magnitude = groupThousands(magnitude)
	}

	if o.preset == PresetCode {
		return sign + magnitude + " " + cur.CurrencyCode
	}
	if isWordSymbol(cur.Symbol) {
		return sign + cur.Symbol + " " + magnitude
	}
	return sign + cur.Symbol + magnitude
}

// FormatWithCurrencyPrecision formats an amount with the correct precision for a given currency
// Example: amount 12.3456 with USD (precision 2) returns "12.35"
// Example: amount 12.3456 with JPY (precision 0) returns "12"
// Example: amount 12.5 with USD returns "12.50"
func FormatWithCurrencyPrecision(amount decimal.Decimal, currency domain.Currency) string {
	return FormatWithPrecision(amount, currency.Precision)
}

// FormatWithPrecision formats an amount with the given precision
// This is a convenience function when you only have the precision value
func FormatWithPrecision(amount decimal.Decimal, precision int) string {
	return amount.StringFixed(int32(precision))
}

// groupThousands inserts "," every three digits of the integer part of an unsigned number.
func groupThousands(s string) string {
	intPart, frac, hasFrac := strings.Cut(s, ".")
	if len(intPart) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(intPart[i : i+3])
	}
	if hasFrac {
		b.WriteByte('.')
		b.WriteString(frac)
	}
	return b.String()
}

// isWordSymbol reports whether a symbol is letters only ("CHF", "kr"), which needs a space.
func isWordSymbol(sym string) bool {
	if len(sym) < 2 {
		return false
	}
	for _, r := range sym {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

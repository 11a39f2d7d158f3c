package importer

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// Amount is a resolved import amount. Valid is false when the mapping has no
// amount-bearing column, which is different from a row whose amount is 0.
type Amount struct {
	Value float64
	Valid bool
}

// NoAmount is the "no value" sentinel.
var NoAmount = Amount{}

// Some wraps a resolved value.
func Some(v float64) Amount { return Amount{Value: v, Valid: true} }

// String renders the value in shortest form, or "" when there is no value.
func (a Amount) String() string {
	if !a.Valid {
		return ""
	}
	return strconv.FormatFloat(a.Value, 'f', -1, 64)
}

// MarshalJSON encodes the sentinel as "" and values as JSON numbers.
func (a Amount) MarshalJSON() ([]byte, error) {
	if !a.Valid {
		return []byte(`""`), nil
	}
	return []byte(a.String()), nil
}

// UnmarshalJSON accepts a number, a numeric string, "" or null.
func (a *Amount) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*a = NoAmount
		return nil
	}
	if unq, err := strconv.Unquote(s); err == nil {
		*a = Some(ParseAmount(unq))
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return err
	}
	*a = Some(v)
	return nil
}

// numberPattern is the bare number left once signs and currency markers are
// stripped: optional comma-grouped integer part, optional fraction.
var numberPattern = regexp.MustCompile(`^(\d{1,3}(,\d{3})+|\d+)?(\.\d+)?$`)

// ParseDecimal reads a cell as it appears in bank exports: "$1,234.50", "(1,234.50)",
// "-12", "12-", "EUR 10.00", "10.00 EUR". Only one sign marker and one currency
// marker at either end are accepted; ok is false for empty or unreadable text.
func ParseDecimal(text string) (d decimal.Decimal, ok bool) {
	s := strings.TrimSpace(text)
	if s == "" {
		return decimal.Zero, false
	}

	negative := false
	if strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")") {
		negative = true
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	takeSign := func(trimmed string, found bool) string {
		if found && !negative {
			negative = true
			return strings.TrimSpace(trimmed)
		}
		return s
	}

	s = takeSign(strings.CutPrefix(s, "-"))
	s = takeSign(strings.CutSuffix(s, "-"))
	s = trimCurrency(s)
	s = takeSign(strings.CutPrefix(s, "-"))
	s = takeSign(strings.CutSuffix(s, "-"))

	if !strings.ContainsFunc(s, unicode.IsDigit) || !numberPattern.MatchString(s) {
		return decimal.Zero, false
	}

	d, err := decimal.NewFromString(strings.ReplaceAll(s, ",", ""))
	if err != nil {
		return decimal.Zero, false
	}
	if negative {
		d = d.Neg()
	}
	return d, true
}

// trimCurrency removes one currency symbol or ISO code from either end of s.
func trimCurrency(s string) string {
	if r, size := utf8.DecodeRuneInString(s); unicode.Is(unicode.Sc, r) {
		return strings.TrimSpace(s[size:])
	}
	if r, size := utf8.DecodeLastRuneInString(s); unicode.Is(unicode.Sc, r) {
		return strings.TrimSpace(s[:len(s)-size])
	}
	if len(s) > 3 && isCurrencyCode(s[:3]) {
		return strings.TrimSpace(s[3:])
	}
	if len(s) > 3 && isCurrencyCode(s[len(s)-3:]) {
		return strings.TrimSpace(s[:len(s)-3])
	}
	return s
}

func isCurrencyCode(s string) bool {
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

// ParseAmount is ParseDecimal with empty or malformed text read as 0.
func ParseAmount(text string) float64 {
	d, _ := ParseDecimal(text)
	return d.InexactFloat64()
}

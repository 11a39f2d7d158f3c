package importer

import (
	"fmt"
	"strings"

	"github.com/SscSPs/ledger_display/internal/apperrors"
	"github.com/shopspring/decimal"
)

// FieldMap associates logical import fields with source column names.
// Empty strings mean "not mapped".
type FieldMap struct {
	Date        string `json:"date"`
	Amount      string `json:"amount,omitempty"`
	Credit      string `json:"credit,omitempty"`
	Debit       string `json:"debit,omitempty"`
	Description string `json:"description,omitempty"`
}

// Row is a source row reduced to the fields a transaction needs.
type Row struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Amount      Amount `json:"amount"`
}

// IsMappingValid requires a date column and at least one amount-bearing column.
func IsMappingValid(m FieldMap) bool {
	return ValidateMapping(m) == nil
}

// ValidateMapping explains what is missing from a mapping.
func ValidateMapping(m FieldMap) error {
	var missing []string
	if m.Date == "" {
		missing = append(missing, "date")
	}
	if m.Amount == "" && m.Credit == "" && m.Debit == "" {
		missing = append(missing, "amount (or credit/debit)")
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: missing %s", apperrors.ErrInvalidMapping, strings.Join(missing, ", "))
	}
	return nil
}

// ResolveAmount computes the signed raw amount to store for one row.
//
// Separate credit and debit columns resolve to credit - debit. A single amount column is
// parsed as is. With only one of credit or debit mapped the other side counts as 0. With no
// amount-bearing column the result is NoAmount.
func ResolveAmount(row map[string]string, m FieldMap) Amount {
	switch {
	case m.Credit != "" && m.Debit != "":
		return Some(creditMinusDebit(row[m.Credit], row[m.Debit]))
	case m.Amount != "":
		return Some(ParseAmount(row[m.Amount]))
	case m.Credit != "":
		return Some(creditMinusDebit(row[m.Credit], ""))
	case m.Debit != "":
		return Some(creditMinusDebit("", row[m.Debit]))
	default:
		return NoAmount
	}
}

func creditMinusDebit(credit, debit string) float64 {
	c, _ := ParseDecimal(credit)
	d, _ := ParseDecimal(debit)
	return c.Sub(d).InexactFloat64()
}

// MapRow reduces a source row to its logical fields.
func MapRow(row map[string]string, m FieldMap) Row {
	r := Row{Amount: ResolveAmount(row, m)}
	if m.Date != "" {
		r.Date = strings.TrimSpace(row[m.Date])
	}
	if m.Description != "" {
		r.Description = strings.TrimSpace(row[m.Description])
	}
	return r
}

// SumAmounts totals the valid amounts of a batch without float drift.
func SumAmounts(rows []Row) float64 {
	total := decimal.Zero
	for _, r := range rows {
		if r.Amount.Valid {
			total = total.Add(decimal.NewFromFloat(r.Amount.Value))
		}
	}
	return total.InexactFloat64()
}

package domain

import (
	"fmt"

	"github.com/SscSPs/ledger_display/internal/apperrors"
)

// AccountType classifies what an account represents in the ledger.
type AccountType string

const (
	// User accounts are real-world holdings (bank, cash, credit card, loan).
	User AccountType = "user"
	// Category accounts aggregate income or expense transactions.
	Category AccountType = "category"
	// System accounts are internal bookkeeping accounts.
	System AccountType = "system"
)

// AccountSubtype determines the natural sign convention of an account.
type AccountSubtype string

const (
	// Asset accounts carry a natural debit balance (positive means funded).
	Asset AccountSubtype = "asset"
	// Liability accounts carry a natural credit balance (negative in storage means owed).
	Liability AccountSubtype = "liability"
)

// Validate returns an error wrapping apperrors.ErrInvalidAccountType for unknown types.
func (t AccountType) Validate() error {
	switch t {
	case User, Category, System:
		return nil
	default:
		return fmt.Errorf("%w %q", apperrors.ErrInvalidAccountType, string(t))
	}
}

// Validate returns an error wrapping apperrors.ErrInvalidAccountSubtype for unknown subtypes.
func (s AccountSubtype) Validate() error {
	switch s {
	case Asset, Liability:
		return nil
	default:
		return fmt.Errorf("%w %q", apperrors.ErrInvalidAccountSubtype, string(s))
	}
}

// Account is the account metadata the display layer needs, with its raw running balance.
type Account struct {
	AccountID    string         `json:"accountID"`
	Name         string         `json:"name"`
	Type         AccountType    `json:"type"`
	Subtype      AccountSubtype `json:"subtype"`
	CurrencyCode string         `json:"currencyCode"`
	RawBalance   *float64       `json:"rawBalance"` // ledger convention, nil when never posted
}

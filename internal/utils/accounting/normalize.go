package accounting

import (
	"math"

	"github.com/SscSPs/ledger_display/internal/core/domain"
)

// OrZero treats a missing amount as zero.
func OrZero(raw *float64) float64 {
	if raw == nil {
		return 0
	}
	return *raw
}

func validate(accountType domain.AccountType, accountSubtype domain.AccountSubtype) error {
	if err := accountType.Validate(); err != nil {
		return err
	}
	return accountSubtype.Validate()
}

// NormalizeTransactionAmount maps a stored journal-line amount to the sign shown to the user.
//
// User accounts keep the stored sign for both subtypes: for an asset negative is spending,
// for a liability positive is a charge that increases the debt. Category accounts always show
// the magnitude. System accounts keep the stored sign.
//
// isCurrentAccount identifies the leg being viewed when a transfer is rendered from one
// account's perspective. No rule depends on it yet.
func NormalizeTransactionAmount(rawAmount float64, accountType domain.AccountType, accountSubtype domain.AccountSubtype, isCurrentAccount bool) (float64, error) {
	if err := validate(accountType, accountSubtype); err != nil {
		return 0, err
	}
	if rawAmount == 0 || math.IsNaN(rawAmount) {
		return 0, nil
	}

	switch accountType {
	case domain.Category:
		return math.Abs(rawAmount), nil
	default: // User (asset and liability), System
		return rawAmount, nil
	}
}

// NormalizeNullableTransactionAmount is NormalizeTransactionAmount with nil treated as zero.
func NormalizeNullableTransactionAmount(rawAmount *float64, accountType domain.AccountType, accountSubtype domain.AccountSubtype, isCurrentAccount bool) (float64, error) {
	return NormalizeTransactionAmount(OrZero(rawAmount), accountType, accountSubtype, isCurrentAccount)
}

// NormalizeAccountBalance maps a stored running balance to the balance shown to the user.
//
// A user liability is inverted so that money owed (negative in storage) displays as a
// positive amount owed. Category totals are always positive.
func NormalizeAccountBalance(rawBalance float64, accountType domain.AccountType, accountSubtype domain.AccountSubtype) (float64, error) {
	if err := validate(accountType, accountSubtype); err != nil {
		return 0, err
	}
	if rawBalance == 0 || math.IsNaN(rawBalance) {
		return 0, nil
	}

	switch accountType {
	case domain.Category:
		return math.Abs(rawBalance), nil
	case domain.User:
		if accountSubtype == domain.Liability {
			return -rawBalance, nil
		}
		return rawBalance, nil
	default: // System
		return rawBalance, nil
	}
}

// NormalizeNullableAccountBalance is NormalizeAccountBalance with nil treated as zero.
func NormalizeNullableAccountBalance(rawBalance *float64, accountType domain.AccountType, accountSubtype domain.AccountSubtype) (float64, error) {
	return NormalizeAccountBalance(OrZero(rawBalance), accountType, accountSubtype)
}

package accounting

import "github.com/SscSPs/ledger_display/internal/core/domain"

// ClassifyAmount picks the indicator for an already normalized amount.
func ClassifyAmount(normalized float64) domain.VisualIndicator {
	switch {
	case normalized > 0:
		return domain.PositiveIndicator
	case normalized < 0:
		return domain.NegativeIndicator
	default:
		return domain.NeutralIndicator
	}
}

// GetTransactionVisualIndicator normalizes a raw transaction amount and classifies the result.
func GetTransactionVisualIndicator(rawAmount float64, accountType domain.AccountType, accountSubtype domain.AccountSubtype, isCurrentAccount bool) (domain.VisualIndicator, error) {
	normalized, err := NormalizeTransactionAmount(rawAmount, accountType, accountSubtype, isCurrentAccount)
	if err != nil {
		return domain.VisualIndicator{}, err
	}
	return ClassifyAmount(normalized), nil
}

// GetTransactionCSSClass returns only the CSS class of GetTransactionVisualIndicator.
func GetTransactionCSSClass(rawAmount float64, accountType domain.AccountType, accountSubtype domain.AccountSubtype, isCurrentAccount bool) (string, error) {
	ind, err := GetTransactionVisualIndicator(rawAmount, accountType, accountSubtype, isCurrentAccount)
	return ind.CSSClass, err
}

// GetTransactionColorClass returns only the color class of GetTransactionVisualIndicator.
func GetTransactionColorClass(rawAmount float64, accountType domain.AccountType, accountSubtype domain.AccountSubtype, isCurrentAccount bool) (string, error) {
	ind, err := GetTransactionVisualIndicator(rawAmount, accountType, accountSubtype, isCurrentAccount)
	return ind.ColorClass, err
}

// GetTransactionAriaLabel returns only the accessible label of GetTransactionVisualIndicator.
func GetTransactionAriaLabel(rawAmount float64, accountType domain.AccountType, accountSubtype domain.AccountSubtype, isCurrentAccount bool) (string, error) {
	ind, err := GetTransactionVisualIndicator(rawAmount, accountType, accountSubtype, isCurrentAccount)
	return ind.AriaLabel, err
}

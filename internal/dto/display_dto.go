package dto

import (
	"github.com/SscSPs/ledger_display/internal/core/domain"
	"github.com/SscSPs/ledger_display/internal/utils"
)

// TransactionViewRequest carries one account's classification and its stored journal lines.
type TransactionViewRequest struct {
	AccountType      domain.AccountType    `json:"accountType" binding:"required,account_type"`
	AccountSubtype   domain.AccountSubtype `json:"accountSubtype" binding:"required,account_subtype"`
	CurrencyCode     string                `json:"currencyCode" binding:"omitempty,currency_code"`
	IsCurrentAccount bool                  `json:"isCurrentAccount"`
	Preset           utils.FormatPreset    `json:"preset" binding:"omitempty,format_preset"`
	Lines            []domain.JournalLine  `json:"lines"`
}

// TransactionLineView is a journal line ready for display.
type TransactionLineView struct {
	LineID        string                 `json:"lineID"`
	Date          string                 `json:"date"`
	Description   string                 `json:"description"`
	RawAmount     float64                `json:"rawAmount"`
	DisplayAmount float64                `json:"displayAmount"`
	Formatted     string                 `json:"formatted"`
	Indicator     domain.VisualIndicator `json:"indicator"`
}

// TransactionViewResponse is the display form of an account's journal lines.
type TransactionViewResponse struct {
	AccountType    domain.AccountType     `json:"accountType"`
	AccountSubtype domain.AccountSubtype  `json:"accountSubtype"`
	CurrencyCode   string                 `json:"currencyCode"`
	Lines          []TransactionLineView  `json:"lines"`
	Total          float64                `json:"total"`
	FormattedTotal string                 `json:"formattedTotal"`
	TotalIndicator domain.VisualIndicator `json:"totalIndicator"`
}

// BalanceSheetRequest lists accounts with their stored balances.
type BalanceSheetRequest struct {
	CurrencyCode string             `json:"currencyCode" binding:"omitempty,currency_code"`
	Preset       utils.FormatPreset `json:"preset" binding:"omitempty,format_preset"`
	Accounts     []domain.Account   `json:"accounts" binding:"required"`
}

// AccountBalanceView is an account balance ready for display.
type AccountBalanceView struct {
	AccountID      string                 `json:"accountID"`
	Name           string                 `json:"name"`
	Type           domain.AccountType     `json:"type"`
	Subtype        domain.AccountSubtype  `json:"subtype"`
	CurrencyCode   string                 `json:"currencyCode"`
	RawBalance     float64                `json:"rawBalance"`
	DisplayBalance float64                `json:"displayBalance"`
	Formatted      string                 `json:"formatted"`
	Indicator      domain.VisualIndicator `json:"indicator"`
}

// CategoryTotals sums category accounts: asset categories are income, liability ones expense.
type CategoryTotals struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// BalanceSheetResponse is the display form of a set of accounts.
type BalanceSheetResponse struct {
	CurrencyCode   string               `json:"currencyCode"`
	Accounts       []AccountBalanceView `json:"accounts"`
	CategoryTotals CategoryTotals       `json:"categoryTotals"`
	NetWorth       domain.NetWorth      `json:"netWorth"`
	Formatted      struct {
		TotalAssets      string `json:"totalAssets"`
		TotalLiabilities string `json:"totalLiabilities"`
		NetWorth         string `json:"netWorth"`
		Income           string `json:"income"`
		Expense          string `json:"expense"`
	} `json:"formatted"`
}

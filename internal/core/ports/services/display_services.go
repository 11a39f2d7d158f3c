package services

import (
	"context"

	"github.com/SscSPs/ledger_display/internal/dto"
)

// DisplayService turns stored ledger values into display-ready values.
type DisplayService interface {
	// TransactionView normalizes, formats and classifies the journal lines of one account.
	TransactionView(ctx context.Context, req dto.TransactionViewRequest) (*dto.TransactionViewResponse, error)

	// BalanceSheet normalizes account balances and derives category totals and net worth.
	BalanceSheet(ctx context.Context, req dto.BalanceSheetRequest) (*dto.BalanceSheetResponse, error)

	// Format renders a single amount.
	Format(ctx context.Context, req dto.FormatRequest) (*dto.FormatResponse, error)
}

package services

import (
	"context"

	"github.com/SscSPs/ledger_display/internal/dto"
)

// ImportService resolves CSV rows against a column mapping before they are persisted.
type ImportService interface {
	// Preview maps every row, resolves its raw amount and flags in-batch duplicates.
	Preview(ctx context.Context, req dto.ImportPreviewRequest) (*dto.ImportPreviewResponse, error)
}

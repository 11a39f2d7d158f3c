package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/ledger_display/internal/apperrors"
	portssvc "github.com/SscSPs/ledger_display/internal/core/ports/services"
	"github.com/SscSPs/ledger_display/internal/dto"
	"github.com/SscSPs/ledger_display/internal/utils"
	"github.com/SscSPs/ledger_display/internal/utils/importer"
	"github.com/SscSPs/ledger_display/internal/utils/pagination"
)

// importService implements the ImportService interface
type importService struct {
	BaseService
	defaultCurrency string
	defaultPreset   utils.FormatPreset
}

// ImportServiceOption is a functional option for configuring the import service
type ImportServiceOption func(*importService)

// WithImportDefaults sets the currency and preset used to format previews.
func WithImportDefaults(currency string, preset utils.FormatPreset) ImportServiceOption {
	return func(s *importService) {
		if currency != "" {
			s.defaultCurrency = currency
		}
		if preset != "" {
			s.defaultPreset = preset
		}
	}
}

// NewImportService creates a new import service with the provided options
func NewImportService(options ...ImportServiceOption) portssvc.ImportService {
	svc := &importService{
		defaultCurrency: "USD",
		defaultPreset:   utils.PresetSummary,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure importService implements the ImportService interface
var _ portssvc.ImportService = (*importService)(nil)

// Preview resolves every row against the mapping without storing anything.
// Counts, totals and duplicate flags always cover the whole batch; Limit and NextToken only
// window the rows returned.
func (s *importService) Preview(ctx context.Context, req dto.ImportPreviewRequest) (*dto.ImportPreviewResponse, error) {
	if err := importer.ValidateMapping(req.Mapping); err != nil {
		s.LogWarn(ctx, "Rejected import mapping", slog.String("error", err.Error()))
		return nil, fmt.Errorf("cannot preview import: %w", err)
	}

	offset := 0
	if req.NextToken != nil && *req.NextToken != "" {
		var err error
		offset, err = pagination.DecodeOffsetToken(*req.NextToken, len(req.Rows))
		if err != nil {
			s.LogWarn(ctx, "Rejected import page token", slog.String("error", err.Error()))
			return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidPageToken, err)
		}
	}

	currency := req.CurrencyCode
	if currency == "" {
		currency = s.defaultCurrency
	}
	preset := req.Preset
	if preset == "" {
		preset = s.defaultPreset
	}
	format := func(v float64) string { return utils.FormatCurrencyAmount(v, currency, utils.WithPreset(preset)) }

	rows := make([]importer.Row, len(req.Rows))
	missing := 0
	for i, raw := range req.Rows {
		rows[i] = importer.MapRow(raw, req.Mapping)
		if !rows[i].Amount.Valid {
			missing++
		}
	}
	duplicates := importer.FindDuplicates(rows)
	total := importer.SumAmounts(rows)

	previewRows := dto.ToImportPreviewRows(rows, duplicates, format)
	start, end, more := pagination.Window(offset, req.Limit, len(previewRows))

	resp := &dto.ImportPreviewResponse{
		Rows:               previewRows[start:end],
		RowCount:           len(rows),
		DuplicateCount:     len(duplicates),
		MissingAmountCount: missing,
		Total:              total,
		FormattedTotal:     format(total),
	}
	if more {
		token := pagination.EncodeOffsetToken(end, len(rows))
		resp.NextToken = &token
	}

	s.LogInfo(ctx, "Import preview built",
		slog.Int("row_count", resp.RowCount),
		slog.Int("duplicate_count", resp.DuplicateCount),
		slog.Int("missing_amount_count", resp.MissingAmountCount))
	return resp, nil
}

package dto

import (
	"github.com/SscSPs/ledger_display/internal/utils"
	"github.com/SscSPs/ledger_display/internal/utils/importer"
)

// ImportPreviewRequest carries parsed CSV rows (keyed by header) and the user's mapping.
type ImportPreviewRequest struct {
	Mapping      importer.FieldMap   `json:"mapping"`
	Rows         []map[string]string `json:"rows" binding:"required"`
	CurrencyCode string              `json:"currencyCode" binding:"omitempty,currency_code"`
	Preset       utils.FormatPreset  `json:"preset" binding:"omitempty,format_preset"`
	Limit        int                 `json:"limit" binding:"omitempty,min=1,max=1000"` // rows per page, 0 returns every row
	NextToken    *string             `json:"nextToken,omitempty"`
}

// ImportPreviewRow is one mapped row with its resolved amount.
type ImportPreviewRow struct {
	Index int `json:"index"`
	importer.Row
	Key       string `json:"key"`
	Duplicate bool   `json:"duplicate"`
	Formatted string `json:"formatted"`
}

// ImportPreviewResponse summarizes what an import would store.
type ImportPreviewResponse struct {
	Rows               []ImportPreviewRow `json:"rows"`
	RowCount           int                `json:"rowCount"`
	DuplicateCount     int                `json:"duplicateCount"`
	MissingAmountCount int                `json:"missingAmountCount"`
	Total              float64            `json:"total"`
	FormattedTotal     string             `json:"formattedTotal"`
	NextToken          *string            `json:"nextToken,omitempty"`
}

// ToImportPreviewRows pairs mapped rows with their keys and duplicate flags.
func ToImportPreviewRows(rows []importer.Row, duplicates []int, format func(float64) string) []ImportPreviewRow {
	dup := make(map[int]bool, len(duplicates))
	for _, i := range duplicates {
		dup[i] = true
	}

	res := make([]ImportPreviewRow, len(rows))
	for i, r := range rows {
		res[i] = ImportPreviewRow{
			Index:     i,
			Row:       r,
			Key:       importer.DuplicateKey(r),
			Duplicate: dup[i],
		}
		if r.Amount.Valid {
			res[i].Formatted = format(r.Amount.Value)
		}
	}
	return res
}

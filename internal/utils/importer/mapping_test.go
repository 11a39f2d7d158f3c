package importer_test

import (
	"testing"

	"github.com/SscSPs/ledger_display/internal/apperrors"
	"github.com/SscSPs/ledger_display/internal/utils/importer"
	"github.com/stretchr/testify/assert"
)

func TestResolveAmount(t *testing.T) {
	tests := []struct {
		name    string
		row     map[string]string
		mapping importer.FieldMap
		want    importer.Amount
	}{
		{
			name:    "credit minus debit",
			row:     map[string]string{"Credit": "200.50", "Debit": "50.25"},
			mapping: importer.FieldMap{Credit: "Credit", Debit: "Debit"},
			want:    importer.Some(150.25),
		},
		{
			name:    "debit only row",
			row:     map[string]string{"Credit": "", "Debit": "$1,000.00"},
			mapping: importer.FieldMap{Credit: "Credit", Debit: "Debit"},
			want:    importer.Some(-1000),
		},
		{
			name:    "credit and debit win over amount",
			row:     map[string]string{"Credit": "5", "Debit": "2", "Amount": "999"},
			mapping: importer.FieldMap{Amount: "Amount", Credit: "Credit", Debit: "Debit"},
			want:    importer.Some(3),
		},
		{
			name:    "single amount column",
			row:     map[string]string{"Amount": "($1,234.50)"},
			mapping: importer.FieldMap{Amount: "Amount"},
			want:    importer.Some(-1234.5),
		},
		{
			name:    "amount column beats lone credit",
			row:     map[string]string{"Amount": "7", "Credit": "100"},
			mapping: importer.FieldMap{Amount: "Amount", Credit: "Credit"},
			want:    importer.Some(7),
		},
		{
			name:    "lone debit column",
			row:     map[string]string{"Out": "12.00"},
			mapping: importer.FieldMap{Debit: "Out"},
			want:    importer.Some(-12),
		},
		{
			name:    "lone credit column",
			row:     map[string]string{"In": "12.00"},
			mapping: importer.FieldMap{Credit: "In"},
			want:    importer.Some(12),
		},
		{
			name:    "malformed cell reads as zero",
			row:     map[string]string{"Amount": "pending"},
			mapping: importer.FieldMap{Amount: "Amount"},
			want:    importer.Some(0),
		},
		{
			name:    "no amount column",
			row:     map[string]string{"Memo": "x"},
			mapping: importer.FieldMap{},
			want:    importer.NoAmount,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := importer.ResolveAmount(tt.row, tt.mapping)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNoAmountIsNotZero(t *testing.T) {
	got := importer.ResolveAmount(map[string]string{"Memo": "x"}, importer.FieldMap{})
	assert.NotEqual(t, importer.Some(0), got)
	assert.Equal(t, "", got.String())
}

func TestMappingValidity(t *testing.T) {
	assert.True(t, importer.IsMappingValid(importer.FieldMap{Date: "Date", Amount: "Amount"}))
	assert.True(t, importer.IsMappingValid(importer.FieldMap{Date: "Date", Credit: "In"}))
	assert.True(t, importer.IsMappingValid(importer.FieldMap{Date: "Date", Debit: "Out", Description: "Memo"}))
	assert.False(t, importer.IsMappingValid(importer.FieldMap{Amount: "Amount"}))
	assert.False(t, importer.IsMappingValid(importer.FieldMap{Date: "Date", Description: "Memo"}))

	err := importer.ValidateMapping(importer.FieldMap{})
	assert.ErrorIs(t, err, apperrors.ErrInvalidMapping)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.Contains(t, err.Error(), "date")
	assert.Contains(t, err.Error(), "amount")
}

func TestMapRow(t *testing.T) {
	m := importer.FieldMap{Date: "Date", Amount: "Amount", Description: "Memo"}
	row := importer.MapRow(map[string]string{"Date": " 2024-03-01 ", "Amount": "-4.50", "Memo": " Coffee "}, m)
	assert.Equal(t, importer.Row{Date: "2024-03-01", Description: "Coffee", Amount: importer.Some(-4.5)}, row)
}

func TestSumAmounts(t *testing.T) {
	rows := []importer.Row{
		{Amount: importer.Some(0.1)},
		{Amount: importer.Some(0.2)},
		{Amount: importer.NoAmount},
	}
	assert.Equal(t, 0.3, importer.SumAmounts(rows))
}

package importer_test

import (
	"encoding/json"
	"testing"

	"github.com/SscSPs/ledger_display/internal/utils/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"200.50", 200.5},
		{"  42 ", 42},
		{"-17.25", -17.25},
		{"$1,234.50", 1234.5},
		{"($1,234.50)", -1234.5},
		{"(75)", -75},
		{"-$9.99", -9.99},
		{"$-9.99", -9.99},
		{"9.99-", -9.99},
		{"€ 1.000", 1},
		{"EUR 10.00", 10},
		{"£3,000,000", 3000000},
		{"", 0},
		{"   ", 0},
		{"n/a", 0},
		{"1.2.3", 0},
		{"()", 0},
		{"10.00 EUR", 10},
		{"1,000 $", 1000},
		{"(-5)", 0},
		{"-5-", 0},
		{"1e3", 0},
		{"A1B2", 0},
		{"--5", 0},
		{"pending 3", 0},
		{"12 USD 34", 0},
		{"Ref 123 -", 0},
		{"12,34", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, importer.ParseAmount(tt.in))
		})
	}
}

func TestParseDecimal_ReportsUnreadable(t *testing.T) {
	_, ok := importer.ParseDecimal("abc")
	assert.False(t, ok)
	_, ok = importer.ParseDecimal("")
	assert.False(t, ok)
	for _, text := range []string{"1e3", "--5", "pending 3", "12 USD 34", "USD EUR 5"} {
		_, ok = importer.ParseDecimal(text)
		assert.False(t, ok, text)
	}

	d, ok := importer.ParseDecimal("(1,234.50)")
	assert.True(t, ok)
	assert.Equal(t, "-1234.5", d.String())
}

func TestAmountJSON(t *testing.T) {
	b, err := json.Marshal(importer.NoAmount)
	require.NoError(t, err)
	assert.Equal(t, `""`, string(b))

	b, err = json.Marshal(importer.Some(-1234.5))
	require.NoError(t, err)
	assert.Equal(t, `-1234.5`, string(b))

	var got struct {
		A importer.Amount `json:"a"`
		B importer.Amount `json:"b"`
		C importer.Amount `json:"c"`
		D importer.Amount `json:"d"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"a": 12.5, "b": "", "c": "($3.00)", "d": null}`), &got))
	assert.Equal(t, importer.Some(12.5), got.A)
	assert.Equal(t, importer.NoAmount, got.B)
	assert.Equal(t, importer.Some(-3), got.C)
	assert.Equal(t, importer.NoAmount, got.D)
}

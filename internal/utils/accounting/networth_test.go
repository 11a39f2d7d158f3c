package accounting_test

import (
	"testing"

	"github.com/SscSPs/ledger_display/internal/apperrors"
	"github.com/SscSPs/ledger_display/internal/core/domain"
	"github.com/SscSPs/ledger_display/internal/utils/accounting"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(f float64) *float64 { return &f }

func TestNetWorth(t *testing.T) {
	assert.Equal(t, 7000.0, accounting.NetWorth(10000, -3000))
	assert.Equal(t, 10500.0, accounting.NetWorth(10000, 500), "overpaid card adds to net worth")
	assert.Equal(t, -250.0, accounting.NetWorth(0, -250))
}

func TestNetWorthOf(t *testing.T) {
	accounts := []domain.Account{
		{AccountID: "checking", Type: domain.User, Subtype: domain.Asset, RawBalance: ptr(2500)},
		{AccountID: "savings", Type: domain.User, Subtype: domain.Asset, RawBalance: ptr(10000)},
		{AccountID: "visa", Type: domain.User, Subtype: domain.Liability, RawBalance: ptr(-1200)},
		{AccountID: "loan", Type: domain.User, Subtype: domain.Liability, RawBalance: nil},
		{AccountID: "groceries", Type: domain.Category, Subtype: domain.Liability, RawBalance: ptr(-430)},
		{AccountID: "opening", Type: domain.System, Subtype: domain.Asset, RawBalance: ptr(-11300)},
	}

	nw, err := accounting.NetWorthOf(accounts)
	require.NoError(t, err)
	assert.Equal(t, 12500.0, nw.TotalAssets)
	assert.Equal(t, 1200.0, nw.TotalLiabilities)
	assert.Equal(t, 11300.0, nw.NetWorth)
}

func TestNetWorthOf_InvalidAccount(t *testing.T) {
	_, err := accounting.NetWorthOf([]domain.Account{
		{AccountID: "weird", Type: domain.User, Subtype: "equity", RawBalance: ptr(1)},
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrInvalidAccountSubtype)
	assert.Contains(t, err.Error(), "weird")
}

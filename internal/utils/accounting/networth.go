package accounting

import (
	"fmt"

	"github.com/SscSPs/ledger_display/internal/core/domain"
)

// NetWorth returns the displayed asset balance minus the displayed amount owed.
// Because liabilities are inverted for display this equals assetRaw + liabilityRaw.
func NetWorth(assetRaw, liabilityRaw float64) float64 {
	// Both calls use valid enum values and cannot fail.
	assets, _ := NormalizeAccountBalance(assetRaw, domain.User, domain.Asset)
	owed, _ := NormalizeAccountBalance(liabilityRaw, domain.User, domain.Liability)
	return assets - owed
}

// NetWorthOf totals every user account. Category and system accounts are skipped.
func NetWorthOf(accounts []domain.Account) (domain.NetWorth, error) {
	var nw domain.NetWorth
	for _, acc := range accounts {
		balance, err := NormalizeNullableAccountBalance(acc.RawBalance, acc.Type, acc.Subtype)
		if err != nil {
			return domain.NetWorth{}, fmt.Errorf("account %s: %w", acc.AccountID, err)
		}
		if acc.Type != domain.User {
			continue
		}
		if acc.Subtype == domain.Liability {
			nw.TotalLiabilities += balance
		} else {
			nw.TotalAssets += balance
		}
	}
	nw.NetWorth = nw.TotalAssets - nw.TotalLiabilities
	return nw, nil
}

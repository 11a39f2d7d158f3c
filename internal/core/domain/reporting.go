package domain

// NetWorth summarizes user accounts in display convention.
type NetWorth struct {
	TotalAssets      float64 `json:"totalAssets"`
	TotalLiabilities float64 `json:"totalLiabilities"` // amount owed, positive when in debt
	NetWorth         float64 `json:"netWorth"`
}

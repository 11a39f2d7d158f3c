package domain

// Currency describes how a currency code is displayed.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // e.g., "USD"
	Symbol       string `json:"symbol"`       // e.g., "$"
	Precision    int    `json:"precision"`    // minor units, e.g., 2 for USD, 0 for JPY
}

package domain

// JournalLine is one signed debit/credit leg of a double-entry transaction as stored.
type JournalLine struct {
	LineID      string   `json:"lineID"`
	JournalID   string   `json:"journalID"`
	AccountID   string   `json:"accountID"`
	Date        string   `json:"date"`
	Description string   `json:"description"`
	RawAmount   *float64 `json:"rawAmount"`
}

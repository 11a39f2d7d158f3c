package domain

// VisualIndicator is the semantic styling attached to a displayed amount.
type VisualIndicator struct {
	CSSClass   string `json:"cssClass"`
	ColorClass string `json:"colorClass"`
	AriaLabel  string `json:"ariaLabel"`
}

var (
	// PositiveIndicator styles amounts above zero.
	PositiveIndicator = VisualIndicator{CSSClass: "amount-positive", ColorClass: "text-green-600", AriaLabel: "Positive amount"}
	// NegativeIndicator styles amounts below zero.
	NegativeIndicator = VisualIndicator{CSSClass: "amount-negative", ColorClass: "text-red-600", AriaLabel: "Negative amount"}
	// NeutralIndicator styles zero amounts.
	NeutralIndicator = VisualIndicator{CSSClass: "amount-neutral", ColorClass: "text-gray-600", AriaLabel: "Zero amount"}
)

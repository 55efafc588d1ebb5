package model

// WageType selects which wage figure affordability is measured against.
type WageType string

// Wage type constants.
const (
	WageProfessional WageType = "professional"
	WageMinimum      WageType = "minimum"
)

// Valid reports whether w is a recognized wage type.
func (w WageType) Valid() bool {
	return w == WageProfessional || w == WageMinimum
}

// ClassifiedItem is one basket entry after classification: the user's raw
// input mapped to a commodity symbol, economic category, estimated base
// price, and the category's expenditure weight. Items live for a single
// calculation request and reference the catalog softly: the classification
// capability may produce a symbol, category, or price not present in the
// static table.
type ClassifiedItem struct {
	UserInput string  `json:"userInput"`
	Symbol    string  `json:"symbol"`
	Category  string  `json:"category"`
	BasePrice float64 `json:"basePrice"`
	Weight    float64 `json:"weight"`
}

// BasketRequest is the inbound payload for one parity calculation.
type BasketRequest struct {
	Items             []string  `json:"items" binding:"required,min=1,max=5,dive,min=1"`
	Location          *Location `json:"location"`
	TariffSensitivity float64   `json:"tariffSensitivity" binding:"min=0,max=50"`
	WageType          WageType  `json:"wageType"`
}

// BasketResponse bundles everything the presentation layer consumes for
// one calculation.
type BasketResponse struct {
	Results           []CountryResult  `json:"results"`
	Ticker            []TickerItem     `json:"ticker"`
	MappedCommodities []ClassifiedItem `json:"mappedCommodities"`
}

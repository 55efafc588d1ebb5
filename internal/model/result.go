package model

// MacroStability classifies how far a country's parity index sits from
// its reference economy.
type MacroStability string

// Macro-stability ratings.
const (
	StabilityStable   MacroStability = "Stable"
	StabilityModerate MacroStability = "Moderate"
	StabilityVolatile MacroStability = "Volatile"
)

// CountryResult is the per-country output of one parity calculation.
// ShadowPriceIndex is the parity index clamped to [0.3, 3.0]. Results are
// created per request and immutable once returned.
type CountryResult struct {
	CountryCode      string         `json:"countryCode"`
	CountryName      string         `json:"countryName"`
	ShadowPriceIndex float64        `json:"shadowPriceIndex"`
	BasketCost       float64        `json:"basketCost"`
	AdjustedCost     float64        `json:"adjustedCost"`
	Latitude         float64        `json:"latitude"`
	Longitude        float64        `json:"longitude"`
	IsValueDeal      bool           `json:"isValueDeal"`
	WorkHours        float64        `json:"workHours"`
	AnnualWage       float64        `json:"annualWage"`
	MacroStability   MacroStability `json:"macroStability"`
}

// TickerItem is one illustrative price tick derived from a classified item.
type TickerItem struct {
	Symbol        string  `json:"symbol"`
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Change        float64 `json:"change"`
	ChangePercent float64 `json:"changePercent"`
}

// ConsultantBrief is the narrative triple produced for a single country
// result. It is supplementary text, never authoritative data.
type ConsultantBrief struct {
	EconomicOpportunity string `json:"economicOpportunity"`
	LaborRisks          string `json:"laborRisks"`
	PolicyImplications  string `json:"policyImplications"`
}

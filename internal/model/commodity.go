package model

// Category is an economic expenditure bucket.
type Category string

// Economic category constants.
const (
	CategoryHousing    Category = "housing"
	CategoryTransport  Category = "transport"
	CategoryStaples    Category = "staples"
	CategoryUtilities  Category = "utilities"
	CategoryHealthcare Category = "healthcare"
	CategoryLuxury     Category = "luxury"
	CategoryOther      Category = "other"
)

// Categories lists every valid category in a stable order.
func Categories() []Category {
	return []Category{
		CategoryHousing,
		CategoryTransport,
		CategoryStaples,
		CategoryUtilities,
		CategoryHealthcare,
		CategoryLuxury,
		CategoryOther,
	}
}

// Valid reports whether c is one of the fixed category constants.
func (c Category) Valid() bool {
	switch c {
	case CategoryHousing, CategoryTransport, CategoryStaples,
		CategoryUtilities, CategoryHealthcare, CategoryLuxury, CategoryOther:
		return true
	}
	return false
}

// Commodity is an immutable reference record for a standardized
// household or lifestyle item.
type Commodity struct {
	Symbol       string   `json:"symbol"`
	Name         string   `json:"name"`
	Category     Category `json:"category"`
	BasePriceUSD float64  `json:"basePriceUsd"`
}

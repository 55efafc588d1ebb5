package refdata

import "github.com/mfeld/parity-pulse/internal/model"

// defaultCatalog maps commodity symbols to their reference records.
var defaultCatalog = map[string]model.Commodity{
	"gasoline":    {Symbol: "gasoline", Name: "Gasoline (gallon)", Category: model.CategoryTransport, BasePriceUSD: 3.85},
	"eggs":        {Symbol: "eggs", Name: "Eggs (dozen)", Category: model.CategoryStaples, BasePriceUSD: 4.25},
	"rent":        {Symbol: "rent", Name: "Rent (1br apt)", Category: model.CategoryHousing, BasePriceUSD: 1500},
	"netflix":     {Symbol: "netflix", Name: "Netflix Sub", Category: model.CategoryLuxury, BasePriceUSD: 15.49},
	"milk":        {Symbol: "milk", Name: "Milk (gallon)", Category: model.CategoryStaples, BasePriceUSD: 4.15},
	"bread":       {Symbol: "bread", Name: "Bread (loaf)", Category: model.CategoryStaples, BasePriceUSD: 2.85},
	"coffee":      {Symbol: "coffee", Name: "Coffee (lb)", Category: model.CategoryStaples, BasePriceUSD: 8.50},
	"electricity": {Symbol: "electricity", Name: "Electricity (kWh)", Category: model.CategoryUtilities, BasePriceUSD: 0.16},
	"internet":    {Symbol: "internet", Name: "Internet (monthly)", Category: model.CategoryUtilities, BasePriceUSD: 65},
	"beer":        {Symbol: "beer", Name: "Beer (6-pack)", Category: model.CategoryLuxury, BasePriceUSD: 9.50},
	"rice":        {Symbol: "rice", Name: "Rice (5lb)", Category: model.CategoryStaples, BasePriceUSD: 5.25},
	"chicken":     {Symbol: "chicken", Name: "Chicken (lb)", Category: model.CategoryStaples, BasePriceUSD: 4.75},
	"gym":         {Symbol: "gym", Name: "Gym Membership", Category: model.CategoryLuxury, BasePriceUSD: 45},
	"transit":     {Symbol: "transit", Name: "Monthly Transit", Category: model.CategoryTransport, BasePriceUSD: 100},
	"dining":      {Symbol: "dining", Name: "Dining Out (meal)", Category: model.CategoryLuxury, BasePriceUSD: 18},
	"spotify":     {Symbol: "spotify", Name: "Spotify Sub", Category: model.CategoryLuxury, BasePriceUSD: 10.99},
	"phone":       {Symbol: "phone", Name: "Phone Plan", Category: model.CategoryUtilities, BasePriceUSD: 75},
	"insurance":   {Symbol: "insurance", Name: "Health Insurance", Category: model.CategoryHealthcare, BasePriceUSD: 450},
}

// defaultWeights holds typical household expenditure shares per category.
// They are capped contributions, not a normalized distribution, so they do
// not need to sum to 1.
var defaultWeights = map[model.Category]float64{
	model.CategoryHousing:    0.40,
	model.CategoryTransport:  0.15,
	model.CategoryStaples:    0.10,
	model.CategoryUtilities:  0.10,
	model.CategoryHealthcare: 0.10,
	model.CategoryLuxury:     0.05,
	model.CategoryOther:      0.10,
}

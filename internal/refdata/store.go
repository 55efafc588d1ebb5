// Package refdata exposes the static reference tables the engine computes
// against: countries with PPP factors and wage levels, the commodity
// catalog, and category expenditure weights. Data is loaded once at
// construction and never mutated, so a single Store is safe to share
// across concurrent requests.
package refdata

import "github.com/mfeld/parity-pulse/internal/model"

// Store provides read-only lookups over the reference tables.
type Store struct {
	catalog   map[string]model.Commodity
	weights   map[model.Category]float64
	countries []model.Country
}

// NewStore builds a store over the built-in reference data.
func NewStore() *Store {
	return NewStoreWith(defaultCountries, defaultCatalog, defaultWeights)
}

// NewStoreWith builds a store over caller-supplied tables. Tests use this
// to run the engine against small fixture economies.
func NewStoreWith(countries []model.Country, catalog map[string]model.Commodity, weights map[model.Category]float64) *Store {
	return &Store{
		countries: countries,
		catalog:   catalog,
		weights:   weights,
	}
}

// Countries returns the fixed, ordered country table. The first entry is
// the reference baseline (PPP factor 1.0).
func (s *Store) Countries() []model.Country {
	return s.countries
}

// CommodityCatalog returns the symbol-keyed commodity table.
func (s *Store) CommodityCatalog() map[string]model.Commodity {
	return s.catalog
}

// CategoryWeight returns the expenditure weight for a category. Categories
// outside the fixed set get the "other" weight.
func (s *Store) CategoryWeight(category model.Category) float64 {
	if w, ok := s.weights[category]; ok {
		return w
	}
	return s.weights[model.CategoryOther]
}

// DefaultCommodity returns the fallback catalog entry used when no
// classification matches at all.
func (s *Store) DefaultCommodity() model.Commodity {
	if c, ok := s.catalog[defaultSymbol]; ok {
		return c
	}
	for _, c := range s.catalog {
		return c
	}
	return model.Commodity{}
}

// defaultSymbol is the designated fallback commodity.
const defaultSymbol = "gasoline"

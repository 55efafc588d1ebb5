// Package calculator derives the per-country Parity Pulse Index from a
// classified basket. Calculation is pure: it reads only the injected
// reference store and its arguments, so concurrent requests need no
// coordination.
package calculator

import (
	"math"
	"sort"

	"github.com/mfeld/parity-pulse/internal/model"
	"github.com/mfeld/parity-pulse/internal/refdata"
)

// hoursPerYear is the standard annual work-hour figure (52 weeks x 40h)
// used to convert annual wages to hourly rates.
const hoursPerYear = 2080

// Index clamp bounds and classification thresholds.
const (
	indexFloor   = 0.3
	indexCeiling = 3.0
	maxWorkHours = 999
)

// Calculator computes basket parity against the reference country table.
type Calculator struct {
	store *refdata.Store
}

// New creates a calculator over the given reference store.
func New(store *refdata.Store) *Calculator {
	return &Calculator{store: store}
}

// Calculate produces one CountryResult per reference country, sorted
// ascending by shadow price index (cheapest relative value first; stable
// for ties). Callers validate item count and tariff range before calling;
// a zero wage in the reference table is invalid data, not a runtime input.
func (c *Calculator) Calculate(items []model.ClassifiedItem, loc *model.Location, tariffSensitivity float64, wageType model.WageType) []model.CountryResult {
	if !wageType.Valid() {
		wageType = model.WageProfessional
	}

	userCountry := c.referenceCountry(loc)
	userBasketCost := c.basketCost(items)

	homeHourlyWage := wageFor(userCountry, wageType) / hoursPerYear
	homeAffordability := userBasketCost / homeHourlyWage

	countries := c.store.Countries()
	results := make([]model.CountryResult, 0, len(countries))
	for _, country := range countries {
		pppRatio := country.PPPFactor / userCountry.PPPFactor

		tariffMultiplier := 1 + (tariffSensitivity/100)*importDependency(country.PPPFactor)
		adjustedCost := userBasketCost * pppRatio * tariffMultiplier

		targetWage := wageFor(country, wageType)
		targetHourlyWage := targetWage / hoursPerYear
		targetAffordability := adjustedCost / targetHourlyWage

		parityIndex := targetAffordability / homeAffordability

		results = append(results, model.CountryResult{
			CountryCode:      country.Code,
			CountryName:      country.Name,
			ShadowPriceIndex: clamp(parityIndex, indexFloor, indexCeiling),
			BasketCost:       userBasketCost,
			AdjustedCost:     adjustedCost,
			Latitude:         country.Latitude,
			Longitude:        country.Longitude,
			IsValueDeal:      parityIndex < 0.8,
			WorkHours:        round1(math.Min(targetAffordability, maxWorkHours)),
			AnnualWage:       targetWage,
			MacroStability:   stability(parityIndex, country.PPPFactor),
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].ShadowPriceIndex < results[j].ShadowPriceIndex
	})

	return results
}

// referenceCountry resolves the user's home economy: nearest table entry
// by flat Euclidean (lat, lng) distance, or the baseline first entry when
// no location is given. The flat approximation matches the index's
// illustrative precision.
func (c *Calculator) referenceCountry(loc *model.Location) model.Country {
	countries := c.store.Countries()
	closest := countries[0]
	if loc == nil {
		return closest
	}

	closestDist := math.Hypot(closest.Latitude-loc.Lat, closest.Longitude-loc.Lng)
	for _, country := range countries[1:] {
		dist := math.Hypot(country.Latitude-loc.Lat, country.Longitude-loc.Lng)
		if dist < closestDist {
			closest = country
			closestDist = dist
		}
	}
	return closest
}

// basketCost aggregates items into the weighted basket cost: per-category
// price sums scaled by that category's expenditure weight.
func (c *Calculator) basketCost(items []model.ClassifiedItem) float64 {
	categoryTotals := make(map[model.Category]float64)
	for _, item := range items {
		cat := model.Category(item.Category)
		if cat == "" {
			cat = model.CategoryOther
		}
		categoryTotals[cat] += item.BasePrice
	}

	var cost float64
	for cat, total := range categoryTotals {
		cost += total * c.store.CategoryWeight(cat)
	}
	return cost
}

// importDependency assigns the tiered tariff exposure constant: lower-PPP
// economies are assumed more import-dependent.
func importDependency(ppp float64) float64 {
	switch {
	case ppp < 0.5:
		return 0.7
	case ppp < 0.8:
		return 0.4
	default:
		return 0.2
	}
}

// stability classifies a country's parity position.
func stability(parityIndex, ppp float64) model.MacroStability {
	switch {
	case parityIndex >= 0.8 && parityIndex <= 1.2 && ppp >= 0.5:
		return model.StabilityStable
	case parityIndex > 2.0 || ppp < 0.3:
		return model.StabilityVolatile
	default:
		return model.StabilityModerate
	}
}

func wageFor(country model.Country, wageType model.WageType) float64 {
	if wageType == model.WageMinimum {
		return country.MinimumWage
	}
	return country.ProfessionalWage
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}

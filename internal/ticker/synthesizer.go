// Package ticker produces illustrative price-tick data for display. Ticks
// are simulated volatility, deliberately unseeded and non-reproducible;
// they are decoration, not a market feed.
package ticker

import (
	"math/rand/v2"
	"strings"

	"github.com/mfeld/parity-pulse/internal/model"
)

// Synthesize derives one tick per classified item. The invariants callers
// may rely on: price == basePrice + change exactly, and change in [-1, 1].
func Synthesize(items []model.ClassifiedItem) []model.TickerItem {
	ticks := make([]model.TickerItem, len(items))
	for i, item := range items {
		change := (rand.Float64() - 0.5) * 2
		ticks[i] = model.TickerItem{
			Symbol:        tickerSymbol(item.Symbol),
			Name:          item.UserInput,
			Price:         item.BasePrice + change,
			Change:        change,
			ChangePercent: change / item.BasePrice * 100,
		}
	}
	return ticks
}

// tickerSymbol is the 4-char uppercase prefix of a commodity symbol.
func tickerSymbol(symbol string) string {
	s := strings.ToUpper(symbol)
	if len(s) > 4 {
		s = s[:4]
	}
	return s
}

// DefaultFeed is the static market strip shown before any basket has been
// calculated.
func DefaultFeed() []model.TickerItem {
	return []model.TickerItem{
		{Symbol: "WTI", Name: "Crude Oil", Price: 78.45, Change: 1.23, ChangePercent: 1.59},
		{Symbol: "XAU", Name: "Gold", Price: 2045.80, Change: -12.50, ChangePercent: -0.61},
		{Symbol: "EUR", Name: "EUR/USD", Price: 1.0856, Change: 0.0023, ChangePercent: 0.21},
		{Symbol: "BTC", Name: "Bitcoin", Price: 67234.00, Change: 1234.00, ChangePercent: 1.87},
		{Symbol: "SPX", Name: "S&P 500", Price: 5234.56, Change: 45.23, ChangePercent: 0.87},
		{Symbol: "VIX", Name: "Volatility", Price: 13.25, Change: -0.45, ChangePercent: -3.28},
		{Symbol: "NGS", Name: "Natural Gas", Price: 2.156, Change: 0.045, ChangePercent: 2.13},
		{Symbol: "CRN", Name: "Corn", Price: 456.75, Change: -3.25, ChangePercent: -0.71},
	}
}

// Jitter re-synthesizes a feed around its current prices, used by the
// streaming endpoint to animate the default strip.
func Jitter(items []model.TickerItem) []model.TickerItem {
	out := make([]model.TickerItem, len(items))
	for i, item := range items {
		change := (rand.Float64() - 0.5) * 2
		base := item.Price - item.Change
		out[i] = model.TickerItem{
			Symbol:        item.Symbol,
			Name:          item.Name,
			Price:         base + change,
			Change:        change,
			ChangePercent: change / base * 100,
		}
	}
	return out
}

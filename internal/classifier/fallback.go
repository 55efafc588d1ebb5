package classifier

import (
	"sort"
	"strings"

	"github.com/mfeld/parity-pulse/internal/model"
)

// fallback resolves one item deterministically: normalize the input and
// look for a catalog symbol where either string contains the other.
// Unmatched inputs land on the default commodity.
func (c *Classifier) fallback(input string) model.ClassifiedItem {
	commodity := c.matchCatalog(input)

	return model.ClassifiedItem{
		UserInput: input,
		Symbol:    commodity.Symbol,
		Category:  string(commodity.Category),
		BasePrice: commodity.BasePriceUSD,
		Weight:    c.store.CategoryWeight(commodity.Category),
	}
}

// matchCatalog performs the substring match. Symbols are scanned in sorted
// order so the result is stable across runs.
func (c *Classifier) matchCatalog(input string) model.Commodity {
	key := normalizeInput(input)
	if key == "" {
		return c.store.DefaultCommodity()
	}

	catalog := c.store.CommodityCatalog()
	symbols := make([]string, 0, len(catalog))
	for sym := range catalog {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	for _, sym := range symbols {
		if strings.Contains(sym, key) || strings.Contains(key, sym) {
			return catalog[sym]
		}
	}

	return c.store.DefaultCommodity()
}

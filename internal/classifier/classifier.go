// Package classifier maps free-text basket entries to standardized
// commodities. It asks the text-understanding capability first and falls
// back to a deterministic substring heuristic per item, so a basket is
// always fully classified even when the capability is down.
package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/mfeld/parity-pulse/internal/llm"
	"github.com/mfeld/parity-pulse/internal/model"
	"github.com/mfeld/parity-pulse/internal/refdata"
)

// MaxItems is the largest basket a single request may carry.
const MaxItems = 5

// unmatchedBasePrice is used when neither the capability nor the catalog
// yields a price for an item.
const unmatchedBasePrice = 10.0

// Classifier resolves basket entries against the commodity catalog.
type Classifier struct {
	client  llm.Client
	store   *refdata.Store
	logger  *slog.Logger
	timeout time.Duration
}

// New creates a classifier. client may be nil, in which case every item is
// resolved by the local fallback.
func New(client llm.Client, store *refdata.Store, logger *slog.Logger) *Classifier {
	if logger == nil {
		logger = slog.Default()
	}
	return &Classifier{
		client:  client,
		store:   store,
		logger:  logger,
		timeout: 15 * time.Second,
	}
}

// Classify maps each input to a ClassifiedItem. The result has the same
// length and order as items; individual entries degrade to the fallback
// heuristic independently, and the call as a whole never fails.
func (c *Classifier) Classify(ctx context.Context, items []string) []model.ClassifiedItem {
	if len(items) == 0 {
		return nil
	}

	mapped := c.classifyWithCapability(ctx, items)

	out := make([]model.ClassifiedItem, len(items))
	for i, input := range items {
		if m, ok := mapped[i]; ok {
			out[i] = c.finalize(input, m)
			continue
		}
		out[i] = c.fallback(input)
	}
	return out
}

// classifyWithCapability asks the capability to map all items in one
// request. It returns whatever subset of input positions it could resolve;
// callers fill the gaps with the fallback.
func (c *Classifier) classifyWithCapability(ctx context.Context, items []string) map[int]mappedItem {
	if c.client == nil {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	content, err := c.client.Complete(ctx, c.buildPrompt(items))
	if err != nil {
		c.logger.Warn("capability classification failed, using fallback",
			"items", len(items),
			"error", err)
		return nil
	}

	entries, err := parseMapping(content)
	if err != nil {
		c.logger.Warn("capability returned unparseable mapping, using fallback",
			"error", err)
		return nil
	}

	return alignEntries(items, entries)
}

// buildPrompt creates the mapping prompt for the capability.
func (c *Classifier) buildPrompt(items []string) string {
	symbols := make([]string, 0, len(c.store.CommodityCatalog()))
	for sym := range c.store.CommodityCatalog() {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	categories := make([]string, 0, len(model.Categories()))
	for _, cat := range model.Categories() {
		categories = append(categories, string(cat))
	}

	quoted, _ := json.Marshal(items)

	return fmt.Sprintf(`You are a commodities and consumer price analyst. Map the following user inputs to standardized commodity categories and economic buckets.

User inputs: %s

Available commodity symbols: %s

Economic categories (use these exact names): %s

For each user input:
1. Return the best matching commodity symbol from the available list
2. Categorize into one of the economic buckets
3. Estimate the base USD price for this item

Respond with JSON in format:
{"items": [{"userInput": "original input", "symbol": "commodity_symbol", "category": "%s", "basePrice": estimated_usd_price}]}`,
		string(quoted),
		strings.Join(symbols, ", "),
		strings.Join(categories, ", "),
		strings.Join(categories, "|"))
}

// finalize normalizes a mapped item: lowercased category,
// catalog price when the capability omitted one, and category weight.
func (c *Classifier) finalize(input string, m mappedItem) model.ClassifiedItem {
	category := strings.ToLower(strings.TrimSpace(m.Category))
	if category == "" {
		category = string(model.CategoryOther)
	}

	symbol := m.Symbol
	if symbol == "" {
		symbol = c.store.DefaultCommodity().Symbol
	}

	price := m.BasePrice
	if price <= 0 {
		if commodity, ok := c.store.CommodityCatalog()[symbol]; ok {
			price = commodity.BasePriceUSD
		} else {
			price = unmatchedBasePrice
		}
	}

	return model.ClassifiedItem{
		UserInput: input,
		Symbol:    symbol,
		Category:  category,
		BasePrice: price,
		Weight:    c.store.CategoryWeight(model.Category(category)),
	}
}

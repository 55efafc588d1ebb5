package classifier

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mfeld/parity-pulse/internal/llm"
)

// mappedItem is one entry of a capability mapping response after field
// normalization.
type mappedItem struct {
	UserInput string
	Symbol    string
	Category  string
	BasePrice float64
}

// rawEntry tolerates the field-name drift observed from capability
// providers: camelCase and snake_case variants of the same fields.
type rawEntry struct {
	UserInput      string  `json:"userInput"`
	UserInputSnake string  `json:"user_input"`
	Symbol         string  `json:"symbol"`
	Category       string  `json:"category"`
	BasePrice      float64 `json:"basePrice"`
	BasePriceSnake float64 `json:"base_price"`
}

func (r rawEntry) normalize() mappedItem {
	input := r.UserInput
	if input == "" {
		input = r.UserInputSnake
	}
	price := r.BasePrice
	if price == 0 {
		price = r.BasePriceSnake
	}
	return mappedItem{
		UserInput: input,
		Symbol:    r.Symbol,
		Category:  r.Category,
		BasePrice: price,
	}
}

// parseMapping decodes a capability mapping response. Accepted shapes:
// {"items": [...]}, {"mappings": [...]}, or a bare array.
func parseMapping(content string) ([]mappedItem, error) {
	content = llm.CleanJSON(content)
	if content == "" {
		return nil, fmt.Errorf("empty response")
	}

	var entries []rawEntry

	var envelope struct {
		Items    []rawEntry `json:"items"`
		Mappings []rawEntry `json:"mappings"`
	}
	if err := json.Unmarshal([]byte(content), &envelope); err == nil {
		switch {
		case len(envelope.Items) > 0:
			entries = envelope.Items
		case len(envelope.Mappings) > 0:
			entries = envelope.Mappings
		}
	}

	if entries == nil {
		if err := json.Unmarshal([]byte(content), &entries); err != nil {
			return nil, fmt.Errorf("response is neither a mapping object nor an array: %w", err)
		}
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("no mapping entries in response")
	}

	out := make([]mappedItem, len(entries))
	for i, e := range entries {
		out[i] = e.normalize()
	}
	return out, nil
}

// alignEntries matches response entries back to input positions, first by
// normalized userInput, then by position for whatever remains. Inputs with
// no usable entry are simply absent from the result.
func alignEntries(items []string, entries []mappedItem) map[int]mappedItem {
	out := make(map[int]mappedItem, len(items))
	used := make([]bool, len(entries))

	for i, input := range items {
		key := normalizeInput(input)
		for j, e := range entries {
			if used[j] {
				continue
			}
			if normalizeInput(e.UserInput) == key && key != "" {
				out[i] = e
				used[j] = true
				break
			}
		}
	}

	// Positional match for entries the name pass did not claim.
	for i := range items {
		if _, ok := out[i]; ok {
			continue
		}
		if i < len(entries) && !used[i] {
			out[i] = entries[i]
			used[i] = true
		}
	}

	return out
}

// normalizeInput lowercases and strips all whitespace.
func normalizeInput(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), ""))
}

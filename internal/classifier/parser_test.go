package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMapping(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    []mappedItem
		wantErr bool
	}{
		{
			name:  "items envelope",
			input: `{"items":[{"userInput":"Rent","symbol":"rent","category":"housing","basePrice":1500}]}`,
			want:  []mappedItem{{UserInput: "Rent", Symbol: "rent", Category: "housing", BasePrice: 1500}},
		},
		{
			name:  "mappings envelope",
			input: `{"mappings":[{"userInput":"Eggs","symbol":"eggs","category":"staples","basePrice":4.25}]}`,
			want:  []mappedItem{{UserInput: "Eggs", Symbol: "eggs", Category: "staples", BasePrice: 4.25}},
		},
		{
			name:  "bare array",
			input: `[{"userInput":"Beer","symbol":"beer","category":"luxury","basePrice":9.5}]`,
			want:  []mappedItem{{UserInput: "Beer", Symbol: "beer", Category: "luxury", BasePrice: 9.5}},
		},
		{
			name:  "snake_case field variants",
			input: `{"items":[{"user_input":"Rent","symbol":"rent","category":"housing","base_price":1600}]}`,
			want:  []mappedItem{{UserInput: "Rent", Symbol: "rent", Category: "housing", BasePrice: 1600}},
		},
		{
			name: "markdown fenced payload",
			input: "```json\n" +
				`{"items":[{"userInput":"Gym","symbol":"gym","category":"luxury","basePrice":45}]}` +
				"\n```",
			want: []mappedItem{{UserInput: "Gym", Symbol: "gym", Category: "luxury", BasePrice: 45}},
		},
		{
			name:    "empty response",
			input:   "",
			wantErr: true,
		},
		{
			name:    "not json",
			input:   "I could not classify these items.",
			wantErr: true,
		},
		{
			name:    "empty object",
			input:   `{}`,
			wantErr: true,
		},
		{
			name:    "empty items array",
			input:   `{"items":[]}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseMapping(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestAlignEntries(t *testing.T) {
	tests := []struct {
		name    string
		items   []string
		entries []mappedItem
		want    map[int]mappedItem
	}{
		{
			name:  "match by normalized name regardless of order",
			items: []string{"Rent", "Eggs"},
			entries: []mappedItem{
				{UserInput: "eggs", Symbol: "eggs"},
				{UserInput: "rent", Symbol: "rent"},
			},
			want: map[int]mappedItem{
				0: {UserInput: "rent", Symbol: "rent"},
				1: {UserInput: "eggs", Symbol: "eggs"},
			},
		},
		{
			name:  "positional match when names are missing",
			items: []string{"Rent", "Eggs"},
			entries: []mappedItem{
				{Symbol: "rent"},
				{Symbol: "eggs"},
			},
			want: map[int]mappedItem{
				0: {Symbol: "rent"},
				1: {Symbol: "eggs"},
			},
		},
		{
			name:  "omitted item is absent from result",
			items: []string{"Rent", "Eggs", "Beer"},
			entries: []mappedItem{
				{UserInput: "rent", Symbol: "rent"},
				{UserInput: "beer", Symbol: "beer"},
			},
			want: map[int]mappedItem{
				0: {UserInput: "rent", Symbol: "rent"},
				2: {UserInput: "beer", Symbol: "beer"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, alignEntries(tt.items, tt.entries))
		})
	}
}

func TestNormalizeInput(t *testing.T) {
	assert.Equal(t, "rent", normalizeInput("  Rent "))
	assert.Equal(t, "gymmembership", normalizeInput("Gym  Membership"))
	assert.Equal(t, "", normalizeInput("   "))
}

package brief

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mfeld/parity-pulse/internal/common"
	"github.com/mfeld/parity-pulse/internal/llm"
	"github.com/mfeld/parity-pulse/internal/model"
)

func testResult() model.CountryResult {
	return model.CountryResult{
		CountryCode:      "CHE",
		CountryName:      "Switzerland",
		ShadowPriceIndex: 1.24,
		AdjustedCost:     744.53,
		WorkHours:        10.3,
		AnnualWage:       150000,
		MacroStability:   model.StabilityModerate,
	}
}

func newTestGenerator(client llm.Client) *Generator {
	g := NewGenerator(client, nil)
	g.retryOpts = common.RetryOptions{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     5 * time.Millisecond,
		Multiplier:   2.0,
	}
	return g
}

func TestGenerateSuccess(t *testing.T) {
	mock := &llm.MockClient{Responses: []string{
		`{"economicOpportunity":"High-wage arbitrage","laborRisks":"Tight labor market","policyImplications":"Bilateral trade friction"}`,
	}}

	got := newTestGenerator(mock).Generate(context.Background(), testResult())
	assert.Equal(t, "High-wage arbitrage", got.EconomicOpportunity)
	assert.Equal(t, "Tight labor market", got.LaborRisks)
	assert.Equal(t, "Bilateral trade friction", got.PolicyImplications)
}

func TestGenerateFencedResponse(t *testing.T) {
	mock := &llm.MockClient{Responses: []string{
		"```json\n{\"economicOpportunity\":\"a\",\"laborRisks\":\"b\",\"policyImplications\":\"c\"}\n```",
	}}

	got := newTestGenerator(mock).Generate(context.Background(), testResult())
	assert.Equal(t, "a", got.EconomicOpportunity)
}

func TestGenerateMissingFieldsFilledWithPlaceholders(t *testing.T) {
	mock := &llm.MockClient{Responses: []string{
		`{"economicOpportunity":"only one field"}`,
	}}

	got := newTestGenerator(mock).Generate(context.Background(), testResult())
	assert.Equal(t, "only one field", got.EconomicOpportunity)
	assert.Equal(t, Placeholder.LaborRisks, got.LaborRisks)
	assert.Equal(t, Placeholder.PolicyImplications, got.PolicyImplications)
}

func TestGenerateRetriesThenRecovers(t *testing.T) {
	mock := &llm.MockClient{
		Errs: []error{errors.New("transient"), nil},
		Responses: []string{
			"",
			`{"economicOpportunity":"a","laborRisks":"b","policyImplications":"c"}`,
		},
	}

	got := newTestGenerator(mock).Generate(context.Background(), testResult())
	assert.Equal(t, "a", got.EconomicOpportunity)
	assert.Equal(t, 2, mock.Calls())
}

func TestGeneratePlaceholderOnExhaustion(t *testing.T) {
	mock := &llm.MockClient{Errs: []error{errors.New("down")}}

	got := newTestGenerator(mock).Generate(context.Background(), testResult())
	assert.Equal(t, Placeholder, got)
	assert.Equal(t, 3, mock.Calls(), "bounded retry runs its attempts before degrading")
}

func TestGeneratePlaceholderOnUnparseableOutput(t *testing.T) {
	mock := &llm.MockClient{Responses: []string{"not json at all"}}

	got := newTestGenerator(mock).Generate(context.Background(), testResult())
	assert.Equal(t, Placeholder, got)
}

func TestGenerateNilClient(t *testing.T) {
	got := NewGenerator(nil, nil).Generate(context.Background(), testResult())
	assert.Equal(t, Placeholder, got)
}

func TestBuildPromptIncludesResultData(t *testing.T) {
	mock := &llm.MockClient{Responses: []string{`{}`}}
	newTestGenerator(mock).Generate(context.Background(), testResult())

	require.NotEmpty(t, mock.Prompts)
	prompt := mock.Prompts[0]
	assert.Contains(t, prompt, "Switzerland")
	assert.Contains(t, prompt, "1.24x")
	assert.Contains(t, prompt, "Moderate")
	assert.Contains(t, prompt, "$150000")
}

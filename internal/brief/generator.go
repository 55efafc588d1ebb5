// Package brief generates the consultant-style narrative triple for a
// single country result. The narrative is supplementary: generation
// failures degrade to a fixed placeholder, never to an error.
package brief

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/mfeld/parity-pulse/internal/common"
	"github.com/mfeld/parity-pulse/internal/llm"
	"github.com/mfeld/parity-pulse/internal/model"
)

// Placeholder is returned whenever narrative generation is unavailable.
var Placeholder = model.ConsultantBrief{
	EconomicOpportunity: "Economic analysis temporarily unavailable",
	LaborRisks:          "Labor risk assessment pending",
	PolicyImplications:  "Policy analysis in progress",
}

// Generator produces consultant briefs via the text capability.
type Generator struct {
	client    llm.Client
	logger    *slog.Logger
	retryOpts common.RetryOptions
}

// NewGenerator creates a brief generator. client may be nil; generation
// then always yields the placeholder.
func NewGenerator(client llm.Client, logger *slog.Logger) *Generator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Generator{
		client: client,
		logger: logger,
		retryOpts: common.RetryOptions{
			MaxAttempts:  3,
			InitialDelay: time.Second,
			MaxDelay:     10 * time.Second,
			Multiplier:   2.0,
		},
	}
}

// Generate returns the narrative triple for one country result. Capability
// calls are retried with exponential backoff; exhaustion returns the
// placeholder.
func (g *Generator) Generate(ctx context.Context, result model.CountryResult) model.ConsultantBrief {
	if g.client == nil {
		return Placeholder
	}

	var out model.ConsultantBrief
	err := common.WithRetry(ctx, func() error {
		content, err := g.client.Complete(ctx, buildPrompt(result))
		if err != nil {
			return err
		}
		parsed, err := parseBrief(content)
		if err != nil {
			return err
		}
		out = parsed
		return nil
	}, g.retryOpts)

	if err != nil {
		g.logger.Warn("consultant brief generation failed, returning placeholder",
			"country", result.CountryCode,
			"error", err)
		return Placeholder
	}

	return out
}

func buildPrompt(r model.CountryResult) string {
	return fmt.Sprintf(`You are an elite management consultant providing a brief executive analysis.
Given the following data for %s:
- Parity Pulse Index: %.2fx (1.0 = parity with user's location)
- Basket Cost (PPP adjusted): $%.2f
- Work Hours to Afford Basket: %.1f hours
- Macro-Stability Assessment: %s
- Average Annual Wage: $%.0f

Provide exactly 3 bullet points in this JSON format:
{
  "economicOpportunity": "One concise sentence about cost arbitrage or value proposition",
  "laborRisks": "One concise sentence about workforce or operational considerations",
  "policyImplications": "One concise sentence about regulatory or trade policy factors"
}

Be specific, data-driven, and actionable. Avoid generic statements.`,
		r.CountryName, r.ShadowPriceIndex, r.AdjustedCost, r.WorkHours, r.MacroStability, r.AnnualWage)
}

// parseBrief decodes the capability response, filling any missing field
// with its placeholder counterpart.
func parseBrief(content string) (model.ConsultantBrief, error) {
	var parsed model.ConsultantBrief
	if err := json.Unmarshal([]byte(llm.CleanJSON(content)), &parsed); err != nil {
		return model.ConsultantBrief{}, fmt.Errorf("%w: %v", common.ErrUnparseableResponse, err)
	}

	if parsed.EconomicOpportunity == "" {
		parsed.EconomicOpportunity = Placeholder.EconomicOpportunity
	}
	if parsed.LaborRisks == "" {
		parsed.LaborRisks = Placeholder.LaborRisks
	}
	if parsed.PolicyImplications == "" {
		parsed.PolicyImplications = Placeholder.PolicyImplications
	}

	return parsed, nil
}

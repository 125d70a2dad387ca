package llm

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"strings"
)

// Mock produces a deterministic analysis from the scenario text. The same
// scenario always yields the same result.
type Mock struct{}

func NewMock() *Mock { return &Mock{} }

func (m *Mock) Name() string  { return "mock" }
func (m *Mock) Model() string { return "mock" }

var (
	mockRisks = []map[string]any{
		{"title": "Slow customer adoption", "mitigation": "Run a limited pilot with design partners before a full launch."},
		{"title": "Competitor price response", "mitigation": "Differentiate on service and lock in annual contracts early."},
		{"title": "Budget overrun", "mitigation": "Stage funding behind clear milestones and review monthly."},
		{"title": "Regulatory exposure", "mitigation": "Engage compliance counsel during scoping, not after launch."},
		{"title": "Execution capacity", "mitigation": "Assign a dedicated owner and cap parallel initiatives."},
		{"title": "Supply chain disruption", "mitigation": "Qualify a second supplier for critical inputs."},
	}
	mockOpportunities = []string{
		"Bundle with existing offerings to raise average order value",
		"Use early customers as references for adjacent segments",
		"Partner with a channel that already owns the target audience",
		"Turn operational data into a paid insights add-on",
		"Expand to a neighbouring region once unit economics are proven",
	}
)

func (m *Mock) GenerateJSON(_ context.Context, _ string, payload map[string]any) (map[string]any, error) {
	scenario, _ := payload["scenario"].(string)
	scenario = strings.TrimSpace(scenario)
	if scenario == "" {
		return nil, fmt.Errorf("%w: mock needs a scenario", ErrInvalidResponse)
	}

	h := fnv.New64a()
	_, _ = h.Write([]byte(scenario))
	seed := h.Sum64()
	rng := rand.New(rand.NewPCG(seed, seed>>32))

	score := func() int { return 40 + rng.IntN(51) }
	customer, competitive, risk, cost := score(), score(), score(), score()
	overall := (customer + competitive + risk + cost + 2) / 4

	decision, rationale := "no-go", "Weak scores across the board; rework the plan before committing resources."
	switch {
	case overall >= 70:
		decision, rationale = "go", "Scores are strong on balance and the main risks have workable mitigations."
	case overall >= 55:
		decision, rationale = "pilot", "The case is promising but uncertain; validate demand with a small pilot first."
	}

	risks := make([]any, 0, 3)
	for _, i := range rng.Perm(len(mockRisks))[:3] {
		risks = append(risks, mockRisks[i])
	}
	opps := make([]any, 0, 3)
	for _, i := range rng.Perm(len(mockOpportunities))[:3] {
		opps = append(opps, mockOpportunities[i])
	}

	return map[string]any{
		"scores": map[string]any{
			"overall":     overall,
			"customer":    customer,
			"competitive": competitive,
			"risk":        risk,
			"cost":        cost,
		},
		"reasons": map[string]any{
			"customer":    fmt.Sprintf("Customer appeal estimated at %d/100 from the scenario description.", customer),
			"competitive": fmt.Sprintf("Competitive position estimated at %d/100.", competitive),
			"risk":        fmt.Sprintf("Risk profile estimated at %d/100 (higher is safer).", risk),
			"cost":        fmt.Sprintf("Cost efficiency estimated at %d/100.", cost),
		},
		"impacts": map[string]any{
			"risk":        impactLevel(risk),
			"customer":    impactLevel(customer),
			"competitive": impactLevel(competitive),
			"cost":        impactLevel(cost),
		},
		"recommendation": map[string]any{
			"decision":  decision,
			"rationale": rationale,
		},
		"top_risks":     risks,
		"opportunities": opps,
		"source":        "mock",
	}, nil
}

func impactLevel(score int) string {
	switch {
	case score >= 75:
		return "positive"
	case score >= 55:
		return "neutral"
	default:
		return "negative"
	}
}

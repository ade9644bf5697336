package scoring

// Weights is a named weighting profile over the four scoring signals.
// Each profile is expected to sum to 1.0.
type Weights struct {
	Urgency    float64 `json:"urgency"`
	Importance float64 `json:"importance"`
	Effort     float64 `json:"effort"`
	Deps       float64 `json:"deps"`
}

// DefaultStrategy is used whenever the caller names no strategy or an
// unknown one.
const DefaultStrategy = "smart_balance"

var strategyWeights = map[string]Weights{
	// Focus: small, quick tasks first
	"fastest_wins": {Urgency: 0.20, Importance: 0.20, Effort: 0.50, Deps: 0.10},
	// Focus: high impact / importance
	"high_impact": {Urgency: 0.20, Importance: 0.60, Effort: 0.10, Deps: 0.10},
	// Focus: strict on deadlines
	"deadline_driven": {Urgency: 0.60, Importance: 0.20, Effort: 0.10, Deps: 0.10},
	// Balanced default strategy
	"smart_balance": {Urgency: 0.35, Importance: 0.35, Effort: 0.15, Deps: 0.15},
}

// WeightsFor resolves a strategy name. Unknown names silently fall back
// to the default profile.
func WeightsFor(strategy string) Weights {
	if w, ok := strategyWeights[strategy]; ok {
		return w
	}
	return strategyWeights[DefaultStrategy]
}

// Strategies returns a copy of the full weight table.
func Strategies() map[string]Weights {
	out := make(map[string]Weights, len(strategyWeights))
	for name, w := range strategyWeights {
		out[name] = w
	}
	return out
}

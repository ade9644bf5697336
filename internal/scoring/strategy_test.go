package scoring

import (
	"math"
	"testing"
)

func TestStrategyWeights_SumToOne(t *testing.T) {
	for name, w := range Strategies() {
		sum := w.Urgency + w.Importance + w.Effort + w.Deps
		if math.Abs(sum-1.0) > 1e-9 {
			t.Errorf("strategy %s weights sum to %v, expected 1.0", name, sum)
		}
	}
}

func TestWeightsFor_UnknownFallsBack(t *testing.T) {
	got := WeightsFor("no_such_strategy")
	want := WeightsFor(DefaultStrategy)
	if got != want {
		t.Errorf("unknown strategy should fall back to %s: got %+v", DefaultStrategy, got)
	}
}

func TestWeightsFor_NamedProfiles(t *testing.T) {
	if w := WeightsFor("fastest_wins"); w.Effort != 0.50 {
		t.Errorf("fastest_wins should weight effort 0.50, got %v", w.Effort)
	}
	if w := WeightsFor("high_impact"); w.Importance != 0.60 {
		t.Errorf("high_impact should weight importance 0.60, got %v", w.Importance)
	}
	if w := WeightsFor("deadline_driven"); w.Urgency != 0.60 {
		t.Errorf("deadline_driven should weight urgency 0.60, got %v", w.Urgency)
	}
}

package scoring

import (
	"math"
	"strings"
	"time"
)

// cyclePenalty is subtracted from the composite score of every task that
// sits in a circular dependency. Applied after weighting, never clamped.
const cyclePenalty = 0.2

const balancedExplanation = "Balanced priority based on urgency, importance, effort, and dependencies."

// Engine scores and orders task batches. It holds no cross-request state;
// the clock is injectable so results are reproducible in tests.
type Engine struct {
	now func() time.Time
}

// NewEngine returns an engine using the wall clock.
func NewEngine() *Engine {
	return &Engine{now: time.Now}
}

// NewEngineAt returns an engine with a custom clock.
func NewEngineAt(now func() time.Time) *Engine {
	if now == nil {
		now = time.Now
	}
	return &Engine{now: now}
}

// ScoreAndOrder scores every task under the named strategy and returns the
// batch in recommended execution order. Unknown strategies fall back to the
// default profile; malformed per-task fields take their neutral fallbacks.
// The input slice is never mutated.
func (e *Engine) ScoreAndOrder(tasks []Task, strategy string) []ScoredTask {
	return ScoreAndOrderAt(tasks, strategy, e.now())
}

// ScoreAndOrderAt is the pure core of the engine: a function of
// (tasks, strategy, now) with no other inputs.
func ScoreAndOrderAt(tasks []Task, strategy string, now time.Time) []ScoredTask {
	weights := WeightsFor(strategy)
	cycles := DetectCycles(tasks)
	bonus := DependencyBonus(tasks)

	scored := make([]ScoredTask, 0, len(tasks))
	for _, t := range tasks {
		urgency := UrgencyScore(t.DueDate, now)
		importance := ImportanceScore(t.Importance)
		effort := EffortScore(t.EstimatedHours)
		deps := 0.0
		if t.ID != "" {
			deps = bonus[t.ID]
		}
		inCycle := t.ID != "" && cycles[t.ID]

		score := urgency*weights.Urgency +
			importance*weights.Importance +
			effort*weights.Effort +
			deps*weights.Deps
		if inCycle {
			score -= cyclePenalty
		}

		scored = append(scored, ScoredTask{
			Task:        t,
			Score:       round3(score),
			Explanation: explain(urgency, importance, effort, deps, inCycle),
		})
	}

	return orderScored(scored, cycles)
}

// explain tests the signal thresholds in fixed order and joins every phrase
// that fired. No phrase at all yields the balanced fallback sentence.
func explain(urgency, importance, effort, deps float64, inCycle bool) string {
	var parts []string

	if urgency >= 0.8 {
		parts = append(parts, "Due very soon")
	} else if urgency >= 0.6 {
		parts = append(parts, "Upcoming deadline")
	}

	if importance >= 0.8 {
		parts = append(parts, "Very important")
	} else if importance >= 0.6 {
		parts = append(parts, "Important")
	}

	if effort >= 0.7 {
		parts = append(parts, "Quick win")
	} else if effort <= 0.3 {
		parts = append(parts, "Large effort task")
	}

	if deps > 0 {
		parts = append(parts, "Unblocks other tasks")
	}

	if inCycle {
		parts = append(parts, "Part of circular dependency (penalized)")
	}

	if len(parts) == 0 {
		return balancedExplanation
	}
	return strings.Join(parts, "; ")
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

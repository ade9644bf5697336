package scoring

import (
	"reflect"
	"testing"
	"time"
)

func fixedClock() time.Time { return testNow }

func TestScoreAndOrder_BlockedHighScorerWaitsForDependency(t *testing.T) {
	hours2 := 2.0
	tasks := []Task{
		{ID: "1", Title: "A", Importance: 5, EstimatedHours: hours2},
		{ID: "2", Title: "B", DueDate: "2026-03-10", Importance: 9, EstimatedHours: 0.5, Dependencies: []string{"1"}},
	}
	out := ScoreAndOrderAt(tasks, "smart_balance", testNow)
	if len(out) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(out))
	}
	// Task 2 scores higher: due today, very important, quick win.
	var t1, t2 ScoredTask
	for _, st := range out {
		if st.ID == "1" {
			t1 = st
		} else {
			t2 = st
		}
	}
	if t2.Score <= t1.Score {
		t.Errorf("task 2 should outscore task 1: %v vs %v", t2.Score, t1.Score)
	}
	// But task 1 is emitted first: task 2 only becomes available once its
	// dependency is placed.
	if out[0].ID != "1" || out[1].ID != "2" {
		t.Errorf("expected order [1 2], got [%s %s]", out[0].ID, out[1].ID)
	}
	if t1.Score != 0.43 {
		t.Errorf("expected task 1 score 0.43, got %v", t1.Score)
	}
	if t2.Score != 0.78 {
		t.Errorf("expected task 2 score 0.78, got %v", t2.Score)
	}
	if t2.Explanation != "Due very soon; Very important; Quick win" {
		t.Errorf("unexpected explanation: %q", t2.Explanation)
	}
	if t1.Explanation != "Quick win; Unblocks other tasks" {
		t.Errorf("unexpected explanation: %q", t1.Explanation)
	}
}

func TestScoreAndOrder_CyclicTasksPenalizedAndLast(t *testing.T) {
	tasks := []Task{
		{ID: "X", Dependencies: []string{"Y"}},
		{ID: "Y", Dependencies: []string{"X"}},
		{ID: "Z"},
	}
	out := ScoreAndOrderAt(tasks, "smart_balance", testNow)
	if len(out) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(out))
	}
	if out[0].ID != "Z" {
		t.Errorf("non-cyclic task should come first, got %s", out[0].ID)
	}
	// X and Y have equal penalized scores; input order breaks the tie.
	if out[1].ID != "X" || out[2].ID != "Y" {
		t.Errorf("expected cyclic tail [X Y], got [%s %s]", out[1].ID, out[2].ID)
	}
	for _, st := range out[1:] {
		// Unpenalized composite is 0.4; the cycle penalty is exactly 0.2.
		if st.Score != 0.2 {
			t.Errorf("task %s: expected penalized score 0.2, got %v", st.ID, st.Score)
		}
		if st.Explanation != "Unblocks other tasks; Part of circular dependency (penalized)" {
			t.Errorf("task %s: unexpected explanation %q", st.ID, st.Explanation)
		}
	}
}

func TestScoreAndOrder_ScoreMayGoNegative(t *testing.T) {
	// fastest_wins weights a default-signal cyclic pair at 0.41 - 0.2 each;
	// force negative with an importance-heavy profile and minimal signals.
	tasks := []Task{
		{ID: "a", Importance: 1, EstimatedHours: 10, Dependencies: []string{"b"}},
		{ID: "b", Importance: 1, EstimatedHours: 10, Dependencies: []string{"a"}},
	}
	out := ScoreAndOrderAt(tasks, "high_impact", testNow)
	// 0.3*0.2 + 0.1*0.6 + 0.2*0.1 + 0.3*0.1 = 0.17; penalized to -0.03.
	for _, st := range out {
		if st.Score != -0.03 {
			t.Errorf("task %s: expected -0.03, got %v", st.ID, st.Score)
		}
	}
}

func TestScoreAndOrder_UntrackedTasksKeptBeforeCyclic(t *testing.T) {
	tasks := []Task{
		{ID: "X", Dependencies: []string{"Y"}},
		{ID: "Y", Dependencies: []string{"X"}},
		{Title: "untracked", Importance: 10},
		{ID: "Z"},
	}
	out := ScoreAndOrderAt(tasks, "smart_balance", testNow)
	if len(out) != len(tasks) {
		t.Fatalf("cardinality must be preserved: expected %d, got %d", len(tasks), len(out))
	}
	if out[0].ID != "Z" {
		t.Errorf("orderable task first, got %s", out[0].ID)
	}
	if out[1].Title != "untracked" {
		t.Errorf("untracked task should land after orderables and before cyclic, got %q", out[1].Title)
	}
	if !isCyclicPair(out[2].ID, out[3].ID) {
		t.Errorf("cyclic tasks must come last, got [%s %s]", out[2].ID, out[3].ID)
	}
}

func isCyclicPair(a, b string) bool {
	return (a == "X" && b == "Y") || (a == "Y" && b == "X")
}

func TestScoreAndOrder_Idempotent(t *testing.T) {
	tasks := []Task{
		{ID: "1", DueDate: "2026-03-12", Importance: 7, EstimatedHours: 4},
		{ID: "2", Importance: 3, Dependencies: []string{"1"}},
		{ID: "3", DueDate: "2026-02-01", EstimatedHours: 0.5},
		{ID: "4", Dependencies: []string{"5"}},
		{ID: "5", Dependencies: []string{"4"}},
	}
	first := ScoreAndOrderAt(tasks, "deadline_driven", testNow)
	second := ScoreAndOrderAt(tasks, "deadline_driven", testNow)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("same input and clock must yield identical output")
	}
}

func TestScoreAndOrder_BalancedFallbackExplanation(t *testing.T) {
	// Every signal in its neutral band: no threshold fires.
	out := ScoreAndOrderAt([]Task{{ID: "1", Importance: 5, EstimatedHours: 5}}, "smart_balance", testNow)
	if out[0].Explanation != balancedExplanation {
		t.Errorf("expected fallback explanation, got %q", out[0].Explanation)
	}
}

func TestEngine_UsesInjectedClock(t *testing.T) {
	e := NewEngineAt(fixedClock)
	out := e.ScoreAndOrder([]Task{{ID: "1", DueDate: "2026-03-10"}}, "deadline_driven")
	// Due today under deadline_driven: 0.9*0.6 + 0.5*0.2 + 0.5*0.1 + 0 = 0.69.
	if out[0].Score != 0.69 {
		t.Errorf("expected 0.69, got %v", out[0].Score)
	}
}

func TestScoreAndOrder_EmptyBatch(t *testing.T) {
	if out := ScoreAndOrderAt(nil, "smart_balance", testNow); len(out) != 0 {
		t.Errorf("empty input should yield empty output, got %d", len(out))
	}
}

func TestScoreAndOrder_LeftoverChainFollowsTopology(t *testing.T) {
	// Chain 3 -> 2 -> 1 where the tail scores highest: topology still wins.
	tasks := []Task{
		{ID: "1", DueDate: "2026-03-10", Importance: 10, EstimatedHours: 0.5, Dependencies: []string{"2"}},
		{ID: "2", Importance: 5, Dependencies: []string{"3"}},
		{ID: "3", Importance: 1, EstimatedHours: 10},
	}
	out := ScoreAndOrderAt(tasks, "smart_balance", testNow)
	if out[0].ID != "3" || out[1].ID != "2" || out[2].ID != "1" {
		t.Errorf("expected chain order [3 2 1], got [%s %s %s]", out[0].ID, out[1].ID, out[2].ID)
	}
}

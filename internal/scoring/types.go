package scoring

// Task is a single unit of work submitted for prioritization.
//
// DueDate, EstimatedHours and Importance are deliberately loose: the wire
// payload is client-controlled JSON, so the normalizers accept whatever
// arrives and fall back to neutral values for anything unusable. An empty
// ID means the task is untracked: it is still scored, but it cannot take
// part in graph lookups or graph-driven ordering.
type Task struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	DueDate        any      `json:"due_date"`        // time.Time, *time.Time or "YYYY-MM-DD"
	EstimatedHours any      `json:"estimated_hours"` // number or numeric string
	Importance     any      `json:"importance"`      // 1-10, clamped
	Dependencies   []string `json:"dependencies"`
}

// ScoredTask is the engine output: the original task plus its composite
// score (rounded to 3 decimals) and a human-readable explanation.
type ScoredTask struct {
	Task
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

package scoring

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

const dueDateLayout = "2006-01-02"

// ParseDueDate extracts a calendar date from a raw due-date value.
// Accepted forms: time.Time / *time.Time (truncated to the date) and
// strings in YYYY-MM-DD form. Anything else counts as "no due date".
func ParseDueDate(value any) (time.Time, bool) {
	switch v := value.(type) {
	case time.Time:
		if v.IsZero() {
			return time.Time{}, false
		}
		return dateOnly(v), true
	case *time.Time:
		if v == nil || v.IsZero() {
			return time.Time{}, false
		}
		return dateOnly(*v), true
	case string:
		if v == "" {
			return time.Time{}, false
		}
		d, err := time.Parse(dueDateLayout, v)
		if err != nil {
			return time.Time{}, false
		}
		return d, true
	default:
		return time.Time{}, false
	}
}

// UrgencyScore maps due-date proximity to a score level. now is
// caller-supplied so the function stays pure and testable.
func UrgencyScore(dueDate any, now time.Time) float64 {
	due, ok := ParseDueDate(dueDate)
	if !ok {
		return 0.3 // neutral if no date
	}

	days := int(due.Sub(dateOnly(now)).Hours() / 24)
	switch {
	case days < 0:
		return 1.0 // overdue
	case days == 0:
		return 0.9 // due today
	case days <= 3:
		return 0.8
	case days <= 7:
		return 0.6
	case days <= 14:
		return 0.4
	default:
		return 0.2 // far in future
	}
}

// EffortScore maps estimated hours to a score level. Lower effort means
// a higher score, so quick wins float up.
func EffortScore(estimatedHours any) float64 {
	h, ok := toFloat(estimatedHours)
	if !ok || h <= 0 {
		return 0.5 // neutral if unknown
	}
	switch {
	case h <= 1:
		return 1.0
	case h <= 3:
		return 0.7
	case h <= 6:
		return 0.4
	default:
		return 0.2 // big task
	}
}

// ImportanceScore normalizes a 1-10 importance rating to 0-1.
// Unusable values default to mid-importance 5 before clamping.
func ImportanceScore(importance any) float64 {
	imp, ok := toInt(importance)
	if !ok {
		imp = 5
	}
	if imp < 1 {
		imp = 1
	}
	if imp > 10 {
		imp = 10
	}
	return float64(imp) / 10.0
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func toFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// toInt truncates fractional numbers but rejects fractional strings,
// mirroring how lenient integer coercion usually behaves upstream.
func toInt(value any) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case uint:
		return int(v), true
	case float64:
		return int(v), true
	case float32:
		return int(v), true
	case json.Number:
		i, err := v.Int64()
		return int(i), err == nil
	case string:
		i, err := strconv.Atoi(strings.TrimSpace(v))
		return i, err == nil
	default:
		return 0, false
	}
}

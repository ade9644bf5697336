package task

import (
	"encoding/json"
	"strconv"
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"taskpilot/internal/scoring"
)

// Task is a persisted unit of work. Dependencies holds a JSON array of
// task IDs within the same owner's set; references to deleted or foreign
// tasks are tolerated and simply ignored by the engine.
type Task struct {
	ID             uint           `json:"id" gorm:"primaryKey"`
	UserID         uint           `json:"user_id" gorm:"index"`
	Title          string         `json:"title" gorm:"size:255;not null"`
	DueDate        *time.Time     `json:"due_date" gorm:"type:date"`
	EstimatedHours *float64       `json:"estimated_hours"`
	Importance     int            `json:"importance" gorm:"default:5"`
	Dependencies   datatypes.JSON `json:"dependencies" gorm:"not null;default:'[]'"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`
	DeletedAt      gorm.DeletedAt `json:"-" gorm:"index"`
}

// DependencyIDs decodes the JSON dependency column. Malformed content
// yields an empty list rather than an error; the engine treats unknown
// references leniently anyway.
func (t *Task) DependencyIDs() []uint {
	if len(t.Dependencies) == 0 {
		return nil
	}
	var raw []any
	if err := json.Unmarshal(t.Dependencies, &raw); err != nil {
		return nil
	}
	ids := make([]uint, 0, len(raw))
	for _, v := range raw {
		switch n := v.(type) {
		case float64:
			if n >= 0 {
				ids = append(ids, uint(n))
			}
		case string:
			if parsed, err := strconv.ParseUint(n, 10, 64); err == nil {
				ids = append(ids, uint(parsed))
			}
		}
	}
	return ids
}

// Record converts the stored row into an engine input record.
func (t *Task) Record() scoring.Task {
	rec := scoring.Task{
		ID:    strconv.FormatUint(uint64(t.ID), 10),
		Title: t.Title,
	}
	if t.DueDate != nil {
		rec.DueDate = *t.DueDate
	}
	if t.EstimatedHours != nil {
		rec.EstimatedHours = *t.EstimatedHours
	}
	rec.Importance = t.Importance
	for _, dep := range t.DependencyIDs() {
		rec.Dependencies = append(rec.Dependencies, strconv.FormatUint(uint64(dep), 10))
	}
	return rec
}

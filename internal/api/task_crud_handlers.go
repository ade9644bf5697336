package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/datatypes"

	"taskpilot/internal/config"
	"taskpilot/internal/db"
	"taskpilot/internal/scoring"
	"taskpilot/internal/task"
)

type TaskRequest struct {
	Title          string   `json:"title"`
	DueDate        string   `json:"due_date,omitempty"`
	EstimatedHours *float64 `json:"estimated_hours,omitempty"`
	Importance     *int     `json:"importance,omitempty"`
	Dependencies   []uint   `json:"dependencies,omitempty"`
}

// POST /tasks
func CreateTaskHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, _ := c.Get("userId")
		var req TaskRequest
		if err := c.ShouldBindJSON(&req); err != nil || req.Title == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Missing title"}})
			return
		}
		due, ok := parseDueDateField(req.DueDate)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "due_date must be YYYY-MM-DD"}})
			return
		}
		importance := 5
		if req.Importance != nil {
			importance = *req.Importance
		}
		t := task.Task{
			UserID:         userId.(uint),
			Title:          req.Title,
			DueDate:        due,
			EstimatedHours: req.EstimatedHours,
			Importance:     importance,
			Dependencies:   dependenciesColumn(req.Dependencies),
		}
		if err := db.DB.Create(&t).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Create error"}})
			return
		}
		c.JSON(http.StatusCreated, t)
	}
}

// GET /tasks
func ListTasksHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, _ := c.Get("userId")
		var tasks []task.Task
		if err := db.DB.Where("user_id = ?", userId.(uint)).Order("id").Find(&tasks).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "List error"}})
			return
		}
		c.JSON(http.StatusOK, tasks)
	}
}

// GET /tasks/:id
func GetTaskHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, _ := c.Get("userId")
		var t task.Task
		if err := db.DB.Where("user_id = ?", userId.(uint)).First(&t, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "Task not found"}})
			return
		}
		c.JSON(http.StatusOK, t)
	}
}

// PUT /tasks/:id
func UpdateTaskHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, _ := c.Get("userId")
		var req TaskRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
			return
		}
		var t task.Task
		if err := db.DB.Where("user_id = ?", userId.(uint)).First(&t, c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "Task not found"}})
			return
		}
		if req.Title != "" {
			t.Title = req.Title
		}
		if req.DueDate != "" {
			due, ok := parseDueDateField(req.DueDate)
			if !ok {
				c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "due_date must be YYYY-MM-DD"}})
				return
			}
			t.DueDate = due
		}
		if req.EstimatedHours != nil {
			t.EstimatedHours = req.EstimatedHours
		}
		if req.Importance != nil {
			t.Importance = *req.Importance
		}
		if req.Dependencies != nil {
			t.Dependencies = dependenciesColumn(req.Dependencies)
		}
		if err := db.DB.Save(&t).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Update error"}})
			return
		}
		c.JSON(http.StatusOK, t)
	}
}

// DELETE /tasks/:id
func DeleteTaskHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, _ := c.Get("userId")
		res := db.DB.Where("user_id = ?", userId.(uint)).Delete(&task.Task{}, c.Param("id"))
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "Delete error"}})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": gin.H{"message": "Task not found"}})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Task deleted"})
	}
}

type PrioritizedTask struct {
	task.Task
	Score       float64 `json:"score"`
	Explanation string  `json:"explanation"`
}

// POST /tasks/prioritize?strategy=...
// Runs the scoring engine over the caller's stored tasks. Nothing is
// persisted; the recommended order is computed fresh per request.
func PrioritizeTasksHandler(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, _ := c.Get("userId")
		strategy := c.Query("strategy")
		if strategy == "" {
			strategy = cfg.Engine.DefaultStrategy
		}
		var tasks []task.Task
		if err := db.DB.Where("user_id = ?", userId.(uint)).Order("id").Find(&tasks).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": gin.H{"message": "List error"}})
			return
		}

		byID := make(map[string]task.Task, len(tasks))
		records := make([]scoring.Task, 0, len(tasks))
		for _, t := range tasks {
			rec := t.Record()
			byID[rec.ID] = t
			records = append(records, rec)
		}

		scored := scoring.ScoreAndOrderAt(records, strategy, time.Now())
		out := make([]PrioritizedTask, 0, len(scored))
		for _, st := range scored {
			out = append(out, PrioritizedTask{
				Task:        byID[st.ID],
				Score:       st.Score,
				Explanation: st.Explanation,
			})
		}
		c.JSON(http.StatusOK, gin.H{"strategy": strategy, "tasks": out})
	}
}

func parseDueDateField(value string) (*time.Time, bool) {
	if value == "" {
		return nil, true
	}
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, false
	}
	return &d, true
}

func dependenciesColumn(ids []uint) datatypes.JSON {
	if ids == nil {
		ids = []uint{}
	}
	raw, _ := json.Marshal(ids)
	return datatypes.JSON(raw)
}

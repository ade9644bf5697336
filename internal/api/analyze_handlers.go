package api

import (
	"encoding/json"
	"math"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"taskpilot/internal/config"
	"taskpilot/internal/scoring"
)

type analyzeRequest struct {
	Strategy string          `json:"strategy"`
	Tasks    json.RawMessage `json:"tasks"`
}

// POST /tasks/analyze
// Scores and orders an ad-hoc batch. Tasks without an id get a 1-based
// positional one before the engine runs.
func AnalyzeTasksHandler(cfg *config.Config, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		respondScored(c, cfg, rdb, 0)
	}
}

// POST /tasks/suggest
// Same pipeline as analyze, truncated to the configured top-N.
func SuggestTasksHandler(cfg *config.Config, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit := cfg.Engine.SuggestLimit
		if limit <= 0 {
			limit = 3
		}
		respondScored(c, cfg, rdb, limit)
	}
}

func respondScored(c *gin.Context, cfg *config.Config, rdb *redis.Client, limit int) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "Invalid request"}})
		return
	}
	strategy := req.Strategy
	if strategy == "" {
		strategy = cfg.Engine.DefaultStrategy
	}
	items, ok := decodeTaskList(req.Tasks)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": gin.H{"message": "tasks must be a list"}})
		return
	}

	now := time.Now()
	var tasksOut []map[string]any
	cacheKey := ""
	if cfg.Engine.CacheEnabled && rdb != nil {
		cacheKey = analysisCacheKey(strategy, req.Tasks, now)
		tasksOut = lookupAnalysis(rdb, cacheKey)
	}
	if tasksOut == nil {
		records, originals := normalizeBatch(items)
		scored := scoring.ScoreAndOrderAt(records, strategy, now)
		tasksOut = scoredPayload(scored, originals)
		if cacheKey != "" {
			storeAnalysis(rdb, cacheKey, tasksOut, time.Duration(cfg.Engine.CacheTTLMinutes)*time.Minute)
		}
	}
	if limit > 0 && len(tasksOut) > limit {
		tasksOut = tasksOut[:limit]
	}

	c.JSON(http.StatusOK, gin.H{
		"analysis_id": uuid.New().String(),
		"strategy":    strategy,
		"tasks":       tasksOut,
	})
}

// decodeTaskList accepts a missing/null tasks field as an empty batch but
// rejects anything that is not a JSON array of objects.
func decodeTaskList(raw json.RawMessage) ([]map[string]any, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return []map[string]any{}, true
	}
	var items []map[string]any
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, false
	}
	return items, true
}

// normalizeBatch converts loose JSON objects into engine records, assigning
// positional fallback ids, and keeps the original objects around so the
// response can echo every client-supplied field untouched. Entries sharing a
// canonical id keep their own score slots in the output, but the echoed
// fields come from the last such entry (best effort; duplicate ids are a
// malformed batch).
func normalizeBatch(items []map[string]any) ([]scoring.Task, map[string]map[string]any) {
	records := make([]scoring.Task, 0, len(items))
	originals := make(map[string]map[string]any, len(items))

	for i, item := range items {
		entry := make(map[string]any, len(item)+3)
		for k, v := range item {
			entry[k] = v
		}
		id, ok := canonicalID(item["id"])
		if !ok {
			id = strconv.Itoa(i + 1)
			entry["id"] = i + 1
		}
		originals[id] = entry

		rec := scoring.Task{
			ID:             id,
			DueDate:        entry["due_date"],
			EstimatedHours: entry["estimated_hours"],
			Importance:     entry["importance"],
			Dependencies:   canonicalIDList(entry["dependencies"]),
		}
		if title, ok := entry["title"].(string); ok {
			rec.Title = title
		}
		records = append(records, rec)
	}
	return records, originals
}

func scoredPayload(scored []scoring.ScoredTask, originals map[string]map[string]any) []map[string]any {
	out := make([]map[string]any, 0, len(scored))
	for _, st := range scored {
		base := originals[st.ID]
		item := make(map[string]any, len(base)+2)
		for k, v := range base {
			item[k] = v
		}
		item["score"] = st.Score
		item["explanation"] = st.Explanation
		out = append(out, item)
	}
	return out
}

// canonicalID renders JSON numbers and strings to one canonical form so a
// numeric id and its string spelling refer to the same task.
func canonicalID(v any) (string, bool) {
	switch id := v.(type) {
	case string:
		if id == "" {
			return "", false
		}
		return id, true
	case float64:
		if id == math.Trunc(id) {
			return strconv.FormatInt(int64(id), 10), true
		}
		return strconv.FormatFloat(id, 'f', -1, 64), true
	case json.Number:
		return id.String(), true
	default:
		return "", false
	}
}

func canonicalIDList(v any) []string {
	raw, ok := v.([]any)
	if !ok {
		return nil
	}
	ids := make([]string, 0, len(raw))
	for _, item := range raw {
		if id, ok := canonicalID(item); ok {
			ids = append(ids, id)
		}
	}
	return ids
}

package api

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

const analysisCacheKeyFmt = "taskpilot:analysis:%s"

// analysisCacheKey fingerprints one analysis request. The engine is a pure
// function of (tasks, strategy, now); urgency only changes with the calendar
// date, so the key includes the date and entries stay valid within a day.
func analysisCacheKey(strategy string, tasks json.RawMessage, now time.Time) string {
	h := sha256.New()
	h.Write([]byte(strategy))
	h.Write([]byte{'\n'})
	h.Write([]byte(now.Format("2006-01-02")))
	h.Write([]byte{'\n'})
	h.Write(tasks)
	return fmt.Sprintf(analysisCacheKeyFmt, hex.EncodeToString(h.Sum(nil)))
}

// lookupAnalysis returns the cached scored batch, or nil on miss or any
// redis/decode failure. The cache is an optimization only.
func lookupAnalysis(rdb *redis.Client, key string) []map[string]any {
	raw, err := rdb.Get(context.Background(), key).Bytes()
	if err != nil {
		return nil
	}
	var tasks []map[string]any
	if err := json.Unmarshal(raw, &tasks); err != nil {
		return nil
	}
	return tasks
}

func storeAnalysis(rdb *redis.Client, key string, tasks []map[string]any, ttl time.Duration) {
	raw, err := json.Marshal(tasks)
	if err != nil {
		return
	}
	if err := rdb.Set(context.Background(), key, raw, ttl).Err(); err != nil {
		log.Printf("[API] analysis cache write failed: %v", err)
	}
}

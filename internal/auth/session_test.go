package auth

import (
	"os"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

// Requires a reachable redis; skipped unless TEST_REDIS_ADDR is set.
func TestSessionSetGetDelete(t *testing.T) {
	addr := os.Getenv("TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("set TEST_REDIS_ADDR to run redis session tests")
	}
	rdb := redis.NewClient(&redis.Options{Addr: addr, DB: 15})

	userId := uint(12345)
	token := "session_test_token"

	if err := SetSession(rdb, userId, token, 2*time.Second); err != nil {
		t.Fatalf("SetSession failed: %v", err)
	}
	gotToken, err := GetSession(rdb, userId)
	if err != nil {
		t.Fatalf("GetSession failed: %v", err)
	}
	if gotToken != token {
		t.Errorf("expected token %q, got %q", token, gotToken)
	}
	if err := DeleteSession(rdb, userId); err != nil {
		t.Fatalf("DeleteSession failed: %v", err)
	}
	if _, err := GetSession(rdb, userId); err == nil {
		t.Errorf("expected error for deleted session, got nil")
	}
}

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
)

type EngineConfig struct {
	DefaultStrategy string `json:"default_strategy"`
	SuggestLimit    int    `json:"suggest_limit"`
	CacheEnabled    bool   `json:"cache_enabled"`
	CacheTTLMinutes int    `json:"cache_ttl_minutes"`
}

type Config struct {
	Server struct {
		Host      string `json:"host"`
		Port      int    `json:"port"`
		Subpath   string `json:"subpath"`
		JWTSecret string `json:"jwtSecret"`
	} `json:"server"`
	Postgres struct {
		DSN string `json:"dsn"`
	} `json:"postgres"`
	SQLite struct {
		Path string `json:"path"`
	} `json:"sqlite"`
	Redis struct {
		Addr     string `json:"addr"`
		Password string `json:"password"`
		DB       int    `json:"db"`
	} `json:"redis"`
	Engine EngineConfig `json:"engine"`
}

var (
	once   sync.Once
	cfg    *Config
	cfgErr error
)

// LoadConfig reads config.json from disk (singleton)
func LoadConfig(path string) (*Config, error) {
	once.Do(func() {
		raw, err := os.ReadFile(path)
		if err != nil {
			cfgErr = fmt.Errorf("failed to read config file: %w", err)
			return
		}
		var c Config
		if err := json.Unmarshal(raw, &c); err != nil {
			cfgErr = fmt.Errorf("invalid config format: %w", err)
			return
		}
		// Minimal validation
		if c.Server.JWTSecret == "" {
			cfgErr = errors.New("jwtSecret must be set in config")
			return
		}
		applyEngineDefaults(&c.Engine)
		cfg = &c
	})
	return cfg, cfgErr
}

func applyEngineDefaults(e *EngineConfig) {
	if e.DefaultStrategy == "" {
		e.DefaultStrategy = "smart_balance"
	}
	if e.SuggestLimit <= 0 {
		e.SuggestLimit = 3
	}
	if e.CacheTTLMinutes <= 0 {
		e.CacheTTLMinutes = 10
	}
}

// GetConfig returns the loaded config (must call LoadConfig first)
func GetConfig() *Config {
	return cfg
}

// ResetConfigForTest resets the singleton state (for testing only)
func ResetConfigForTest() {
	once = sync.Once{}
	cfg = nil
	cfgErr = nil
}

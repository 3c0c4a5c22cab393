package config

import (
	"os"
	"testing"
	"time"
)

// BenchmarkConfig_Validate benchmarks configuration validation
func BenchmarkConfig_Validate(b *testing.B) {
	cfg := &Config{
		LogLevel:          "info",
		HTTPPort:          "8080",
		ChainName:         "ethereum",
		RequestTimeout:    30 * time.Second,
		WatchPollInterval: 30 * time.Second,
		WatchPageLimit:    50,
		BreakerThreshold:  5,
		BreakerCooldown:   2 * time.Minute,
		CacheMaxEntries:   10000,
		StorageMode:       "console",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = cfg.Validate()
	}
}

// BenchmarkConfig_LoadFromEnv benchmarks environment variable loading
func BenchmarkConfig_LoadFromEnv(b *testing.B) {
	// Set test environment variables
	os.Setenv("OPENSEA_CHAIN", "ethereum")
	os.Setenv("OPENSEA_REQUEST_TIMEOUT", "10s")
	os.Setenv("WATCH_PAGE_LIMIT", "25")
	defer func() {
		os.Unsetenv("OPENSEA_CHAIN")
		os.Unsetenv("OPENSEA_REQUEST_TIMEOUT")
		os.Unsetenv("WATCH_PAGE_LIMIT")
	}()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = LoadFromEnv()
	}
}

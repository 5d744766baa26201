package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		AnalyzeLimit:  2,
		AnalyzeWindow: time.Hour,
		DefaultLimit:  5,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"10.0.0.1": true},
	}
}

func TestAnalyzeBudgetExhausts(t *testing.T) {
	l := NewLimiter(testConfig())

	for i := 0; i < 2; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/analyze", "POST")
		assert.True(t, allowed, "request %d should pass", i)
	}
	allowed, info := l.Allow("1.2.3.4", "/analyze", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 2, info.Limit)
	assert.Positive(t, info.RetryAfter)
}

func TestClientsAreIndependent(t *testing.T) {
	l := NewLimiter(testConfig())

	for i := 0; i < 2; i++ {
		l.Allow("1.2.3.4", "/analyze", "POST")
	}
	allowed, _ := l.Allow("5.6.7.8", "/analyze", "POST")
	assert.True(t, allowed)
}

func TestHealthAndWhitelistBypass(t *testing.T) {
	l := NewLimiter(testConfig())

	for i := 0; i < 20; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/health", "GET")
		assert.True(t, allowed)
	}
	for i := 0; i < 20; i++ {
		allowed, _ := l.Allow("10.0.0.1", "/analyze", "POST")
		assert.True(t, allowed)
	}
}

func TestDisabledLimiter(t *testing.T) {
	l := NewLimiter(nil)
	for i := 0; i < 50; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/analyze", "POST")
		assert.True(t, allowed)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "")
	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 10, cfg.AnalyzeLimit)
	assert.Equal(t, time.Hour, cfg.AnalyzeWindow)

	t.Setenv("RATE_LIMIT_ENABLED", "false")
	assert.False(t, LoadConfig().Enabled)

	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_ANALYZE_LIMIT", "3")
	t.Setenv("RATE_LIMIT_WHITELIST", "10.0.0.1, 10.0.0.2")
	cfg = LoadConfig()
	assert.Equal(t, 3, cfg.AnalyzeLimit)
	assert.True(t, cfg.Whitelist["10.0.0.2"])
}

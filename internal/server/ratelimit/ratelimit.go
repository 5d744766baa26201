// Package ratelimit provides per-client request limiting using token buckets.
package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"sync"
	"time"
)

// bucket is a token bucket refilled at a steady rate.
type bucket struct {
	capacity   int
	refillRate float64 // tokens per second
	tokens     float64
	lastRefill time.Time
	mu         sync.Mutex
}

func newBucket(capacity int, window time.Duration) *bucket {
	return &bucket{
		capacity:   capacity,
		refillRate: float64(capacity) / window.Seconds(),
		tokens:     float64(capacity),
		lastRefill: time.Now(),
	}
}

func (b *bucket) allow() (bool, int, time.Time) {
	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now()
	b.tokens += now.Sub(b.lastRefill).Seconds() * b.refillRate
	if b.tokens > float64(b.capacity) {
		b.tokens = float64(b.capacity)
	}
	b.lastRefill = now

	allowed := b.tokens >= 1.0
	if allowed {
		b.tokens -= 1.0
	}

	reset := now
	if b.tokens < float64(b.capacity) {
		secondsUntilFull := (float64(b.capacity) - b.tokens) / b.refillRate
		reset = now.Add(time.Duration(secondsUntilFull * float64(time.Second)))
	}
	return allowed, int(b.tokens), reset
}

// Info reports rate limit state for response headers.
type Info struct {
	Limit      int
	Remaining  int
	ResetTime  time.Time
	RetryAfter time.Duration
}

// Config holds limiter settings. Analyze requests get their own, stricter
// budget because each one may fan out to a crawl and an external model call.
type Config struct {
	Enabled       bool
	AnalyzeLimit  int
	AnalyzeWindow time.Duration
	DefaultLimit  int
	DefaultWindow time.Duration
	Whitelist     map[string]bool
}

// LoadConfig reads limiter settings from the environment.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{Enabled: false}
	}
	return &Config{
		Enabled:       true,
		AnalyzeLimit:  getEnvInt("RATE_LIMIT_ANALYZE_LIMIT", 10),
		AnalyzeWindow: getEnvDuration("RATE_LIMIT_ANALYZE_WINDOW", time.Hour),
		DefaultLimit:  getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 300),
		DefaultWindow: getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		Whitelist:     parseIPList(os.Getenv("RATE_LIMIT_WHITELIST")),
	}
}

// Limiter tracks one token bucket per (client, tier) pair.
type Limiter struct {
	config  *Config
	buckets map[string]*bucket
	mu      sync.Mutex
}

// NewLimiter creates a limiter; a nil config disables limiting.
func NewLimiter(config *Config) *Limiter {
	if config == nil {
		config = &Config{Enabled: false}
	}
	return &Limiter{
		config:  config,
		buckets: make(map[string]*bucket),
	}
}

// Allow reports whether the client may issue one more request on path.
// Health checks and whitelisted clients are never limited.
func (l *Limiter) Allow(clientID, path, method string) (bool, Info) {
	if !l.config.Enabled || path == "/health" || l.config.Whitelist[clientID] {
		return true, Info{}
	}

	limit, window := l.config.DefaultLimit, l.config.DefaultWindow
	if method == "POST" && path == "/analyze" {
		limit, window = l.config.AnalyzeLimit, l.config.AnalyzeWindow
	}

	key := clientID + "|" + strconv.Itoa(limit)
	l.mu.Lock()
	b, ok := l.buckets[key]
	if !ok {
		b = newBucket(limit, window)
		l.buckets[key] = b
	}
	l.mu.Unlock()

	allowed, remaining, reset := b.allow()
	info := Info{Limit: limit, Remaining: remaining, ResetTime: reset}
	if !allowed {
		info.RetryAfter = time.Duration(window.Seconds() / float64(limit) * float64(time.Second))
	}
	return allowed, info
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

func parseIPList(raw string) map[string]bool {
	out := make(map[string]bool)
	for _, ip := range strings.Split(raw, ",") {
		if ip = strings.TrimSpace(ip); ip != "" {
			out[ip] = true
		}
	}
	return out
}

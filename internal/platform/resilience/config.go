package resilience

import "time"

// CircuitBreakerConfig tunes the breaker guarding the football provider.
// HalfOpenMaxReq probes are let through after OpenTimeout.
type CircuitBreakerConfig struct {
	Enabled          bool
	FailureThreshold int
	OpenTimeout      time.Duration
	HalfOpenMaxReq   int
}

// DefaultCircuitBreakerConfig trips after a short run of failures and stays
// open long enough for a per-minute provider quota to reset.
func DefaultCircuitBreakerConfig() CircuitBreakerConfig {
	return CircuitBreakerConfig{
		Enabled:          true,
		FailureThreshold: 5,
		OpenTimeout:      30 * time.Second,
		HalfOpenMaxReq:   1,
	}
}

// NormalizeCircuitBreakerConfig fills non-positive limits from the defaults.
// Enabled is left as given.
func NormalizeCircuitBreakerConfig(cfg CircuitBreakerConfig) CircuitBreakerConfig {
	def := DefaultCircuitBreakerConfig()
	cfg.FailureThreshold = positiveOr(cfg.FailureThreshold, def.FailureThreshold)
	cfg.HalfOpenMaxReq = positiveOr(cfg.HalfOpenMaxReq, def.HalfOpenMaxReq)
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = def.OpenTimeout
	}
	return cfg
}

func positiveOr(v, fallback int) int {
	if v < 1 {
		return fallback
	}
	return v
}

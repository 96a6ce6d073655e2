package registry

import (
	"time"

	"github.com/c360studio/semstreams/pkg/retry"
)

// RetryConfig holds retry configuration for idempotent registry requests.
type RetryConfig struct {
	// MaxAttempts is the total number of attempts. One means no retry.
	MaxAttempts int `yaml:"max_attempts" env:"MAX_ATTEMPTS"`

	// BackoffBase is the initial backoff duration.
	BackoffBase time.Duration `yaml:"backoff_base" env:"BACKOFF_BASE"`

	// BackoffMultiplier is applied to backoff on each retry.
	BackoffMultiplier float64 `yaml:"backoff_multiplier" env:"BACKOFF_MULTIPLIER"`

	// MaxBackoff caps the backoff duration.
	MaxBackoff time.Duration `yaml:"max_backoff" env:"MAX_BACKOFF"`
}

// DefaultRetryConfig makes a single attempt, matching a registry that is
// expected to be reachable for the whole run.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:       1,
		BackoffBase:       500 * time.Millisecond,
		BackoffMultiplier: 2.0,
		MaxBackoff:        10 * time.Second,
	}
}

func (c RetryConfig) toRetry() retry.Config {
	return retry.Config{
		MaxAttempts:  c.MaxAttempts,
		InitialDelay: c.BackoffBase,
		MaxDelay:     c.MaxBackoff,
		Multiplier:   c.BackoffMultiplier,
		AddJitter:    true,
	}
}

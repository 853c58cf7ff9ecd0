// File: internal/services/chat/config.go
package chat

import (
	"fmt"
	"time"
)

type Config struct {
	// Pacing between content emissions. Each streamed token waits a
	// uniform random delay in [MinTokenDelay, MaxTokenDelay] so the
	// client has observable, non-instant increments to display.
	MinTokenDelay time.Duration
	MaxTokenDelay time.Duration

	// Upper bound on one streaming session. The canned responses finish
	// in a few seconds; this caps a stalled connection.
	StreamTimeout time.Duration
}

func (c *Config) Validate() error {
	if c.MinTokenDelay < 0 {
		return fmt.Errorf("min_token_delay cannot be negative")
	}
	if c.MaxTokenDelay < c.MinTokenDelay {
		return fmt.Errorf("max_token_delay must be >= min_token_delay")
	}
	if c.StreamTimeout <= 0 {
		return fmt.Errorf("stream_timeout must be positive")
	}
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		MinTokenDelay: 50 * time.Millisecond,
		MaxTokenDelay: 150 * time.Millisecond,
		StreamTimeout: 60 * time.Second,
	}
}

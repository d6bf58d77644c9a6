package config

import (
	"errors"
	"fmt"
)

var (
	// ErrBadTimeLimit indicates a zero or negative --time-limit.
	ErrBadTimeLimit = errors.New("config: time-limit must be positive")
	// ErrBadMemoryLimit indicates a zero or negative --memory-limit-mb.
	ErrBadMemoryLimit = errors.New("config: memory-limit-mb must be positive")
)

// Validate checks the numeric limits.
func (c *Config) Validate() error {
	var errs []error

	if c.TimeLimit <= 0 {
		errs = append(errs, ErrBadTimeLimit)
	}
	if c.MemoryLimitMB <= 0 {
		errs = append(errs, ErrBadMemoryLimit)
	}

	if len(errs) > 0 {
		return validationError(errs)
	}

	return nil
}

func validationError(errs []error) error {
	return fmt.Errorf("configuration errors: %w", errors.Join(errs...))
}

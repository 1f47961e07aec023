package config

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/katalvlaran/rootfind/itp"
)

// ValidationError represents a single validation failure
type ValidationError struct {
	Field   string // The config field path (e.g., "algorithm.k2")
	Value   any    // The invalid value
	Message string // Human-readable error description
}

// Error implements the error interface for ValidationError
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// ValidationErrors is a collection of validation errors
type ValidationErrors []ValidationError

// Error implements the error interface for ValidationErrors
func (e ValidationErrors) Error() string {
	if len(e) == 0 {
		return ""
	}
	if len(e) == 1 {
		return e[0].Error()
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d validation errors:\n", len(e)))
	for i, err := range e {
		sb.WriteString(fmt.Sprintf("  %d. %s\n", i+1, err.Error()))
	}
	return sb.String()
}

// ValidLogLevels returns the accepted logging.level values
func ValidLogLevels() []string {
	return []string{"DEBUG", "INFO", "WARN", "ERROR"}
}

// ValidLogFormats returns the accepted logging.format values
func ValidLogFormats() []string {
	return []string{"text", "json"}
}

// Validate checks every section and returns all failures
func (c *Config) Validate() []ValidationError {
	var errs []ValidationError
	errs = append(errs, c.validateAlgorithm()...)
	errs = append(errs, c.validateSweep()...)
	errs = append(errs, c.validateLogging()...)
	return errs
}

// validateAlgorithm defers the tuning-constant rules to itp.NewConfig
func (c *Config) validateAlgorithm() []ValidationError {
	var errs []ValidationError

	if _, err := c.ITP(); err != nil {
		field, value := "algorithm", any(nil)
		switch {
		case errors.Is(err, itp.ErrInvalidScaledK1):
			field, value = "algorithm.scaled_k1", c.Algorithm.ScaledK1
		case errors.Is(err, itp.ErrInvalidK2):
			field, value = "algorithm.k2", c.Algorithm.K2
		case errors.Is(err, itp.ErrInvalidN0):
			field, value = "algorithm.n0", c.Algorithm.N0
		}
		errs = append(errs, ValidationError{Field: field, Value: value, Message: err.Error()})
	}

	if c.Algorithm.MaxIters <= 0 {
		errs = append(errs, ValidationError{
			Field:   "algorithm.max_iters",
			Value:   c.Algorithm.MaxIters,
			Message: "must be positive",
		})
	}

	return errs
}

// validateSweep validates the SweepConfig
func (c *Config) validateSweep() []ValidationError {
	if c.Sweep.Workers < 0 {
		return []ValidationError{{
			Field:   "sweep.workers",
			Value:   c.Sweep.Workers,
			Message: "must be non-negative",
		}}
	}
	return nil
}

// validateLogging validates the LoggingConfig
func (c *Config) validateLogging() []ValidationError {
	var errs []ValidationError

	if c.Logging.Level != "" && !slices.Contains(ValidLogLevels(), strings.ToUpper(c.Logging.Level)) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Value:   c.Logging.Level,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogLevels(), ", ")),
		})
	}

	if c.Logging.Format != "" && !slices.Contains(ValidLogFormats(), strings.ToLower(c.Logging.Format)) {
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Value:   c.Logging.Format,
			Message: fmt.Sprintf("must be one of: %s", strings.Join(ValidLogFormats(), ", ")),
		})
	}

	return errs
}

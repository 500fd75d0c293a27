package confspec

import (
	"errors"
	"fmt"
)

// ConfigError reports that a raw value violated the spec. Key holds the full
// dotted key path where parsing failed and Cause the underlying reason.
type ConfigError struct {
	Key   string
	Cause error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %v", e.Key, e.Cause)
}

func (e *ConfigError) Unwrap() error { return e.Cause }

// NewConfigError wraps cause with the key path it occurred at.
func NewConfigError(key string, cause error) *ConfigError {
	return &ConfigError{Key: key, Cause: cause}
}

// AsConfigError extracts a *ConfigError from err using errors.As internally.
func AsConfigError(err error) (*ConfigError, bool) {
	var ce *ConfigError
	if errors.As(err, &ce) {
		return ce, true
	}
	return nil, false
}

// SpecError reports a malformed spec: an invalid field name, a nil parser, or
// a similar defect in the calling code. It is raised while building parsers,
// before any raw data is examined, and is never caused by input data.
type SpecError struct {
	Field  string // offending field name, when one exists
	Reason string
}

func (e *SpecError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid spec: field %q: %s", e.Field, e.Reason)
	}
	return "invalid spec: " + e.Reason
}

package domain

import (
	"errors"
	"fmt"
)

// ErrConfiguration is matched by every *ConfigError via errors.Is.
var ErrConfiguration = errors.New("invalid machine configuration")

var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrInvalidProfileName = errors.New("invalid profile name (use 1-64 of A-Z a-z 0-9 _ -)")
	ErrWrongPassphrase    = errors.New("wrong passphrase or corrupted profile")
	ErrPassphraseRequired = errors.New("profile is sealed; passphrase required")
)

// ConfigError reports a rejected machine configuration. It is returned at
// construction time only; an assembled machine never fails.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrConfiguration, e.Field, e.Reason)
}

func (e *ConfigError) Unwrap() error { return ErrConfiguration }

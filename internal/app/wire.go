package app

import (
	"fmt"
	"io"
	"os"

	"enigma/internal/services/cipher"
	"enigma/internal/services/profile"
	"enigma/internal/store"
)

// NewWire constructs the dependency graph from cfg. Logs go to logOut.
func NewWire(cfg Config, logOut io.Writer) (*App, error) {
	log, err := NewLogger(logOut, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(cfg.Home, 0o700); err != nil {
		return nil, fmt.Errorf("create home %s: %w", cfg.Home, err)
	}

	// File-based store
	profileStore := store.NewProfileFileStore(cfg.Home)

	// High-level services
	cipherSvc := cipher.New(log.With("component", "cipher"))
	profileSvc := profile.New(profileStore, log.With("component", "profile"))

	return &App{
		Cipher:   cipherSvc,
		Profiles: profileSvc,
		Log:      log,
		Config:   cfg,
	}, nil
}

package app

import (
	"log/slog"

	"enigma/internal/domain"
)

// App bundles the services commands use.
type App struct {
	Cipher   domain.CipherService
	Profiles domain.ProfileService
	Log      *slog.Logger
	Config   Config
}

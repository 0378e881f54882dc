package profile

import (
	"fmt"
	"log/slog"
	"time"

	"enigma/internal/crypto"
	"enigma/internal/domain"
)

// Service manages settings profiles using a backing store.
type Service struct {
	store domain.ProfileStore
	log   *slog.Logger
	now   func() time.Time
}

// New returns a profile service backed by the given store.
func New(s domain.ProfileStore, log *slog.Logger) *Service {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Service{store: s, log: log, now: time.Now}
}

// Save validates and stores settings under name, sealing them when a
// passphrase is given, and returns their fingerprint.
func (s *Service) Save(name string, settings domain.Settings, passphrase string) (domain.Fingerprint, error) {
	if err := settings.Validate(); err != nil {
		return "", err
	}
	p := domain.Profile{
		Name:      name,
		Settings:  settings,
		CreatedAt: s.now().UTC().Truncate(time.Second),
	}
	if err := s.store.SaveProfile(p, passphrase); err != nil {
		return "", fmt.Errorf("saving profile %q: %w", name, err)
	}
	fp := crypto.Fingerprint(settings)
	s.log.Info("profile saved",
		slog.String("name", name),
		slog.Bool("sealed", passphrase != ""),
		slog.String("fingerprint", fp.String()),
	)
	return fp, nil
}

// Load returns the named profile.
func (s *Service) Load(name, passphrase string) (domain.Profile, error) {
	p, err := s.store.LoadProfile(name, passphrase)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("loading profile %q: %w", name, err)
	}
	s.log.Debug("profile loaded", slog.String("name", name))
	return p, nil
}

// List returns stored profiles sorted by name.
func (s *Service) List() ([]domain.ProfileInfo, error) {
	return s.store.ListProfiles()
}

// Delete removes the named profile.
func (s *Service) Delete(name string) error {
	if err := s.store.DeleteProfile(name); err != nil {
		return fmt.Errorf("deleting profile %q: %w", name, err)
	}
	s.log.Info("profile deleted", slog.String("name", name))
	return nil
}

// Compile-time assertion that Service implements domain.ProfileService.
var _ domain.ProfileService = (*Service)(nil)

package store

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"enigma/internal/crypto"
	"enigma/internal/domain"
)

const (
	profilesDir  = "profiles"
	plainSuffix  = ".yaml"
	sealedSuffix = ".yaml.enc"
)

var profileName = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ProfileFileStore persists settings profiles to disk.
type ProfileFileStore struct {
	dir string
	kdf crypto.KDFParams
	mu  sync.Mutex
}

// NewProfileFileStore returns a ProfileFileStore rooted at home.
func NewProfileFileStore(home string) *ProfileFileStore {
	return &ProfileFileStore{dir: filepath.Join(home, profilesDir), kdf: crypto.DefaultKDF}
}

// WithKDF overrides the scrypt cost used for newly sealed profiles.
func (s *ProfileFileStore) WithKDF(kdf crypto.KDFParams) *ProfileFileStore {
	s.kdf = kdf
	return s
}

// SaveProfile writes p, sealing it when passphrase is non-empty. A profile of
// the same name in the other form is removed.
func (s *ProfileFileStore) SaveProfile(p domain.Profile, passphrase string) error {
	if !profileName.MatchString(p.Name) {
		return domain.ErrInvalidProfileName
	}
	if err := p.Settings.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return err
	}
	raw, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile %q: %w", p.Name, err)
	}

	path, stale := s.path(p.Name, false), s.path(p.Name, true)
	data := raw
	if passphrase != "" {
		path, stale = stale, path
		if data, err = crypto.Seal(passphrase, raw, s.kdf); err != nil {
			return fmt.Errorf("seal profile %q: %w", p.Name, err)
		}
	}
	if err := writeFile(path, data, 0o600); err != nil {
		return err
	}
	if err := os.Remove(stale); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// LoadProfile reads the named profile. Sealed profiles need the passphrase
// they were saved with.
func (s *ProfileFileStore) LoadProfile(name, passphrase string) (domain.Profile, error) {
	if !profileName.MatchString(name) {
		return domain.Profile{}, domain.ErrInvalidProfileName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var p domain.Profile
	ok, err := readYAML(s.path(name, false), &p)
	if err != nil {
		return domain.Profile{}, fmt.Errorf("decode profile %q: %w", name, err)
	}
	if !ok {
		sealed, err := readFile(s.path(name, true))
		if err != nil {
			return domain.Profile{}, err
		}
		if sealed == nil {
			return domain.Profile{}, fmt.Errorf("%w: %s", domain.ErrProfileNotFound, name)
		}
		if passphrase == "" {
			return domain.Profile{}, domain.ErrPassphraseRequired
		}
		raw, err := crypto.Open(passphrase, sealed)
		if err != nil {
			return domain.Profile{}, err
		}
		defer crypto.Wipe(raw)
		if err := yaml.Unmarshal(raw, &p); err != nil {
			return domain.Profile{}, fmt.Errorf("decode profile %q: %w", name, err)
		}
	}
	if err := p.Settings.Validate(); err != nil {
		return domain.Profile{}, fmt.Errorf("profile %q: %w", name, err)
	}
	return p, nil
}

// ListProfiles returns stored profile names in sorted order.
func (s *ProfileFileStore) ListProfiles() ([]domain.ProfileInfo, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := os.ReadDir(s.dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	out := make([]domain.ProfileInfo, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		switch {
		case strings.HasSuffix(name, sealedSuffix):
			out = append(out, domain.ProfileInfo{Name: strings.TrimSuffix(name, sealedSuffix), Sealed: true})
		case strings.HasSuffix(name, plainSuffix):
			out = append(out, domain.ProfileInfo{Name: strings.TrimSuffix(name, plainSuffix)})
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// DeleteProfile removes the named profile in either form.
func (s *ProfileFileStore) DeleteProfile(name string) error {
	if !profileName.MatchString(name) {
		return domain.ErrInvalidProfileName
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := false
	for _, sealed := range []bool{false, true} {
		err := os.Remove(s.path(name, sealed))
		switch {
		case err == nil:
			removed = true
		case !errors.Is(err, os.ErrNotExist):
			return err
		}
	}
	if !removed {
		return fmt.Errorf("%w: %s", domain.ErrProfileNotFound, name)
	}
	return nil
}

func (s *ProfileFileStore) path(name string, sealed bool) string {
	if sealed {
		return filepath.Join(s.dir, name+sealedSuffix)
	}
	return filepath.Join(s.dir, name+plainSuffix)
}

// Compile-time assertion that ProfileFileStore implements domain.ProfileStore.
var _ domain.ProfileStore = (*ProfileFileStore)(nil)

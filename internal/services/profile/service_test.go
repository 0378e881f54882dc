package profile

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enigma/internal/crypto"
	"enigma/internal/domain"
	"enigma/internal/store"
)

func newService(t *testing.T) *Service {
	t.Helper()
	ps := store.NewProfileFileStore(t.TempDir()).WithKDF(crypto.KDFParams{N: 1 << 10, R: 8, P: 1})
	svc := New(ps, nil)
	svc.now = func() time.Time { return time.Date(2026, 10, 19, 9, 30, 15, 500, time.UTC) }
	return svc
}

func TestService_SaveLoad(t *testing.T) {
	svc := newService(t)
	s := domain.DefaultSettings()
	s.Positions = [3]int{1, 2, 3}

	fp, err := svc.Save("monday", s, "pw")
	require.NoError(t, err)
	assert.Equal(t, crypto.Fingerprint(s), fp)

	p, err := svc.Load("monday", "pw")
	require.NoError(t, err)
	assert.Equal(t, s.String(), p.Settings.String())
	assert.Equal(t, time.Date(2026, 10, 19, 9, 30, 15, 0, time.UTC), p.CreatedAt)

	infos, err := svc.List()
	require.NoError(t, err)
	assert.Equal(t, []domain.ProfileInfo{{Name: "monday", Sealed: true}}, infos)
}

func TestService_SaveRejectsInvalidSettings(t *testing.T) {
	svc := newService(t)
	s := domain.DefaultSettings()
	s.Rotors[0] = "VII"

	_, err := svc.Save("bad", s, "")
	assert.True(t, errors.Is(err, domain.ErrConfiguration))
}

func TestService_LoadMissing(t *testing.T) {
	svc := newService(t)
	_, err := svc.Load("nope", "")
	assert.True(t, errors.Is(err, domain.ErrProfileNotFound))
	assert.ErrorContains(t, err, `loading profile "nope"`)
}

func TestService_Delete(t *testing.T) {
	svc := newService(t)
	_, err := svc.Save("tmp", domain.DefaultSettings(), "")
	require.NoError(t, err)
	require.NoError(t, svc.Delete("tmp"))
	assert.True(t, errors.Is(svc.Delete("tmp"), domain.ErrProfileNotFound))
}

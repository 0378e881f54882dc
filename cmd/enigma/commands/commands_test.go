package commands

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"enigma/internal/domain"
)

// run executes the CLI in-process against a temporary home.
func run(t *testing.T, home, stdin string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ENIGMA_HOME", home)
	t.Setenv("ENIGMA_LOG_LEVEL", "error")

	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestEncrypt_Args(t *testing.T) {
	out, err := run(t, t.TempDir(), "", "encrypt", "--plugs", "QW ER", "HELLOWORLD")
	require.NoError(t, err)
	assert.Equal(t, "ICBDAFMYAZ\n", out)
}

func TestEncrypt_DecryptRoundTrip(t *testing.T) {
	home := t.TempDir()
	key := []string{"--rotors", "IV,II,V", "--positions", "12,2,19", "--rings", "FLX", "--plugs", "AB CD EF"}

	ct, err := run(t, home, "", append(append([]string{"encrypt"}, key...), "--text", "Attack at dawn, 0600!")...)
	require.NoError(t, err)
	require.NotEqual(t, "Attack at dawn, 0600!\n", ct)

	pt, err := run(t, home, "", append(append([]string{"decrypt"}, key...), "--text", strings.TrimSuffix(ct, "\n"))...)
	require.NoError(t, err)
	assert.Equal(t, "Attack at dawn, 0600!\n", pt)
}

func TestEncrypt_Stdin(t *testing.T) {
	out, err := run(t, t.TempDir(), "AAAAA\n", "encrypt")
	require.NoError(t, err)
	assert.Equal(t, "BDZGO\n", out)
}

func TestEncrypt_FileToFile(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	outPath := filepath.Join(dir, "out.txt")
	require.NoError(t, os.WriteFile(in, []byte("AAAAA"), 0o600))

	_, err := run(t, dir, "", "encrypt", "--rings", "BBB", "-f", in, "-o", outPath)
	require.NoError(t, err)
	got, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, "EWTYX", string(got))
}

func TestEncrypt_RejectsBadSettings(t *testing.T) {
	cases := [][]string{
		{"encrypt", "--positions", "0,0,26", "HELLO"},
		{"encrypt", "--plugs", "AB BC", "HELLO"},
		{"encrypt", "--rotors", "I,II,VI", "HELLO"},
		{"encrypt", "--rotors", "I,II", "HELLO"},
	}
	for _, args := range cases {
		_, err := run(t, t.TempDir(), "", args...)
		assert.True(t, errors.Is(err, domain.ErrConfiguration), "%v: got %v", args, err)
	}
}

func TestProfile_SaveShowUseDelete(t *testing.T) {
	home := t.TempDir()

	out, err := run(t, home, "", "profile", "save", "daily", "--plugs", "QW ER")
	require.NoError(t, err)
	assert.Contains(t, out, "Profile daily saved.")

	out, err = run(t, home, "", "profile", "show", "daily")
	require.NoError(t, err)
	assert.Contains(t, out, "Rotors:      I II III")
	assert.Contains(t, out, "Plugs:       QW ER")

	out, err = run(t, home, "", "encrypt", "--profile", "daily", "HELLOWORLD")
	require.NoError(t, err)
	assert.Equal(t, "ICBDAFMYAZ\n", out)

	// flags override profile fields
	out, err = run(t, home, "", "encrypt", "--profile", "daily", "--rings", "1,2,3", "HELLOWORLD")
	require.NoError(t, err)
	assert.Equal(t, "AIWCEQHHBE\n", out)

	out, err = run(t, home, "", "profile", "list")
	require.NoError(t, err)
	assert.Equal(t, "daily\n", out)

	_, err = run(t, home, "", "profile", "delete", "daily")
	require.NoError(t, err)
	_, err = run(t, home, "", "encrypt", "--profile", "daily", "HELLO")
	assert.True(t, errors.Is(err, domain.ErrProfileNotFound))
}

func TestProfile_Sealed(t *testing.T) {
	home := t.TempDir()

	_, err := run(t, home, "", "profile", "save", "night", "-p", "hunter2", "--positions", "ADU")
	require.NoError(t, err)

	out, err := run(t, home, "", "profile", "list")
	require.NoError(t, err)
	assert.Equal(t, "night (sealed)\n", out)

	_, err = run(t, home, "", "profile", "show", "night")
	assert.True(t, errors.Is(err, domain.ErrPassphraseRequired))

	out, err = run(t, home, "", "profile", "show", "night", "-p", "hunter2")
	require.NoError(t, err)
	assert.Contains(t, out, "Positions:   ADU")
}

func TestFingerprint_MatchesProfile(t *testing.T) {
	home := t.TempDir()
	saved, err := run(t, home, "", "profile", "save", "k", "--rotors", "III,I,II")
	require.NoError(t, err)

	fp, err := run(t, home, "", "fingerprint", "--rotors", "III,I,II")
	require.NoError(t, err)
	assert.Contains(t, saved, strings.TrimSpace(fp))
}

func TestRotors(t *testing.T) {
	out, err := run(t, t.TempDir(), "", "rotors")
	require.NoError(t, err)
	assert.Contains(t, out, "EKMFLGDQVZNTOWYHXUSPAIBRCJ  Q")
	assert.Contains(t, out, "VZBRGITYUPSDNHLXAWMJQOFECK  Z")
}

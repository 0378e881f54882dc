package domain

import (
	"fmt"
	"strings"
	"time"
)

// AlphabetSize is the number of contacts on every rotor, the plugboard and the reflector.
const AlphabetSize = 26

// RotorCount is the number of rotors mounted in the machine.
const RotorCount = 3

// Rotor slot indices, left to right as mounted.
const (
	Left   = 0
	Middle = 1
	Right  = 2
)

// RotorID names a rotor from the historical wiring table.
type RotorID string

const (
	RotorI   RotorID = "I"
	RotorII  RotorID = "II"
	RotorIII RotorID = "III"
	RotorIV  RotorID = "IV"
	RotorV   RotorID = "V"
)

// KnownRotors lists every rotor that can be mounted, in catalogue order.
var KnownRotors = []RotorID{RotorI, RotorII, RotorIII, RotorIV, RotorV}

// DefaultRotors is the conventional I, II, III selection.
var DefaultRotors = [RotorCount]RotorID{RotorI, RotorII, RotorIII}

// Known reports whether id is in the wiring table.
func (id RotorID) Known() bool {
	for _, k := range KnownRotors {
		if k == id {
			return true
		}
	}
	return false
}

func (id RotorID) String() string { return string(id) }

// PlugPair is one plugboard cable joining two letters (upper-case ASCII).
type PlugPair struct {
	A byte
	B byte
}

func (p PlugPair) String() string { return string([]byte{p.A, p.B}) }

// MarshalText encodes the pair as two letters, e.g. "QW".
func (p PlugPair) MarshalText() ([]byte, error) {
	return []byte{p.A, p.B}, nil
}

// UnmarshalText accepts the same forms as ParsePlugs for a single pair.
func (p *PlugPair) UnmarshalText(b []byte) error {
	pair, err := parsePlugToken(string(b))
	if err != nil {
		return err
	}
	*p = pair
	return nil
}

// Settings is the full key for one machine: which rotors, where they start,
// their ring settings and the plugboard cabling.
type Settings struct {
	Rotors    [RotorCount]RotorID `yaml:"rotors" json:"rotors"`
	Positions [RotorCount]int     `yaml:"positions" json:"positions"`
	Rings     [RotorCount]int     `yaml:"rings" json:"rings"`
	Plugs     []PlugPair          `yaml:"plugs,omitempty" json:"plugs,omitempty"`
}

// DefaultSettings returns rotors I, II, III at AAA with rings AAA and no plugs.
func DefaultSettings() Settings {
	return Settings{Rotors: DefaultRotors}
}

// Validate runs every construction-time check and returns a *ConfigError on
// the first violation.
func (s Settings) Validate() error {
	for i, id := range s.Rotors {
		if !id.Known() {
			return &ConfigError{Field: slotField("rotor", i), Reason: fmt.Sprintf("unknown rotor %q", string(id))}
		}
	}
	for i, p := range s.Positions {
		if p < 0 || p >= AlphabetSize {
			return &ConfigError{Field: slotField("position", i), Reason: fmt.Sprintf("%d outside [0,25]", p)}
		}
	}
	for i, r := range s.Rings {
		if r < 0 || r >= AlphabetSize {
			return &ConfigError{Field: slotField("ring setting", i), Reason: fmt.Sprintf("%d outside [0,25]", r)}
		}
	}
	return ValidatePlugs(s.Plugs)
}

// String renders the settings canonically; the fingerprint is computed over it.
func (s Settings) String() string {
	ids := make([]string, len(s.Rotors))
	for i, id := range s.Rotors {
		ids[i] = string(id)
	}
	plugs := make([]string, len(s.Plugs))
	for i, p := range s.Plugs {
		plugs[i] = p.String()
	}
	return fmt.Sprintf("rotors=%s positions=%s rings=%s plugs=%s",
		strings.Join(ids, ","), FormatOffsets(s.Positions), FormatOffsets(s.Rings), strings.Join(plugs, " "))
}

// Fingerprint is a short hex digest of a Settings value.
type Fingerprint string

func (f Fingerprint) String() string { return string(f) }

// Profile is a named, persisted Settings value.
type Profile struct {
	Name      string    `yaml:"name" json:"name"`
	Settings  Settings  `yaml:"settings" json:"settings"`
	CreatedAt time.Time `yaml:"created_at" json:"created_at"`
}

// ProfileInfo describes a stored profile without loading it.
type ProfileInfo struct {
	Name   string
	Sealed bool
}

func slotField(what string, i int) string {
	return fmt.Sprintf("%s %d (%s)", what, i+1, slotName(i))
}

func slotName(i int) string {
	switch i {
	case Left:
		return "left"
	case Middle:
		return "middle"
	default:
		return "right"
	}
}

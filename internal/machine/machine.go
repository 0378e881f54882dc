package machine

import (
	"enigma/internal/domain"
)

// Machine is a keyed three-rotor Enigma. Its only mutable state is the
// triple of rotor positions, advanced once per letter.
type Machine struct {
	rotors    [domain.RotorCount]*Rotor // left, middle, right
	plugboard *Plugboard
	reflector *Reflector
	settings  domain.Settings
}

// New validates s and assembles a machine. All configuration errors are
// reported here as *domain.ConfigError; the returned machine never fails.
func New(s domain.Settings) (*Machine, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	m := &Machine{
		reflector: ReflectorB(),
		settings:  cloneSettings(s),
	}
	for i := range m.rotors {
		r, err := NewRotor(s.Rotors[i], s.Positions[i], s.Rings[i])
		if err != nil {
			return nil, err
		}
		m.rotors[i] = r
	}
	pb, err := NewPlugboard(s.Plugs)
	if err != nil {
		return nil, err
	}
	m.plugboard = pb
	return m, nil
}

// Process encrypts (or, with the same starting settings, decrypts) msg.
// ASCII letters are transformed and keep their case; every other byte is
// copied through unchanged and does not step the rotors.
func (m *Machine) Process(msg string) string {
	out := []byte(msg)
	for i, c := range out {
		out[i] = m.encryptByte(c)
	}
	return string(out)
}

// EncryptChar steps the rotors and encodes one character. Non-letters are
// returned unchanged without stepping.
func (m *Machine) EncryptChar(r rune) rune {
	if r < 0 || r > 'z' {
		return r
	}
	return rune(m.encryptByte(byte(r)))
}

func (m *Machine) encryptByte(c byte) byte {
	var lower bool
	switch {
	case c >= 'A' && c <= 'Z':
	case c >= 'a' && c <= 'z':
		lower = true
		c -= 'a' - 'A'
	default:
		return c
	}
	m.stepRotors()
	out := byte('A' + m.encode(int(c-'A')))
	if lower {
		out += 'a' - 'A'
	}
	return out
}

// stepRotors advances the rotors for one keypress. Notch state is sampled
// before anything moves; a middle rotor at its notch steps itself and the
// left rotor (double step).
func (m *Machine) stepRotors() {
	left, middle, right := m.rotors[domain.Left], m.rotors[domain.Middle], m.rotors[domain.Right]
	rightAtNotch := right.AtNotch()
	middleAtNotch := middle.AtNotch()
	if middleAtNotch {
		left.Step()
	}
	if rightAtNotch || middleAtNotch {
		middle.Step()
	}
	right.Step()
}

func (m *Machine) encode(c int) int {
	c = m.plugboard.Swap(c)
	for i := len(m.rotors) - 1; i >= 0; i-- {
		c = m.rotors[i].Forward(c)
	}
	c = m.reflector.Reflect(c)
	for i := 0; i < len(m.rotors); i++ {
		c = m.rotors[i].Backward(c)
	}
	return m.plugboard.Swap(c)
}

// Positions returns the current window positions, left to right.
func (m *Machine) Positions() [domain.RotorCount]int {
	var p [domain.RotorCount]int
	for i, r := range m.rotors {
		p[i] = r.Position()
	}
	return p
}

// Window renders the current positions as letters, e.g. "ADU".
func (m *Machine) Window() string { return domain.FormatOffsets(m.Positions()) }

// Reset returns the rotors to the positions the machine was built with.
func (m *Machine) Reset() {
	for i, r := range m.rotors {
		r.position = m.settings.Positions[i]
	}
}

// Settings returns the settings the machine was built with.
func (m *Machine) Settings() domain.Settings { return cloneSettings(m.settings) }

func cloneSettings(s domain.Settings) domain.Settings {
	s.Plugs = append([]domain.PlugPair(nil), s.Plugs...)
	return s
}

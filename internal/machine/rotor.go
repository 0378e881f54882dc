package machine

import (
	"fmt"

	"enigma/internal/domain"
)

const letters = domain.AlphabetSize

// Rotor is a rotating substitution. Contacts are indices 0-25 (A-Z).
type Rotor struct {
	id       domain.RotorID
	forward  [letters]int
	backward [letters]int
	notch    int
	ring     int
	position int
}

// NewRotor builds rotor id at the given window position and ring setting.
func NewRotor(id domain.RotorID, position, ring int) (*Rotor, error) {
	spec, ok := rotorTable[id]
	if !ok {
		return nil, &domain.ConfigError{Field: "rotor", Reason: fmt.Sprintf("unknown rotor %q", string(id))}
	}
	if position < 0 || position >= letters {
		return nil, &domain.ConfigError{Field: "position", Reason: fmt.Sprintf("%d outside [0,25]", position)}
	}
	if ring < 0 || ring >= letters {
		return nil, &domain.ConfigError{Field: "ring setting", Reason: fmt.Sprintf("%d outside [0,25]", ring)}
	}
	r := &Rotor{
		id:       id,
		notch:    int(spec.notch - 'A'),
		ring:     ring,
		position: position,
	}
	for in := 0; in < letters; in++ {
		out := int(spec.wiring[in] - 'A')
		r.forward[in] = out
		r.backward[out] = in
	}
	return r, nil
}

func (r *Rotor) ID() domain.RotorID { return r.id }

// Position is the letter in the window, 0-25.
func (r *Rotor) Position() int { return r.position }

// Step advances the rotor one position, wrapping Z to A.
func (r *Rotor) Step() { r.position = (r.position + 1) % letters }

// AtNotch reports whether the rotor will carry its left neighbour.
func (r *Rotor) AtNotch() bool { return r.position == r.notch }

// Forward maps a contact on the right-hand side through to the left.
func (r *Rotor) Forward(c int) int { return r.through(&r.forward, c) }

// Backward maps a contact on the left-hand side back to the right.
func (r *Rotor) Backward(c int) int { return r.through(&r.backward, c) }

func (r *Rotor) through(table *[letters]int, c int) int {
	shift := r.position - r.ring
	return mod(table[mod(c+shift)] - shift)
}

func mod(x int) int {
	x %= letters
	if x < 0 {
		x += letters
	}
	return x
}

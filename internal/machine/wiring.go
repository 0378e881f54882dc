package machine

import "enigma/internal/domain"

// rotorSpec is one row of the historical wiring table.
type rotorSpec struct {
	wiring string // output letter for inputs A..Z
	notch  byte   // window letter at which the left neighbour is carried
}

// Enigma I / M3 rotors.
var rotorTable = map[domain.RotorID]rotorSpec{
	domain.RotorI:   {wiring: "EKMFLGDQVZNTOWYHXUSPAIBRCJ", notch: 'Q'},
	domain.RotorII:  {wiring: "AJDKSIRUXBLHWTMCQGZNPYFVOE", notch: 'E'},
	domain.RotorIII: {wiring: "BDFHJLCPRTXVZNYEIWGAKMUSQO", notch: 'V'},
	domain.RotorIV:  {wiring: "ESOVPZJAYQUIRHXLNFTGKDCMWB", notch: 'J'},
	domain.RotorV:   {wiring: "VZBRGITYUPSDNHLXAWMJQOFECK", notch: 'Z'},
}

// UKW-B.
const reflectorBWiring = "YRUHQSLDPXNGOKMIEBFZCWVJAT"

// Wiring returns the forward wiring and notch letter of a rotor.
func Wiring(id domain.RotorID) (wiring string, notch byte, ok bool) {
	spec, ok := rotorTable[id]
	return spec.wiring, spec.notch, ok
}

// Package machine simulates a three-rotor Enigma I.
//
// Contents
//
//   - Rotor: fixed wiring, notch, ring setting and a rotating position
//   - Plugboard: symmetric letter swaps applied before and after the rotors
//   - Reflector: the fixed UKW-B involution
//   - Machine: stepping (with the double-step anomaly) and the signal path
//
// # Signal path
//
// For every letter the rotors step first, then the contact travels
// plugboard → right → middle → left → reflector → left → middle → right →
// plugboard. Non-letters are copied through and do not step the rotors.
//
// # Notes
//
// Notches are compared against the raw rotor position, not the ring-shifted
// one. A Machine mutates on every letter and must be owned by one stream of
// characters at a time; build one Machine per session.
package machine

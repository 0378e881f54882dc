// Package cipher runs messages through the Enigma machine.
//
// Every Run builds a new Machine from the supplied settings, so encrypting and
// decrypting are the same call and concurrent callers never share rotor state.
package cipher

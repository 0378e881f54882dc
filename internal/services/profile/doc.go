// Package profile manages named settings profiles.
//
// It validates settings before they reach the store, stamps creation time and
// returns the settings fingerprint so operators can compare keys out of band.
package profile

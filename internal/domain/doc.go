// Package domain defines core data models and interfaces shared across the app.
// It contains plain types (machine settings, plug pairs, profiles) and contracts
// (interfaces) only; the rotor mechanics live in internal/machine.
package domain

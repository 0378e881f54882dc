// Package store provides file-based persistence for named machine settings.
//
// Profiles are serialised as YAML under <home>/profiles. A profile saved with a
// passphrase is sealed (see internal/crypto) and stored with a .yaml.enc
// suffix instead. All methods are concurrency-safe via internal locking, and
// every write goes through a temp file plus rename.
package store

// Package crypto holds the small primitives the CLI needs around machine
// settings.
//
// Contents
//
//   - Short settings fingerprints for display/logging (Fingerprint)
//   - Passphrase sealing of stored profiles with scrypt and
//     XChaCha20-Poly1305 (Seal, Open)
//   - Best-effort memory wiping for derived keys (Wipe)
//
// # Notes
//
// Sealed blobs are self-describing JSON carrying their KDF parameters, so the
// cost can be raised later without breaking existing profiles.
package crypto

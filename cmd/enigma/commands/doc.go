// Package commands defines the enigma CLI and wires dependencies for subcommands.
//
// Commands
//
//   - encrypt        Run a message through a freshly keyed machine
//   - decrypt        Same operation; the machine is its own inverse
//   - fingerprint    Print the fingerprint of the selected settings
//   - rotors         List the rotor wiring table
//   - profile        Save, show, list and delete named settings profiles
//
// # Settings
//
// Settings come from --profile (sealed profiles need -p) and/or the
// --rotors, --positions, --rings and --plugs flags; flags override fields of
// a loaded profile. Without either, rotors I, II, III at AAA are used.
//
// # Implementation
//
// The root command reads the environment (ENIGMA_HOME, ENIGMA_LOG_LEVEL,
// ENIGMA_LOG_FORMAT) and builds the dependency graph before any subcommand
// runs, so handlers share one app context.
package commands

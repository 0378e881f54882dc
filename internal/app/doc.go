// Package app wires application dependencies for the CLI.
//
// It reads Config from the environment, builds the logger, the profile store
// and the high-level services, and exposes them via the App struct for
// commands to use.
package app

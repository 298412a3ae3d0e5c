// Package cli defines the Cobra command tree for the feedsmith CLI. Each
// file in this package registers one top-level command (publish, list,
// doctor, etc.) with the root command. Command implementations delegate to
// internal packages for feed logic and only handle flag parsing, I/O
// formatting, and exit-code mapping.
package cli

// Package app contains the core application logic. It defines the main App
// struct that owns the roster and stats table, its configuration, and the
// menu loop, decoupled from any specific entrypoint like a CLI.
package app

// Package app wires application dependencies for the CLI.
//
// It resolves Config (defaults, optional YAML file, flag overrides), builds the
// logger, metrics registry, engine, services and HTTP server from it, and
// exposes them via the Wire struct for commands to use.
package app

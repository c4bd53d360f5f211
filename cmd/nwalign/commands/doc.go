// Package commands defines the nwalign CLI and wires dependencies for subcommands.
//
// Commands
//
//   - align    Align the first two sequences of a FASTA file
//   - serve    Launch the alignment HTTP service
//   - remote   Align a FASTA file's two sequences on a running service
//
// Global flags --mismatch-penalty (default -2.0) and --gap-penalty (default -1.0)
// configure scoring for every mode.
//
// # Implementation
//
// The root command resolves the configuration (defaults, then --config YAML,
// then explicitly set flags) and builds the dependency graph before any
// subcommand runs. Logs go to stderr; rendered alignments go to stdout.
package commands

// Package commands wires the docvault CLI: a cobra root command carrying
// the store location and crypto flags, and one subcommand per store
// operation. Documents travel as JSON on argv and stdout.
package commands

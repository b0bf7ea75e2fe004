// Package logging provides the verbosity-gated logger used by the
// docvault CLI.
//
// Two flags control output: --verbose shows info and warnings, --debug
// additionally shows debug detail. Errors always print. Library packages
// return errors instead of logging; only the command layer owns output.
package logging

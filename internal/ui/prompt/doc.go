// Package prompt provides interactive confirmation and text input prompts.
//
// Prompts render as small bubbletea programs when stdin is a terminal and
// fall back to plain line-based reads otherwise, so piped invocations and
// scripts keep working.
package prompt

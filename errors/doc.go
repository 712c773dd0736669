// Package errors provides the structured error type shared by utilkit
// packages. Every failure carries a machine-readable code so callers can
// branch on the kind of failure without matching message text.
package errors

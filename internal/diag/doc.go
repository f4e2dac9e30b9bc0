// Package diag defines the core diagnostic model shared by all pipeline phases.
//
// Diagnostic is the central record: Severity, a stable numeric Code, a
// human-oriented Message, and the primary source.Span. Producers emit through
// a Reporter so they stay decoupled from storage; BagReporter aggregates into
// a Bag that preserves encounter order. Error is the composite raised once
// after a pass completes — никакой проход не кидает её на полпути.
//
// Rendering lives in internal/diagfmt; this package performs no formatting
// or IO.
package diag

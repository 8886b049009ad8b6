// Package logging provides the structured slog helpers shared across
// spotisonic packages.
//
// It wraps log/slog with attribute constructors, standardized field keys, and
// a no-op logger for wiring code and tests that cannot fail. Prefer these
// helpers over hand-rolled slog setup so every component emits data with the
// same shape.
package logging

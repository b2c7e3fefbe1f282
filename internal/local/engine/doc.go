// Package engine holds the pure local coverage rules: applicability
// classification, weighted scoring, gap generation and issue synthesis.
//
// Nothing in this package performs I/O. Every function receives the data it
// needs and returns a value, so the rules are safe to call from any goroutine
// and are tested without stores.
package engine

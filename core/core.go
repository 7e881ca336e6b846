// Package core has the data formatters, classifiers and chart composition
// logic for pulseboard.
package core

// Formatters in this package share three rules:
//   - empty input yields empty output, never an error
//   - input slices are never mutated; every call returns fresh memory
//   - a zero denominator yields the nil sentinel, never Inf or NaN

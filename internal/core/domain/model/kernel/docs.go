// Package kernel contains shared value objects used across domain aggregates.
//
// The package currently provides Money, a validated, immutable monetary
// amount backed by exact decimal arithmetic. Snapshot prices and order
// totals are expressed in Money so that historical totals are stable and
// never accumulate floating point drift.
package kernel

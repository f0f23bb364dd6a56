// Package order implements the order lifecycle engine: the aggregate root
// with its line item snapshots and delivery record, the closed Status enum,
// and the central transition table that gates every mutation on role,
// ownership, and source state.
//
// The package includes:
//   - Order: the aggregate root owning OrderItems and one Delivery
//   - OrderItem: an immutable snapshot of one purchased line
//   - Delivery: the assign-once courier record
//   - Status: the lifecycle state machine
//   - Operation + Apply: the single authorization and transition evaluator
//
// Key business rules:
//   - Orders are created in PAID; payment authorization precedes persistence
//   - total is fixed at creation from snapshot prices and never recomputed
//   - authorization failures on ownership are masked as not-found so that
//     cross-tenant probes cannot confirm an order exists
//   - the first courier to pick up wins the assignment; only that courier
//     can deliver
package order

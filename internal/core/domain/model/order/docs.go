// Package order provides domain entities and business logic for the order
// fulfillment workflow. It implements the Order aggregate root with lifecycle
// management and stage transitions.
//
// The package includes:
//   - Order: the aggregate root managing stage attribution, timestamps and notes
//   - Status: a state machine that enforces valid order status transitions
//
// Key business rules:
//   - Orders enter the system as Pendiente and leave it as Terminado
//   - Stage-start timestamps are server-assigned; stage-finish timestamps are
//     caller-supplied and persisted verbatim
//   - Each transition stamps the actor who performed it
//   - Packing cannot finish on an order whose picker was never stamped
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order

// Package kernel provides core domain primitives for the fulfillment system.
// It implements fundamental building blocks following Domain-Driven Design principles
// that are used throughout the domain model.
//
// The package includes:
//   - Actor: a value object attributing a workflow stage to the person who performed it
//   - OrderNumber, LineID, TaskID, AssignmentID, OperatorID: typed identifiers for
//     the externally assigned integer keys of the order store
//
// These primitives enforce domain invariants and validation rules, ensuring that
// domain objects are always in a valid state. They are designed to be immutable
// and thread-safe, making them suitable for concurrent use.
package kernel

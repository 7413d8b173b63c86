// Package order provides domain entities and business logic for production
// order management in the factory operations system. It implements the Order
// aggregate root with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, properties, and lifecycle
//   - Status: A state machine that enforces valid order status transitions
//   - Requirement: A value object binding a material and its per-unit quantity
//
// Key business rules:
//   - Orders must have a valid unique identifier, a product name, and a positive quantity
//   - Order status follows a defined workflow: NotStarted -> Accepted -> Completed
//   - Accepting an order attaches exactly one employee; double-accept is rejected
//   - Only the assigned employee may complete an order
//   - The requirement list is frozen once the order leaves NotStarted
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order

// Package order provides domain entities and business logic for restaurant
// order management. It implements the Order aggregate root with lifecycle
// management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages order identity, lines, and lifecycle
//   - OrderLine: One menu item with a validated quantity and a preparation note
//   - Status: A state machine enforcing the fixed kitchen/delivery progression
//   - PaymentMethod: The closed set of accepted payment options
//
// Key business rules:
//   - Status moves Received -> InPreparation -> Ready -> EnRoute -> Delivered,
//     never skipping a state; Cancelled is reachable from any non-Delivered state
//   - Delivered and Cancelled are terminal; reaching either closes the order
//   - Cancellation requires a non-empty reason
//   - Payment methods can only be set while the order is not terminal and are
//     normalized case-insensitively to cash, pix, or card
//   - The total is always the sum of unit price times quantity over all lines
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order

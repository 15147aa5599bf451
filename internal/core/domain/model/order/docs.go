// Package order provides the Order aggregate of the food ordering service: the
// immutable line-item snapshot taken at placement, the role-gated status state
// machine and its coupling to payment status, and delivery partner assignment.
//
// The package includes:
//   - Order: the aggregate root; records domain events as it changes
//   - Status: lifecycle states and the (current status, role) transition table
//   - LineItem: a menu item reference with its price snapshot
//   - Payment: method and bookkeeping status of the payment
//
// Key business rules:
//   - totalPrice equals the sum of quantity × unitPrice and is computed once at creation
//   - Delivered and Cancelled are terminal
//   - a transition must be reachable from the current status and permitted for the actor's role
//   - entering Delivered marks the payment Paid
package order

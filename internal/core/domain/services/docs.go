// Package services provides domain services that work across aggregates of the
// food ordering service.
//
// The package includes:
//   - OrderBuilder: turns a resolved placement request into a Pending order with a price snapshot
//   - MeanRating: the rating aggregate formula
//   - AccessPolicy: the declarative (role, action, ownership) table every use case consults
package services

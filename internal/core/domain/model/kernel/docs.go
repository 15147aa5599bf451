// Package kernel provides the shared domain primitives of the food ordering
// service: identifiers, geographic points, money, roles of the acting user and
// the domain event contract recorded by aggregates.
//
// All value objects are immutable. Their zero values are invalid and fail
// Validate, so they must be created through the package constructors.
package kernel

// Package account holds the users and delivery addresses the fulfillment core
// looks up by id. Profile and address management live elsewhere.
package account

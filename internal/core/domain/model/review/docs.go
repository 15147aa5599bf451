// Package review provides the Review entity and the value objects it is built
// from: Target, which names exactly one restaurant or menu item, and Rating,
// an integer score between 1 and 5.
package review

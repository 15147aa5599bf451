// Package tracking provides the DeliveryTracking aggregate: the append-only
// history of positions a delivery partner reported for one order.
//
// The aggregate never loads the full history. It knows the latest entry and
// the entries appended since it was loaded; the repository writes the latter.
package tracking

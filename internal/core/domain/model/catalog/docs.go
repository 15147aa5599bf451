// Package catalog holds the read-side view of restaurants and menu items that
// the order and rating flows resolve by id. Catalog CRUD is owned by another
// service; this package never changes names, prices or availability. The
// ratings field is written only by the rating aggregator.
package catalog

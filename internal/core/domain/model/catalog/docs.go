// Package catalog provides the restaurant and menu item entities.
//
// The order lifecycle engine treats the catalog as read-only: it validates
// restaurants and menu items during order placement and never mutates them.
// Catalog writes happen through their own commands, outside the engine.
package catalog

// Package entity contains the core business objects of the project.
package entity

import "time"

// Product is a catalog item. The catalog surface is pure pass-through
// persistence with no invariants beyond required-field presence.
type Product struct {
	ID          uint64    // System-assigned identifier.
	Name        string    // Product name. Required.
	Description string    // Free-text description.
	Price       float64   // Unit price.
	Stock       int       // Units in stock.
	CreatedAt   time.Time // Timestamp of when this product was created.
	UpdatedAt   time.Time // Timestamp of the last modification.
}

// Package entity contains the core business objects of the project.
package entity

// Address is an element of a user's address list.
// It has no identity of its own; identity is positional within the owning user's list.
type Address struct {
	Street  string `json:"street"`  // Street line. Required, free text.
	City    string `json:"city"`    // City name. Required, free text.
	Country string `json:"country"` // Country name. Required, free text.
}

// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// User is the core entity in the system, representing a unique "person" or "account".
type User struct {
	ID           uint64    // System-assigned, immutable identifier.
	Name         string    // The user's display name. Required.
	Email        string    // The user's email, used as the sole lookup key for authentication.
	PasswordHash string    // One-way hash of the user's secret, set once at registration. Never exposed.
	IsAdmin      bool      // Administrative flag. Defaults to false; not mutated by this system.
	Addresses    []Address // Ordered address list. Append-only; insertion order is preserved.
	CreatedAt    time.Time // Timestamp of when this user account was created.
	UpdatedAt    time.Time // Timestamp of the last modification to this user's data.
}

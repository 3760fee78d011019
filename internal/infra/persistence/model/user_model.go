// Package model contains the GORM persistence models mirroring the database schema.
package model

import (
	"time"

	"gorm.io/datatypes"
)

// UserModel mirrors the 'users' table.
// It is an exported type so it can be used by the GORM Gen tool from other packages.
//
// Addresses is a single serialized JSON column, not a child table: the
// authoritative schema models the one-to-many address relationship as an
// opaque blob that round-trips through the application on every append.
type UserModel struct {
	ID           uint64         `gorm:"primaryKey;autoIncrement"`
	Name         string         `gorm:"type:varchar(100);not null"`
	Email        string         `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string         `gorm:"type:varchar(255);not null"`
	IsAdmin      bool           `gorm:"not null;default:false"`
	Addresses    datatypes.JSON `gorm:"type:jsonb"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

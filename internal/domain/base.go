package domain

import (
	"github.com/google/uuid" // UUID generation for primary keys
	"gorm.io/gorm"           // GORM ORM library
)

// Base holds the uuid primary key shared by every entity
type Base struct {
	ID string `gorm:"type:char(36);primaryKey" json:"id"` // Primary key (uuid)
}

// BeforeCreate assigns a fresh uuid when no id was provided
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString() // Generate a new uuid
	}
	return nil
}

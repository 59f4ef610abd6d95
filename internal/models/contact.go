package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ContactMessage is one inbound inquiry from the contact form. It is written
// once and never read back by the site.
type ContactMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"_id"`
	Name      string    `gorm:"not null" json:"name"`
	Email     string    `gorm:"not null;index" json:"email"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `gorm:"index" json:"createdAt"`
}

// TableName pins the collection name.
func (ContactMessage) TableName() string { return "contacts" }

// BeforeCreate assigns the id.
func (c *ContactMessage) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// All returns every persisted model, in migration order.
func All() []any {
	return []any{
		&Project{},
		&ContactMessage{},
	}
}

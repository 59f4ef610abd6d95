package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Project is one portfolio entry. Rows are written by the seed command only.
type Project struct {
	ID              uuid.UUID                   `gorm:"type:uuid;primaryKey" json:"_id"`
	Title           string                      `gorm:"not null" json:"title" validate:"required"`
	Description     string                      `gorm:"type:text;not null" json:"description" validate:"required"`
	LongDescription string                      `gorm:"type:text" json:"longDescription,omitempty"`
	Category        string                      `gorm:"type:varchar(64);index;not null" json:"category" validate:"required"`
	Technologies    datatypes.JSONSlice[string] `gorm:"not null" json:"technologies" validate:"required,min=1"`
	ImageURL        string                      `json:"imageUrl,omitempty" validate:"omitempty,url"`
	VideoURL        string                      `json:"videoUrl,omitempty" validate:"omitempty,url"`
	GithubURL       string                      `json:"githubUrl,omitempty" validate:"omitempty,url"`
	LiveURL         string                      `json:"liveUrl,omitempty" validate:"omitempty,url"`
	Featured        bool                        `gorm:"not null;default:false;index" json:"featured"`
	CreatedAt       time.Time                   `gorm:"index" json:"createdAt"`
}

// TableName pins the collection name.
func (Project) TableName() string { return "projects" }

// BeforeCreate assigns the id and, when absent, the creation time at the
// microsecond precision PostgreSQL stores.
func (p *Project) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now().UTC().Truncate(time.Microsecond)
	}
	return nil
}

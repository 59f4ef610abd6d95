package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/folio-labs/portfolio/internal/models"
	"github.com/folio-labs/portfolio/pkg/database"
)

type ContactRepository interface {
	BaseRepository[models.ContactMessage]
	// Insert stamps the creation time, stores one message and returns its id.
	Insert(ctx context.Context, name, email, message string) (uuid.UUID, error)
}

type contactRepository struct {
	BaseRepository[models.ContactMessage]
	now func() time.Time
}

func NewContactRepository(conn *database.Conn) ContactRepository {
	return &contactRepository{
		BaseRepository: NewBaseRepository[models.ContactMessage](conn),
		now:            time.Now,
	}
}

func (r *contactRepository) Insert(ctx context.Context, name, email, message string) (uuid.UUID, error) {
	msg := models.ContactMessage{
		Name:      name,
		Email:     email,
		Message:   message,
		CreatedAt: r.now().UTC().Truncate(time.Microsecond),
	}
	if err := r.Create(ctx, &msg); err != nil {
		return uuid.Nil, err
	}
	return msg.ID, nil
}

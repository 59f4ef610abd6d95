package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/folio-labs/portfolio/pkg/database"
	appErr "github.com/folio-labs/portfolio/pkg/errors"
)

// BaseRepository defines the operations shared by every record type. Records
// are append-only, so there is no update or delete.
type BaseRepository[T any] interface {
	Create(ctx context.Context, obj *T) error
	GetByID(ctx context.Context, id any, dest *T) error
}

type baseRepository[T any] struct {
	conn *database.Conn
}

func NewBaseRepository[T any](conn *database.Conn) BaseRepository[T] {
	return &baseRepository[T]{conn: conn}
}

// db resolves the shared handle, reporting an unreachable store as a storage error.
func db(ctx context.Context, conn *database.Conn) (*gorm.DB, error) {
	if err := ctx.Err(); err != nil {
		return nil, appErr.Storage(err, "request canceled")
	}
	h, err := conn.DB(ctx)
	if err != nil {
		return nil, appErr.Storage(err, "storage unavailable")
	}
	return h.WithContext(ctx), nil
}

func (r *baseRepository[T]) Create(ctx context.Context, obj *T) error {
	h, err := db(ctx, r.conn)
	if err != nil {
		return err
	}
	if err := h.Create(obj).Error; err != nil {
		return appErr.Storage(err, "create entity failed")
	}
	return nil
}

func (r *baseRepository[T]) GetByID(ctx context.Context, id any, dest *T) error {
	h, err := db(ctx, r.conn)
	if err != nil {
		return err
	}
	if err := h.First(dest, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return appErr.New(appErr.CodeNotFound, "entity not found")
		}
		return appErr.Storage(err, "get entity failed")
	}
	return nil
}

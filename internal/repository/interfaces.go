package repository

import (
	"context"

	"github.com/alexanderramin/cotiza/internal/domain"
)

// CustomProductRepo stores the products a user defines during a session.
// List returns them in creation order; Upsert on an existing id updates the
// product in place without moving it.
type CustomProductRepo interface {
	Upsert(ctx context.Context, p domain.Product) error
	GetByID(ctx context.Context, id string) (domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	DeleteAll(ctx context.Context) error
}

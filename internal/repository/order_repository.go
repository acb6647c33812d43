package repository

import (
	"context"

	"github.com/tuanha-qnh/SIM-PHONG-THUY-SIM-SO-DEP/internal/model"
)

// OrderRepository is the order store.
type OrderRepository interface {
	// Create stores a new order as given; id, status and created_at are set by the caller.
	Create(ctx context.Context, order *model.Order) error

	// GetByID returns ErrNotFound when the order does not exist.
	GetByID(ctx context.Context, id string) (*model.Order, error)

	// List returns every order, newest first.
	List(ctx context.Context) ([]*model.Order, error)

	// UpdateStatus moves an order from one status to another. It fails with
	// ErrStatusConflict when the stored status is not from.
	UpdateStatus(ctx context.Context, id string, from, to model.OrderStatus) error

	// Seed inserts orders when the table is empty.
	Seed(ctx context.Context, orders []*model.Order) error

	// Count returns the number of stored orders.
	Count(ctx context.Context) (int64, error)
}

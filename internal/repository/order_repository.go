package repository

import (
	"context"

	"swadwala/internal/domain/model"
)

type OrderRepository interface {
	// Create persists the order together with its shop orders and items.
	Create(ctx context.Context, order *model.Order) error
	// FindByID resolves the full tree including shop and item references.
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	ListByUserID(ctx context.Context, userID int64) ([]model.Order, error)
}

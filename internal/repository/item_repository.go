package repository

import (
	"context"

	"swadwala/internal/domain/model"
)

type ItemRepository interface {
	Create(ctx context.Context, item *model.Item) error
	FindByID(ctx context.Context, itemID int64) (model.Item, error)
	Update(ctx context.Context, item *model.Item) error
	Delete(ctx context.Context, itemID int64) error

	ListByShopID(ctx context.Context, shopID int64) ([]model.Item, error)
	// ListAvailableByShopID returns only items with is_available = true,
	// capped at limit (0 means no cap).
	ListAvailableByShopID(ctx context.Context, shopID int64, limit int) ([]model.Item, error)
}

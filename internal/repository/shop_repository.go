package repository

import (
	"context"

	"swadwala/internal/domain/model"
)

type ShopRepository interface {
	Create(ctx context.Context, shop *model.Shop) error
	FindByID(ctx context.Context, shopID int64) (model.Shop, error)
	FindByOwnerID(ctx context.Context, ownerID int64) (model.Shop, error)
	Update(ctx context.Context, shop *model.Shop) error

	// ListByCity matches the stored city case-insensitively against the
	// trimmed search term (full-string match, not substring).
	ListByCity(ctx context.Context, city string, limit int) ([]model.Shop, error)
	ListByState(ctx context.Context, state string, limit int) ([]model.Shop, error)
	// ListNearby returns shops within radiusMeters of (lat, lng) ordered
	// by ascending distance.
	ListNearby(ctx context.Context, lat, lng float64, radiusMeters float64, limit int) ([]model.Shop, error)
	List(ctx context.Context, limit int) ([]model.Shop, error)
}

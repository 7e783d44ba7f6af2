package repository

import (
	"context"
	"errors"
	"strings"

	"swadwala/internal/domain/model"
	domainrepo "swadwala/internal/repository"

	"gorm.io/gorm"
)

type shopGormRepository struct {
	db *gorm.DB
}

func NewShopGormRepository(db *gorm.DB) domainrepo.ShopRepository {
	return &shopGormRepository{db: db}
}

func (r *shopGormRepository) Create(ctx context.Context, shop *model.Shop) error {
	if err := r.db.WithContext(ctx).Create(shop).Error; err != nil {
		if isUniqueViolation(err) {
			return domainrepo.ErrConflict
		}
		return err
	}
	return nil
}

func (r *shopGormRepository) FindByID(ctx context.Context, shopID int64) (model.Shop, error) {
	var s model.Shop
	err := r.db.WithContext(ctx).Where("id = ?", shopID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Shop{}, domainrepo.ErrNotFound
	}
	if err != nil {
		return model.Shop{}, err
	}
	return s, nil
}

func (r *shopGormRepository) FindByOwnerID(ctx context.Context, ownerID int64) (model.Shop, error) {
	var s model.Shop
	err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Shop{}, domainrepo.ErrNotFound
	}
	if err != nil {
		return model.Shop{}, err
	}
	return s, nil
}

func (r *shopGormRepository) Update(ctx context.Context, shop *model.Shop) error {
	return r.db.WithContext(ctx).Save(shop).Error
}

func (r *shopGormRepository) ListByCity(ctx context.Context, city string, limit int) ([]model.Shop, error) {
	var shops []model.Shop
	err := r.db.WithContext(ctx).
		Where("LOWER(city) = LOWER(?)", strings.TrimSpace(city)).
		Limit(limit).
		Find(&shops).Error
	if err != nil {
		return nil, err
	}
	return shops, nil
}

func (r *shopGormRepository) ListByState(ctx context.Context, state string, limit int) ([]model.Shop, error) {
	var shops []model.Shop
	err := r.db.WithContext(ctx).
		Where("LOWER(state) = LOWER(?)", strings.TrimSpace(state)).
		Limit(limit).
		Find(&shops).Error
	if err != nil {
		return nil, err
	}
	return shops, nil
}

// Haversine great-circle distance in meters, computed in SQL so Postgres can
// both filter on the radius and sort by it.
const distanceExpr = `(6371000 * acos(least(1.0,
	cos(radians(?)) * cos(radians(latitude)) * cos(radians(longitude) - radians(?))
	+ sin(radians(?)) * sin(radians(latitude)))))`

func (r *shopGormRepository) ListNearby(ctx context.Context, lat, lng float64, radiusMeters float64, limit int) ([]model.Shop, error) {
	var shops []model.Shop
	err := r.db.WithContext(ctx).
		Model(&model.Shop{}).
		Select("*, "+distanceExpr+" AS distance", lat, lng, lat).
		Where(distanceExpr+" <= ?", lat, lng, lat, radiusMeters).
		Order("distance asc").
		Limit(limit).
		Find(&shops).Error
	if err != nil {
		return nil, err
	}
	return shops, nil
}

func (r *shopGormRepository) List(ctx context.Context, limit int) ([]model.Shop, error) {
	var shops []model.Shop
	err := r.db.WithContext(ctx).
		Order("id desc").
		Limit(limit).
		Find(&shops).Error
	if err != nil {
		return nil, err
	}
	return shops, nil
}

package repository

import (
	"context"
	"errors"

	"swadwala/internal/domain/model"
	domainrepo "swadwala/internal/repository"

	"gorm.io/gorm"
)

type itemGormRepository struct {
	db *gorm.DB
}

func NewItemGormRepository(db *gorm.DB) domainrepo.ItemRepository {
	return &itemGormRepository{db: db}
}

func (r *itemGormRepository) Create(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *itemGormRepository) FindByID(ctx context.Context, itemID int64) (model.Item, error) {
	var it model.Item
	err := r.db.WithContext(ctx).Where("id = ?", itemID).First(&it).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Item{}, domainrepo.ErrNotFound
	}
	if err != nil {
		return model.Item{}, err
	}
	return it, nil
}

func (r *itemGormRepository) Update(ctx context.Context, item *model.Item) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *itemGormRepository) Delete(ctx context.Context, itemID int64) error {
	res := r.db.WithContext(ctx).Delete(&model.Item{}, itemID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domainrepo.ErrNotFound
	}
	return nil
}

func (r *itemGormRepository) ListByShopID(ctx context.Context, shopID int64) ([]model.Item, error) {
	var items []model.Item
	err := r.db.WithContext(ctx).
		Where("shop_id = ?", shopID).
		Order("id desc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemGormRepository) ListAvailableByShopID(ctx context.Context, shopID int64, limit int) ([]model.Item, error) {
	q := r.db.WithContext(ctx).
		Where("shop_id = ? AND is_available = ?", shopID, true).
		Order("id desc")
	if limit > 0 {
		q = q.Limit(limit)
	}

	var items []model.Item
	if err := q.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

package usecase

import (
	"context"
	"net/http"
	"strings"

	"swadwala/internal/domain/model"
	repo "swadwala/internal/repository"
)

type ItemUsecase struct {
	itemRepo repo.ItemRepository
	shopRepo repo.ShopRepository
}

func NewItemUsecase(itemRepo repo.ItemRepository, shopRepo repo.ShopRepository) *ItemUsecase {
	return &ItemUsecase{itemRepo: itemRepo, shopRepo: shopRepo}
}

type CreateItemInput struct {
	Name     string
	Price    int64
	Category model.ItemCategory
	FoodType model.FoodType
	ShopID   int64
	Image    string
}

func (u *ItemUsecase) CreateItem(ctx context.Context, userID int64, in CreateItemInput) (model.Item, error) {
	if userID <= 0 {
		return model.Item{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.Name) == "" || in.Category == "" || in.FoodType == "" || in.ShopID <= 0 {
		return model.Item{}, NewHTTPError(http.StatusBadRequest, "all fields are required")
	}
	if !model.ValidItemCategory(in.Category) {
		return model.Item{}, NewHTTPError(http.StatusBadRequest, "invalid category")
	}
	if !model.ValidFoodType(in.FoodType) {
		return model.Item{}, NewHTTPError(http.StatusBadRequest, "invalid food type")
	}
	if in.Price < 0 {
		return model.Item{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
	}
	if in.Image == "" {
		return model.Item{}, NewHTTPError(http.StatusBadRequest, "item image is required")
	}

	shop, err := u.shopRepo.FindByID(ctx, in.ShopID)
	if err == repo.ErrNotFound {
		return model.Item{}, NewHTTPError(http.StatusNotFound, "shop not found")
	}
	if err != nil {
		return model.Item{}, NewHTTPError(http.StatusInternalServerError, "failed to create item")
	}
	if shop.OwnerID != userID {
		return model.Item{}, NewHTTPError(http.StatusForbidden, "not authorized to add items to this shop")
	}

	item := model.Item{
		Name:        strings.TrimSpace(in.Name),
		Image:       in.Image,
		ShopID:      in.ShopID,
		Category:    in.Category,
		FoodType:    in.FoodType,
		Price:       in.Price,
		IsAvailable: true,
	}
	if err := u.itemRepo.Create(ctx, &item); err != nil {
		return model.Item{}, NewHTTPError(http.StatusInternalServerError, "failed to create item")
	}
	return item, nil
}

type EditItemInput struct {
	Name        string
	Price       *int64
	Category    model.ItemCategory
	FoodType    model.FoodType
	IsAvailable *bool
	Image       string
}

func (u *ItemUsecase) EditItem(ctx context.Context, userID int64, itemID int64, in EditItemInput) (model.Item, error) {
	if userID <= 0 {
		return model.Item{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	item, shop, err := u.findItemWithShop(ctx, itemID)
	if err != nil {
		return model.Item{}, err
	}
	if shop.OwnerID != userID {
		return model.Item{}, NewHTTPError(http.StatusForbidden, "not authorized")
	}

	if v := strings.TrimSpace(in.Name); v != "" {
		item.Name = v
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return model.Item{}, NewHTTPError(http.StatusBadRequest, "price must be >= 0")
		}
		item.Price = *in.Price
	}
	if in.Category != "" {
		if !model.ValidItemCategory(in.Category) {
			return model.Item{}, NewHTTPError(http.StatusBadRequest, "invalid category")
		}
		item.Category = in.Category
	}
	if in.FoodType != "" {
		if !model.ValidFoodType(in.FoodType) {
			return model.Item{}, NewHTTPError(http.StatusBadRequest, "invalid food type")
		}
		item.FoodType = in.FoodType
	}
	if in.IsAvailable != nil {
		item.IsAvailable = *in.IsAvailable
	}
	if in.Image != "" {
		item.Image = in.Image
	}

	if err := u.itemRepo.Update(ctx, &item); err != nil {
		return model.Item{}, NewHTTPError(http.StatusInternalServerError, "failed to update item")
	}
	return item, nil
}

func (u *ItemUsecase) DeleteItem(ctx context.Context, userID int64, itemID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	_, shop, err := u.findItemWithShop(ctx, itemID)
	if err != nil {
		return err
	}
	if shop.OwnerID != userID {
		return NewHTTPError(http.StatusForbidden, "not authorized")
	}

	if err := u.itemRepo.Delete(ctx, itemID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "failed to delete item")
	}
	return nil
}

// GetShopItems is the public catalog of a shop: available items only.
func (u *ItemUsecase) GetShopItems(ctx context.Context, shopID int64) ([]model.Item, error) {
	if shopID <= 0 {
		return nil, NewHTTPError(http.StatusBadRequest, "invalid shop id")
	}

	items, err := u.itemRepo.ListAvailableByShopID(ctx, shopID, 0)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "failed to fetch items")
	}
	return items, nil
}

func (u *ItemUsecase) findItemWithShop(ctx context.Context, itemID int64) (model.Item, model.Shop, error) {
	if itemID <= 0 {
		return model.Item{}, model.Shop{}, NewHTTPError(http.StatusBadRequest, "invalid item id")
	}

	item, err := u.itemRepo.FindByID(ctx, itemID)
	if err == repo.ErrNotFound {
		return model.Item{}, model.Shop{}, NewHTTPError(http.StatusNotFound, "item not found")
	}
	if err != nil {
		return model.Item{}, model.Shop{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	shop, err := u.shopRepo.FindByID(ctx, item.ShopID)
	if err != nil {
		return model.Item{}, model.Shop{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return item, shop, nil
}

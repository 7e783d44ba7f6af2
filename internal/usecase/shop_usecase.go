package usecase

import (
	"context"
	"net/http"
	"strings"

	"swadwala/internal/domain/model"
	repo "swadwala/internal/repository"
)

const (
	// default page size for every discovery endpoint
	DefaultShopLimit = 10
	// available items attached per shop in discovery results
	ItemJoinCap = 5
	// nearby search radius
	NearbyRadiusMeters = 50000
)

type ShopUsecase struct {
	shopRepo repo.ShopRepository
	itemRepo repo.ItemRepository
}

func NewShopUsecase(shopRepo repo.ShopRepository, itemRepo repo.ItemRepository) *ShopUsecase {
	return &ShopUsecase{shopRepo: shopRepo, itemRepo: itemRepo}
}

// Compact projection for discovery responses.
type ShopSummary struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	City      string  `json:"city"`
	State     string  `json:"state"`
	Address   string  `json:"address"`
	OwnerID   int64   `json:"owner"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

type ItemSummary struct {
	ID       int64              `json:"id"`
	Name     string             `json:"name"`
	Image    string             `json:"image"`
	Price    int64              `json:"price"`
	Category model.ItemCategory `json:"category"`
	FoodType model.FoodType     `json:"foodType"`
}

type ShopWithItems struct {
	ShopSummary
	Items []ItemSummary `json:"items"`
}

type ShopSearchOutput struct {
	Count int             `json:"count"`
	Shops []ShopWithItems `json:"shops"`
	// echoes the search term back for empty-result debugging
	Debug map[string]any `json:"debug,omitempty"`
}

func (u *ShopUsecase) FindByCity(ctx context.Context, city string, limit int) (ShopSearchOutput, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return ShopSearchOutput{}, NewHTTPError(http.StatusBadRequest, "city is required")
	}
	if limit <= 0 {
		limit = DefaultShopLimit
	}

	shops, err := u.shopRepo.ListByCity(ctx, city, limit)
	if err != nil {
		return ShopSearchOutput{}, NewHTTPError(http.StatusInternalServerError, "failed to fetch shops")
	}

	out, err := u.attachItems(ctx, shops)
	if err != nil {
		return ShopSearchOutput{}, err
	}
	out.Debug = map[string]any{"searchCity": city, "foundCount": out.Count}
	return out, nil
}

func (u *ShopUsecase) FindByState(ctx context.Context, state string, limit int) (ShopSearchOutput, error) {
	state = strings.TrimSpace(state)
	if state == "" {
		return ShopSearchOutput{}, NewHTTPError(http.StatusBadRequest, "state is required")
	}
	if limit <= 0 {
		limit = DefaultShopLimit
	}

	shops, err := u.shopRepo.ListByState(ctx, state, limit)
	if err != nil {
		return ShopSearchOutput{}, NewHTTPError(http.StatusInternalServerError, "failed to fetch shops")
	}

	out, err := u.attachItems(ctx, shops)
	if err != nil {
		return ShopSearchOutput{}, err
	}
	out.Debug = map[string]any{"searchState": state, "foundCount": out.Count}
	return out, nil
}

// FindNearby searches within 50 km of the point ordered by distance. Without
// coordinates it degrades to a plain listing so the home page still renders.
func (u *ShopUsecase) FindNearby(ctx context.Context, lat, lng *float64, limit int) (ShopSearchOutput, error) {
	if limit <= 0 {
		limit = DefaultShopLimit
	}

	var (
		shops []model.Shop
		err   error
	)
	if lat != nil && lng != nil {
		shops, err = u.shopRepo.ListNearby(ctx, *lat, *lng, NearbyRadiusMeters, limit)
	} else {
		shops, err = u.shopRepo.List(ctx, limit)
	}
	if err != nil {
		return ShopSearchOutput{}, NewHTTPError(http.StatusInternalServerError, "failed to fetch shops")
	}

	return u.attachItems(ctx, shops)
}

// attachItems runs one availability query per shop, capped at ItemJoinCap.
// The whole batch fails on the first item-query error (all-or-nothing).
func (u *ShopUsecase) attachItems(ctx context.Context, shops []model.Shop) (ShopSearchOutput, error) {
	out := ShopSearchOutput{Shops: make([]ShopWithItems, 0, len(shops))}

	for _, s := range shops {
		items, err := u.itemRepo.ListAvailableByShopID(ctx, s.ID, ItemJoinCap)
		if err != nil {
			return ShopSearchOutput{}, NewHTTPError(http.StatusInternalServerError, "failed to fetch shops")
		}

		summaries := make([]ItemSummary, 0, len(items))
		for _, it := range items {
			summaries = append(summaries, toItemSummary(it))
		}

		out.Shops = append(out.Shops, ShopWithItems{
			ShopSummary: toShopSummary(s),
			Items:       summaries,
		})
	}

	out.Count = len(out.Shops)
	return out, nil
}

type CreateShopInput struct {
	Name    string
	City    string
	State   string
	Address string
	Image   string
	Lat     *float64
	Lng     *float64
}

func (u *ShopUsecase) CreateShop(ctx context.Context, userID int64, in CreateShopInput) (model.Shop, error) {
	if userID <= 0 {
		return model.Shop{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.City) == "" ||
		strings.TrimSpace(in.State) == "" || strings.TrimSpace(in.Address) == "" {
		return model.Shop{}, NewHTTPError(http.StatusBadRequest, "all fields are required")
	}
	if in.Image == "" {
		return model.Shop{}, NewHTTPError(http.StatusBadRequest, "shop image is required")
	}

	_, err := u.shopRepo.FindByOwnerID(ctx, userID)
	if err == nil {
		return model.Shop{}, NewHTTPError(http.StatusBadRequest, "you already have a shop")
	}
	if err != repo.ErrNotFound {
		return model.Shop{}, NewHTTPError(http.StatusInternalServerError, "failed to create shop")
	}

	shop := model.Shop{
		Name:    strings.TrimSpace(in.Name),
		Image:   in.Image,
		OwnerID: userID,
		City:    strings.TrimSpace(in.City),
		State:   strings.TrimSpace(in.State),
		Address: strings.TrimSpace(in.Address),
	}
	if in.Lat != nil && in.Lng != nil {
		shop.Latitude = *in.Lat
		shop.Longitude = *in.Lng
	}

	if err := u.shopRepo.Create(ctx, &shop); err != nil {
		if err == repo.ErrConflict {
			return model.Shop{}, NewHTTPError(http.StatusBadRequest, "you already have a shop")
		}
		return model.Shop{}, NewHTTPError(http.StatusInternalServerError, "failed to create shop")
	}
	return shop, nil
}

type EditShopInput struct {
	Name    string
	City    string
	State   string
	Address string
	Image   string
	Lat     *float64
	Lng     *float64
}

func (u *ShopUsecase) EditShop(ctx context.Context, userID int64, shopID int64, in EditShopInput) (model.Shop, error) {
	if userID <= 0 {
		return model.Shop{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	shop, err := u.shopRepo.FindByID(ctx, shopID)
	if err == repo.ErrNotFound {
		return model.Shop{}, NewHTTPError(http.StatusNotFound, "shop not found")
	}
	if err != nil {
		return model.Shop{}, NewHTTPError(http.StatusInternalServerError, "failed to update shop")
	}
	if shop.OwnerID != userID {
		return model.Shop{}, NewHTTPError(http.StatusForbidden, "not authorized")
	}

	if v := strings.TrimSpace(in.Name); v != "" {
		shop.Name = v
	}
	if v := strings.TrimSpace(in.City); v != "" {
		shop.City = v
	}
	if v := strings.TrimSpace(in.State); v != "" {
		shop.State = v
	}
	if v := strings.TrimSpace(in.Address); v != "" {
		shop.Address = v
	}
	if in.Lat != nil && in.Lng != nil {
		shop.Latitude = *in.Lat
		shop.Longitude = *in.Lng
	}
	if in.Image != "" {
		shop.Image = in.Image
	}

	if err := u.shopRepo.Update(ctx, &shop); err != nil {
		return model.Shop{}, NewHTTPError(http.StatusInternalServerError, "failed to update shop")
	}
	return shop, nil
}

type MyShopOutput struct {
	Shop  model.Shop   `json:"shop"`
	Items []model.Item `json:"items"`
}

func (u *ShopUsecase) GetMyShop(ctx context.Context, userID int64) (MyShopOutput, error) {
	if userID <= 0 {
		return MyShopOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	shop, err := u.shopRepo.FindByOwnerID(ctx, userID)
	if err == repo.ErrNotFound {
		return MyShopOutput{}, NewHTTPError(http.StatusNotFound, "you do not have a shop yet")
	}
	if err != nil {
		return MyShopOutput{}, NewHTTPError(http.StatusInternalServerError, "failed to fetch shop")
	}

	items, err := u.itemRepo.ListByShopID(ctx, shop.ID)
	if err != nil {
		return MyShopOutput{}, NewHTTPError(http.StatusInternalServerError, "failed to fetch shop")
	}

	return MyShopOutput{Shop: shop, Items: items}, nil
}

func toShopSummary(s model.Shop) ShopSummary {
	return ShopSummary{
		ID:        s.ID,
		Name:      s.Name,
		Image:     s.Image,
		City:      s.City,
		State:     s.State,
		Address:   s.Address,
		OwnerID:   s.OwnerID,
		Latitude:  s.Latitude,
		Longitude: s.Longitude,
	}
}

func toItemSummary(it model.Item) ItemSummary {
	return ItemSummary{
		ID:       it.ID,
		Name:     it.Name,
		Image:    it.Image,
		Price:    it.Price,
		Category: it.Category,
		FoodType: it.FoodType,
	}
}

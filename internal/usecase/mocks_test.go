package usecase_test

import (
	"context"

	"swadwala/internal/domain/model"
	repo "swadwala/internal/repository"

	"github.com/stretchr/testify/mock"
)

type ShopRepoMock struct{ mock.Mock }

func (m *ShopRepoMock) Create(ctx context.Context, shop *model.Shop) error {
	args := m.Called(ctx, shop)
	return args.Error(0)
}

func (m *ShopRepoMock) FindByID(ctx context.Context, shopID int64) (model.Shop, error) {
	args := m.Called(ctx, shopID)
	s, _ := args.Get(0).(model.Shop)
	return s, args.Error(1)
}

func (m *ShopRepoMock) FindByOwnerID(ctx context.Context, ownerID int64) (model.Shop, error) {
	args := m.Called(ctx, ownerID)
	s, _ := args.Get(0).(model.Shop)
	return s, args.Error(1)
}

func (m *ShopRepoMock) Update(ctx context.Context, shop *model.Shop) error {
	args := m.Called(ctx, shop)
	return args.Error(0)
}

func (m *ShopRepoMock) ListByCity(ctx context.Context, city string, limit int) ([]model.Shop, error) {
	args := m.Called(ctx, city, limit)
	shops, _ := args.Get(0).([]model.Shop)
	return shops, args.Error(1)
}

func (m *ShopRepoMock) ListByState(ctx context.Context, state string, limit int) ([]model.Shop, error) {
	args := m.Called(ctx, state, limit)
	shops, _ := args.Get(0).([]model.Shop)
	return shops, args.Error(1)
}

func (m *ShopRepoMock) ListNearby(ctx context.Context, lat, lng float64, radiusMeters float64, limit int) ([]model.Shop, error) {
	args := m.Called(ctx, lat, lng, radiusMeters, limit)
	shops, _ := args.Get(0).([]model.Shop)
	return shops, args.Error(1)
}

func (m *ShopRepoMock) List(ctx context.Context, limit int) ([]model.Shop, error) {
	args := m.Called(ctx, limit)
	shops, _ := args.Get(0).([]model.Shop)
	return shops, args.Error(1)
}

type ItemRepoMock struct{ mock.Mock }

func (m *ItemRepoMock) Create(ctx context.Context, item *model.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *ItemRepoMock) FindByID(ctx context.Context, itemID int64) (model.Item, error) {
	args := m.Called(ctx, itemID)
	it, _ := args.Get(0).(model.Item)
	return it, args.Error(1)
}

func (m *ItemRepoMock) Update(ctx context.Context, item *model.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *ItemRepoMock) Delete(ctx context.Context, itemID int64) error {
	args := m.Called(ctx, itemID)
	return args.Error(0)
}

func (m *ItemRepoMock) ListByShopID(ctx context.Context, shopID int64) ([]model.Item, error) {
	args := m.Called(ctx, shopID)
	items, _ := args.Get(0).([]model.Item)
	return items, args.Error(1)
}

func (m *ItemRepoMock) ListAvailableByShopID(ctx context.Context, shopID int64, limit int) ([]model.Item, error) {
	args := m.Called(ctx, shopID, limit)
	items, _ := args.Get(0).([]model.Item)
	return items, args.Error(1)
}

type OrderRepoMock struct{ mock.Mock }

func (m *OrderRepoMock) Create(ctx context.Context, order *model.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

func (m *OrderRepoMock) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	o, _ := args.Get(0).(model.Order)
	return o, args.Error(1)
}

func (m *OrderRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]model.Order)
	return orders, args.Error(1)
}

type UserRepoMock struct{ mock.Mock }

func (m *UserRepoMock) Create(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *UserRepoMock) FindByID(ctx context.Context, id int64) (*model.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *UserRepoMock) Update(ctx context.Context, user *model.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// txManagerStub runs the callback against the given repos, no real tx.
type txManagerStub struct {
	orders repo.OrderRepository
	shops  repo.ShopRepository
	items  repo.ItemRepository
}

func (s *txManagerStub) Orders() repo.OrderRepository { return s.orders }
func (s *txManagerStub) Shops() repo.ShopRepository   { return s.shops }
func (s *txManagerStub) Items() repo.ItemRepository   { return s.items }

func (s *txManagerStub) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(s)
}

type MailerMock struct{ mock.Mock }

func (m *MailerMock) SendOrderConfirmation(to string, order model.Order) error {
	args := m.Called(to, order)
	return args.Error(0)
}

func (m *MailerMock) SendOTPMail(to string, otp string) error {
	args := m.Called(to, otp)
	return args.Error(0)
}

package usecase_test

import (
	"context"
	"errors"
	"net/http"
	"testing"
	"time"

	"swadwala/internal/domain/model"
	repo "swadwala/internal/repository"
	"swadwala/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// chanMailer hands each send to a channel so tests can wait for the
// detached confirmation goroutine.
type chanMailer struct {
	sent chan model.Order
	err  error
}

func (m *chanMailer) SendOrderConfirmation(to string, order model.Order) error {
	m.sent <- order
	return m.err
}

func validPlaceOrderInput() usecase.PlaceOrderInput {
	return usecase.PlaceOrderInput{
		PaymentMethod: model.PaymentCOD,
		DeliveryAddress: model.DeliveryAddress{
			Text: "12 MG Road, Pune",
		},
		TotalAmount: 933,
		ShopOrders: []usecase.ShopOrderInput{
			{
				ShopID:   1,
				Subtotal: 250,
				Items: []usecase.ShopOrderItemInput{
					{ItemID: 10, Price: 100, Quantity: 2},
					{ItemID: 11, Price: 50, Quantity: 1},
				},
			},
			{
				ShopID:   2,
				Subtotal: 600,
				Items: []usecase.ShopOrderItemInput{
					{ItemID: 20, Price: 600, Quantity: 1},
				},
			},
		},
	}
}

func TestPlaceOrder_Success(t *testing.T) {
	shopRepo := new(ShopRepoMock)
	orderRepo := new(OrderRepoMock)
	userRepo := new(UserRepoMock)
	mailer := &chanMailer{sent: make(chan model.Order, 1)}
	tx := &txManagerStub{orders: orderRepo, shops: shopRepo}

	shopRepo.On("FindByID", mock.Anything, int64(1)).Return(model.Shop{ID: 1, OwnerID: 100}, nil)
	shopRepo.On("FindByID", mock.Anything, int64(2)).Return(model.Shop{ID: 2, OwnerID: 200}, nil)
	orderRepo.On("Create", mock.Anything, mock.AnythingOfType("*model.Order")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Order).ID = 55
		}).
		Return(nil)
	userRepo.On("FindByID", mock.Anything, int64(7)).
		Return(&model.User{ID: 7, Email: "buyer@example.com"}, nil)

	uc := usecase.NewOrderUsecase(tx, orderRepo, userRepo, mailer)
	order, err := uc.PlaceOrder(context.Background(), 7, validPlaceOrderInput())

	assert.NoError(t, err)
	assert.Equal(t, int64(55), order.ID)
	assert.Equal(t, int64(7), order.UserID)
	assert.Len(t, order.ShopOrders, 2)
	// owner comes from the shop record, not the request
	assert.Equal(t, int64(100), order.ShopOrders[0].OwnerID)
	assert.Equal(t, int64(200), order.ShopOrders[1].OwnerID)
	assert.Equal(t, int64(100), order.ShopOrders[0].Items[0].PriceSnapshot)

	select {
	case mailed := <-mailer.sent:
		assert.Equal(t, int64(55), mailed.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("confirmation mail was never sent")
	}
	orderRepo.AssertExpectations(t)
	shopRepo.AssertExpectations(t)
}

func TestPlaceOrder_MailFailureDoesNotFailOrder(t *testing.T) {
	shopRepo := new(ShopRepoMock)
	orderRepo := new(OrderRepoMock)
	userRepo := new(UserRepoMock)
	mailer := &chanMailer{sent: make(chan model.Order, 1), err: errors.New("smtp down")}
	tx := &txManagerStub{orders: orderRepo, shops: shopRepo}

	shopRepo.On("FindByID", mock.Anything, mock.Anything).Return(model.Shop{ID: 1, OwnerID: 100}, nil)
	orderRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	userRepo.On("FindByID", mock.Anything, int64(7)).
		Return(&model.User{ID: 7, Email: "buyer@example.com"}, nil)

	uc := usecase.NewOrderUsecase(tx, orderRepo, userRepo, mailer)
	_, err := uc.PlaceOrder(context.Background(), 7, validPlaceOrderInput())

	assert.NoError(t, err)
	<-mailer.sent
}

func TestPlaceOrder_Unauthenticated(t *testing.T) {
	uc := usecase.NewOrderUsecase(&txManagerStub{}, new(OrderRepoMock), new(UserRepoMock), nil)

	_, err := uc.PlaceOrder(context.Background(), 0, validPlaceOrderInput())

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, he.Status)
}

func TestPlaceOrder_InvalidPaymentMethod(t *testing.T) {
	uc := usecase.NewOrderUsecase(&txManagerStub{}, new(OrderRepoMock), new(UserRepoMock), nil)

	in := validPlaceOrderInput()
	in.PaymentMethod = "cheque"
	_, err := uc.PlaceOrder(context.Background(), 7, in)

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	assert.Equal(t, "missing required fields", he.Message)
}

func TestPlaceOrder_ZeroTotal(t *testing.T) {
	uc := usecase.NewOrderUsecase(&txManagerStub{}, new(OrderRepoMock), new(UserRepoMock), nil)

	in := validPlaceOrderInput()
	in.TotalAmount = 0
	_, err := uc.PlaceOrder(context.Background(), 7, in)

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestPlaceOrder_UnknownShop(t *testing.T) {
	shopRepo := new(ShopRepoMock)
	orderRepo := new(OrderRepoMock)
	tx := &txManagerStub{orders: orderRepo, shops: shopRepo}

	shopRepo.On("FindByID", mock.Anything, mock.Anything).Return(model.Shop{}, repo.ErrNotFound)

	uc := usecase.NewOrderUsecase(tx, orderRepo, new(UserRepoMock), nil)
	_, err := uc.PlaceOrder(context.Background(), 7, validPlaceOrderInput())

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestPlaceOrder_ZeroQuantity(t *testing.T) {
	shopRepo := new(ShopRepoMock)
	orderRepo := new(OrderRepoMock)
	tx := &txManagerStub{orders: orderRepo, shops: shopRepo}

	shopRepo.On("FindByID", mock.Anything, mock.Anything).Return(model.Shop{ID: 1, OwnerID: 100}, nil)

	in := validPlaceOrderInput()
	in.ShopOrders[0].Items[0].Quantity = 0

	uc := usecase.NewOrderUsecase(tx, orderRepo, new(UserRepoMock), nil)
	_, err := uc.PlaceOrder(context.Background(), 7, in)

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
	orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetOrder_Success(t *testing.T) {
	orderRepo := new(OrderRepoMock)
	orderRepo.On("FindByID", mock.Anything, int64(55)).
		Return(model.Order{ID: 55, UserID: 7, TotalAmount: 933}, nil)

	uc := usecase.NewOrderUsecase(&txManagerStub{}, orderRepo, new(UserRepoMock), nil)
	order, err := uc.GetOrder(context.Background(), 7, 55)

	assert.NoError(t, err)
	assert.Equal(t, int64(933), order.TotalAmount)
}

func TestGetOrder_NotFound(t *testing.T) {
	orderRepo := new(OrderRepoMock)
	orderRepo.On("FindByID", mock.Anything, int64(55)).Return(model.Order{}, repo.ErrNotFound)

	uc := usecase.NewOrderUsecase(&txManagerStub{}, orderRepo, new(UserRepoMock), nil)
	_, err := uc.GetOrder(context.Background(), 7, 55)

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func TestGetOrder_ForeignOrderForbidden(t *testing.T) {
	orderRepo := new(OrderRepoMock)
	orderRepo.On("FindByID", mock.Anything, int64(55)).
		Return(model.Order{ID: 55, UserID: 8}, nil)

	uc := usecase.NewOrderUsecase(&txManagerStub{}, orderRepo, new(UserRepoMock), nil)
	_, err := uc.GetOrder(context.Background(), 7, 55)

	he, ok := usecase.AsHTTPError(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusForbidden, he.Status)
}

func TestListMyOrders(t *testing.T) {
	orderRepo := new(OrderRepoMock)
	orderRepo.On("ListByUserID", mock.Anything, int64(7)).
		Return([]model.Order{{ID: 1}, {ID: 2}}, nil)

	uc := usecase.NewOrderUsecase(&txManagerStub{}, orderRepo, new(UserRepoMock), nil)
	orders, err := uc.ListMyOrders(context.Background(), 7)

	assert.NoError(t, err)
	assert.Len(t, orders, 2)
}

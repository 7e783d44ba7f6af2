package usecase

import (
	"context"
	"log"
	"net/http"

	"swadwala/internal/domain/model"
	repo "swadwala/internal/repository"
)

// OrderMailer sends the confirmation for a placed order. Implemented by the
// SMTP mailer; mocked in tests.
type OrderMailer interface {
	SendOrderConfirmation(to string, order model.Order) error
}

type OrderUsecase struct {
	tx     repo.TransactionManager
	orders repo.OrderRepository
	users  repo.UserRepository
	mailer OrderMailer
}

func NewOrderUsecase(
	tx repo.TransactionManager,
	orders repo.OrderRepository,
	users repo.UserRepository,
	mailer OrderMailer,
) *OrderUsecase {
	return &OrderUsecase{tx: tx, orders: orders, users: users, mailer: mailer}
}

type ShopOrderItemInput struct {
	ItemID   int64 `json:"items"`
	Price    int64 `json:"price"`
	Quantity int64 `json:"quantity"`
}

type ShopOrderInput struct {
	ShopID   int64                `json:"shop"`
	Subtotal int64                `json:"subTotal"`
	Items    []ShopOrderItemInput `json:"shopOrderItems"`
}

type PlaceOrderInput struct {
	PaymentMethod   model.PaymentMethod   `json:"paymentMethod"`
	DeliveryAddress model.DeliveryAddress `json:"deliveryAddress"`
	TotalAmount     int64                 `json:"totalAmount"`
	ShopOrders      []ShopOrderInput      `json:"shopOrder"`
}

// PlaceOrder persists the aggregated order in one transaction and then
// dispatches the confirmation mail on a detached goroutine. The total is
// stored as supplied by the client; it is not recomputed against catalog
// prices (known gap, kept deliberately).
func (u *OrderUsecase) PlaceOrder(ctx context.Context, userID int64, in PlaceOrderInput) (model.Order, error) {
	if userID <= 0 {
		return model.Order{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if !model.ValidPaymentMethod(in.PaymentMethod) || in.TotalAmount <= 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "missing required fields")
	}

	order := model.Order{
		UserID:          userID,
		PaymentMethod:   in.PaymentMethod,
		DeliveryAddress: in.DeliveryAddress,
		TotalAmount:     in.TotalAmount,
	}

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		shopOrders := make([]model.ShopOrder, 0, len(in.ShopOrders))
		for _, g := range in.ShopOrders {
			// the owner reference comes from the shop, never the client
			shop, err := r.Shops().FindByID(ctx, g.ShopID)
			if err == repo.ErrNotFound {
				return NewHTTPError(http.StatusBadRequest, "unknown shop in order")
			}
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "server error")
			}

			items := make([]model.ShopOrderItem, 0, len(g.Items))
			for _, it := range g.Items {
				if it.Quantity < 1 {
					return NewHTTPError(http.StatusBadRequest, "quantity must be >= 1")
				}
				items = append(items, model.ShopOrderItem{
					ItemID:        it.ItemID,
					PriceSnapshot: it.Price,
					Quantity:      it.Quantity,
				})
			}

			shopOrders = append(shopOrders, model.ShopOrder{
				ShopID:   g.ShopID,
				OwnerID:  shop.OwnerID,
				Subtotal: g.Subtotal,
				Items:    items,
			})
		}

		order.ShopOrders = shopOrders
		if err := r.Orders().Create(ctx, &order); err != nil {
			return NewHTTPError(http.StatusInternalServerError, "server error")
		}
		return nil
	})
	if err != nil {
		return model.Order{}, err
	}

	u.notifyAsync(order)
	return order, nil
}

// notifyAsync sends the confirmation mail without holding up the response.
// A failed send is logged and swallowed; the order stands either way.
func (u *OrderUsecase) notifyAsync(order model.Order) {
	user, err := u.users.FindByID(context.Background(), order.UserID)
	if err != nil || user == nil {
		log.Printf("order %d: confirmation mail skipped: user lookup failed", order.ID)
		return
	}

	go func(to string, o model.Order) {
		if err := u.mailer.SendOrderConfirmation(to, o); err != nil {
			log.Printf("order %d: confirmation mail failed: %v", o.ID, err)
		}
	}(user.Email, order)
}

func (u *OrderUsecase) GetOrder(ctx context.Context, userID int64, orderID int64) (model.Order, error) {
	if userID <= 0 {
		return model.Order{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return model.Order{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	o, err := u.orders.FindByID(ctx, orderID)
	if err == repo.ErrNotFound {
		return model.Order{}, NewHTTPError(http.StatusNotFound, "order not found")
	}
	if err != nil {
		return model.Order{}, NewHTTPError(http.StatusInternalServerError, "server error")
	}
	if o.UserID != userID {
		return model.Order{}, NewHTTPError(http.StatusForbidden, "not authorized")
	}
	return o, nil
}

func (u *OrderUsecase) ListMyOrders(ctx context.Context, userID int64) ([]model.Order, error) {
	if userID <= 0 {
		return nil, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	orders, err := u.orders.ListByUserID(ctx, userID)
	if err != nil {
		return nil, NewHTTPError(http.StatusInternalServerError, "server error")
	}
	return orders, nil
}

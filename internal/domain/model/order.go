package model

import "time"

type PaymentMethod string

const (
	PaymentCOD    PaymentMethod = "cod"
	PaymentOnline PaymentMethod = "online"
)

func ValidPaymentMethod(m PaymentMethod) bool {
	return m == PaymentCOD || m == PaymentOnline
}

// Free-text address plus the optional coordinates the map picker produced.
type DeliveryAddress struct {
	Text      string   `gorm:"type:varchar(500)" json:"text"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

// Order owns its ShopOrders which own their ShopOrderItems. The whole tree
// is written in one transaction and never mutated afterwards.
type Order struct {
	ID              int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID          int64           `gorm:"not null;index" json:"user"`
	PaymentMethod   PaymentMethod   `gorm:"type:varchar(10);not null" json:"paymentMethod"`
	DeliveryAddress DeliveryAddress `gorm:"embedded;embeddedPrefix:delivery_" json:"deliveryAddress"`
	TotalAmount     int64           `gorm:"not null" json:"totalAmount"`
	ShopOrders      []ShopOrder     `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"shopOrder"`
	CreatedAt       time.Time       `gorm:"not null;autoCreateTime" json:"created_at"`
}

// The slice of an order attributable to a single shop.
type ShopOrder struct {
	ID       int64           `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID  int64           `gorm:"not null;index" json:"-"`
	ShopID   int64           `gorm:"not null;index" json:"shop"`
	OwnerID  int64           `gorm:"not null;index" json:"owner"`
	Subtotal int64           `gorm:"not null" json:"subTotal"`
	Items    []ShopOrderItem `gorm:"foreignKey:ShopOrderID;constraint:OnDelete:CASCADE" json:"shopOrderItems"`

	Shop *Shop `gorm:"foreignKey:ShopID" json:"shopDetails,omitempty"`
}

type ShopOrderItem struct {
	ID          int64 `gorm:"primaryKey;autoIncrement" json:"id"`
	ShopOrderID int64 `gorm:"not null;index" json:"-"`
	ItemID      int64 `gorm:"not null;index" json:"items"`
	// price at the moment of ordering, not the live catalog price
	PriceSnapshot int64 `gorm:"not null" json:"price"`
	Quantity      int64 `gorm:"not null" json:"quantity"`

	Item *Item `gorm:"foreignKey:ItemID" json:"itemDetails,omitempty"`
}

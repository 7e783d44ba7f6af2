package usecase

import "math"

// Billing constants. Tax and the delivery-fee waiver are applied per shop
// group; the frontend shows the same figures, so these must not drift.
const (
	TaxRatePercent        = 5
	FreeDeliveryThreshold = 500
	FlatDeliveryFee       = 40
)

// A single cart entry as the client holds it: item, the shop it came from,
// the unit price at add-to-cart time, and a quantity of at least 1.
type CartLine struct {
	ItemID   int64  `json:"itemId"`
	ShopID   int64  `json:"shopId"`
	ShopName string `json:"shopName"`
	Price    int64  `json:"price"`
	Quantity int64  `json:"quantity"`
}

type ShopGroup struct {
	ShopID      int64      `json:"shopId"`
	ShopName    string     `json:"shopName"`
	Lines       []CartLine `json:"lines"`
	Subtotal    int64      `json:"subTotal"`
	Tax         int64      `json:"tax"`
	DeliveryFee int64      `json:"deliveryFee"`
}

type CartTotals struct {
	Groups      []ShopGroup `json:"groups"`
	Subtotal    int64       `json:"subTotal"`
	Tax         int64       `json:"tax"`
	DeliveryFee int64       `json:"deliveryFee"`
	Payable     int64       `json:"totalPayable"`
}

// AggregateCart partitions a flat cart into per-shop groups, preserving the
// order shops first appear in, and computes the billing figures. An empty
// cart yields zero totals and no groups.
func AggregateCart(lines []CartLine) CartTotals {
	var order []int64
	byShop := make(map[int64]*ShopGroup)

	for _, line := range lines {
		g, ok := byShop[line.ShopID]
		if !ok {
			g = &ShopGroup{ShopID: line.ShopID, ShopName: line.ShopName}
			byShop[line.ShopID] = g
			order = append(order, line.ShopID)
		}
		g.Lines = append(g.Lines, line)
		g.Subtotal += line.Price * line.Quantity
	}

	totals := CartTotals{Groups: make([]ShopGroup, 0, len(order))}
	for _, shopID := range order {
		g := byShop[shopID]
		g.Tax = roundTax(g.Subtotal)
		if g.Subtotal >= FreeDeliveryThreshold {
			g.DeliveryFee = 0
		} else {
			g.DeliveryFee = FlatDeliveryFee
		}

		totals.Subtotal += g.Subtotal
		totals.Tax += g.Tax
		totals.DeliveryFee += g.DeliveryFee
		totals.Groups = append(totals.Groups, *g)
	}

	totals.Payable = totals.Subtotal + totals.Tax + totals.DeliveryFee
	return totals
}

// round to nearest, half away from zero
func roundTax(subtotal int64) int64 {
	return int64(math.Round(float64(subtotal) * TaxRatePercent / 100))
}

package domain

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"
)

const (
	ItemIDShipping = "Shipping"
	ItemIDTax      = "Tax"
	ItemIDDiscount = "Discount"
)

// PaymentItem is one line of the itemised breakdown sent to the provider.
type PaymentItem struct {
	ID          string
	Description string
	Quantity    int
	Price       decimal.Decimal
}

// PrepareItems derives the provider item list for an order. The last item, when
// present, reconciles the running sum with the order total so that
// ItemsTotal(PrepareItems(o)) always equals o.OrderTotal.
func PrepareItems(o *Order) []PaymentItem {
	items := make([]PaymentItem, 0, len(o.Items)+len(o.CheckoutAttributes)+3)

	for _, line := range o.Items {
		items = append(items, PaymentItem{
			ID:          lineItemID(line),
			Description: line.ProductName,
			Quantity:    line.Quantity,
			Price:       line.UnitPriceExclTax,
		})
	}

	for _, attr := range o.CheckoutAttributes {
		if !attr.Price.IsPositive() {
			continue
		}
		items = append(items, PaymentItem{
			ID:          attr.Attribute,
			Description: fmt.Sprintf("%s - %s", attr.Attribute, attr.Value),
			Quantity:    1,
			Price:       attr.Price,
		})
	}

	if o.OrderShippingExclTax.IsPositive() {
		items = append(items, PaymentItem{
			ID:          ItemIDShipping,
			Description: fmt.Sprintf("Shipping by %s", o.ShippingMethod),
			Quantity:    1,
			Price:       o.OrderShippingExclTax,
		})
	}

	if o.OrderTax.IsPositive() {
		items = append(items, PaymentItem{
			ID:          ItemIDTax,
			Description: "Order tax amount",
			Quantity:    1,
			Price:       o.OrderTax,
		})
	}

	// discounts, gift cards and reward points show up only as a gap against the total
	if gap := o.OrderTotal.Sub(ItemsTotal(items)); !gap.IsZero() {
		items = append(items, PaymentItem{
			ID:          ItemIDDiscount,
			Description: "Discounts, gift cards, rewarded point amount applied to cart, etc",
			Quantity:    1,
			Price:       gap,
		})
	}

	return items
}

// ItemsTotal sums price*quantity over items.
func ItemsTotal(items []PaymentItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}

func lineItemID(line OrderItem) string {
	if line.SKU != "" {
		return line.SKU
	}
	if line.ProductID != 0 {
		return strconv.FormatInt(line.ProductID, 10)
	}
	return line.ProductName
}

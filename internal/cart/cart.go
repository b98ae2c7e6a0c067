package cart

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/Elmorjene/elmorjene-officiel/internal/catalog"
)

type Item struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Cart holds the selection for one browsing session. It is not safe for
// concurrent use on its own; the Store serializes access per session.
type Cart struct {
	ID               string    `json:"id"`
	Items            []Item    `json:"items"`
	VerificationCode string    `json:"verificationCode,omitempty"`
	UpdatedAt        time.Time `json:"updatedAt"`
}

// AddItem increments the quantity when the product is already in the cart,
// otherwise appends it with quantity 1.
func (c *Cart) AddItem(p catalog.Product) {
	for i := range c.Items {
		if c.Items[i].Product.ID == p.ID {
			c.Items[i].Quantity++
			c.UpdatedAt = time.Now()
			return
		}
	}
	c.Items = append(c.Items, Item{Product: p, Quantity: 1})
	c.UpdatedAt = time.Now()
}

// RemoveItem drops the item entirely, regardless of quantity.
func (c *Cart) RemoveItem(productID int) {
	items := c.Items[:0]
	for _, it := range c.Items {
		if it.Product.ID != productID {
			items = append(items, it)
		}
	}
	c.Items = items
	c.UpdatedAt = time.Now()
}

// UpdateQuantity sets the quantity directly. A quantity of zero keeps the
// item in the cart; removal is a separate operation. Callers clamp to >= 0.
func (c *Cart) UpdateQuantity(productID, quantity int) {
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items[i].Quantity = quantity
			c.UpdatedAt = time.Now()
			return
		}
	}
}

// Clear empties the cart and forgets any stored verification code.
func (c *Cart) Clear() {
	c.Items = nil
	c.VerificationCode = ""
	c.UpdatedAt = time.Now()
}

// Total recomputes the cart total on every call. Prices arrive as decimal
// strings; values that do not parse contribute zero.
func (c *Cart) Total() decimal.Decimal {
	sum := decimal.Zero
	for _, it := range c.Items {
		price, err := decimal.NewFromString(it.Product.Price)
		if err != nil {
			continue
		}
		sum = sum.Add(price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return sum
}

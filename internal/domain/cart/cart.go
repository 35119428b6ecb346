package cart

import (
	"github.com/shopspring/decimal"
)

// Line is one item entry in an open cart. Lines are mutable in place
// until checkout copies them into an order.
type Line struct {
	ItemID   string          `json:"item_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Cart holds the open lines for one user, in insertion order.
// Item IDs are unique within a cart.
type Cart struct {
	UserID string `json:"user_id"`
	Items  []Line `json:"items"`
}

func New(userID string) *Cart {
	return &Cart{UserID: userID, Items: []Line{}}
}

// AddLine appends the line, or merges its quantity into the existing line
// with the same item id. On merge the stored name and price win, so a
// price change upstream never drifts an already open cart.
func (c *Cart) AddLine(l Line) {
	for i := range c.Items {
		if c.Items[i].ItemID == l.ItemID {
			c.Items[i].Quantity += l.Quantity
			return
		}
	}
	c.Items = append(c.Items, l)
}

// RemoveLine drops the line with the given item id. Removing an id that
// is not in the cart is a no-op, never an error.
func (c *Cart) RemoveLine(itemID string) {
	kept := c.Items[:0]
	for _, l := range c.Items {
		if l.ItemID != itemID {
			kept = append(kept, l)
		}
	}
	c.Items = kept
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Subtotal is the exact decimal sum of price*quantity over all lines.
func (c *Cart) Subtotal() decimal.Decimal {
	subtotal := decimal.Zero
	for _, l := range c.Items {
		subtotal = subtotal.Add(l.Price.Mul(decimal.NewFromInt(int64(l.Quantity))))
	}
	return subtotal
}

func (c *Cart) TotalQuantity() int {
	total := 0
	for _, l := range c.Items {
		total += l.Quantity
	}
	return total
}

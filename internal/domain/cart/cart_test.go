//go:build unit

package cart_test

import (
	"testing"

	"ecom-store/internal/domain/cart"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func line(id, name, price string, qty int) cart.Line {
	return cart.Line{
		ItemID:   id,
		Name:     name,
		Price:    decimal.RequireFromString(price),
		Quantity: qty,
	}
}

func TestAddLine(t *testing.T) {
	t.Run("appends distinct items in insertion order", func(t *testing.T) {
		c := cart.New("alice")
		c.AddLine(line("b", "Mouse", "25.50", 1))
		c.AddLine(line("a", "Laptop", "999.99", 1))

		require.Len(t, c.Items, 2)
		assert.Equal(t, "b", c.Items[0].ItemID)
		assert.Equal(t, "a", c.Items[1].ItemID)
	})

	t.Run("merging keeps the first name and price", func(t *testing.T) {
		c := cart.New("alice")
		c.AddLine(line("a", "Laptop", "999.99", 2))
		c.AddLine(line("a", "Other", "1.00", 3))

		require.Len(t, c.Items, 1)
		assert.Equal(t, 5, c.Items[0].Quantity)
		assert.Equal(t, "Laptop", c.Items[0].Name)
		assert.True(t, c.Items[0].Price.Equal(decimal.RequireFromString("999.99")))
	})
}

func TestRemoveLine(t *testing.T) {
	c := cart.New("alice")
	c.AddLine(line("a", "Laptop", "999.99", 1))
	c.AddLine(line("b", "Mouse", "25.50", 1))

	c.RemoveLine("a")
	require.Len(t, c.Items, 1)
	assert.Equal(t, "b", c.Items[0].ItemID)

	// removing an unknown id changes nothing
	c.RemoveLine("zzz")
	assert.Len(t, c.Items, 1)

	c.RemoveLine("b")
	assert.True(t, c.IsEmpty())
}

func TestSubtotal(t *testing.T) {
	c := cart.New("alice")
	assert.True(t, c.Subtotal().IsZero())

	// 0.10 * 3 would drift under binary floats; decimals stay exact
	c.AddLine(line("a", "Sticker", "0.10", 3))
	c.AddLine(line("b", "Laptop", "999.99", 2))

	assert.True(t, c.Subtotal().Equal(decimal.RequireFromString("2000.28")), "got %s", c.Subtotal())
	assert.Equal(t, 5, c.TotalQuantity())
}

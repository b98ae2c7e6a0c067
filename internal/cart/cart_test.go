package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Elmorjene/elmorjene-officiel/internal/catalog"
)

func product(id int, price string) catalog.Product {
	return catalog.Product{ID: id, Name: "p", Price: price}
}

func TestAddItem_NewProduct(t *testing.T) {
	c := &Cart{}
	c.AddItem(product(1, "4.99"))

	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestAddItem_SameProductIncrements(t *testing.T) {
	c := &Cart{}
	c.AddItem(product(1, "4.99"))
	c.AddItem(product(1, "4.99"))

	require.Len(t, c.Items, 1, "adding the same product twice must not duplicate the entry")
	assert.Equal(t, 2, c.Items[0].Quantity)
}

func TestRemoveItem_DropsRegardlessOfQuantity(t *testing.T) {
	c := &Cart{}
	c.AddItem(product(1, "4.99"))
	c.AddItem(product(1, "4.99"))
	c.AddItem(product(2, "10.00"))

	c.RemoveItem(1)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.Items[0].Product.ID)
}

func TestUpdateQuantity_ZeroKeepsItem(t *testing.T) {
	c := &Cart{}
	c.AddItem(product(1, "4.99"))

	c.UpdateQuantity(1, 0)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 0, c.Items[0].Quantity)
	assert.Equal(t, "0", c.Total().String())
}

func TestUpdateQuantity_UnknownProductIsNoop(t *testing.T) {
	c := &Cart{}
	c.AddItem(product(1, "4.99"))

	c.UpdateQuantity(99, 5)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestTotal_RecomputedAfterEveryMutation(t *testing.T) {
	c := &Cart{}
	assert.Equal(t, "0", c.Total().String())

	c.AddItem(product(1, "4.99"))
	c.AddItem(product(1, "4.99"))
	c.AddItem(product(3, "3.99"))
	assert.Equal(t, "13.97", c.Total().String())

	c.UpdateQuantity(1, 3)
	assert.Equal(t, "18.96", c.Total().String())

	c.RemoveItem(3)
	assert.Equal(t, "14.97", c.Total().String())

	c.UpdateQuantity(1, 0)
	assert.Equal(t, "0", c.Total().String())
}

func TestTotal_UnparseablePriceCountsAsZero(t *testing.T) {
	c := &Cart{}
	c.AddItem(product(1, "not-a-number"))
	c.AddItem(product(2, "2.50"))

	assert.Equal(t, "2.5", c.Total().String())
}

func TestClear_EmptiesCartAndVerificationCode(t *testing.T) {
	c := &Cart{VerificationCode: "123456"}
	c.AddItem(product(1, "4.99"))

	c.Clear()

	assert.Empty(t, c.Items)
	assert.Empty(t, c.VerificationCode)
	assert.Equal(t, "0", c.Total().String())
}

func TestStore_GetOrCreate(t *testing.T) {
	s := NewStore()

	require.Nil(t, s.Get("session-1"))

	c := s.GetOrCreate("session-1")
	require.NotNil(t, c)
	assert.NotEmpty(t, c.ID)

	again := s.GetOrCreate("session-1")
	assert.Same(t, c, again)

	other := s.GetOrCreate("session-2")
	assert.NotSame(t, c, other)

	s.Delete("session-1")
	assert.Nil(t, s.Get("session-1"))
}

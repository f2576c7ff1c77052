package entities_test

import (
	"testing"

	"github.com/SergeyBogomolovv/order-tracker/internal/entities"
	"github.com/stretchr/testify/assert"
)

func TestFilterItems(t *testing.T) {
	items := []entities.ItemInput{
		{ProductID: 1, Quantity: 0},
		{ProductID: 2, Quantity: 4},
		{ProductID: 3, Quantity: -1},
		{ProductID: 2, Quantity: 1},
	}

	got := entities.FilterItems(items)

	assert.Equal(t, []entities.ItemInput{
		{ProductID: 2, Quantity: 4},
		{ProductID: 2, Quantity: 1},
	}, got)
	assert.Empty(t, entities.FilterItems(nil))
	assert.NotNil(t, entities.FilterItems(nil))
}

func TestProductIDs(t *testing.T) {
	items := []entities.ItemInput{
		{ProductID: 3, Quantity: 1},
		{ProductID: 1, Quantity: 2},
		{ProductID: 3, Quantity: 5},
	}
	assert.Equal(t, []int64{3, 1}, entities.ProductIDs(items))
}

func TestOrder_TotalQuantity(t *testing.T) {
	o := entities.Order{Items: []entities.OrderItem{
		{Quantity: 2}, {Quantity: 7}, {Quantity: 1},
	}}
	assert.Equal(t, 10, o.TotalQuantity())
	assert.Zero(t, entities.Order{}.TotalQuantity())
}

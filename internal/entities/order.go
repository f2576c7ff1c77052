package entities

import (
	"errors"
	"time"
)

type Order struct {
	ID            int64
	CustomerID    int64
	Status        OrderStatus
	PaymentStatus PaymentStatus
	InvoiceStatus InvoiceStatus
	Note          string
	CreatedAt     time.Time

	Customer Customer
	Items    []OrderItem
}

// TotalQuantity суммирует количество по всем позициям заказа.
func (o Order) TotalQuantity() int {
	total := 0
	for _, it := range o.Items {
		total += it.Quantity
	}
	return total
}

type OrderItem struct {
	ID        int64
	OrderID   int64
	ProductID int64
	Quantity  int

	Product Product
}

// ItemInput позиция заказа в том виде, в котором её прислал клиент.
type ItemInput struct {
	ProductID int64
	Quantity  int
}

// FilterItems отбрасывает позиции с неположительным количеством, сохраняя порядок.
func FilterItems(items []ItemInput) []ItemInput {
	res := make([]ItemInput, 0, len(items))
	for _, it := range items {
		if it.Quantity > 0 {
			res = append(res, it)
		}
	}
	return res
}

// ProductIDs возвращает уникальные идентификаторы товаров из позиций.
func ProductIDs(items []ItemInput) []int64 {
	seen := make(map[int64]struct{}, len(items))
	ids := make([]int64, 0, len(items))
	for _, it := range items {
		if _, ok := seen[it.ProductID]; ok {
			continue
		}
		seen[it.ProductID] = struct{}{}
		ids = append(ids, it.ProductID)
	}
	return ids
}

// NewOrder данные для создания заказа. Если CustomerID равен нулю,
// используется Customer и клиент создаётся вместе с заказом.
type NewOrder struct {
	CustomerID int64
	Customer   *CustomerInput

	Items []ItemInput
	Note  string

	Status        OrderStatus
	PaymentStatus PaymentStatus
	InvoiceStatus InvoiceStatus
}

// OrderUpdate частичное обновление заказа: nil означает "не менять".
// Items != nil (даже пустой) заменяет все позиции заказа.
type OrderUpdate struct {
	Status        *OrderStatus
	PaymentStatus *PaymentStatus
	InvoiceStatus *InvoiceStatus
	Note          *string
	Items         []ItemInput
}

type OrderFilter struct {
	Status        OrderStatus
	PaymentStatus PaymentStatus
	InvoiceStatus InvoiceStatus
	CustomerID    int64
	Search        string
}

type OrderStats struct {
	Total           int
	Delivered       int
	InPreparation   int
	Prepaid         int
	NotCollected    int
	UniqueCustomers int
	TotalQuantity   int
}

var (
	ErrOrderNotFound = errors.New("order not found")
	ErrNoCustomer    = errors.New("customer is required")
	ErrNoItems       = errors.New("at least one item with positive quantity is required")
)

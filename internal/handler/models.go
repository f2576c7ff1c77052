package handler

import (
	"time"

	"github.com/SergeyBogomolovv/order-tracker/internal/entities"
)

// Product товар
type Product struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Active bool   `json:"active"`
}

// Customer клиент
type Customer struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	Address   string    `json:"address,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// OrderItem позиция заказа
type OrderItem struct {
	ID        int64   `json:"id"`
	ProductID int64   `json:"productId"`
	Quantity  int     `json:"quantity"`
	Product   Product `json:"product"`
}

// Order заказ вместе с клиентом и позициями
type Order struct {
	ID            int64       `json:"id"`
	CustomerID    int64       `json:"customerId"`
	Customer      Customer    `json:"customer"`
	Status        string      `json:"status" enums:"in-preparation,delivered"`
	PaymentStatus string      `json:"paymentStatus" enums:"prepaid,not-collected,collect-on-delivery,credit"`
	InvoiceStatus string      `json:"invoiceStatus" enums:"issued,customer-declined,not-required"`
	Note          string      `json:"note,omitempty"`
	Items         []OrderItem `json:"items"`
	TotalQuantity int         `json:"totalQuantity"`
	CreatedAt     time.Time   `json:"createdAt"`
}

// OrderStats сводная статистика по заказам
type OrderStats struct {
	Total           int `json:"total"`
	Delivered       int `json:"delivered"`
	InPreparation   int `json:"inPreparation"`
	Prepaid         int `json:"prepaid"`
	NotCollected    int `json:"notCollected"`
	UniqueCustomers int `json:"uniqueCustomers"`
	TotalQuantity   int `json:"totalQuantity"`
}

// HealthResponse ответ проверки живости
type HealthResponse struct {
	Status string `json:"status"`
}

// CustomerRequest тело создания и обновления клиента
type CustomerRequest struct {
	Name    string `json:"name" validate:"required,max=200"`
	Phone   string `json:"phone" validate:"max=32"`
	Address string `json:"address" validate:"max=500"`
}

// ItemRequest позиция в запросе. Позиции с quantity <= 0 отбрасываются.
type ItemRequest struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity" validate:"lte=2147483647"`
}

// CreateOrderRequest тело создания заказа. Нужен customerId либо customer.
type CreateOrderRequest struct {
	CustomerID    int64            `json:"customerId" validate:"gte=0"`
	Customer      *CustomerRequest `json:"customer"`
	Items         []ItemRequest    `json:"items" validate:"omitempty,dive"`
	Note          string           `json:"note" validate:"max=1000"`
	Status        string           `json:"status"`
	PaymentStatus string           `json:"paymentStatus"`
	InvoiceStatus string           `json:"invoiceStatus"`
}

// UpdateOrderRequest частичное обновление заказа. Переданный items
// полностью заменяет позиции заказа.
type UpdateOrderRequest struct {
	Status        *string       `json:"status"`
	PaymentStatus *string       `json:"paymentStatus"`
	InvoiceStatus *string       `json:"invoiceStatus"`
	Note          *string       `json:"note" validate:"omitempty,max=1000"`
	Items         []ItemRequest `json:"items" validate:"omitempty,dive"`
}

func ProductEntityToJSON(p entities.Product) Product {
	return Product{
		ID:     p.ID,
		Name:   p.Name,
		Active: p.Active,
	}
}

func CustomerEntityToJSON(c entities.Customer) Customer {
	return Customer{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Address:   c.Address,
		CreatedAt: c.CreatedAt,
	}
}

func CustomerJSONToEntity(c CustomerRequest) entities.CustomerInput {
	return entities.CustomerInput{
		Name:    c.Name,
		Phone:   c.Phone,
		Address: c.Address,
	}
}

func ItemEntityToJSON(i entities.OrderItem) OrderItem {
	return OrderItem{
		ID:        i.ID,
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
		Product:   ProductEntityToJSON(i.Product),
	}
}

// ItemsJSONToEntity сохраняет различие между nil и пустым списком.
func ItemsJSONToEntity(items []ItemRequest) []entities.ItemInput {
	if items == nil {
		return nil
	}
	res := make([]entities.ItemInput, 0, len(items))
	for _, it := range items {
		res = append(res, entities.ItemInput{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return res
}

func OrderEntityToJSON(o entities.Order) Order {
	items := make([]OrderItem, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, ItemEntityToJSON(it))
	}

	return Order{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		Customer:      CustomerEntityToJSON(o.Customer),
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		InvoiceStatus: string(o.InvoiceStatus),
		Note:          o.Note,
		Items:         items,
		TotalQuantity: o.TotalQuantity(),
		CreatedAt:     o.CreatedAt,
	}
}

func OrderStatsEntityToJSON(s entities.OrderStats) OrderStats {
	return OrderStats{
		Total:           s.Total,
		Delivered:       s.Delivered,
		InPreparation:   s.InPreparation,
		Prepaid:         s.Prepaid,
		NotCollected:    s.NotCollected,
		UniqueCustomers: s.UniqueCustomers,
		TotalQuantity:   s.TotalQuantity,
	}
}

func (r CreateOrderRequest) ToEntity() (entities.NewOrder, error) {
	o := entities.NewOrder{
		CustomerID: r.CustomerID,
		Items:      ItemsJSONToEntity(r.Items),
		Note:       r.Note,
	}
	if r.Customer != nil {
		c := CustomerJSONToEntity(*r.Customer)
		o.Customer = &c
	}

	var err error
	if r.Status != "" {
		if o.Status, err = entities.ParseOrderStatus(r.Status); err != nil {
			return entities.NewOrder{}, err
		}
	}
	if r.PaymentStatus != "" {
		if o.PaymentStatus, err = entities.ParsePaymentStatus(r.PaymentStatus); err != nil {
			return entities.NewOrder{}, err
		}
	}
	if r.InvoiceStatus != "" {
		if o.InvoiceStatus, err = entities.ParseInvoiceStatus(r.InvoiceStatus); err != nil {
			return entities.NewOrder{}, err
		}
	}
	return o, nil
}

func (r UpdateOrderRequest) ToEntity() (entities.OrderUpdate, error) {
	upd := entities.OrderUpdate{
		Note:  r.Note,
		Items: ItemsJSONToEntity(r.Items),
	}

	if r.Status != nil {
		s, err := entities.ParseOrderStatus(*r.Status)
		if err != nil {
			return entities.OrderUpdate{}, err
		}
		upd.Status = &s
	}
	if r.PaymentStatus != nil {
		s, err := entities.ParsePaymentStatus(*r.PaymentStatus)
		if err != nil {
			return entities.OrderUpdate{}, err
		}
		upd.PaymentStatus = &s
	}
	if r.InvoiceStatus != nil {
		s, err := entities.ParseInvoiceStatus(*r.InvoiceStatus)
		if err != nil {
			return entities.OrderUpdate{}, err
		}
		upd.InvoiceStatus = &s
	}
	return upd, nil
}

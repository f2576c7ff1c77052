package repo

import (
	"database/sql"
	"time"

	"github.com/SergeyBogomolovv/order-tracker/internal/entities"
)

type Order struct {
	ID            int64          `db:"id"`
	CustomerID    int64          `db:"customer_id"`
	Status        string         `db:"status"`
	PaymentStatus string         `db:"payment_status"`
	InvoiceStatus string         `db:"invoice_status"`
	Note          sql.NullString `db:"note"`
	CreatedAt     time.Time      `db:"created_at"`

	CustomerName      string         `db:"customer_name"`
	CustomerPhone     sql.NullString `db:"customer_phone"`
	CustomerAddress   sql.NullString `db:"customer_address"`
	CustomerCreatedAt time.Time      `db:"customer_created_at"`
}

type Item struct {
	ID            int64  `db:"id"`
	OrderID       int64  `db:"order_id"`
	ProductID     int64  `db:"product_id"`
	Quantity      int    `db:"quantity"`
	ProductName   string `db:"product_name"`
	ProductActive bool   `db:"product_active"`
}

type Customer struct {
	ID        int64          `db:"id"`
	Name      string         `db:"name"`
	Phone     sql.NullString `db:"phone"`
	Address   sql.NullString `db:"address"`
	CreatedAt time.Time      `db:"created_at"`
}

type Product struct {
	ID     int64  `db:"id"`
	Name   string `db:"name"`
	Active bool   `db:"active"`
}

type Stats struct {
	Total           int `db:"total"`
	Delivered       int `db:"delivered"`
	InPreparation   int `db:"in_preparation"`
	Prepaid         int `db:"prepaid"`
	NotCollected    int `db:"not_collected"`
	UniqueCustomers int `db:"unique_customers"`
	TotalQuantity   int `db:"total_quantity"`
}

var orderColumns = []string{
	"o.id", "o.customer_id", "o.status", "o.payment_status", "o.invoice_status", "o.note", "o.created_at",
	"c.name AS customer_name", "c.phone AS customer_phone",
	"c.address AS customer_address", "c.created_at AS customer_created_at",
}

var itemColumns = []string{
	"oi.id", "oi.order_id", "oi.product_id", "oi.quantity",
	"p.name AS product_name", "p.active AS product_active",
}

var customerColumns = []string{"id", "name", "phone", "address", "created_at"}

func ItemToEntity(i Item) entities.OrderItem {
	return entities.OrderItem{
		ID:        i.ID,
		OrderID:   i.OrderID,
		ProductID: i.ProductID,
		Quantity:  i.Quantity,
		Product: entities.Product{
			ID:     i.ProductID,
			Name:   i.ProductName,
			Active: i.ProductActive,
		},
	}
}

func CustomerToEntity(c Customer) entities.Customer {
	return entities.Customer{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     nullStringToString(c.Phone),
		Address:   nullStringToString(c.Address),
		CreatedAt: c.CreatedAt,
	}
}

func ProductToEntity(p Product) entities.Product {
	return entities.Product{
		ID:     p.ID,
		Name:   p.Name,
		Active: p.Active,
	}
}

func OrderToEntity(o Order, items []Item) entities.Order {
	order := entities.Order{
		ID:            o.ID,
		CustomerID:    o.CustomerID,
		Status:        entities.OrderStatus(o.Status),
		PaymentStatus: entities.PaymentStatus(o.PaymentStatus),
		InvoiceStatus: entities.InvoiceStatus(o.InvoiceStatus),
		Note:          nullStringToString(o.Note),
		CreatedAt:     o.CreatedAt,
		Customer: entities.Customer{
			ID:        o.CustomerID,
			Name:      o.CustomerName,
			Phone:     nullStringToString(o.CustomerPhone),
			Address:   nullStringToString(o.CustomerAddress),
			CreatedAt: o.CustomerCreatedAt,
		},
		Items: make([]entities.OrderItem, 0, len(items)),
	}

	for _, it := range items {
		order.Items = append(order.Items, ItemToEntity(it))
	}

	return order
}

func StatsToEntity(s Stats) entities.OrderStats {
	return entities.OrderStats{
		Total:           s.Total,
		Delivered:       s.Delivered,
		InPreparation:   s.InPreparation,
		Prepaid:         s.Prepaid,
		NotCollected:    s.NotCollected,
		UniqueCustomers: s.UniqueCustomers,
		TotalQuantity:   s.TotalQuantity,
	}
}

func nullStringToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

func nullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

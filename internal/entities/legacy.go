package entities

import (
	"fmt"
	"strings"
)

// LegacyOrder заказ в плоском формате веб-клиента: один товар строкой,
// заказчик строкой и статусы свободным текстом.
type LegacyOrder struct {
	ListNo        string
	OrdererName   string
	ProductName   string
	Quantity      int
	Status        string
	PaymentStatus string
	InvoiceStatus string
}

// Normalize переводит статусы в канонический словарь. Пустой статус
// заменяется значением по умолчанию.
func (l LegacyOrder) Normalize() (OrderStatus, PaymentStatus, InvoiceStatus, error) {
	status, payment, invoice := DefaultOrderStatus, DefaultPaymentStatus, DefaultInvoiceStatus
	var err error

	if strings.TrimSpace(l.Status) != "" {
		if status, err = ParseOrderStatus(l.Status); err != nil {
			return "", "", "", fmt.Errorf("status: %w", err)
		}
	}
	if strings.TrimSpace(l.PaymentStatus) != "" {
		if payment, err = ParsePaymentStatus(l.PaymentStatus); err != nil {
			return "", "", "", fmt.Errorf("payment status: %w", err)
		}
	}
	if strings.TrimSpace(l.InvoiceStatus) != "" {
		if invoice, err = ParseInvoiceStatus(l.InvoiceStatus); err != nil {
			return "", "", "", fmt.Errorf("invoice status: %w", err)
		}
	}
	return status, payment, invoice, nil
}

// Note собирает заметку заказа из номера списка.
func (l LegacyOrder) Note() string {
	if l.ListNo == "" {
		return ""
	}
	return "liste no: " + l.ListNo
}

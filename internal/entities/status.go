package entities

import (
	"errors"
	"fmt"
	"strings"
)

type OrderStatus string

const (
	StatusInPreparation OrderStatus = "in-preparation"
	StatusDelivered     OrderStatus = "delivered"
)

type PaymentStatus string

const (
	PaymentPrepaid           PaymentStatus = "prepaid"
	PaymentNotCollected      PaymentStatus = "not-collected"
	PaymentCollectOnDelivery PaymentStatus = "collect-on-delivery"
	PaymentCredit            PaymentStatus = "credit"
)

type InvoiceStatus string

const (
	InvoiceIssued           InvoiceStatus = "issued"
	InvoiceCustomerDeclined InvoiceStatus = "customer-declined"
	InvoiceNotRequired      InvoiceStatus = "not-required"
)

// Значения по умолчанию для нового заказа.
const (
	DefaultOrderStatus   = StatusInPreparation
	DefaultPaymentStatus = PaymentNotCollected
	DefaultInvoiceStatus = InvoiceNotRequired
)

var ErrInvalidStatus = errors.New("invalid status")

func (s OrderStatus) Valid() bool {
	switch s {
	case StatusInPreparation, StatusDelivered:
		return true
	default:
		return false
	}
}

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentPrepaid, PaymentNotCollected, PaymentCollectOnDelivery, PaymentCredit:
		return true
	default:
		return false
	}
}

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceIssued, InvoiceCustomerDeclined, InvoiceNotRequired:
		return true
	default:
		return false
	}
}

// alias связывает каноническое значение с его написаниями в мобильном
// и веб-клиентах.
type alias[T ~string] struct {
	canonical T
	names     []string
}

var orderStatusAliases = []alias[OrderStatus]{
	{StatusInPreparation, []string{"HAZIRLANIYOR", "Hazırlandı", "Teslim Edilmedi", "prepared", "not-delivered"}},
	{StatusDelivered, []string{"TESLIM_EDILDI", "Teslim Edildi"}},
}

var paymentStatusAliases = []alias[PaymentStatus]{
	{PaymentPrepaid, []string{"ONDEN_ODEME_ALINDI", "Tahsil Edildi", "collected"}},
	{PaymentNotCollected, []string{"TAHSIL_EDILMEDI", "Tahsil Edilmedi"}},
	{PaymentCollectOnDelivery, []string{"TESLIM_ANINDA"}},
	{PaymentCredit, []string{"VERESIYE"}},
}

var invoiceStatusAliases = []alias[InvoiceStatus]{
	{InvoiceIssued, []string{"KESILDI", "Fatura Kesildi"}},
	{InvoiceCustomerDeclined, []string{"ISTEMIYOR", "Fatura İstemiyor"}},
	{InvoiceNotRequired, []string{"GEREK_YOK", "Fatura Kesilecek", "to-be-issued"}},
}

func ParseOrderStatus(s string) (OrderStatus, error) {
	return parseStatus(s, orderStatusAliases)
}

func ParsePaymentStatus(s string) (PaymentStatus, error) {
	return parseStatus(s, paymentStatusAliases)
}

func ParseInvoiceStatus(s string) (InvoiceStatus, error) {
	return parseStatus(s, invoiceStatusAliases)
}

func parseStatus[T ~string](s string, table []alias[T]) (T, error) {
	s = strings.TrimSpace(s)
	for _, a := range table {
		if strings.EqualFold(s, string(a.canonical)) {
			return a.canonical, nil
		}
		for _, name := range a.names {
			if strings.EqualFold(s, name) {
				return a.canonical, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
}

package entities

import (
	"errors"
	"time"
)

type Customer struct {
	ID        int64
	Name      string
	Phone     string
	Address   string
	CreatedAt time.Time
}

type CustomerInput struct {
	Name    string
	Phone   string
	Address string
}

var (
	ErrCustomerNotFound = errors.New("customer not found")
	ErrInvalidCustomer  = errors.New("customer name is required")
)

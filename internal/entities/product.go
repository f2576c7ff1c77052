package entities

import "errors"

type Product struct {
	ID     int64
	Name   string
	Active bool
}

var ErrProductNotFound = errors.New("product not found")

package service

import (
	"context"

	"github.com/SergeyBogomolovv/order-tracker/internal/entities"
)

type ProductRepo interface {
	ListActiveProducts(ctx context.Context) ([]entities.Product, error)
	CountProducts(ctx context.Context, ids []int64) (int, error)
	FindProductByName(ctx context.Context, name string) (entities.Product, error)
}

type productService struct {
	repo ProductRepo
}

func NewProductService(repo ProductRepo) *productService {
	return &productService{repo: repo}
}

func (s *productService) ListProducts(ctx context.Context) ([]entities.Product, error) {
	return s.repo.ListActiveProducts(ctx)
}

package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/order-tracker/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) ListActiveProducts(ctx context.Context) ([]entities.Product, error) {
	query, args := r.qb.Select("id", "name", "active").
		From("products").
		Where(sq.Eq{"active": true}).
		OrderBy("id ASC").
		MustSql()

	var products []Product
	if err := r.conn(ctx).SelectContext(ctx, &products, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select products: %w", err)
	}

	result := make([]entities.Product, 0, len(products))
	for _, p := range products {
		result = append(result, ProductToEntity(p))
	}
	return result, nil
}

// CountProducts возвращает, сколько из переданных идентификаторов существует.
func (r *postgresRepo) CountProducts(ctx context.Context, ids []int64) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	query, args := r.qb.Select("COUNT(*)").
		From("products").
		Where(sq.Eq{"id": ids}).
		MustSql()

	var count int
	if err := r.conn(ctx).GetContext(ctx, &count, query, args...); err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

func (r *postgresRepo) FindProductByName(ctx context.Context, name string) (entities.Product, error) {
	query, args := r.qb.Select("id", "name", "active").
		From("products").
		Where("lower(name) = lower(?)", name).
		MustSql()

	var product Product
	err := r.conn(ctx).GetContext(ctx, &product, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Product{}, entities.ErrProductNotFound
	}
	if err != nil {
		return entities.Product{}, fmt.Errorf("failed to find product: %w", err)
	}
	return ProductToEntity(product), nil
}

package repo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/SergeyBogomolovv/order-tracker/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) ListCustomers(ctx context.Context) ([]entities.Customer, error) {
	query, args := r.qb.Select(customerColumns...).
		From("customers").
		OrderBy("created_at DESC", "id DESC").
		MustSql()

	var customers []Customer
	if err := r.conn(ctx).SelectContext(ctx, &customers, query, args...); err != nil {
		return nil, fmt.Errorf("failed to select customers: %w", err)
	}

	result := make([]entities.Customer, 0, len(customers))
	for _, c := range customers {
		result = append(result, CustomerToEntity(c))
	}
	return result, nil
}

func (r *postgresRepo) GetCustomerByID(ctx context.Context, id int64) (entities.Customer, error) {
	query, args := r.qb.Select(customerColumns...).
		From("customers").
		Where(sq.Eq{"id": id}).
		MustSql()

	var customer Customer
	err := r.conn(ctx).GetContext(ctx, &customer, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Customer{}, entities.ErrCustomerNotFound
	}
	if err != nil {
		return entities.Customer{}, fmt.Errorf("failed to get customer: %w", err)
	}
	return CustomerToEntity(customer), nil
}

func (r *postgresRepo) CreateCustomer(ctx context.Context, in entities.CustomerInput) (entities.Customer, error) {
	query, args := r.qb.Insert("customers").
		Columns("name", "phone", "address").
		Values(in.Name, nullString(in.Phone), nullString(in.Address)).
		Suffix("RETURNING id, name, phone, address, created_at").
		MustSql()

	var customer Customer
	if err := r.conn(ctx).GetContext(ctx, &customer, query, args...); err != nil {
		return entities.Customer{}, fmt.Errorf("failed to insert customer: %w", err)
	}
	return CustomerToEntity(customer), nil
}

func (r *postgresRepo) UpdateCustomer(ctx context.Context, id int64, in entities.CustomerInput) (entities.Customer, error) {
	query, args := r.qb.Update("customers").
		Set("name", in.Name).
		Set("phone", nullString(in.Phone)).
		Set("address", nullString(in.Address)).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, name, phone, address, created_at").
		MustSql()

	var customer Customer
	err := r.conn(ctx).GetContext(ctx, &customer, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Customer{}, entities.ErrCustomerNotFound
	}
	if err != nil {
		return entities.Customer{}, fmt.Errorf("failed to update customer: %w", err)
	}
	return CustomerToEntity(customer), nil
}

// FindCustomerByName ищет клиента по точному имени без учёта регистра.
// При нескольких совпадениях берётся самый старый.
func (r *postgresRepo) FindCustomerByName(ctx context.Context, name string) (entities.Customer, error) {
	query, args := r.qb.Select(customerColumns...).
		From("customers").
		Where("lower(name) = lower(?)", name).
		OrderBy("id").
		Limit(1).
		MustSql()

	var customer Customer
	err := r.conn(ctx).GetContext(ctx, &customer, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Customer{}, entities.ErrCustomerNotFound
	}
	if err != nil {
		return entities.Customer{}, fmt.Errorf("failed to find customer: %w", err)
	}
	return CustomerToEntity(customer), nil
}

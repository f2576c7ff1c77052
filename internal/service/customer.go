package service

import (
	"context"
	"log/slog"
	"strings"

	"github.com/SergeyBogomolovv/order-tracker/internal/entities"
)

type CustomerRepo interface {
	ListCustomers(ctx context.Context) ([]entities.Customer, error)
	GetCustomerByID(ctx context.Context, id int64) (entities.Customer, error)
	FindCustomerByName(ctx context.Context, name string) (entities.Customer, error)
	CreateCustomer(ctx context.Context, in entities.CustomerInput) (entities.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, in entities.CustomerInput) (entities.Customer, error)
}

// OrderCacheEvicter убирает из кэша заказы, в которые скопирован клиент.
type OrderCacheEvicter interface {
	RemoveFunc(fn func(id int64, order entities.Order) bool) int
}

type customerService struct {
	logger *slog.Logger
	repo   CustomerRepo
	orders OrderCacheEvicter
}

func NewCustomerService(logger *slog.Logger, repo CustomerRepo, orders OrderCacheEvicter) *customerService {
	return &customerService{
		logger: logger.With(slog.String("service", "customer")),
		repo:   repo,
		orders: orders,
	}
}

func (s *customerService) ListCustomers(ctx context.Context) ([]entities.Customer, error) {
	return s.repo.ListCustomers(ctx)
}

func (s *customerService) GetCustomer(ctx context.Context, id int64) (entities.Customer, error) {
	return s.repo.GetCustomerByID(ctx, id)
}

func (s *customerService) CreateCustomer(ctx context.Context, in entities.CustomerInput) (entities.Customer, error) {
	in, err := normalizeCustomer(in)
	if err != nil {
		return entities.Customer{}, err
	}

	customer, err := s.repo.CreateCustomer(ctx, in)
	if err != nil {
		return entities.Customer{}, err
	}
	s.logger.Debug("customer created", slog.Int64("customer_id", customer.ID))
	return customer, nil
}

// UpdateCustomer полностью заменяет имя, телефон и адрес клиента.
func (s *customerService) UpdateCustomer(ctx context.Context, id int64, in entities.CustomerInput) (entities.Customer, error) {
	in, err := normalizeCustomer(in)
	if err != nil {
		return entities.Customer{}, err
	}

	customer, err := s.repo.UpdateCustomer(ctx, id, in)
	if err != nil {
		return entities.Customer{}, err
	}

	evicted := s.orders.RemoveFunc(func(_ int64, order entities.Order) bool {
		return order.CustomerID == id
	})
	s.logger.Debug("customer updated", slog.Int64("customer_id", id), slog.Int("evicted_orders", evicted))
	return customer, nil
}

func normalizeCustomer(in entities.CustomerInput) (entities.CustomerInput, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Phone = strings.TrimSpace(in.Phone)
	in.Address = strings.TrimSpace(in.Address)
	if in.Name == "" {
		return entities.CustomerInput{}, entities.ErrInvalidCustomer
	}
	return in, nil
}

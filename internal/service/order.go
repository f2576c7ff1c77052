package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SergeyBogomolovv/order-tracker/internal/entities"
	"github.com/SergeyBogomolovv/order-tracker/pkg/trm"
)

type OrderRepo interface {
	ListOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error)
	LatestOrders(ctx context.Context, count int) ([]entities.Order, error)
	GetOrderByID(ctx context.Context, id int64) (entities.Order, error)
	OrderStats(ctx context.Context) (entities.OrderStats, error)

	CreateOrder(ctx context.Context, o entities.NewOrder) (int64, error)
	UpdateOrder(ctx context.Context, id int64, upd entities.OrderUpdate) error
	DeleteOrder(ctx context.Context, id int64) error

	// Позиции не редактируются по одной: только удалить все и вставить заново.
	DeleteItems(ctx context.Context, orderID int64) error
	SaveItems(ctx context.Context, orderID int64, items []entities.ItemInput) error
}

// Cache хранит заказы вместе с клиентом и позициями. Заполнение из базы
// идёт через SetIfEpoch, чтобы не перетереть инвалидацию, случившуюся
// во время чтения.
type Cache interface {
	Get(id int64) (entities.Order, bool)
	Epoch() uint64
	SetIfEpoch(id int64, order entities.Order, epoch uint64) bool
	Delete(id int64)
}

type orderService struct {
	logger    *slog.Logger
	txManager trm.Manager
	orders    OrderRepo
	customers CustomerRepo
	products  ProductRepo
	cache     Cache
}

func NewOrderService(
	logger *slog.Logger,
	txManager trm.Manager,
	orders OrderRepo,
	customers CustomerRepo,
	products ProductRepo,
	cache Cache,
) *orderService {
	return &orderService{
		logger:    logger.With(slog.String("service", "order")),
		txManager: txManager,
		orders:    orders,
		customers: customers,
		products:  products,
		cache:     cache,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, in entities.NewOrder) (entities.Order, error) {
	if in.CustomerID == 0 && in.Customer == nil {
		return entities.Order{}, entities.ErrNoCustomer
	}
	if in.CustomerID == 0 {
		customer, err := normalizeCustomer(*in.Customer)
		if err != nil {
			return entities.Order{}, err
		}
		in.Customer = &customer
	}

	in.Items = entities.FilterItems(in.Items)
	if len(in.Items) == 0 {
		return entities.Order{}, entities.ErrNoItems
	}

	if err := applyStatusDefaults(&in); err != nil {
		return entities.Order{}, err
	}

	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		customerID, err := s.resolveCustomer(ctx, in)
		if err != nil {
			return err
		}
		in.CustomerID = customerID

		if err := s.checkProducts(ctx, in.Items); err != nil {
			return err
		}

		id, err := s.orders.CreateOrder(ctx, in)
		if err != nil {
			return fmt.Errorf("failed to create order: %w", err)
		}
		if err := s.orders.SaveItems(ctx, id, in.Items); err != nil {
			return fmt.Errorf("failed to save items: %w", err)
		}

		order, err = s.orders.GetOrderByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load created order: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.logger.Debug("order created", slog.Int64("order_id", order.ID), slog.Int64("customer_id", order.CustomerID))
	return order, nil
}

// resolveCustomer возвращает id существующего клиента либо создаёт нового
// из данных, переданных вместе с заказом.
func (s *orderService) resolveCustomer(ctx context.Context, in entities.NewOrder) (int64, error) {
	if in.CustomerID != 0 {
		customer, err := s.customers.GetCustomerByID(ctx, in.CustomerID)
		if err != nil {
			return 0, err
		}
		return customer.ID, nil
	}

	customer, err := s.customers.CreateCustomer(ctx, *in.Customer)
	if err != nil {
		return 0, fmt.Errorf("failed to create customer: %w", err)
	}
	s.logger.Debug("customer created with order", slog.Int64("customer_id", customer.ID))
	return customer.ID, nil
}

func (s *orderService) checkProducts(ctx context.Context, items []entities.ItemInput) error {
	ids := entities.ProductIDs(items)
	if len(ids) == 0 {
		return nil
	}

	count, err := s.products.CountProducts(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to check products: %w", err)
	}
	if count != len(ids) {
		return entities.ErrProductNotFound
	}
	return nil
}

func (s *orderService) UpdateOrder(ctx context.Context, id int64, upd entities.OrderUpdate) (entities.Order, error) {
	if err := validateUpdate(upd); err != nil {
		return entities.Order{}, err
	}

	var order entities.Order
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		if err := s.orders.UpdateOrder(ctx, id, upd); err != nil {
			return err
		}

		if upd.Items != nil {
			items := entities.FilterItems(upd.Items)
			if err := s.checkProducts(ctx, items); err != nil {
				return err
			}
			if err := s.orders.DeleteItems(ctx, id); err != nil {
				return fmt.Errorf("failed to delete items: %w", err)
			}
			if err := s.orders.SaveItems(ctx, id, items); err != nil {
				return fmt.Errorf("failed to save items: %w", err)
			}
		}

		var err error
		order, err = s.orders.GetOrderByID(ctx, id)
		if err != nil {
			return fmt.Errorf("failed to load updated order: %w", err)
		}
		return nil
	})
	if err != nil {
		return entities.Order{}, err
	}

	s.cache.Delete(id)
	s.logger.Debug("order updated", slog.Int64("order_id", id))
	return order, nil
}

func (s *orderService) DeleteOrder(ctx context.Context, id int64) error {
	if err := s.orders.DeleteOrder(ctx, id); err != nil {
		return err
	}
	s.cache.Delete(id)
	s.logger.Debug("order deleted", slog.Int64("order_id", id))
	return nil
}

func (s *orderService) GetOrderByID(ctx context.Context, id int64) (entities.Order, error) {
	if order, ok := s.cache.Get(id); ok {
		return order, nil
	}

	epoch := s.cache.Epoch()
	order, err := s.orders.GetOrderByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}

	s.cache.SetIfEpoch(id, order, epoch)
	return order, nil
}

func (s *orderService) ListOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error) {
	return s.orders.ListOrders(ctx, f)
}

func (s *orderService) OrderStats(ctx context.Context) (entities.OrderStats, error) {
	return s.orders.OrderStats(ctx)
}

func (s *orderService) WarmUpCache(ctx context.Context, count int) error {
	epoch := s.cache.Epoch()
	orders, err := s.orders.LatestOrders(ctx, count)
	if err != nil {
		return fmt.Errorf("failed to load latest orders: %w", err)
	}
	for _, order := range orders {
		s.cache.SetIfEpoch(order.ID, order, epoch)
	}
	s.logger.Info("cache warmed up", slog.Int("orders", len(orders)))
	return nil
}

// ImportLegacyOrder создаёт заказ из плоского формата веб-клиента.
// Заказчик ищется по имени и создаётся, если не найден; товар ищется по имени.
func (s *orderService) ImportLegacyOrder(ctx context.Context, l entities.LegacyOrder) (entities.Order, error) {
	name := strings.TrimSpace(l.OrdererName)
	if name == "" {
		return entities.Order{}, entities.ErrNoCustomer
	}
	if l.Quantity <= 0 || strings.TrimSpace(l.ProductName) == "" {
		return entities.Order{}, entities.ErrNoItems
	}

	status, payment, invoice, err := l.Normalize()
	if err != nil {
		return entities.Order{}, err
	}

	var order entities.Order
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		product, err := s.products.FindProductByName(ctx, strings.TrimSpace(l.ProductName))
		if err != nil {
			return err
		}

		in := entities.NewOrder{
			Items:         []entities.ItemInput{{ProductID: product.ID, Quantity: l.Quantity}},
			Note:          l.Note(),
			Status:        status,
			PaymentStatus: payment,
			InvoiceStatus: invoice,
		}

		customer, err := s.customers.FindCustomerByName(ctx, name)
		switch {
		case errors.Is(err, entities.ErrCustomerNotFound):
			in.Customer = &entities.CustomerInput{Name: name}
		case err != nil:
			return err
		default:
			in.CustomerID = customer.ID
		}

		order, err = s.CreateOrder(ctx, in)
		return err
	})
	if err != nil {
		return entities.Order{}, err
	}
	return order, nil
}

func applyStatusDefaults(in *entities.NewOrder) error {
	if in.Status == "" {
		in.Status = entities.DefaultOrderStatus
	}
	if in.PaymentStatus == "" {
		in.PaymentStatus = entities.DefaultPaymentStatus
	}
	if in.InvoiceStatus == "" {
		in.InvoiceStatus = entities.DefaultInvoiceStatus
	}

	if !in.Status.Valid() || !in.PaymentStatus.Valid() || !in.InvoiceStatus.Valid() {
		return entities.ErrInvalidStatus
	}
	return nil
}

func validateUpdate(upd entities.OrderUpdate) error {
	if upd.Status != nil && !upd.Status.Valid() {
		return entities.ErrInvalidStatus
	}
	if upd.PaymentStatus != nil && !upd.PaymentStatus.Valid() {
		return entities.ErrInvalidStatus
	}
	if upd.InvoiceStatus != nil && !upd.InvoiceStatus.Valid() {
		return entities.ErrInvalidStatus
	}
	return nil
}

package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/SergeyBogomolovv/order-tracker/internal/entities"
	"github.com/SergeyBogomolovv/order-tracker/internal/service"
	mocks "github.com/SergeyBogomolovv/order-tracker/internal/service/mocks"
	"github.com/SergeyBogomolovv/order-tracker/pkg/cache"
	txMocks "github.com/SergeyBogomolovv/order-tracker/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type cachedDeps struct {
	orders    *mocks.MockOrderRepo
	customers *mocks.MockCustomerRepo
	products  *mocks.MockProductRepo
	tx        *txMocks.MockManager
	cache     *cache.LRUCache[int64, entities.Order]
}

func newCachedDeps(t *testing.T) cachedDeps {
	t.Helper()

	return cachedDeps{
		orders:    mocks.NewMockOrderRepo(t),
		customers: mocks.NewMockCustomerRepo(t),
		products:  mocks.NewMockProductRepo(t),
		tx:        txMocks.NewMockManager(t),
		cache:     cache.NewLRUCache[int64, entities.Order](10, time.Minute),
	}
}

func TestCustomerUpdate_EvictsCachedOrders(t *testing.T) {
	d := newCachedDeps(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	orderSvc := service.NewOrderService(logger, d.tx, d.orders, d.customers, d.products, d.cache)
	customerSvc := service.NewCustomerService(logger, d.customers, d.cache)

	before := entities.Order{ID: 1, CustomerID: 7, Customer: entities.Customer{ID: 7, Name: "Ahmet"}}
	after := before
	after.Customer.Name = "Mehmet"
	other := entities.Order{ID: 2, CustomerID: 8, Customer: entities.Customer{ID: 8, Name: "Ayşe"}}

	d.orders.EXPECT().GetOrderByID(mock.Anything, int64(1)).Return(before, nil).Once()
	d.orders.EXPECT().GetOrderByID(mock.Anything, int64(2)).Return(other, nil).Once()
	d.customers.EXPECT().
		UpdateCustomer(mock.Anything, int64(7), entities.CustomerInput{Name: "Mehmet"}).
		Return(entities.Customer{ID: 7, Name: "Mehmet"}, nil).Once()
	d.orders.EXPECT().GetOrderByID(mock.Anything, int64(1)).Return(after, nil).Once()

	ctx := context.Background()

	got, err := orderSvc.GetOrderByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Ahmet", got.Customer.Name)

	_, err = orderSvc.GetOrderByID(ctx, 2)
	require.NoError(t, err)

	_, err = customerSvc.UpdateCustomer(ctx, 7, entities.CustomerInput{Name: "Mehmet"})
	require.NoError(t, err)

	got, err = orderSvc.GetOrderByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Mehmet", got.Customer.Name)

	// заказ другого клиента остаётся в кэше, повторного чтения из базы нет
	got, err = orderSvc.GetOrderByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, other, got)
}

func TestOrderService_ReadOverlappingUpdateIsNotCached(t *testing.T) {
	d := newCachedDeps(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	d.tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(
			func(ctx context.Context, cb func(ctx context.Context) error) error {
				return cb(ctx)
			})

	orderSvc := service.NewOrderService(logger, d.tx, d.orders, d.customers, d.products, d.cache)

	delivered := entities.StatusDelivered
	stale := entities.Order{ID: 5, Status: entities.StatusInPreparation}
	fresh := entities.Order{ID: 5, Status: entities.StatusDelivered}

	// чтение начинается до коммита обновления, а возвращает данные уже после него
	d.orders.EXPECT().GetOrderByID(mock.Anything, int64(5)).
		RunAndReturn(func(ctx context.Context, id int64) (entities.Order, error) {
			_, err := orderSvc.UpdateOrder(ctx, id, entities.OrderUpdate{Status: &delivered})
			require.NoError(t, err)
			return stale, nil
		}).Once()
	d.orders.EXPECT().UpdateOrder(mock.Anything, int64(5), mock.Anything).Return(nil).Once()
	d.orders.EXPECT().GetOrderByID(mock.Anything, int64(5)).Return(fresh, nil).Twice()

	ctx := context.Background()

	got, err := orderSvc.GetOrderByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, stale, got)

	_, cached := d.cache.Get(5)
	assert.False(t, cached)

	got, err = orderSvc.GetOrderByID(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, fresh, got)
}

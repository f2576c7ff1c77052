package service_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/order-tracker/internal/entities"
	"github.com/SergeyBogomolovv/order-tracker/internal/service"
	mocks "github.com/SergeyBogomolovv/order-tracker/internal/service/mocks"
	txMocks "github.com/SergeyBogomolovv/order-tracker/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type orderDeps struct {
	orders    *mocks.MockOrderRepo
	customers *mocks.MockCustomerRepo
	products  *mocks.MockProductRepo
	cache     *mocks.MockCache
}

func newOrderService(t *testing.T) (orderDeps, interface {
	CreateOrder(ctx context.Context, in entities.NewOrder) (entities.Order, error)
	UpdateOrder(ctx context.Context, id int64, upd entities.OrderUpdate) (entities.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
	GetOrderByID(ctx context.Context, id int64) (entities.Order, error)
	WarmUpCache(ctx context.Context, count int) error
	ImportLegacyOrder(ctx context.Context, l entities.LegacyOrder) (entities.Order, error)
}) {
	t.Helper()

	deps := orderDeps{
		orders:    mocks.NewMockOrderRepo(t),
		customers: mocks.NewMockCustomerRepo(t),
		products:  mocks.NewMockProductRepo(t),
		cache:     mocks.NewMockCache(t),
	}
	tx := txMocks.NewMockManager(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	tx.EXPECT().
		Do(mock.Anything, mock.Anything).
		RunAndReturn(
			func(ctx context.Context, cb func(ctx context.Context) error) error {
				return cb(ctx)
			}).Maybe()

	svc := service.NewOrderService(logger, tx, deps.orders, deps.customers, deps.products, deps.cache)
	return deps, svc
}

func TestOrderService_CreateOrder(t *testing.T) {
	dbError := errors.New("db error")
	created := entities.Order{
		ID:            11,
		CustomerID:    7,
		Status:        entities.StatusInPreparation,
		PaymentStatus: entities.PaymentNotCollected,
		InvoiceStatus: entities.InvoiceNotRequired,
		Items:         []entities.OrderItem{{ID: 1, OrderID: 11, ProductID: 3, Quantity: 2}},
	}

	testCases := []struct {
		name         string
		in           entities.NewOrder
		mockBehavior func(d orderDeps)
		wantErr      error
		want         entities.Order
	}{
		{
			name: "existing customer with defaults",
			in: entities.NewOrder{
				CustomerID: 7,
				Items:      []entities.ItemInput{{ProductID: 3, Quantity: 2}},
			},
			mockBehavior: func(d orderDeps) {
				d.customers.EXPECT().GetCustomerByID(mock.Anything, int64(7)).
					Return(entities.Customer{ID: 7, Name: "Ahmet"}, nil).Once()
				d.products.EXPECT().CountProducts(mock.Anything, []int64{3}).Return(1, nil).Once()
				d.orders.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.NewOrder) bool {
						return o.CustomerID == 7 &&
							o.Status == entities.StatusInPreparation &&
							o.PaymentStatus == entities.PaymentNotCollected &&
							o.InvoiceStatus == entities.InvoiceNotRequired
					})).
					Return(int64(11), nil).Once()
				d.orders.EXPECT().
					SaveItems(mock.Anything, int64(11), []entities.ItemInput{{ProductID: 3, Quantity: 2}}).
					Return(nil).Once()
				d.orders.EXPECT().GetOrderByID(mock.Anything, int64(11)).Return(created, nil).Once()
			},
			want: created,
		},
		{
			name: "inline customer is created first",
			in: entities.NewOrder{
				Customer:      &entities.CustomerInput{Name: "  Mehmet  ", Phone: "555"},
				Items:         []entities.ItemInput{{ProductID: 3, Quantity: 2}, {ProductID: 4, Quantity: 0}},
				PaymentStatus: entities.PaymentPrepaid,
			},
			mockBehavior: func(d orderDeps) {
				d.customers.EXPECT().
					CreateCustomer(mock.Anything, entities.CustomerInput{Name: "Mehmet", Phone: "555"}).
					Return(entities.Customer{ID: 7, Name: "Mehmet"}, nil).Once()
				d.products.EXPECT().CountProducts(mock.Anything, []int64{3}).Return(1, nil).Once()
				d.orders.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.NewOrder) bool {
						return o.CustomerID == 7 && o.PaymentStatus == entities.PaymentPrepaid
					})).
					Return(int64(11), nil).Once()
				d.orders.EXPECT().
					SaveItems(mock.Anything, int64(11), []entities.ItemInput{{ProductID: 3, Quantity: 2}}).
					Return(nil).Once()
				d.orders.EXPECT().GetOrderByID(mock.Anything, int64(11)).Return(created, nil).Once()
			},
			want: created,
		},
		{
			name:         "no customer",
			in:           entities.NewOrder{Items: []entities.ItemInput{{ProductID: 3, Quantity: 2}}},
			mockBehavior: func(orderDeps) {},
			wantErr:      entities.ErrNoCustomer,
		},
		{
			name: "blank inline customer name",
			in: entities.NewOrder{
				Customer: &entities.CustomerInput{Name: "   "},
				Items:    []entities.ItemInput{{ProductID: 3, Quantity: 2}},
			},
			mockBehavior: func(orderDeps) {},
			wantErr:      entities.ErrInvalidCustomer,
		},
		{
			name: "no valid items",
			in: entities.NewOrder{
				CustomerID: 7,
				Items:      []entities.ItemInput{{ProductID: 3, Quantity: 0}, {ProductID: 4, Quantity: -1}},
			},
			mockBehavior: func(orderDeps) {},
			wantErr:      entities.ErrNoItems,
		},
		{
			name: "invalid status",
			in: entities.NewOrder{
				CustomerID: 7,
				Items:      []entities.ItemInput{{ProductID: 3, Quantity: 2}},
				Status:     entities.OrderStatus("lost"),
			},
			mockBehavior: func(orderDeps) {},
			wantErr:      entities.ErrInvalidStatus,
		},
		{
			name: "unknown customer",
			in: entities.NewOrder{
				CustomerID: 99,
				Items:      []entities.ItemInput{{ProductID: 3, Quantity: 2}},
			},
			mockBehavior: func(d orderDeps) {
				d.customers.EXPECT().GetCustomerByID(mock.Anything, int64(99)).
					Return(entities.Customer{}, entities.ErrCustomerNotFound).Once()
			},
			wantErr: entities.ErrCustomerNotFound,
		},
		{
			name: "unknown product",
			in: entities.NewOrder{
				CustomerID: 7,
				Items:      []entities.ItemInput{{ProductID: 3, Quantity: 2}, {ProductID: 42, Quantity: 1}},
			},
			mockBehavior: func(d orderDeps) {
				d.customers.EXPECT().GetCustomerByID(mock.Anything, int64(7)).
					Return(entities.Customer{ID: 7}, nil).Once()
				d.products.EXPECT().CountProducts(mock.Anything, []int64{3, 42}).Return(1, nil).Once()
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name: "save items fails",
			in: entities.NewOrder{
				CustomerID: 7,
				Items:      []entities.ItemInput{{ProductID: 3, Quantity: 2}},
			},
			mockBehavior: func(d orderDeps) {
				d.customers.EXPECT().GetCustomerByID(mock.Anything, int64(7)).
					Return(entities.Customer{ID: 7}, nil).Once()
				d.products.EXPECT().CountProducts(mock.Anything, []int64{3}).Return(1, nil).Once()
				d.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(int64(11), nil).Once()
				d.orders.EXPECT().SaveItems(mock.Anything, int64(11), mock.Anything).Return(dbError).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			deps, svc := newOrderService(t)
			tc.mockBehavior(deps)

			got, err := svc.CreateOrder(context.Background(), tc.in)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_UpdateOrder(t *testing.T) {
	dbError := errors.New("db error")
	delivered := entities.StatusDelivered
	bogus := entities.InvoiceStatus("lost")

	updated := entities.Order{
		ID:     5,
		Status: entities.StatusDelivered,
		Items:  []entities.OrderItem{{ID: 9, OrderID: 5, ProductID: 2, Quantity: 4}},
	}

	testCases := []struct {
		name         string
		upd          entities.OrderUpdate
		mockBehavior func(d orderDeps)
		wantErr      error
	}{
		{
			name: "replace items drops zero quantities",
			upd: entities.OrderUpdate{
				Items: []entities.ItemInput{{ProductID: 1, Quantity: 0}, {ProductID: 2, Quantity: 4}},
			},
			mockBehavior: func(d orderDeps) {
				d.orders.EXPECT().UpdateOrder(mock.Anything, int64(5), mock.Anything).Return(nil).Once()
				d.products.EXPECT().CountProducts(mock.Anything, []int64{2}).Return(1, nil).Once()
				d.orders.EXPECT().DeleteItems(mock.Anything, int64(5)).Return(nil).Once()
				d.orders.EXPECT().
					SaveItems(mock.Anything, int64(5), []entities.ItemInput{{ProductID: 2, Quantity: 4}}).
					Return(nil).Once()
				d.orders.EXPECT().GetOrderByID(mock.Anything, int64(5)).Return(updated, nil).Once()
				d.cache.EXPECT().Delete(int64(5)).Return().Once()
			},
		},
		{
			name: "status only leaves items untouched",
			upd:  entities.OrderUpdate{Status: &delivered},
			mockBehavior: func(d orderDeps) {
				d.orders.EXPECT().
					UpdateOrder(mock.Anything, int64(5), entities.OrderUpdate{Status: &delivered}).
					Return(nil).Once()
				d.orders.EXPECT().GetOrderByID(mock.Anything, int64(5)).Return(updated, nil).Once()
				d.cache.EXPECT().Delete(int64(5)).Return().Once()
			},
		},
		{
			name: "empty items empties the order",
			upd:  entities.OrderUpdate{Items: []entities.ItemInput{}},
			mockBehavior: func(d orderDeps) {
				d.orders.EXPECT().UpdateOrder(mock.Anything, int64(5), mock.Anything).Return(nil).Once()
				d.orders.EXPECT().DeleteItems(mock.Anything, int64(5)).Return(nil).Once()
				d.orders.EXPECT().SaveItems(mock.Anything, int64(5), []entities.ItemInput{}).Return(nil).Once()
				d.orders.EXPECT().GetOrderByID(mock.Anything, int64(5)).Return(entities.Order{ID: 5}, nil).Once()
				d.cache.EXPECT().Delete(int64(5)).Return().Once()
			},
		},
		{
			name: "order not found",
			upd: entities.OrderUpdate{
				Status: &delivered,
				Items:  []entities.ItemInput{{ProductID: 2, Quantity: 4}},
			},
			mockBehavior: func(d orderDeps) {
				d.orders.EXPECT().UpdateOrder(mock.Anything, int64(5), mock.Anything).
					Return(entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
		{
			name: "unknown product",
			upd:  entities.OrderUpdate{Items: []entities.ItemInput{{ProductID: 42, Quantity: 1}}},
			mockBehavior: func(d orderDeps) {
				d.orders.EXPECT().UpdateOrder(mock.Anything, int64(5), mock.Anything).Return(nil).Once()
				d.products.EXPECT().CountProducts(mock.Anything, []int64{42}).Return(0, nil).Once()
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name: "save items fails",
			upd:  entities.OrderUpdate{Items: []entities.ItemInput{{ProductID: 2, Quantity: 4}}},
			mockBehavior: func(d orderDeps) {
				d.orders.EXPECT().UpdateOrder(mock.Anything, int64(5), mock.Anything).Return(nil).Once()
				d.products.EXPECT().CountProducts(mock.Anything, []int64{2}).Return(1, nil).Once()
				d.orders.EXPECT().DeleteItems(mock.Anything, int64(5)).Return(nil).Once()
				d.orders.EXPECT().SaveItems(mock.Anything, int64(5), mock.Anything).Return(dbError).Once()
			},
			wantErr: dbError,
		},
		{
			name:         "invalid status",
			upd:          entities.OrderUpdate{InvoiceStatus: &bogus},
			mockBehavior: func(orderDeps) {},
			wantErr:      entities.ErrInvalidStatus,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			deps, svc := newOrderService(t)
			tc.mockBehavior(deps)

			_, err := svc.UpdateOrder(context.Background(), 5, tc.upd)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestOrderService_DeleteOrder(t *testing.T) {
	t.Run("deleted and evicted", func(t *testing.T) {
		deps, svc := newOrderService(t)
		deps.orders.EXPECT().DeleteOrder(mock.Anything, int64(5)).Return(nil).Once()
		deps.cache.EXPECT().Delete(int64(5)).Return().Once()

		assert.NoError(t, svc.DeleteOrder(context.Background(), 5))
	})

	t.Run("not found", func(t *testing.T) {
		deps, svc := newOrderService(t)
		deps.orders.EXPECT().DeleteOrder(mock.Anything, int64(5)).Return(entities.ErrOrderNotFound).Once()

		assert.ErrorIs(t, svc.DeleteOrder(context.Background(), 5), entities.ErrOrderNotFound)
	})
}

func TestOrderService_GetOrderByID(t *testing.T) {
	order := entities.Order{ID: 5, CustomerID: 7}

	testCases := []struct {
		name         string
		mockBehavior func(d orderDeps)
		wantErr      error
		want         entities.Order
	}{
		{
			name: "success from cache",
			mockBehavior: func(d orderDeps) {
				d.cache.EXPECT().Get(int64(5)).Return(order, true).Once()
			},
			want: order,
		},
		{
			name: "cache miss, found in db",
			mockBehavior: func(d orderDeps) {
				d.cache.EXPECT().Get(int64(5)).Return(entities.Order{}, false).Once()
				d.cache.EXPECT().Epoch().Return(uint64(3)).Once()
				d.orders.EXPECT().GetOrderByID(mock.Anything, int64(5)).Return(order, nil).Once()
				d.cache.EXPECT().SetIfEpoch(int64(5), order, uint64(3)).Return(true).Once()
			},
			want: order,
		},
		{
			name: "not found",
			mockBehavior: func(d orderDeps) {
				d.cache.EXPECT().Get(int64(5)).Return(entities.Order{}, false).Once()
				d.cache.EXPECT().Epoch().Return(uint64(3)).Once()
				d.orders.EXPECT().GetOrderByID(mock.Anything, int64(5)).
					Return(entities.Order{}, entities.ErrOrderNotFound).Once()
			},
			wantErr: entities.ErrOrderNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			deps, svc := newOrderService(t)
			tc.mockBehavior(deps)

			got, err := svc.GetOrderByID(context.Background(), 5)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestOrderService_WarmUpCache(t *testing.T) {
	deps, svc := newOrderService(t)
	orders := []entities.Order{{ID: 2}, {ID: 1}}

	deps.cache.EXPECT().Epoch().Return(uint64(0)).Once()
	deps.orders.EXPECT().LatestOrders(mock.Anything, 100).Return(orders, nil).Once()
	deps.cache.EXPECT().SetIfEpoch(int64(2), orders[0], uint64(0)).Return(true).Once()
	deps.cache.EXPECT().SetIfEpoch(int64(1), orders[1], uint64(0)).Return(true).Once()

	assert.NoError(t, svc.WarmUpCache(context.Background(), 100))
}

func TestOrderService_ImportLegacyOrder(t *testing.T) {
	imported := entities.Order{ID: 20, CustomerID: 7}

	testCases := []struct {
		name         string
		legacy       entities.LegacyOrder
		mockBehavior func(d orderDeps)
		wantErr      error
	}{
		{
			name: "known customer, labels translated",
			legacy: entities.LegacyOrder{
				ListNo:        "12",
				OrdererName:   "Ahmet",
				ProductName:   "Su 19L",
				Quantity:      3,
				Status:        "Teslim Edildi",
				PaymentStatus: "Tahsil Edildi",
				InvoiceStatus: "Fatura Kesilecek",
			},
			mockBehavior: func(d orderDeps) {
				d.products.EXPECT().FindProductByName(mock.Anything, "Su 19L").
					Return(entities.Product{ID: 3, Name: "Su 19L", Active: true}, nil).Once()
				d.customers.EXPECT().FindCustomerByName(mock.Anything, "Ahmet").
					Return(entities.Customer{ID: 7, Name: "Ahmet"}, nil).Once()
				d.customers.EXPECT().GetCustomerByID(mock.Anything, int64(7)).
					Return(entities.Customer{ID: 7}, nil).Once()
				d.products.EXPECT().CountProducts(mock.Anything, []int64{3}).Return(1, nil).Once()
				d.orders.EXPECT().
					CreateOrder(mock.Anything, mock.MatchedBy(func(o entities.NewOrder) bool {
						return o.CustomerID == 7 &&
							o.Note == "liste no: 12" &&
							o.Status == entities.StatusDelivered &&
							o.PaymentStatus == entities.PaymentPrepaid &&
							o.InvoiceStatus == entities.InvoiceNotRequired
					})).
					Return(int64(20), nil).Once()
				d.orders.EXPECT().
					SaveItems(mock.Anything, int64(20), []entities.ItemInput{{ProductID: 3, Quantity: 3}}).
					Return(nil).Once()
				d.orders.EXPECT().GetOrderByID(mock.Anything, int64(20)).Return(imported, nil).Once()
			},
		},
		{
			name:   "new customer is created",
			legacy: entities.LegacyOrder{OrdererName: "Veli", ProductName: "Su 19L", Quantity: 1},
			mockBehavior: func(d orderDeps) {
				d.products.EXPECT().FindProductByName(mock.Anything, "Su 19L").
					Return(entities.Product{ID: 3}, nil).Once()
				d.customers.EXPECT().FindCustomerByName(mock.Anything, "Veli").
					Return(entities.Customer{}, entities.ErrCustomerNotFound).Once()
				d.customers.EXPECT().CreateCustomer(mock.Anything, entities.CustomerInput{Name: "Veli"}).
					Return(entities.Customer{ID: 8, Name: "Veli"}, nil).Once()
				d.products.EXPECT().CountProducts(mock.Anything, []int64{3}).Return(1, nil).Once()
				d.orders.EXPECT().CreateOrder(mock.Anything, mock.Anything).Return(int64(20), nil).Once()
				d.orders.EXPECT().SaveItems(mock.Anything, int64(20), mock.Anything).Return(nil).Once()
				d.orders.EXPECT().GetOrderByID(mock.Anything, int64(20)).Return(imported, nil).Once()
			},
		},
		{
			name:   "unknown product",
			legacy: entities.LegacyOrder{OrdererName: "Veli", ProductName: "Kola", Quantity: 1},
			mockBehavior: func(d orderDeps) {
				d.products.EXPECT().FindProductByName(mock.Anything, "Kola").
					Return(entities.Product{}, entities.ErrProductNotFound).Once()
			},
			wantErr: entities.ErrProductNotFound,
		},
		{
			name:         "unknown label",
			legacy:       entities.LegacyOrder{OrdererName: "Veli", ProductName: "Su 19L", Quantity: 1, Status: "Kayboldu"},
			mockBehavior: func(orderDeps) {},
			wantErr:      entities.ErrInvalidStatus,
		},
		{
			name:         "zero quantity",
			legacy:       entities.LegacyOrder{OrdererName: "Veli", ProductName: "Su 19L"},
			mockBehavior: func(orderDeps) {},
			wantErr:      entities.ErrNoItems,
		},
		{
			name:         "no orderer",
			legacy:       entities.LegacyOrder{ProductName: "Su 19L", Quantity: 1},
			mockBehavior: func(orderDeps) {},
			wantErr:      entities.ErrNoCustomer,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			deps, svc := newOrderService(t)
			tc.mockBehavior(deps)

			got, err := svc.ImportLegacyOrder(context.Background(), tc.legacy)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, imported, got)
		})
	}
}

func TestOrderService_UpdateOrder_SamePayloadTwice(t *testing.T) {
	deps, svc := newOrderService(t)

	upd := entities.OrderUpdate{
		Items: []entities.ItemInput{{ProductID: 1, Quantity: 0}, {ProductID: 2, Quantity: 4}},
	}
	final := entities.Order{
		ID:    5,
		Items: []entities.OrderItem{{ID: 9, OrderID: 5, ProductID: 2, Quantity: 4}},
	}

	var calls []string
	var saved [][]entities.ItemInput

	deps.orders.EXPECT().UpdateOrder(mock.Anything, int64(5), upd).Return(nil).Twice()
	deps.products.EXPECT().CountProducts(mock.Anything, []int64{2}).Return(1, nil).Twice()
	deps.orders.EXPECT().DeleteItems(mock.Anything, int64(5)).
		Run(func(context.Context, int64) { calls = append(calls, "delete") }).
		Return(nil).Twice()
	deps.orders.EXPECT().SaveItems(mock.Anything, int64(5), mock.Anything).
		Run(func(_ context.Context, _ int64, items []entities.ItemInput) {
			calls = append(calls, "save")
			saved = append(saved, items)
		}).
		Return(nil).Twice()
	deps.orders.EXPECT().GetOrderByID(mock.Anything, int64(5)).Return(final, nil).Twice()
	deps.cache.EXPECT().Delete(int64(5)).Return().Twice()

	first, err := svc.UpdateOrder(context.Background(), 5, upd)
	require.NoError(t, err)
	second, err := svc.UpdateOrder(context.Background(), 5, upd)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"delete", "save", "delete", "save"}, calls)
	require.Len(t, saved, 2)
	assert.Equal(t, []entities.ItemInput{{ProductID: 2, Quantity: 4}}, saved[0])
	assert.Equal(t, saved[0], saved[1])
}

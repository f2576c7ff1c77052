package service_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/SergeyBogomolovv/order-tracker/internal/entities"
	"github.com/SergeyBogomolovv/order-tracker/internal/service"
	mocks "github.com/SergeyBogomolovv/order-tracker/internal/service/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCustomerService_CreateCustomer(t *testing.T) {
	testCases := []struct {
		name         string
		in           entities.CustomerInput
		mockBehavior func(repo *mocks.MockCustomerRepo)
		wantErr      error
	}{
		{
			name: "trimmed",
			in:   entities.CustomerInput{Name: "  Ayşe ", Phone: " 0555 ", Address: "Kadıköy"},
			mockBehavior: func(repo *mocks.MockCustomerRepo) {
				repo.EXPECT().
					CreateCustomer(mock.Anything, entities.CustomerInput{Name: "Ayşe", Phone: "0555", Address: "Kadıköy"}).
					Return(entities.Customer{ID: 1, Name: "Ayşe"}, nil).Once()
			},
		},
		{
			name:         "blank name",
			in:           entities.CustomerInput{Name: " \t"},
			mockBehavior: func(*mocks.MockCustomerRepo) {},
			wantErr:      entities.ErrInvalidCustomer,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockCustomerRepo(t)
			tc.mockBehavior(repo)

			svc := service.NewCustomerService(slog.New(slog.NewTextHandler(io.Discard, nil)), repo, mocks.NewMockOrderCacheEvicter(t))
			_, err := svc.CreateCustomer(context.Background(), tc.in)

			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCustomerService_UpdateCustomer(t *testing.T) {
	t.Run("evicts orders of the customer", func(t *testing.T) {
		repo := mocks.NewMockCustomerRepo(t)
		evicter := mocks.NewMockOrderCacheEvicter(t)

		repo.EXPECT().UpdateCustomer(mock.Anything, int64(3), entities.CustomerInput{Name: "Ali", Phone: "0555"}).
			Return(entities.Customer{ID: 3, Name: "Ali", Phone: "0555"}, nil).Once()
		evicter.EXPECT().RemoveFunc(mock.Anything).
			RunAndReturn(func(fn func(int64, entities.Order) bool) int {
				assert.True(t, fn(1, entities.Order{ID: 1, CustomerID: 3}))
				assert.False(t, fn(2, entities.Order{ID: 2, CustomerID: 4}))
				return 1
			}).Once()

		svc := service.NewCustomerService(slog.New(slog.NewTextHandler(io.Discard, nil)), repo, evicter)
		got, err := svc.UpdateCustomer(context.Background(), 3, entities.CustomerInput{Name: " Ali", Phone: "0555 "})
		require.NoError(t, err)
		assert.Equal(t, "Ali", got.Name)
	})

	t.Run("not found", func(t *testing.T) {
		repo := mocks.NewMockCustomerRepo(t)
		repo.EXPECT().UpdateCustomer(mock.Anything, int64(3), entities.CustomerInput{Name: "Ali"}).
			Return(entities.Customer{}, entities.ErrCustomerNotFound).Once()

		svc := service.NewCustomerService(slog.New(slog.NewTextHandler(io.Discard, nil)), repo, mocks.NewMockOrderCacheEvicter(t))
		_, err := svc.UpdateCustomer(context.Background(), 3, entities.CustomerInput{Name: "Ali "})
		assert.ErrorIs(t, err, entities.ErrCustomerNotFound)
	})

	t.Run("blank name", func(t *testing.T) {
		repo := mocks.NewMockCustomerRepo(t)

		svc := service.NewCustomerService(slog.New(slog.NewTextHandler(io.Discard, nil)), repo, mocks.NewMockOrderCacheEvicter(t))
		_, err := svc.UpdateCustomer(context.Background(), 3, entities.CustomerInput{})
		assert.ErrorIs(t, err, entities.ErrInvalidCustomer)
	})
}

func TestCustomerService_GetCustomer(t *testing.T) {
	repo := mocks.NewMockCustomerRepo(t)
	want := entities.Customer{ID: 3, Name: "Ali"}
	repo.EXPECT().GetCustomerByID(mock.Anything, int64(3)).Return(want, nil).Once()

	svc := service.NewCustomerService(slog.New(slog.NewTextHandler(io.Discard, nil)), repo, mocks.NewMockOrderCacheEvicter(t))
	got, err := svc.GetCustomer(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

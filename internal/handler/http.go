package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"reflect"
	"strings"

	"github.com/SergeyBogomolovv/order-tracker/internal/entities"
	"github.com/SergeyBogomolovv/order-tracker/pkg/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
)

type OrderService interface {
	ListOrders(ctx context.Context, f entities.OrderFilter) ([]entities.Order, error)
	GetOrderByID(ctx context.Context, id int64) (entities.Order, error)
	OrderStats(ctx context.Context) (entities.OrderStats, error)
	CreateOrder(ctx context.Context, in entities.NewOrder) (entities.Order, error)
	UpdateOrder(ctx context.Context, id int64, upd entities.OrderUpdate) (entities.Order, error)
	DeleteOrder(ctx context.Context, id int64) error
}

type CustomerService interface {
	ListCustomers(ctx context.Context) ([]entities.Customer, error)
	GetCustomer(ctx context.Context, id int64) (entities.Customer, error)
	CreateCustomer(ctx context.Context, in entities.CustomerInput) (entities.Customer, error)
	UpdateCustomer(ctx context.Context, id int64, in entities.CustomerInput) (entities.Customer, error)
}

type ProductService interface {
	ListProducts(ctx context.Context) ([]entities.Product, error)
}

type HTTPHandler struct {
	logger    *slog.Logger
	validate  *validator.Validate
	orders    OrderService
	customers CustomerService
	products  ProductService
}

func NewHTTPHandler(logger *slog.Logger, orders OrderService, customers CustomerService, products ProductService) *HTTPHandler {
	return &HTTPHandler{
		logger:    logger.With(slog.String("handler", "http")),
		validate:  newValidator(),
		orders:    orders,
		customers: customers,
		products:  products,
	}
}

// newValidator возвращает валидатор, который называет поля по json тегам.
func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

func (h *HTTPHandler) Init(r chi.Router) {
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", h.Health)
		r.Get("/products", h.ListProducts)

		r.Route("/customers", func(r chi.Router) {
			r.Get("/", h.ListCustomers)
			r.Post("/", h.CreateCustomer)
			r.Get("/{id}", h.GetCustomer)
			r.Put("/{id}", h.UpdateCustomer)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", h.ListOrders)
			r.Post("/", h.CreateOrder)
			r.Get("/stats", h.OrderStats)
			r.Get("/{id}", h.GetOrderByID)
			r.Put("/{id}", h.UpdateOrder)
			r.Delete("/{id}", h.DeleteOrder)
		})
	})
}

// Health проверка живости сервиса.
// @Summary      Проверка живости
// @Tags         health
// @Success      200  {object}  HealthResponse
// @Router       /api/health [get]
func (h *HTTPHandler) Health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, HealthResponse{Status: "ok"}, http.StatusOK)
}

// writeServiceError переводит ошибку сервиса в HTTP ответ.
func (h *HTTPHandler) writeServiceError(ctx context.Context, w http.ResponseWriter, err error, msg string, attrs ...any) {
	switch {
	case errors.Is(err, entities.ErrOrderNotFound):
		utils.WriteError(w, "order not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrCustomerNotFound):
		utils.WriteError(w, "customer not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrProductNotFound):
		utils.WriteError(w, "product not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrNoCustomer),
		errors.Is(err, entities.ErrNoItems),
		errors.Is(err, entities.ErrInvalidStatus),
		errors.Is(err, entities.ErrInvalidCustomer):
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
	default:
		h.logger.ErrorContext(ctx, msg, append([]any{slog.Any("error", err)}, attrs...)...)
		utils.WriteError(w, "internal server error", http.StatusInternalServerError)
	}
}

package handler

import (
	"log/slog"
	"net/http"

	"github.com/SergeyBogomolovv/order-tracker/pkg/utils"
)

// ListCustomers возвращает клиентов, новые первыми.
// @Summary      Список клиентов
// @Tags         customers
// @Success      200  {array}   Customer
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/customers [get]
func (h *HTTPHandler) ListCustomers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	customers, err := h.customers.ListCustomers(ctx)
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to list customers")
		return
	}

	res := make([]Customer, 0, len(customers))
	for _, c := range customers {
		res = append(res, CustomerEntityToJSON(c))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

// GetCustomer возвращает клиента по id.
// @Summary      Получить клиента
// @Tags         customers
// @Param        id   path      int  true  "Идентификатор клиента"
// @Success      200  {object}  Customer
// @Failure      400  {object}  utils.ErrorResponse "Некорректный id"
// @Failure      404  {object}  utils.ErrorResponse "Клиент не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/customers/{id} [get]
func (h *HTTPHandler) GetCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := utils.URLParamID(r, "id")
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	customer, err := h.customers.GetCustomer(ctx, id)
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to get customer", slog.Int64("customerID", id))
		return
	}

	utils.WriteJSON(w, CustomerEntityToJSON(customer), http.StatusOK)
}

// CreateCustomer создаёт клиента.
// @Summary      Создать клиента
// @Tags         customers
// @Accept       json
// @Param        body  body      CustomerRequest  true  "Данные клиента"
// @Success      201   {object}  Customer
// @Failure      400   {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      500   {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/customers [post]
func (h *HTTPHandler) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CustomerRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	customer, err := h.customers.CreateCustomer(ctx, CustomerJSONToEntity(req))
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to create customer")
		return
	}

	utils.WriteJSON(w, CustomerEntityToJSON(customer), http.StatusCreated)
}

// UpdateCustomer полностью заменяет данные клиента.
// @Summary      Обновить клиента
// @Tags         customers
// @Accept       json
// @Param        id    path      int              true  "Идентификатор клиента"
// @Param        body  body      CustomerRequest  true  "Данные клиента"
// @Success      200   {object}  Customer
// @Failure      400   {object}  utils.ValidationErrorResponse "Ошибка валидации"
// @Failure      404   {object}  utils.ErrorResponse "Клиент не найден"
// @Failure      500   {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/customers/{id} [put]
func (h *HTTPHandler) UpdateCustomer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := utils.URLParamID(r, "id")
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req CustomerRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	customer, err := h.customers.UpdateCustomer(ctx, id, CustomerJSONToEntity(req))
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to update customer", slog.Int64("customerID", id))
		return
	}

	utils.WriteJSON(w, CustomerEntityToJSON(customer), http.StatusOK)
}

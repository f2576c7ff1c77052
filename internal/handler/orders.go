package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/SergeyBogomolovv/order-tracker/internal/entities"
	"github.com/SergeyBogomolovv/order-tracker/pkg/utils"
)

// ListOrders возвращает заказы, новые первыми.
// @Summary      Список заказов
// @Description  Заказы с клиентом и позициями. Поиск q ищет по имени клиента, примечанию и названиям товаров
// @Tags         orders
// @Param        status         query     string  false  "Статус доставки"
// @Param        paymentStatus  query     string  false  "Статус оплаты"
// @Param        invoiceStatus  query     string  false  "Статус счёта"
// @Param        customerId     query     int     false  "Идентификатор клиента"
// @Param        q              query     string  false  "Строка поиска"
// @Success      200  {array}   Order
// @Failure      400  {object}  utils.ErrorResponse "Некорректный фильтр"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders [get]
func (h *HTTPHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	filter, err := parseOrderFilter(r)
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	orders, err := h.orders.ListOrders(ctx, filter)
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to list orders")
		return
	}

	res := make([]Order, 0, len(orders))
	for _, o := range orders {
		res = append(res, OrderEntityToJSON(o))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

var errInvalidCustomerID = errors.New("invalid customerId")

func parseOrderFilter(r *http.Request) (entities.OrderFilter, error) {
	q := r.URL.Query()
	var f entities.OrderFilter

	if v := q.Get("status"); v != "" {
		s, err := entities.ParseOrderStatus(v)
		if err != nil {
			return f, err
		}
		f.Status = s
	}
	if v := q.Get("paymentStatus"); v != "" {
		s, err := entities.ParsePaymentStatus(v)
		if err != nil {
			return f, err
		}
		f.PaymentStatus = s
	}
	if v := q.Get("invoiceStatus"); v != "" {
		s, err := entities.ParseInvoiceStatus(v)
		if err != nil {
			return f, err
		}
		f.InvoiceStatus = s
	}
	if v := q.Get("customerId"); v != "" {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			return f, errInvalidCustomerID
		}
		f.CustomerID = id
	}
	f.Search = strings.TrimSpace(q.Get("q"))

	return f, nil
}

// OrderStats возвращает сводную статистику.
// @Summary      Статистика заказов
// @Tags         orders
// @Success      200  {object}  OrderStats
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/stats [get]
func (h *HTTPHandler) OrderStats(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	stats, err := h.orders.OrderStats(ctx)
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to get order stats")
		return
	}

	utils.WriteJSON(w, OrderStatsEntityToJSON(stats), http.StatusOK)
}

// GetOrderByID возвращает заказ по ID.
// @Summary      Получить заказ
// @Description  Возвращает заказ вместе с клиентом и позициями
// @Tags         orders
// @Param        id   path      int  true  "Идентификатор заказа"
// @Success      200  {object}  Order
// @Failure      400  {object}  utils.ErrorResponse "Некорректный id"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/{id} [get]
func (h *HTTPHandler) GetOrderByID(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	orderRequestsInProgress.Inc()
	defer orderRequestsInProgress.Dec()
	start := time.Now()
	defer func() { orderRequestDuration.Observe(time.Since(start).Seconds()) }()

	id, err := utils.URLParamID(r, "id")
	if err != nil {
		orderRequestTotal.WithLabelValues("bad_request").Inc()
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.orders.GetOrderByID(ctx, id)
	if err != nil {
		if errors.Is(err, entities.ErrOrderNotFound) {
			orderRequestTotal.WithLabelValues("not_found").Inc()
		} else {
			orderRequestTotal.WithLabelValues("error").Inc()
		}
		h.writeServiceError(ctx, w, err, "failed to get order", slog.Int64("orderID", id))
		return
	}

	orderRequestTotal.WithLabelValues("ok").Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// CreateOrder создаёт заказ.
// @Summary      Создать заказ
// @Description  Нужен customerId существующего клиента либо customer для создания нового. Позиции с quantity <= 0 отбрасываются
// @Tags         orders
// @Accept       json
// @Param        body  body      CreateOrderRequest  true  "Заказ"
// @Success      201   {object}  Order
// @Failure      400   {object}  utils.ErrorResponse "Ошибка валидации"
// @Failure      404   {object}  utils.ErrorResponse "Клиент или товар не найден"
// @Failure      500   {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders [post]
func (h *HTTPHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req CreateOrderRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	in, err := req.ToEntity()
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.orders.CreateOrder(ctx, in)
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to create order")
		return
	}

	ordersCreated.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusCreated)
}

// UpdateOrder частично обновляет заказ.
// @Summary      Обновить заказ
// @Description  Меняет только переданные поля. Переданный items заменяет все позиции заказа
// @Tags         orders
// @Accept       json
// @Param        id    path      int                 true  "Идентификатор заказа"
// @Param        body  body      UpdateOrderRequest  true  "Изменения"
// @Success      200   {object}  Order
// @Failure      400   {object}  utils.ErrorResponse "Ошибка валидации"
// @Failure      404   {object}  utils.ErrorResponse "Заказ или товар не найден"
// @Failure      500   {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/{id} [put]
func (h *HTTPHandler) UpdateOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := utils.URLParamID(r, "id")
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	var req UpdateOrderRequest
	if err := utils.DecodeBody(w, r, &req); err != nil {
		utils.WriteError(w, "invalid request body", http.StatusBadRequest)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		utils.WriteValidationError(w, err)
		return
	}

	upd, err := req.ToEntity()
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	order, err := h.orders.UpdateOrder(ctx, id, upd)
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to update order", slog.Int64("orderID", id))
		return
	}

	ordersUpdated.Inc()
	utils.WriteJSON(w, OrderEntityToJSON(order), http.StatusOK)
}

// DeleteOrder удаляет заказ вместе с позициями.
// @Summary      Удалить заказ
// @Tags         orders
// @Param        id   path  int  true  "Идентификатор заказа"
// @Success      204
// @Failure      400  {object}  utils.ErrorResponse "Некорректный id"
// @Failure      404  {object}  utils.ErrorResponse "Заказ не найден"
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/orders/{id} [delete]
func (h *HTTPHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := utils.URLParamID(r, "id")
	if err != nil {
		utils.WriteError(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := h.orders.DeleteOrder(ctx, id); err != nil {
		h.writeServiceError(ctx, w, err, "failed to delete order", slog.Int64("orderID", id))
		return
	}

	ordersDeleted.Inc()
	utils.WriteNoContent(w)
}

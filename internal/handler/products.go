package handler

import (
	"net/http"

	"github.com/SergeyBogomolovv/order-tracker/pkg/utils"
)

// ListProducts возвращает активные товары.
// @Summary      Список товаров
// @Description  Возвращает только активные товары, по возрастанию id
// @Tags         products
// @Success      200  {array}   Product
// @Failure      500  {object}  utils.ErrorResponse "Внутренняя ошибка сервера"
// @Router       /api/products [get]
func (h *HTTPHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.products.ListProducts(ctx)
	if err != nil {
		h.writeServiceError(ctx, w, err, "failed to list products")
		return
	}

	res := make([]Product, 0, len(products))
	for _, p := range products {
		res = append(res, ProductEntityToJSON(p))
	}
	utils.WriteJSON(w, res, http.StatusOK)
}

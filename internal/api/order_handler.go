package api

import (
	"net/http"

	"github.com/phrazzld/storefront-api/internal/api/shared"
	"github.com/phrazzld/storefront-api/internal/service"
)

// OrderHandler handles order submission and history requests
type OrderHandler struct {
	orderService service.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService service.OrderService) *OrderHandler {
	return &OrderHandler{orderService: orderService}
}

// SubmitOrder handles POST /api/order/submit/{username}
func (h *OrderHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	username := getPathString(r, "username")
	logActingUser(r, username)

	order, err := h.orderService.Submit(r.Context(), username)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to submit order")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, orderToResponse(order))
}

// OrderHistory handles GET /api/order/history/{username}
func (h *OrderHandler) OrderHistory(w http.ResponseWriter, r *http.Request) {
	username := getPathString(r, "username")
	logActingUser(r, username)

	orders, err := h.orderService.History(r.Context(), username)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get order history")
		return
	}

	resp := make([]OrderResponse, 0, len(orders))
	for i := range orders {
		resp = append(resp, orderToResponse(&orders[i]))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/Elmorjene/elmorjene-officiel/internal/order"
)

type OrderHandler struct {
	repo     order.Repository
	notifier Notifier
}

func NewOrderHandler(repo order.Repository, notifier Notifier) *OrderHandler {
	return &OrderHandler{repo: repo, notifier: notifier}
}

// CreateOrder validates the full checkout payload, persists the order, and
// forwards the raw payload to the notifier. Persistence is the unit of
// success: the notifier absorbs its own failures, so a dropped notification
// still yields a 201.
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req order.CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid order data")
		return
	}

	if err := req.Validate(); err != nil {
		var ve *order.ValidationError
		if errors.As(err, &ve) {
			writeJSON(w, http.StatusBadRequest, map[string]any{
				"message": "Invalid order data",
				"errors":  ve.Fields,
			})
			return
		}
		writeMessage(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	o := req.Order()

	ctx, cancel := context.WithTimeout(r.Context(), 3*time.Second)
	defer cancel()

	if err := h.repo.Create(ctx, &o); err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to create order")
		return
	}

	h.notifier.ProcessOrder(req, o.ID)

	// Payment fields never leave the server; the response carries only the
	// persisted order.
	writeJSON(w, http.StatusCreated, map[string]any{"order": o})
}

func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid order ID")
		return
	}

	o, err := h.repo.GetByID(r.Context(), id)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to load order")
		return
	}
	if o == nil {
		writeMessage(w, http.StatusNotFound, "Order not found")
		return
	}

	writeJSON(w, http.StatusOK, o)
}

package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Elmorjene/elmorjene-officiel/internal/cart"
	"github.com/Elmorjene/elmorjene-officiel/internal/catalog"
	"github.com/Elmorjene/elmorjene-officiel/internal/order"
)

// Notifier relays a placed order to the outside world. Implementations must
// absorb their own failures: a lost notification never fails the order.
type Notifier interface {
	ProcessOrder(form order.CheckoutRequest, orderID int)
}

func NewRouter(products catalog.Repository, orders order.Repository, carts *cart.Store, notifier Notifier) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	r.Get("/health", healthHandler)

	ph := NewProductHandler(products)
	r.Route("/api/products", func(r chi.Router) {
		r.Get("/", ph.List)
		r.Get("/{id}", ph.Get)
	})

	oh := NewOrderHandler(orders, notifier)
	r.Route("/api/orders", func(r chi.Router) {
		r.Post("/", oh.CreateOrder)
		r.Get("/{id}", oh.GetOrder)
	})

	ch := NewCartHandler(carts, products)
	r.Route("/api/carts/{sessionId}", func(r chi.Router) {
		r.Get("/", ch.GetCart)
		r.Delete("/", ch.ClearCart)
		r.Post("/items", ch.AddItem)
		r.Put("/items/{productId}", ch.UpdateQuantity)
		r.Delete("/items/{productId}", ch.RemoveItem)
	})

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "ok",
		"service": "storefront",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeMessage(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}

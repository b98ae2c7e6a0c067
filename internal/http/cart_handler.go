package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Elmorjene/elmorjene-officiel/internal/cart"
	"github.com/Elmorjene/elmorjene-officiel/internal/catalog"
)

type CartHandler struct {
	carts    *cart.Store
	products catalog.Repository
}

func NewCartHandler(carts *cart.Store, products catalog.Repository) *CartHandler {
	return &CartHandler{carts: carts, products: products}
}

type cartResponse struct {
	ID    string      `json:"id"`
	Items []cart.Item `json:"items"`
	Total string      `json:"total"`
}

func renderCart(c *cart.Cart) cartResponse {
	items := c.Items
	if items == nil {
		items = []cart.Item{}
	}
	return cartResponse{
		ID:    c.ID,
		Items: items,
		Total: c.Total().String(),
	}
}

func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	c := h.carts.Get(chi.URLParam(r, "sessionId"))
	if c == nil {
		writeMessage(w, http.StatusNotFound, "Cart not found")
		return
	}
	writeJSON(w, http.StatusOK, renderCart(c))
}

type addItemRequest struct {
	ProductID int `json:"productId"`
}

func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.products.Get(r.Context(), req.ProductID)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to load product")
		return
	}
	if product == nil {
		writeMessage(w, http.StatusNotFound, "Product not found")
		return
	}

	c := h.carts.GetOrCreate(chi.URLParam(r, "sessionId"))
	c.AddItem(*product)
	writeJSON(w, http.StatusOK, renderCart(c))
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	var req updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Quantity < 0 {
		req.Quantity = 0
	}

	c := h.carts.Get(chi.URLParam(r, "sessionId"))
	if c == nil {
		writeMessage(w, http.StatusNotFound, "Cart not found")
		return
	}

	c.UpdateQuantity(productID, req.Quantity)
	writeJSON(w, http.StatusOK, renderCart(c))
}

func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	c := h.carts.Get(chi.URLParam(r, "sessionId"))
	if c == nil {
		writeMessage(w, http.StatusNotFound, "Cart not found")
		return
	}

	c.RemoveItem(productID)
	writeJSON(w, http.StatusOK, renderCart(c))
}

func (h *CartHandler) ClearCart(w http.ResponseWriter, r *http.Request) {
	c := h.carts.Get(chi.URLParam(r, "sessionId"))
	if c == nil {
		writeMessage(w, http.StatusNotFound, "Cart not found")
		return
	}

	c.Clear()
	writeJSON(w, http.StatusOK, renderCart(c))
}

package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/Elmorjene/elmorjene-officiel/internal/catalog"
)

type ProductHandler struct {
	repo catalog.Repository
}

func NewProductHandler(repo catalog.Repository) *ProductHandler {
	return &ProductHandler{repo: repo}
}

func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.repo.All(r.Context())
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to load products")
		return
	}
	if products == nil {
		products = []catalog.Product{}
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "Invalid product ID")
		return
	}

	product, err := h.repo.Get(r.Context(), id)
	if err != nil {
		writeMessage(w, http.StatusInternalServerError, "Failed to load product")
		return
	}
	if product == nil {
		writeMessage(w, http.StatusNotFound, "Product not found")
		return
	}

	writeJSON(w, http.StatusOK, product)
}

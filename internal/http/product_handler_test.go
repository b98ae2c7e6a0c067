package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Elmorjene/elmorjene-officiel/internal/cart"
	"github.com/Elmorjene/elmorjene-officiel/internal/catalog"
	"github.com/Elmorjene/elmorjene-officiel/internal/order"
)

type fakeCatalog struct {
	allFunc func(ctx context.Context) ([]catalog.Product, error)
	getFunc func(ctx context.Context, id int) (*catalog.Product, error)
}

func (f *fakeCatalog) All(ctx context.Context) ([]catalog.Product, error) {
	if f.allFunc != nil {
		return f.allFunc(ctx)
	}
	return nil, nil
}

func (f *fakeCatalog) Get(ctx context.Context, id int) (*catalog.Product, error) {
	if f.getFunc != nil {
		return f.getFunc(ctx, id)
	}
	return nil, nil
}

type fakeNotifier struct {
	calls []int
}

func (f *fakeNotifier) ProcessOrder(form order.CheckoutRequest, orderID int) {
	f.calls = append(f.calls, orderID)
}

func newTestRouter(products catalog.Repository) http.Handler {
	return NewRouter(products, order.NewMemoryRepository(), cart.NewStore(), &fakeNotifier{})
}

func TestListProducts(t *testing.T) {
	router := newTestRouter(catalog.NewMemoryRepository(catalog.DefaultProducts()))

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var products []catalog.Product
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&products))
	require.Len(t, products, 5)
	assert.Equal(t, 1, products[0].ID)
	assert.Equal(t, "4.99", products[0].Price)
}

func TestListProducts_EmptyCatalogIsAnArray(t *testing.T) {
	router := newTestRouter(&fakeCatalog{})

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestListProducts_RepositoryError(t *testing.T) {
	router := newTestRouter(&fakeCatalog{
		allFunc: func(ctx context.Context) ([]catalog.Product, error) {
			return nil, errors.New("db down")
		},
	})

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestGetProduct(t *testing.T) {
	router := newTestRouter(catalog.NewMemoryRepository(catalog.DefaultProducts()))

	req := httptest.NewRequest(http.MethodGet, "/api/products/3", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var p catalog.Product
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&p))
	assert.Equal(t, 3, p.ID)
	assert.Equal(t, "3.99", p.Price)
}

func TestGetProduct_NotFound(t *testing.T) {
	router := newTestRouter(catalog.NewMemoryRepository(catalog.DefaultProducts()))

	req := httptest.NewRequest(http.MethodGet, "/api/products/999", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Product not found", resp["message"])
}

func TestGetProduct_MalformedID(t *testing.T) {
	router := newTestRouter(catalog.NewMemoryRepository(catalog.DefaultProducts()))

	req := httptest.NewRequest(http.MethodGet, "/api/products/abc", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "Invalid product ID", resp["message"])
}

func TestHealth(t *testing.T) {
	router := newTestRouter(&fakeCatalog{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]string
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&resp))
	assert.Equal(t, "ok", resp["status"])
}

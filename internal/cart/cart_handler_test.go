package cart_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officialsayandeeppaul/ambyluxe-gold-glow/internal/cart"
	"github.com/officialsayandeeppaul/ambyluxe-gold-glow/internal/catalog"
	"github.com/officialsayandeeppaul/ambyluxe-gold-glow/internal/pkg/response"
	"github.com/officialsayandeeppaul/ambyluxe-gold-glow/internal/store"
)

func setupRouter(t *testing.T) (*gin.Engine, *store.Store) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	catalogue, err := catalog.Load()
	require.NoError(t, err)

	st := store.New(nil, nil)
	t.Cleanup(st.Close)

	r := gin.New()
	api := r.Group("/api/v1")
	cart.RegisterRoutes(api, cart.NewHandler(st, catalogue, nil))
	return r, st
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeCart(t *testing.T, w *httptest.ResponseRecorder) cart.CartResponse {
	t.Helper()

	var envelope response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))

	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)

	var res cart.CartResponse
	require.NoError(t, json.Unmarshal(raw, &res))
	return res
}

func TestCartHandler_AddItem(t *testing.T) {
	t.Run("success_with_qty", func(t *testing.T) {
		r, st := setupRouter(t)

		w := doJSON(t, r, http.MethodPost, "/api/v1/cart/items/1", gin.H{"qty": 2})
		assert.Equal(t, http.StatusCreated, w.Code)

		res := decodeCart(t, w)
		require.Len(t, res.Items, 1)
		assert.Equal(t, 2, res.Items[0].Qty)
		assert.Equal(t, int64(570000), res.Total)
		assert.Equal(t, "₹5,70,000", res.TotalFormatted)
		assert.Equal(t, 2, st.CartCount())
	})

	t.Run("empty_body_defaults_to_one", func(t *testing.T) {
		r, st := setupRouter(t)

		w := doJSON(t, r, http.MethodPost, "/api/v1/cart/items/1", nil)
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Equal(t, 1, st.CartCount())
	})

	t.Run("repeat_add_merges_lines", func(t *testing.T) {
		r, _ := setupRouter(t)

		doJSON(t, r, http.MethodPost, "/api/v1/cart/items/1", gin.H{"qty": 2})
		w := doJSON(t, r, http.MethodPost, "/api/v1/cart/items/1", gin.H{"qty": 3})

		res := decodeCart(t, w)
		require.Len(t, res.Items, 1)
		assert.Equal(t, 5, res.Items[0].Qty)
	})

	t.Run("error_unknown_product", func(t *testing.T) {
		r, _ := setupRouter(t)

		w := doJSON(t, r, http.MethodPost, "/api/v1/cart/items/999", gin.H{"qty": 1})
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), "Product not found")
	})

	t.Run("error_negative_qty", func(t *testing.T) {
		r, st := setupRouter(t)

		w := doJSON(t, r, http.MethodPost, "/api/v1/cart/items/1", gin.H{"qty": -3})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, 0, st.CartCount())
	})
}

func TestCartHandler_UpdateQty(t *testing.T) {
	t.Run("sets_absolute_quantity", func(t *testing.T) {
		r, st := setupRouter(t)
		doJSON(t, r, http.MethodPost, "/api/v1/cart/items/1", gin.H{"qty": 2})

		w := doJSON(t, r, http.MethodPatch, "/api/v1/cart/items/1", gin.H{"qty": 7})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 7, st.CartCount())
	})

	t.Run("zero_removes_line", func(t *testing.T) {
		r, st := setupRouter(t)
		doJSON(t, r, http.MethodPost, "/api/v1/cart/items/1", gin.H{"qty": 2})

		w := doJSON(t, r, http.MethodPatch, "/api/v1/cart/items/1", gin.H{"qty": 0})
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, 0, st.CartCount())
	})
}

func TestCartHandler_DeleteItem(t *testing.T) {
	r, st := setupRouter(t)
	doJSON(t, r, http.MethodPost, "/api/v1/cart/items/1", gin.H{"qty": 2})

	w := doJSON(t, r, http.MethodDelete, "/api/v1/cart/items/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, st.CartCount())

	// deleting an absent line is still 200
	w = doJSON(t, r, http.MethodDelete, "/api/v1/cart/items/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCartHandler_Clear(t *testing.T) {
	r, st := setupRouter(t)
	doJSON(t, r, http.MethodPost, "/api/v1/cart/items/1", gin.H{"qty": 2})
	doJSON(t, r, http.MethodPost, "/api/v1/cart/items/6", gin.H{"qty": 1})

	w := doJSON(t, r, http.MethodDelete, "/api/v1/cart", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, st.CartCount())
}

func TestCartHandler_Detail(t *testing.T) {
	r, _ := setupRouter(t)
	doJSON(t, r, http.MethodPost, "/api/v1/cart/items/1", gin.H{"qty": 2})
	doJSON(t, r, http.MethodPost, "/api/v1/cart/items/6", gin.H{"qty": 1})

	w := doJSON(t, r, http.MethodGet, "/api/v1/cart", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	res := decodeCart(t, w)
	require.Len(t, res.Items, 2)
	assert.Equal(t, 3, res.Count)
	assert.Equal(t, int64(815000), res.Total)
	assert.Equal(t, "₹8,15,000", res.TotalFormatted)
	assert.Equal(t, int64(570000), res.Items[0].LineTotal)
}

func TestCartHandler_Count(t *testing.T) {
	r, _ := setupRouter(t)
	doJSON(t, r, http.MethodPost, "/api/v1/cart/items/1", gin.H{"qty": 2})

	w := doJSON(t, r, http.MethodGet, "/api/v1/cart/count", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"count":2`)
}

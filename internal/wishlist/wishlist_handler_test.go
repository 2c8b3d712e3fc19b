package wishlist_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officialsayandeeppaul/ambyluxe-gold-glow/internal/catalog"
	"github.com/officialsayandeeppaul/ambyluxe-gold-glow/internal/pkg/response"
	"github.com/officialsayandeeppaul/ambyluxe-gold-glow/internal/store"
	"github.com/officialsayandeeppaul/ambyluxe-gold-glow/internal/wishlist"
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
	wishlist.RegisterRoutes(api, wishlist.NewHandler(st, catalogue))
	return r, st
}

func do(t *testing.T, r *gin.Engine, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeWishlist(t *testing.T, w *httptest.ResponseRecorder) wishlist.WishlistResponse {
	t.Helper()

	var envelope response.APIResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))

	raw, err := json.Marshal(envelope.Data)
	require.NoError(t, err)

	var res wishlist.WishlistResponse
	require.NoError(t, json.Unmarshal(raw, &res))
	return res
}

func TestWishlistHandler_AddItem(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		r, st := setupRouter(t)

		w := do(t, r, http.MethodPost, "/api/v1/wishlist/items/1")
		assert.Equal(t, http.StatusCreated, w.Code)

		res := decodeWishlist(t, w)
		require.Len(t, res.Items, 1)
		assert.Equal(t, "1", res.Items[0].ProductID)
		assert.Equal(t, "₹2,85,000", res.Items[0].PriceFormatted)
		assert.True(t, st.IsInWishlist("1"))
	})

	t.Run("repeat_add_is_idempotent", func(t *testing.T) {
		r, _ := setupRouter(t)

		do(t, r, http.MethodPost, "/api/v1/wishlist/items/1")
		w := do(t, r, http.MethodPost, "/api/v1/wishlist/items/1")
		assert.Equal(t, http.StatusCreated, w.Code)

		res := decodeWishlist(t, w)
		assert.Len(t, res.Items, 1)
		assert.Equal(t, 1, res.Count)
	})

	t.Run("error_unknown_product", func(t *testing.T) {
		r, _ := setupRouter(t)

		w := do(t, r, http.MethodPost, "/api/v1/wishlist/items/999")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestWishlistHandler_DeleteItem(t *testing.T) {
	r, st := setupRouter(t)
	do(t, r, http.MethodPost, "/api/v1/wishlist/items/1")

	w := do(t, r, http.MethodDelete, "/api/v1/wishlist/items/1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, st.IsInWishlist("1"))

	// removing an absent entry is a no-op, still 200
	w = do(t, r, http.MethodDelete, "/api/v1/wishlist/items/1")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestWishlistHandler_List(t *testing.T) {
	r, _ := setupRouter(t)
	do(t, r, http.MethodPost, "/api/v1/wishlist/items/3")
	do(t, r, http.MethodPost, "/api/v1/wishlist/items/1")

	w := do(t, r, http.MethodGet, "/api/v1/wishlist")
	assert.Equal(t, http.StatusOK, w.Code)

	res := decodeWishlist(t, w)
	require.Len(t, res.Items, 2)
	// insertion order, not catalogue order
	assert.Equal(t, "3", res.Items[0].ProductID)
	assert.Equal(t, "1", res.Items[1].ProductID)
}

func TestWishlistHandler_Membership(t *testing.T) {
	r, _ := setupRouter(t)
	do(t, r, http.MethodPost, "/api/v1/wishlist/items/1")

	w := do(t, r, http.MethodGet, "/api/v1/wishlist/items/1")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"inWishlist":true`)

	w = do(t, r, http.MethodGet, "/api/v1/wishlist/items/2")
	assert.Contains(t, w.Body.String(), `"inWishlist":false`)
}

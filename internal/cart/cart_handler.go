package cart

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/officialsayandeeppaul/ambyluxe-gold-glow/internal/catalog"
	"github.com/officialsayandeeppaul/ambyluxe-gold-glow/internal/pkg/apperror"
	"github.com/officialsayandeeppaul/ambyluxe-gold-glow/internal/pkg/response"
	"github.com/officialsayandeeppaul/ambyluxe-gold-glow/internal/store"
)

// Store is the slice of the state container the cart endpoints need.
type Store interface {
	AddToCart(p catalog.Product, quantity int) error
	RemoveFromCart(productID string)
	UpdateQuantity(productID string, quantity int)
	ClearCart()
	Cart() []store.CartItem
	CartTotal() int64
	CartCount() int
}

// ProductFinder resolves catalogue ids for add-to-cart requests.
type ProductFinder interface {
	ByID(id string) (catalog.Product, bool)
}

type Handler struct {
	store     Store
	catalogue ProductFinder
	logger    *zap.Logger
}

func NewHandler(s Store, catalogue ProductFinder, logger *zap.Logger) *Handler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Handler{store: s, catalogue: catalogue, logger: logger.Named("cart.handler")}
}

// Detail returns the cart lines with derived totals.
// GET /cart
func (h *Handler) Detail(c *gin.Context) {
	response.Success(c, http.StatusOK, h.cartResponse())
}

// Count returns the unit count for the header badge.
// GET /cart/count
func (h *Handler) Count(c *gin.Context) {
	response.Success(c, http.StatusOK, CartCountResponse{Count: h.store.CartCount()})
}

// AddItem adds the product to the cart, merging with an existing line.
// Quantity defaults to 1 when the body omits it.
// POST /cart/items/:productId
func (h *Handler) AddItem(c *gin.Context) {
	productID := c.Param("productId")

	var req AddItemRequest
	// An empty body means "add one".
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}
	if req.Qty == 0 {
		req.Qty = 1
	}

	product, ok := h.catalogue.ByID(productID)
	if !ok {
		e := catalog.ErrProductNotFound
		response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
		return
	}

	if err := h.store.AddToCart(product, req.Qty); err != nil {
		h.logger.Warn("add to cart rejected",
			zap.String("product_id", productID),
			zap.Int("qty", req.Qty),
			zap.Error(err),
		)
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusCreated, h.cartResponse())
}

// UpdateQty sets the line's quantity absolutely; zero or less removes it.
// PATCH /cart/items/:productId
func (h *Handler) UpdateQty(c *gin.Context) {
	var req UpdateQtyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid request body", err.Error())
		return
	}

	h.store.UpdateQuantity(c.Param("productId"), req.Qty)
	response.Success(c, http.StatusOK, h.cartResponse())
}

// DeleteItem removes the line; absent ids are a no-op.
// DELETE /cart/items/:productId
func (h *Handler) DeleteItem(c *gin.Context) {
	h.store.RemoveFromCart(c.Param("productId"))
	response.Success(c, http.StatusOK, h.cartResponse())
}

// Clear empties the cart.
// DELETE /cart
func (h *Handler) Clear(c *gin.Context) {
	h.store.ClearCart()
	response.Success(c, http.StatusOK, h.cartResponse())
}

func (h *Handler) cartResponse() CartResponse {
	items := h.store.Cart()

	res := CartResponse{
		Items: make([]CartItemResponse, len(items)),
		Count: h.store.CartCount(),
		Total: h.store.CartTotal(),
	}
	res.TotalFormatted = catalog.FormatPrice(res.Total)

	for i, item := range items {
		lineTotal := item.Product.Price * int64(item.Quantity)
		res.Items[i] = CartItemResponse{
			ProductID:          item.Product.ID,
			Name:               item.Product.Name,
			Price:              item.Product.Price,
			PriceFormatted:     catalog.FormatPrice(item.Product.Price),
			Image:              item.Product.Image,
			Qty:                item.Quantity,
			LineTotal:          lineTotal,
			LineTotalFormatted: catalog.FormatPrice(lineTotal),
		}
	}

	return res
}

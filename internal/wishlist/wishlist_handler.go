package wishlist

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/officialsayandeeppaul/ambyluxe-gold-glow/internal/catalog"
	"github.com/officialsayandeeppaul/ambyluxe-gold-glow/internal/pkg/apperror"
	"github.com/officialsayandeeppaul/ambyluxe-gold-glow/internal/pkg/response"
	"github.com/officialsayandeeppaul/ambyluxe-gold-glow/internal/store"
)

// Store is the slice of the state container the wishlist endpoints need.
type Store interface {
	AddToWishlist(p catalog.Product) error
	RemoveFromWishlist(productID string)
	IsInWishlist(productID string) bool
	Wishlist() []store.WishlistItem
}

type ProductFinder interface {
	ByID(id string) (catalog.Product, bool)
}

type Handler struct {
	store     Store
	catalogue ProductFinder
}

func NewHandler(s Store, catalogue ProductFinder) *Handler {
	return &Handler{store: s, catalogue: catalogue}
}

// List returns the wishlist in insertion order.
// GET /wishlist
func (h *Handler) List(c *gin.Context) {
	response.Success(c, http.StatusOK, h.wishlistResponse())
}

// Membership reports whether a product is wished for, for the card heart
// toggle.
// GET /wishlist/items/:productId
func (h *Handler) Membership(c *gin.Context) {
	productID := c.Param("productId")
	response.Success(c, http.StatusOK, MembershipResponse{
		ProductID:  productID,
		InWishlist: h.store.IsInWishlist(productID),
	})
}

// AddItem adds the product to the wishlist. Adding twice is idempotent, so
// a repeat add still answers 201 with the unchanged single entry.
// POST /wishlist/items/:productId
func (h *Handler) AddItem(c *gin.Context) {
	product, ok := h.catalogue.ByID(c.Param("productId"))
	if !ok {
		e := catalog.ErrProductNotFound
		response.Error(c, e.HTTPStatus, e.Code, e.Message, nil)
		return
	}

	if err := h.store.AddToWishlist(product); err != nil {
		httpErr := apperror.ToHTTP(err)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
		return
	}

	response.Success(c, http.StatusCreated, h.wishlistResponse())
}

// DeleteItem removes if present; absent ids are a no-op.
// DELETE /wishlist/items/:productId
func (h *Handler) DeleteItem(c *gin.Context) {
	h.store.RemoveFromWishlist(c.Param("productId"))
	response.Success(c, http.StatusOK, h.wishlistResponse())
}

func (h *Handler) wishlistResponse() WishlistResponse {
	items := h.store.Wishlist()

	res := WishlistResponse{
		Items: make([]WishlistItemResponse, len(items)),
		Count: len(items),
	}
	for i, item := range items {
		res.Items[i] = WishlistItemResponse{
			ProductID:      item.Product.ID,
			Name:           item.Product.Name,
			Price:          item.Product.Price,
			PriceFormatted: catalog.FormatPrice(item.Product.Price),
			Image:          item.Product.Image,
			Category:       string(item.Product.Category),
		}
	}
	return res
}

package catalog

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/officialsayandeeppaul/ambyluxe-gold-glow/internal/pkg/response"
)

type Handler struct {
	catalogue *Catalogue
}

func NewHandler(c *Catalogue) *Handler {
	return &Handler{catalogue: c}
}

// List returns the shop listing view: the catalogue filtered by an optional
// category and sorted by the requested criterion.
// GET /products?category=Rings&sort=price-low
func (h *Handler) List(c *gin.Context) {
	category := Category(c.Query("category"))
	sortBy := ParseSortBy(c.Query("sort"))

	result := View(h.catalogue.Products(), category, sortBy)

	items := make([]ProductResponse, len(result))
	for i, p := range result {
		items[i] = toProductResponse(p)
	}

	response.Success(c, http.StatusOK, ListResponse{
		Total:    len(items),
		Products: items,
	})
}

// Detail returns a single product, or the not-found display state.
// GET /products/:productId
func (h *Handler) Detail(c *gin.Context) {
	p, ok := h.catalogue.ByID(c.Param("productId"))
	if !ok {
		response.Error(c, ErrProductNotFound.HTTPStatus, ErrProductNotFound.Code, ErrProductNotFound.Message, nil)
		return
	}

	response.Success(c, http.StatusOK, toProductResponse(p))
}

// GET /categories
func (h *Handler) Categories(c *gin.Context) {
	response.Success(c, http.StatusOK, h.catalogue.Categories())
}

// GET /collections
func (h *Handler) Collections(c *gin.Context) {
	response.Success(c, http.StatusOK, h.catalogue.Collections())
}

package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Category is the closed set of product categories the storefront sells.
type Category string

const (
	CategoryRings     Category = "Rings"
	CategoryNecklaces Category = "Necklaces"
	CategoryEarrings  Category = "Earrings"
	CategoryBracelets Category = "Bracelets"
	CategoryBangles   Category = "Bangles"
	CategoryPendants  Category = "Pendants"
)

// Product is an immutable catalogue entry. Prices are whole rupees.
type Product struct {
	ID            string   `json:"id" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	Price         int64    `json:"price" validate:"gt=0"`
	OriginalPrice int64    `json:"originalPrice,omitempty"`
	Image         string   `json:"image" validate:"required"`
	Images        []string `json:"images,omitempty"`
	Category      Category `json:"category" validate:"required,oneof=Rings Necklaces Earrings Bracelets Bangles Pendants"`
	Collection    string   `json:"collection,omitempty"`
	Description   string   `json:"description" validate:"required"`
	Details       []string `json:"details,omitempty"`
	Materials     string   `json:"materials,omitempty"`
	IsNew         bool     `json:"isNew,omitempty"`
	IsBestseller  bool     `json:"isBestseller,omitempty"`
}

type Collection struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Image       string `json:"image"`
}

// Catalogue is the validated, immutable product catalogue. Construct it once
// with Load and inject it into consumers.
type Catalogue struct {
	products []Product
	byID     map[string]Product
}

// Load validates the static catalogue data and builds the lookup index.
// Validation runs here, at load time, so consumers never see a half-formed
// record.
func Load() (*Catalogue, error) {
	validate := validator.New()

	byID := make(map[string]Product, len(products))
	for i, p := range products {
		if err := validate.Struct(p); err != nil {
			return nil, fmt.Errorf("catalog: product %d invalid: %w", i, err)
		}
		if p.OriginalPrice != 0 && p.OriginalPrice <= p.Price {
			return nil, fmt.Errorf("catalog: product %q: originalPrice %d must exceed price %d", p.ID, p.OriginalPrice, p.Price)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate product id %q", p.ID)
		}
		byID[p.ID] = p
	}

	return &Catalogue{products: products, byID: byID}, nil
}

// Products returns the catalogue in its canonical order. The slice is a copy;
// callers may reorder it freely.
func (c *Catalogue) Products() []Product {
	out := make([]Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalogue) ByID(id string) (Product, bool) {
	p, ok := c.byID[id]
	return p, ok
}

func (c *Catalogue) Categories() []Category {
	return []Category{
		CategoryRings,
		CategoryNecklaces,
		CategoryEarrings,
		CategoryBracelets,
		CategoryBangles,
		CategoryPendants,
	}
}

func (c *Catalogue) Collections() []Collection {
	out := make([]Collection, len(collections))
	copy(out, collections)
	return out
}

package catalog

type ProductResponse struct {
	ID                     string   `json:"id"`
	Name                   string   `json:"name"`
	Price                  int64    `json:"price"`
	PriceFormatted         string   `json:"priceFormatted"`
	OriginalPrice          int64    `json:"originalPrice,omitempty"`
	OriginalPriceFormatted string   `json:"originalPriceFormatted,omitempty"`
	Image                  string   `json:"image"`
	Images                 []string `json:"images,omitempty"`
	Category               string   `json:"category"`
	Collection             string   `json:"collection,omitempty"`
	Description            string   `json:"description"`
	Details                []string `json:"details,omitempty"`
	Materials              string   `json:"materials,omitempty"`
	IsNew                  bool     `json:"isNew"`
	IsBestseller           bool     `json:"isBestseller"`
}

type ListResponse struct {
	Total    int               `json:"total"`
	Products []ProductResponse `json:"products"`
}

func toProductResponse(p Product) ProductResponse {
	res := ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Price:          p.Price,
		PriceFormatted: FormatPrice(p.Price),
		Image:          p.Image,
		Images:         p.Images,
		Category:       string(p.Category),
		Collection:     p.Collection,
		Description:    p.Description,
		Details:        p.Details,
		Materials:      p.Materials,
		IsNew:          p.IsNew,
		IsBestseller:   p.IsBestseller,
	}
	if p.OriginalPrice != 0 {
		res.OriginalPrice = p.OriginalPrice
		res.OriginalPriceFormatted = FormatPrice(p.OriginalPrice)
	}
	return res
}

package cart

type AddItemRequest struct {
	Qty int `json:"qty" binding:"omitempty,min=1"`
}

type UpdateQtyRequest struct {
	Qty int `json:"qty"`
}

type CartItemResponse struct {
	ProductID          string `json:"productId"`
	Name               string `json:"name"`
	Price              int64  `json:"price"`
	PriceFormatted     string `json:"priceFormatted"`
	Image              string `json:"image"`
	Qty                int    `json:"qty"`
	LineTotal          int64  `json:"lineTotal"`
	LineTotalFormatted string `json:"lineTotalFormatted"`
}

type CartResponse struct {
	Items          []CartItemResponse `json:"items"`
	Count          int                `json:"count"`
	Total          int64              `json:"total"`
	TotalFormatted string             `json:"totalFormatted"`
}

type CartCountResponse struct {
	Count int `json:"count"`
}

package wishlist

type WishlistItemResponse struct {
	ProductID      string `json:"productId"`
	Name           string `json:"name"`
	Price          int64  `json:"price"`
	PriceFormatted string `json:"priceFormatted"`
	Image          string `json:"image"`
	Category       string `json:"category"`
}

type WishlistResponse struct {
	Items []WishlistItemResponse `json:"items"`
	Count int                    `json:"count"`
}

type MembershipResponse struct {
	ProductID  string `json:"productId"`
	InWishlist bool   `json:"inWishlist"`
}

package order

import "encoding/json"

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type OrderResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	TotalAmount string          `json:"totalAmount"`
	Status      string          `json:"status"`
	CreatedAt   string          `json:"createdAt"`
	Items       json.RawMessage `json:"items,omitempty"`
}

type StatsResponse struct {
	TotalOrders     int    `json:"totalOrders"`
	TotalRevenue    string `json:"totalRevenue"`
	PendingOrders   int    `json:"pendingOrders"`
	CompletedOrders int    `json:"completedOrders"`
}

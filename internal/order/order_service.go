package order

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

// Terminal statuses have no outgoing transitions.
var statusTransitions = map[string]map[string]struct{}{
	StatusPending: {
		StatusCompleted: {},
		StatusCancelled: {},
	},
	StatusCompleted: {},
	StatusCancelled: {},
}

//go:generate mockgen -source=order_service.go -destination=../mock/order/order_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]OrderResponse, error)
	Stats(ctx context.Context) (StatsResponse, error)
	UpdateStatus(ctx context.Context, orderID, nextStatus string) (OrderResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	if repo == nil {
		panic("order repository cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{repo: repo, logger: logger.Named("order.service")}
}

func (s *service) List(ctx context.Context) ([]OrderResponse, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	res := make([]OrderResponse, len(orders))
	for i, o := range orders {
		res[i] = toResponse(o)
	}
	return res, nil
}

// Stats aggregates what the admin dashboard header shows: order count,
// revenue, and pending/completed split.
func (s *service) Stats(ctx context.Context) (StatsResponse, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return StatsResponse{}, err
	}

	revenue := decimal.Zero
	stats := StatsResponse{TotalOrders: len(orders)}
	for _, o := range orders {
		revenue = revenue.Add(o.TotalAmount)
		switch o.Status {
		case StatusPending:
			stats.PendingOrders++
		case StatusCompleted:
			stats.CompletedOrders++
		}
	}
	stats.TotalRevenue = revenue.String()
	return stats, nil
}

func (s *service) UpdateStatus(ctx context.Context, orderID, nextStatus string) (OrderResponse, error) {
	id, err := uuid.Parse(orderID)
	if err != nil {
		return OrderResponse{}, ErrInvalidOrderID
	}

	if _, known := statusTransitions[nextStatus]; !known {
		return OrderResponse{}, ErrInvalidStatus
	}

	current, err := s.repo.GetByID(ctx, id)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, ErrOrderNotFound
	}
	if err != nil {
		return OrderResponse{}, err
	}

	if _, ok := statusTransitions[current.Status][nextStatus]; !ok {
		return OrderResponse{}, ErrInvalidTransition
	}

	updated, err := s.repo.UpdateStatus(ctx, id, nextStatus)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderResponse{}, ErrOrderNotFound
	}
	if err != nil {
		return OrderResponse{}, err
	}

	s.logger.Info("order status updated",
		zap.String("order_id", orderID),
		zap.String("from", current.Status),
		zap.String("to", nextStatus),
	)

	return toResponse(updated), nil
}

func toResponse(o Order) OrderResponse {
	return OrderResponse{
		ID:          o.ID.String(),
		UserID:      o.UserID,
		TotalAmount: o.TotalAmount.String(),
		Status:      o.Status,
		CreatedAt:   o.CreatedAt.Format(time.RFC3339),
		Items:       o.Items,
	}
}

package order_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/officialsayandeeppaul/ambyluxe-gold-glow/internal/order"
)

// ==================== FAKE REPOSITORY ====================

type fakeRepo struct {
	listFunc         func(ctx context.Context) ([]order.Order, error)
	getByIDFunc      func(ctx context.Context, id uuid.UUID) (order.Order, error)
	updateStatusFunc func(ctx context.Context, id uuid.UUID, status string) (order.Order, error)
}

func (f *fakeRepo) List(ctx context.Context) ([]order.Order, error) {
	if f.listFunc != nil {
		return f.listFunc(ctx)
	}
	return nil, nil
}

func (f *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (order.Order, error) {
	if f.getByIDFunc != nil {
		return f.getByIDFunc(ctx, id)
	}
	return order.Order{}, sql.ErrNoRows
}

func (f *fakeRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (order.Order, error) {
	if f.updateStatusFunc != nil {
		return f.updateStatusFunc(ctx, id, status)
	}
	return order.Order{}, sql.ErrNoRows
}

func testOrder(id uuid.UUID, amount int64, status string) order.Order {
	return order.Order{
		ID:          id,
		UserID:      "user-a",
		TotalAmount: decimal.NewFromInt(amount),
		Status:      status,
		CreatedAt:   time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestOrderService_List(t *testing.T) {
	id := uuid.New()
	repo := &fakeRepo{
		listFunc: func(ctx context.Context) ([]order.Order, error) {
			return []order.Order{testOrder(id, 815000, order.StatusPending)}, nil
		},
	}
	svc := order.NewService(repo, nil)

	res, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, id.String(), res[0].ID)
	assert.Equal(t, "815000", res[0].TotalAmount)
	assert.Equal(t, order.StatusPending, res[0].Status)
	assert.Equal(t, "2025-06-01T12:00:00Z", res[0].CreatedAt)
}

func TestOrderService_Stats(t *testing.T) {
	repo := &fakeRepo{
		listFunc: func(ctx context.Context) ([]order.Order, error) {
			return []order.Order{
				testOrder(uuid.New(), 815000, order.StatusPending),
				testOrder(uuid.New(), 95000, order.StatusCompleted),
				testOrder(uuid.New(), 245000, order.StatusCompleted),
				testOrder(uuid.New(), 125000, order.StatusCancelled),
			}, nil
		},
	}
	svc := order.NewService(repo, nil)

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, stats.TotalOrders)
	assert.Equal(t, "1280000", stats.TotalRevenue)
	assert.Equal(t, 1, stats.PendingOrders)
	assert.Equal(t, 2, stats.CompletedOrders)
}

func TestOrderService_UpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("success_pending_to_completed", func(t *testing.T) {
		id := uuid.New()
		repo := &fakeRepo{
			getByIDFunc: func(ctx context.Context, gotID uuid.UUID) (order.Order, error) {
				assert.Equal(t, id, gotID)
				return testOrder(id, 815000, order.StatusPending), nil
			},
			updateStatusFunc: func(ctx context.Context, gotID uuid.UUID, status string) (order.Order, error) {
				assert.Equal(t, order.StatusCompleted, status)
				return testOrder(id, 815000, order.StatusCompleted), nil
			},
		}
		svc := order.NewService(repo, nil)

		res, err := svc.UpdateStatus(ctx, id.String(), order.StatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, order.StatusCompleted, res.Status)
	})

	t.Run("success_pending_to_cancelled", func(t *testing.T) {
		id := uuid.New()
		repo := &fakeRepo{
			getByIDFunc: func(ctx context.Context, _ uuid.UUID) (order.Order, error) {
				return testOrder(id, 815000, order.StatusPending), nil
			},
			updateStatusFunc: func(ctx context.Context, _ uuid.UUID, status string) (order.Order, error) {
				return testOrder(id, 815000, status), nil
			},
		}
		svc := order.NewService(repo, nil)

		res, err := svc.UpdateStatus(ctx, id.String(), order.StatusCancelled)
		require.NoError(t, err)
		assert.Equal(t, order.StatusCancelled, res.Status)
	})

	t.Run("error_completed_is_terminal", func(t *testing.T) {
		id := uuid.New()
		repo := &fakeRepo{
			getByIDFunc: func(ctx context.Context, _ uuid.UUID) (order.Order, error) {
				return testOrder(id, 815000, order.StatusCompleted), nil
			},
		}
		svc := order.NewService(repo, nil)

		_, err := svc.UpdateStatus(ctx, id.String(), order.StatusCancelled)
		assert.ErrorIs(t, err, order.ErrInvalidTransition)
	})

	t.Run("error_invalid_order_id", func(t *testing.T) {
		svc := order.NewService(&fakeRepo{}, nil)

		_, err := svc.UpdateStatus(ctx, "not-a-uuid", order.StatusCompleted)
		assert.ErrorIs(t, err, order.ErrInvalidOrderID)
	})

	t.Run("error_unknown_status", func(t *testing.T) {
		svc := order.NewService(&fakeRepo{}, nil)

		_, err := svc.UpdateStatus(ctx, uuid.NewString(), "shipped")
		assert.ErrorIs(t, err, order.ErrInvalidStatus)
	})

	t.Run("error_order_not_found", func(t *testing.T) {
		svc := order.NewService(&fakeRepo{}, nil)

		_, err := svc.UpdateStatus(ctx, uuid.NewString(), order.StatusCompleted)
		assert.ErrorIs(t, err, order.ErrOrderNotFound)
	})
}

package order

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Order is one row of the external order service the admin dashboard reads.
type Order struct {
	ID          uuid.UUID
	UserID      string
	TotalAmount decimal.Decimal
	Status      string
	CreatedAt   time.Time
	Items       json.RawMessage
}

//go:generate mockgen -source=order_repo.go -destination=../mock/order/order_repo_mock.go -package=mock
type Repository interface {
	List(ctx context.Context) ([]Order, error)
	GetByID(ctx context.Context, id uuid.UUID) (Order, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (Order, error)
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

const orderColumns = "id, user_id, total_amount, status, created_at, items"

func scanOrder(row interface{ Scan(...any) error }) (Order, error) {
	var o Order
	err := row.Scan(&o.ID, &o.UserID, &o.TotalAmount, &o.Status, &o.CreatedAt, &o.Items)
	return o, err
}

// List returns every order, newest first.
func (r *repository) List(ctx context.Context) ([]Order, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+orderColumns+" FROM orders ORDER BY created_at DESC",
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (Order, error) {
	row := r.db.QueryRowContext(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE id = $1",
		id,
	)
	return scanOrder(row)
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (Order, error) {
	row := r.db.QueryRowContext(ctx,
		"UPDATE orders SET status = $2 WHERE id = $1 RETURNING "+orderColumns,
		id, status,
	)
	return scanOrder(row)
}

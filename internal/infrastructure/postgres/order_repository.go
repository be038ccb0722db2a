package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hieptb/storefront/internal/domain"
)

const orderColumns = "id, user_id, items, total, status, created_at, updated_at"

type OrderRepositoryImpl struct {
	pool PoolInterface
}

func NewOrderRepository(pool PoolInterface) *OrderRepositoryImpl {
	return &OrderRepositoryImpl{pool: pool}
}

func (r *OrderRepositoryImpl) Create(ctx context.Context, order *domain.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("注文明細のシリアライズに失敗しました: %w", err)
	}

	query := `
		INSERT INTO orders (id, user_id, items, total, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err = r.pool.Exec(ctx, query,
		order.ID, order.UserID, items, order.Total, string(order.Status),
		order.CreatedAt, order.UpdatedAt,
	)
	return err
}

func (r *OrderRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Order, error) {
	query := "SELECT " + orderColumns + " FROM orders WHERE id = $1"
	order, err := scanOrder(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return order, nil
}

func (r *OrderRepositoryImpl) List(ctx context.Context) ([]domain.Order, error) {
	query := "SELECT " + orderColumns + " FROM orders ORDER BY created_at DESC"
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *OrderRepositoryImpl) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	query := "SELECT " + orderColumns + " FROM orders WHERE user_id = $1 ORDER BY created_at DESC"
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectOrders(rows)
}

func (r *OrderRepositoryImpl) Update(ctx context.Context, order *domain.Order) error {
	items, err := json.Marshal(order.Items)
	if err != nil {
		return fmt.Errorf("注文明細のシリアライズに失敗しました: %w", err)
	}

	query := `
		UPDATE orders
		SET items = $2, total = $3, status = $4, updated_at = $5
		WHERE id = $1
	`
	tag, err := r.pool.Exec(ctx, query, order.ID, items, order.Total, string(order.Status), order.UpdatedAt)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *OrderRepositoryImpl) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM orders WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	var order domain.Order
	var items []byte
	var status string
	err := row.Scan(&order.ID, &order.UserID, &items, &order.Total, &status, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return nil, err
	}
	order.Status = domain.OrderStatus(status)
	if len(items) > 0 {
		if err := json.Unmarshal(items, &order.Items); err != nil {
			return nil, fmt.Errorf("注文明細のデシリアライズに失敗しました: %w", err)
		}
	}
	return &order, nil
}

func collectOrders(rows pgx.Rows) ([]domain.Order, error) {
	orders := make([]domain.Order, 0)
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	return orders, rows.Err()
}

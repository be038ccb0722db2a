package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/newmo-oss/ctxtime"
)

var (
	ErrEmptyOrder         = errors.New("order must contain at least one item")
	ErrInvalidOrderStatus = errors.New("invalid order status")
)

type OrderStatus string

const (
	OrderStatusPlaced    OrderStatus = "placed"
	OrderStatusShipped   OrderStatus = "shipped"
	OrderStatusDelivered OrderStatus = "delivered"
)

type OrderItem struct {
	ProductID string `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Quantity  int64  `json:"quantity"`
}

type Order struct {
	ID        string      `json:"id"`
	UserID    string      `json:"userId"`
	Items     []OrderItem `json:"items"`
	Total     int64       `json:"total"`
	Status    OrderStatus `json:"status"`
	CreatedAt time.Time   `json:"createdAt"`
	UpdatedAt time.Time   `json:"updatedAt"`
}

func NewOrder(ctx context.Context, userID string, items []OrderItem) (*Order, error) {
	if userID == "" {
		return nil, ErrValidation
	}
	if len(items) == 0 {
		return nil, ErrEmptyOrder
	}
	var total int64
	for _, item := range items {
		if item.ProductID == "" || item.Quantity <= 0 || item.Price < 0 {
			return nil, ErrValidation
		}
		total += item.Price * item.Quantity
	}
	now := ctxtime.Now(ctx)
	return &Order{
		ID:        uuid.NewString(),
		UserID:    userID,
		Items:     items,
		Total:     total,
		Status:    OrderStatusPlaced,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// NextStatus は placed -> shipped -> delivered の順に状態を進めます。
// delivered からは進められません。
func (o *Order) NextStatus(ctx context.Context) error {
	switch o.Status {
	case OrderStatusPlaced:
		o.Status = OrderStatusShipped
	case OrderStatusShipped:
		o.Status = OrderStatusDelivered
	default:
		return ErrInvalidOrderStatus
	}
	o.UpdatedAt = ctxtime.Now(ctx)
	return nil
}

// ProductIDs は注文に含まれる商品IDの一覧を返します
func (o *Order) ProductIDs() []string {
	ids := make([]string, 0, len(o.Items))
	for _, item := range o.Items {
		ids = append(ids, item.ProductID)
	}
	return ids
}

package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/newmo-oss/ctxtime"
)

var (
	ErrInvalidPrice = errors.New("price must be a positive amount")
	ErrInvalidStock = errors.New("stock must not be negative")
)

// ProductPhoto はS3上のオブジェクトキーと公開URLの組です
type ProductPhoto struct {
	Key string `json:"key"`
	URL string `json:"url"`
}

type Product struct {
	ID          string         `json:"id"`
	Name        string         `json:"name"`
	Category    string         `json:"category"`
	Price       int64          `json:"price"`
	Stock       int64          `json:"stock"`
	Description string         `json:"description"`
	Photos      []ProductPhoto `json:"photos"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func NewProduct(ctx context.Context, name, category string, price, stock int64, description string, photos []ProductPhoto) (*Product, error) {
	if name == "" || category == "" || description == "" {
		return nil, ErrValidation
	}
	if price <= 0 {
		return nil, ErrInvalidPrice
	}
	if stock < 0 {
		return nil, ErrInvalidStock
	}
	now := ctxtime.Now(ctx)
	return &Product{
		ID:          uuid.NewString(),
		Name:        name,
		Category:    category,
		Price:       price,
		Stock:       stock,
		Description: description,
		Photos:      photos,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

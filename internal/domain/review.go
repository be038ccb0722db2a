package domain

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/newmo-oss/ctxtime"
)

var ErrInvalidRating = errors.New("rating must be between 1 and 5")

type Review struct {
	ID        string    `json:"id"`
	ProductID string    `json:"productId"`
	UserID    string    `json:"userId"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewReview(ctx context.Context, productID, userID string, rating int, comment string) (*Review, error) {
	if productID == "" || userID == "" {
		return nil, ErrValidation
	}
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}
	return &Review{
		ID:        uuid.NewString(),
		ProductID: productID,
		UserID:    userID,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: ctxtime.Now(ctx),
	}, nil
}

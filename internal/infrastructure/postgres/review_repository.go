package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/hieptb/storefront/internal/domain"
)

const reviewColumns = "id, product_id, user_id, rating, comment, created_at"

type ReviewRepositoryImpl struct {
	pool PoolInterface
}

func NewReviewRepository(pool PoolInterface) *ReviewRepositoryImpl {
	return &ReviewRepositoryImpl{pool: pool}
}

func (r *ReviewRepositoryImpl) Create(ctx context.Context, review *domain.Review) error {
	query := `
		INSERT INTO reviews (id, product_id, user_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := r.pool.Exec(ctx, query,
		review.ID, review.ProductID, review.UserID, review.Rating, review.Comment, review.CreatedAt,
	)
	return err
}

func (r *ReviewRepositoryImpl) FindByID(ctx context.Context, id string) (*domain.Review, error) {
	query := "SELECT " + reviewColumns + " FROM reviews WHERE id = $1"
	var review domain.Review
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&review.ID, &review.ProductID, &review.UserID, &review.Rating, &review.Comment, &review.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (r *ReviewRepositoryImpl) ListByProduct(ctx context.Context, productID string) ([]domain.Review, error) {
	query := "SELECT " + reviewColumns + " FROM reviews WHERE product_id = $1 ORDER BY created_at DESC"
	rows, err := r.pool.Query(ctx, query, productID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make([]domain.Review, 0)
	for rows.Next() {
		var review domain.Review
		err := rows.Scan(&review.ID, &review.ProductID, &review.UserID, &review.Rating, &review.Comment, &review.CreatedAt)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepositoryImpl) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, "DELETE FROM reviews WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

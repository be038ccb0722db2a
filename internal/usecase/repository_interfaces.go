//go:generate mockgen -source=$GOFILE -destination=../../tests/usecase/mock_repository_interfaces.go -package=usecase
package usecase

import (
	"context"

	"github.com/hieptb/storefront/internal/domain"
)

type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) error
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	FindByName(ctx context.Context, name string) (*domain.Product, error)
	Latest(ctx context.Context, limit int) ([]domain.Product, error)
	Categories(ctx context.Context) ([]string, error)
	Search(ctx context.Context, q domain.CatalogQuery) ([]domain.Product, int, error)
	Update(ctx context.Context, product *domain.Product) error
	Delete(ctx context.Context, id string) error
}

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	FindByID(ctx context.Context, id string) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	Delete(ctx context.Context, id string) error
}

type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) error
	FindByID(ctx context.Context, id string) (*domain.Order, error)
	List(ctx context.Context) ([]domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
	Update(ctx context.Context, order *domain.Order) error
	Delete(ctx context.Context, id string) error
}

type ReviewRepository interface {
	Create(ctx context.Context, review *domain.Review) error
	FindByID(ctx context.Context, id string) (*domain.Review, error)
	ListByProduct(ctx context.Context, productID string) ([]domain.Review, error)
	Delete(ctx context.Context, id string) error
}

type StatsRepository interface {
	Overview(ctx context.Context) (*domain.DashboardStats, error)
	CategoryShares(ctx context.Context) ([]domain.CategoryShare, error)
	OrderStatusShares(ctx context.Context) ([]domain.StatusShare, error)
	MonthlyCounts(ctx context.Context, table string, months int) ([]domain.MonthlyPoint, error)
	MonthlyRevenue(ctx context.Context, months int) ([]domain.MonthlyPoint, error)
}

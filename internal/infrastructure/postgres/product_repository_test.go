package postgres_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"

	"github.com/hieptb/storefront/internal/domain"
	"github.com/hieptb/storefront/internal/infrastructure/postgres"
)

var productCols = []string{"id", "name", "category", "price", "stock", "description", "photos", "created_at", "updated_at"}

func newProductRepo(t *testing.T) (*postgres.ProductRepositoryImpl, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool() failed: %v", err)
	}
	t.Cleanup(mock.Close)
	return postgres.NewProductRepository(mock, postgres.NewCatalogQueryPlanner(8)), mock
}

// TestProductRepositoryImpl_Create は商品登録のテーブルドリブンテスト
func TestProductRepositoryImpl_Create(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	product := &domain.Product{
		ID:          "p-1",
		Name:        "keyboard",
		Category:    "electronics",
		Price:       5000,
		Stock:       10,
		Description: "mechanical keyboard",
		Photos:      []domain.ProductPhoto{{Key: "products/p-1/a.png", URL: "https://cdn.example.com/products/p-1/a.png"}},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	tests := []struct {
		name      string
		mockSetup func(mock pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name: "正常系: 商品の登録に成功",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO products`).
					WithArgs(
						"p-1", "keyboard", "electronics", int64(5000), int64(10),
						"mechanical keyboard", pgxmock.AnyArg(), now, now,
					).
					WillReturnResult(pgxmock.NewResult("INSERT", 1))
			},
			wantErr: nil,
		},
		{
			name: "異常系: 名前の一意制約違反は重複エラーになる",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`INSERT INTO products`).
					WithArgs(
						"p-1", "keyboard", "electronics", int64(5000), int64(10),
						"mechanical keyboard", pgxmock.AnyArg(), now, now,
					).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			wantErr: domain.ErrDuplicate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newProductRepo(t)
			tt.mockSetup(mock)

			err := repo.Create(context.Background(), product)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Create() error = %v, want %v", err, tt.wantErr)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unfulfilled expectations: %v", err)
			}
		})
	}
}

// TestProductRepositoryImpl_FindByID は単品取得のテーブルドリブンテスト
func TestProductRepositoryImpl_FindByID(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		id        string
		mockSetup func(mock pgxmock.PgxPoolIface)
		want      *domain.Product
		wantErr   error
	}{
		{
			name: "正常系: 商品が取得でき画像が復元される",
			id:   "p-1",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT .+ FROM products WHERE id = \$1`).
					WithArgs("p-1").
					WillReturnRows(pgxmock.NewRows(productCols).AddRow(
						"p-1", "keyboard", "electronics", int64(5000), int64(10),
						"mechanical keyboard",
						[]byte(`[{"key":"products/p-1/a.png","url":"https://cdn.example.com/products/p-1/a.png"}]`),
						now, now,
					))
			},
			want: &domain.Product{
				ID:          "p-1",
				Name:        "keyboard",
				Category:    "electronics",
				Price:       5000,
				Stock:       10,
				Description: "mechanical keyboard",
				Photos:      []domain.ProductPhoto{{Key: "products/p-1/a.png", URL: "https://cdn.example.com/products/p-1/a.png"}},
				CreatedAt:   now,
				UpdatedAt:   now,
			},
			wantErr: nil,
		},
		{
			name: "異常系: 存在しない商品はNotFoundになる",
			id:   "p-missing",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`SELECT .+ FROM products WHERE id = \$1`).
					WithArgs("p-missing").
					WillReturnRows(pgxmock.NewRows(productCols))
			},
			want:    nil,
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newProductRepo(t)
			tt.mockSetup(mock)

			got, err := repo.FindByID(context.Background(), tt.id)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("FindByID() error = %v, want %v", err, tt.wantErr)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("FindByID() mismatch (-want +got):\n%s", diff)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unfulfilled expectations: %v", err)
			}
		})
	}
}

// 20件マッチ・ページサイズ8で総ページ数が3になること
func TestProductRepositoryImpl_Search(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	query := domain.CatalogQuery{Category: "electronics", Page: 1}

	repo, mock := newProductRepo(t)

	rows := pgxmock.NewRows(productCols)
	for _, id := range []string{"p-1", "p-2", "p-3", "p-4", "p-5", "p-6", "p-7", "p-8"} {
		rows.AddRow(id, "item-"+id, "electronics", int64(1000), int64(5), "desc", []byte(`[]`), now, now)
	}
	mock.ExpectQuery(`SELECT .+ FROM products WHERE category = \$1 LIMIT \$2 OFFSET \$3`).
		WithArgs("electronics", 8, 0).
		WillReturnRows(rows)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM products WHERE category = \$1`).
		WithArgs("electronics").
		WillReturnRows(pgxmock.NewRows([]string{"count"}).AddRow(int64(20)))

	products, totalPages, err := repo.Search(context.Background(), query)
	if err != nil {
		t.Fatalf("Search() failed: %v", err)
	}
	if len(products) != 8 {
		t.Errorf("len(products) = %d, want 8", len(products))
	}
	if totalPages != 3 {
		t.Errorf("totalPages = %d, want 3", totalPages)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unfulfilled expectations: %v", err)
	}
}

// TestProductRepositoryImpl_Delete は削除処理のテーブルドリブンテスト
func TestProductRepositoryImpl_Delete(t *testing.T) {
	tests := []struct {
		name      string
		id        string
		mockSetup func(mock pgxmock.PgxPoolIface)
		wantErr   error
	}{
		{
			name: "正常系: 商品の削除に成功",
			id:   "p-1",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`DELETE FROM products WHERE id = \$1`).
					WithArgs("p-1").
					WillReturnResult(pgxmock.NewResult("DELETE", 1))
			},
			wantErr: nil,
		},
		{
			name: "異常系: 存在しない商品の削除はNotFoundになる",
			id:   "p-missing",
			mockSetup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectExec(`DELETE FROM products WHERE id = \$1`).
					WithArgs("p-missing").
					WillReturnResult(pgxmock.NewResult("DELETE", 0))
			},
			wantErr: domain.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, mock := newProductRepo(t)
			tt.mockSetup(mock)

			err := repo.Delete(context.Background(), tt.id)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Delete() error = %v, want %v", err, tt.wantErr)
			}

			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unfulfilled expectations: %v", err)
			}
		})
	}
}

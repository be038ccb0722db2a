package postgres

import (
	"context"

	"github.com/hieptb/storefront/internal/domain"
)

// StatsRepositoryImpl は管理ダッシュボード用の集計クエリを実行します
type StatsRepositoryImpl struct {
	pool PoolInterface
}

func NewStatsRepository(pool PoolInterface) *StatsRepositoryImpl {
	return &StatsRepositoryImpl{pool: pool}
}

func (r *StatsRepositoryImpl) Overview(ctx context.Context) (*domain.DashboardStats, error) {
	query := `
		SELECT
			(SELECT COUNT(*) FROM users),
			(SELECT COUNT(*) FROM products),
			(SELECT COUNT(*) FROM orders),
			(SELECT COALESCE(SUM(total), 0) FROM orders)
	`
	var stats domain.DashboardStats
	err := r.pool.QueryRow(ctx, query).Scan(
		&stats.UserCount, &stats.ProductCount, &stats.OrderCount, &stats.Revenue,
	)
	if err != nil {
		return nil, err
	}
	return &stats, nil
}

func (r *StatsRepositoryImpl) CategoryShares(ctx context.Context) ([]domain.CategoryShare, error) {
	query := "SELECT category, COUNT(*) FROM products GROUP BY category ORDER BY category"
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shares := make([]domain.CategoryShare, 0)
	for rows.Next() {
		var share domain.CategoryShare
		if err := rows.Scan(&share.Category, &share.Count); err != nil {
			return nil, err
		}
		shares = append(shares, share)
	}
	return shares, rows.Err()
}

func (r *StatsRepositoryImpl) OrderStatusShares(ctx context.Context) ([]domain.StatusShare, error) {
	query := "SELECT status, COUNT(*) FROM orders GROUP BY status ORDER BY status"
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	shares := make([]domain.StatusShare, 0)
	for rows.Next() {
		var share domain.StatusShare
		if err := rows.Scan(&share.Status, &share.Count); err != nil {
			return nil, err
		}
		shares = append(shares, share)
	}
	return shares, rows.Err()
}

// MonthlyCounts は直近months ヶ月の月別レコード数を返します
func (r *StatsRepositoryImpl) MonthlyCounts(ctx context.Context, table string, months int) ([]domain.MonthlyPoint, error) {
	query := monthlySeriesSQL(table, "COUNT(*)")
	return r.monthlySeries(ctx, query, months)
}

// MonthlyRevenue は直近months ヶ月の月別売上を返します
func (r *StatsRepositoryImpl) MonthlyRevenue(ctx context.Context, months int) ([]domain.MonthlyPoint, error) {
	query := monthlySeriesSQL("orders", "COALESCE(SUM(total), 0)")
	return r.monthlySeries(ctx, query, months)
}

func monthlySeriesSQL(table, aggregate string) string {
	return `
		SELECT to_char(date_trunc('month', created_at), 'YYYY-MM') AS month, ` + aggregate + `
		FROM ` + table + `
		WHERE created_at >= date_trunc('month', now()) - ($1 || ' months')::interval
		GROUP BY month
		ORDER BY month
	`
}

func (r *StatsRepositoryImpl) monthlySeries(ctx context.Context, query string, months int) ([]domain.MonthlyPoint, error) {
	rows, err := r.pool.Query(ctx, query, months)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := make([]domain.MonthlyPoint, 0)
	for rows.Next() {
		var point domain.MonthlyPoint
		if err := rows.Scan(&point.Month, &point.Value); err != nil {
			return nil, err
		}
		points = append(points, point)
	}
	return points, rows.Err()
}

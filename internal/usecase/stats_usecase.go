package usecase

import (
	"context"

	"github.com/hieptb/storefront/internal/domain"
)

const statsMonths = 6

// StatsUseCase は管理ダッシュボードの集計ビューを返します。
// すべてのビューはキャッシュ上の派生ビューで、カタログ・注文・レビューの
// 変更時に AdminStatsStale として無効化されます。
type StatsUseCase struct {
	stats StatsRepository
	cache domain.CacheClient
	keys  CacheKeys
	ttl   CacheTTL
}

func NewStatsUseCase(stats StatsRepository, cache domain.CacheClient, keys CacheKeys, ttl CacheTTL) *StatsUseCase {
	return &StatsUseCase{
		stats: stats,
		cache: cache,
		keys:  keys,
		ttl:   ttl,
	}
}

func (uc *StatsUseCase) Overview(ctx context.Context) (domain.DashboardStats, error) {
	return GetOrCompute(ctx, uc.cache, uc.keys.AdminStats(), uc.ttl.ViewTTL(),
		func(ctx context.Context) (domain.DashboardStats, error) {
			stats, err := uc.stats.Overview(ctx)
			if err != nil {
				return domain.DashboardStats{}, err
			}
			return *stats, nil
		})
}

func (uc *StatsUseCase) PieCharts(ctx context.Context) (domain.PieCharts, error) {
	return GetOrCompute(ctx, uc.cache, uc.keys.AdminPieCharts(), uc.ttl.ViewTTL(),
		func(ctx context.Context) (domain.PieCharts, error) {
			categories, err := uc.stats.CategoryShares(ctx)
			if err != nil {
				return domain.PieCharts{}, err
			}
			statuses, err := uc.stats.OrderStatusShares(ctx)
			if err != nil {
				return domain.PieCharts{}, err
			}
			return domain.PieCharts{Categories: categories, OrderStatuses: statuses}, nil
		})
}

func (uc *StatsUseCase) BarCharts(ctx context.Context) (domain.BarCharts, error) {
	return GetOrCompute(ctx, uc.cache, uc.keys.AdminBarCharts(), uc.ttl.ViewTTL(),
		func(ctx context.Context) (domain.BarCharts, error) {
			users, err := uc.stats.MonthlyCounts(ctx, "users", statsMonths)
			if err != nil {
				return domain.BarCharts{}, err
			}
			products, err := uc.stats.MonthlyCounts(ctx, "products", statsMonths)
			if err != nil {
				return domain.BarCharts{}, err
			}
			return domain.BarCharts{NewUsers: users, NewProducts: products}, nil
		})
}

func (uc *StatsUseCase) LineCharts(ctx context.Context) (domain.LineCharts, error) {
	return GetOrCompute(ctx, uc.cache, uc.keys.AdminLineCharts(), uc.ttl.ViewTTL(),
		func(ctx context.Context) (domain.LineCharts, error) {
			orders, err := uc.stats.MonthlyCounts(ctx, "orders", statsMonths)
			if err != nil {
				return domain.LineCharts{}, err
			}
			revenue, err := uc.stats.MonthlyRevenue(ctx, statsMonths)
			if err != nil {
				return domain.LineCharts{}, err
			}
			return domain.LineCharts{Orders: orders, Revenue: revenue}, nil
		})
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hieptb/storefront/internal/domain"
	"github.com/hieptb/storefront/internal/usecase"
)

type StatsResponse struct {
	Success bool                  `json:"success"`
	Stats   domain.DashboardStats `json:"stats"`
}

type PieChartsResponse struct {
	Success bool             `json:"success"`
	Charts  domain.PieCharts `json:"charts"`
}

type BarChartsResponse struct {
	Success bool             `json:"success"`
	Charts  domain.BarCharts `json:"charts"`
}

type LineChartsResponse struct {
	Success bool              `json:"success"`
	Charts  domain.LineCharts `json:"charts"`
}

// StatsHandler は管理ダッシュボード向けの集計を返します。すべて管理者専用です。
type StatsHandler struct {
	stats *usecase.StatsUseCase
}

func NewStatsHandler(stats *usecase.StatsUseCase) *StatsHandler {
	return &StatsHandler{
		stats: stats,
	}
}

func (h *StatsHandler) Overview(c echo.Context) error {
	ctx := c.Request().Context()

	stats, err := h.stats.Overview(ctx)
	if err != nil {
		return toAppError(err)
	}

	return c.JSON(http.StatusOK, StatsResponse{Success: true, Stats: stats})
}

func (h *StatsHandler) Pie(c echo.Context) error {
	ctx := c.Request().Context()

	charts, err := h.stats.PieCharts(ctx)
	if err != nil {
		return toAppError(err)
	}

	return c.JSON(http.StatusOK, PieChartsResponse{Success: true, Charts: charts})
}

func (h *StatsHandler) Bar(c echo.Context) error {
	ctx := c.Request().Context()

	charts, err := h.stats.BarCharts(ctx)
	if err != nil {
		return toAppError(err)
	}

	return c.JSON(http.StatusOK, BarChartsResponse{Success: true, Charts: charts})
}

func (h *StatsHandler) Line(c echo.Context) error {
	ctx := c.Request().Context()

	charts, err := h.stats.LineCharts(ctx)
	if err != nil {
		return toAppError(err)
	}

	return c.JSON(http.StatusOK, LineChartsResponse{Success: true, Charts: charts})
}

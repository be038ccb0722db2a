package domain

// 管理ダッシュボードの集計ビュー。キャッシュ上の派生ビューであり、
// いつでもストアから再計算できます。

type DashboardStats struct {
	UserCount    int64 `json:"userCount"`
	ProductCount int64 `json:"productCount"`
	OrderCount   int64 `json:"orderCount"`
	Revenue      int64 `json:"revenue"`
}

type CategoryShare struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type StatusShare struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type MonthlyPoint struct {
	Month string `json:"month"`
	Value int64  `json:"value"`
}

type PieCharts struct {
	Categories    []CategoryShare `json:"categories"`
	OrderStatuses []StatusShare   `json:"orderStatuses"`
}

type BarCharts struct {
	NewUsers    []MonthlyPoint `json:"newUsers"`
	NewProducts []MonthlyPoint `json:"newProducts"`
}

type LineCharts struct {
	Orders  []MonthlyPoint `json:"orders"`
	Revenue []MonthlyPoint `json:"revenue"`
}

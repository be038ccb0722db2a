package domain

// CacheInvalidation はカタログの変更によって無効化すべきキャッシュ領域を表す
// 閉じたバリアント集合です。1回の変更で複数のバリアントを同時に発行できます。
type CacheInvalidation interface {
	isCacheInvalidation()
}

// ProductChanged は商品の作成・更新・削除を表します。
// 粗粒度のカタログビュー全体と、IDが分かる場合は単品ビューを無効化します。
type ProductChanged struct {
	ProductIDs []string
}

// OrderChanged は注文の作成・更新・削除を表します
type OrderChanged struct {
	UserID  string
	OrderID string
}

// ReviewChanged は商品レビューの追加・削除を表します
type ReviewChanged struct {
	ProductID string
}

// AdminStatsStale は管理ダッシュボードの集計ビューが古くなったことを表します
type AdminStatsStale struct{}

func (ProductChanged) isCacheInvalidation()  {}
func (OrderChanged) isCacheInvalidation()    {}
func (ReviewChanged) isCacheInvalidation()   {}
func (AdminStatsStale) isCacheInvalidation() {}

package domain

import "time"

// TokenKind はトークンの種別を表します
type TokenKind string

const (
	TokenKindAccess  TokenKind = "access"
	TokenKindRefresh TokenKind = "refresh"
)

// TokenClaims は署名済みトークンが運ぶ検証済みクレームです。
// サーバー側には保存されず、署名と有効期限のみで検証されます。
type TokenClaims struct {
	SubjectID string
	IsAdmin   bool
	Kind      TokenKind
	IssuedAt  time.Time
	ExpiresAt time.Time
}

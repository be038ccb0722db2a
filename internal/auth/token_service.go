package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/newmo-oss/ctxtime"

	"github.com/hieptb/storefront/internal/domain"
)

const (
	accessTokenTTL  = time.Hour
	refreshTokenTTL = 365 * 24 * time.Hour
)

var (
	ErrEmptyAccessSecret  = errors.New("access token secret is not configured")
	ErrEmptyRefreshSecret = errors.New("refresh token secret is not configured")
)

// tokenClaims は署名・検証に使う内部表現です
type tokenClaims struct {
	IsAdmin bool `json:"isAdmin"`
	jwt.RegisteredClaims
}

// TokenService はステートレスな署名付きトークンを発行・検証します。
// サーバー側にセッションは保存されず、失効リストも存在しません。
// トークンは署名と有効期限の検証に失敗するまで有効です。
type TokenService struct {
	accessSecret  []byte
	refreshSecret []byte
}

// New はTokenServiceを生成します。
// シークレット未設定は起動時の前提条件違反であり、呼び出しごとのエラーではありません。
func New(accessSecret, refreshSecret string) (*TokenService, error) {
	if accessSecret == "" {
		return nil, ErrEmptyAccessSecret
	}
	if refreshSecret == "" {
		return nil, ErrEmptyRefreshSecret
	}
	return &TokenService{
		accessSecret:  []byte(accessSecret),
		refreshSecret: []byte(refreshSecret),
	}, nil
}

// IssueAccess は1時間有効なアクセストークンを発行します
func (s *TokenService) IssueAccess(ctx context.Context, subjectID string, isAdmin bool) (string, error) {
	return s.issue(ctx, subjectID, isAdmin, s.accessSecret, accessTokenTTL)
}

// IssueRefresh は365日有効なリフレッシュトークンを発行します
func (s *TokenService) IssueRefresh(ctx context.Context, subjectID string, isAdmin bool) (string, error) {
	return s.issue(ctx, subjectID, isAdmin, s.refreshSecret, refreshTokenTTL)
}

func (s *TokenService) issue(ctx context.Context, subjectID string, isAdmin bool, secret []byte, ttl time.Duration) (string, error) {
	now := ctxtime.Now(ctx)
	claims := tokenClaims{
		IsAdmin: isAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subjectID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("トークンの署名に失敗しました: %w", err)
	}
	return signed, nil
}

// VerifyAccess はアクセストークンを検証し、クレームを返します
func (s *TokenService) VerifyAccess(tokenString string) (domain.TokenClaims, error) {
	return s.verify(tokenString, s.accessSecret, domain.TokenKindAccess)
}

// VerifyRefresh はリフレッシュトークンを検証し、クレームを返します
func (s *TokenService) VerifyRefresh(tokenString string) (domain.TokenClaims, error) {
	return s.verify(tokenString, s.refreshSecret, domain.TokenKindRefresh)
}

func (s *TokenService) verify(tokenString string, secret []byte, kind domain.TokenKind) (domain.TokenClaims, error) {
	var out tokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &out, func(token *jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return domain.TokenClaims{}, domain.ErrExpiredToken
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return domain.TokenClaims{}, domain.ErrInvalidSignature
		default:
			return domain.TokenClaims{}, fmt.Errorf("%w: %v", domain.ErrMalformedToken, err)
		}
	}

	if !token.Valid || out.Subject == "" || out.ExpiresAt == nil {
		return domain.TokenClaims{}, domain.ErrMalformedToken
	}

	claims := domain.TokenClaims{
		SubjectID: out.Subject,
		IsAdmin:   out.IsAdmin,
		Kind:      kind,
		ExpiresAt: out.ExpiresAt.Time,
	}
	if out.IssuedAt != nil {
		claims.IssuedAt = out.IssuedAt.Time
	}
	return claims, nil
}

// ExchangeRefresh はリフレッシュトークンを検証し、同じクレームを持つ
// 新しいアクセストークンを発行します。リフレッシュトークン自体は
// ローテーションも失効もされません。
func (s *TokenService) ExchangeRefresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.VerifyRefresh(refreshToken)
	if err != nil {
		return "", err
	}
	return s.IssueAccess(ctx, claims.SubjectID, claims.IsAdmin)
}

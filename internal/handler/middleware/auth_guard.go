//go:generate mockgen -source=auth_guard.go -destination=../../../tests/middleware/auth_guard_mock.go -package=middleware
package middleware

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hieptb/storefront/internal/domain"
)

const (
	// TokenHeaderName は認証トークンを運ぶHTTPヘッダー名です。
	TokenHeaderName = "token"

	claimsContextKey = "auth_claims"
)

const (
	msgNoToken              = "no token provided"
	msgAuthenticationFailed = "the authentication failed"
	msgAdminsOnly           = "access denied. admins only"
	msgAccessDenied         = "access denied"
)

// TokenVerifier はアクセストークンの検証を行います。
type TokenVerifier interface {
	VerifyAccess(token string) (domain.TokenClaims, error)
}

// RawToken はtokenヘッダーの値を検証せずに返します。
// リフレッシュトークンの交換など、アクセストークン以外を運ぶルートで使います。
func RawToken(c echo.Context) string {
	return firstOrSelf(c.Request().Header.Values(TokenHeaderName))
}

// firstOrSelf はヘッダーの多重値を先頭の1つに正規化します。
func firstOrSelf(values []string) string {
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// extractClaims はリクエストからトークンを取り出して検証します。
// トークンが無ければ401、検証に失敗すれば404を返します。
// 検証失敗の404は存在の探索を許さないための応答です。
func extractClaims(c echo.Context, verifier TokenVerifier) (domain.TokenClaims, error) {
	token := firstOrSelf(c.Request().Header.Values(TokenHeaderName))
	if token == "" {
		return domain.TokenClaims{}, NewAppError(http.StatusUnauthorized, msgNoToken, domain.ErrMissingCredential)
	}

	claims, err := verifier.VerifyAccess(token)
	if err != nil {
		return domain.TokenClaims{}, NewAppError(
			http.StatusNotFound,
			msgAuthenticationFailed,
			fmt.Errorf("%w: %w", domain.ErrAuthenticationFailed, err),
		)
	}
	return claims, nil
}

// RequireAuthenticated は有効なアクセストークンを要求するミドルウェアです。
func RequireAuthenticated(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, verifier)
			if err != nil {
				return err
			}
			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// RequireAdmin は管理者クレームを持つアクセストークンを要求するミドルウェアです。
func RequireAdmin(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, verifier)
			if err != nil {
				return err
			}
			if !claims.IsAdmin {
				return NewAppError(http.StatusForbidden, msgAdminsOnly, domain.ErrInsufficientPrivilege)
			}
			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// RequireSelfOrAdmin はパスパラメータ:idが呼び出し主体と一致するか、
// 管理者クレームを持つことを要求するミドルウェアです。
func RequireSelfOrAdmin(verifier TokenVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, err := extractClaims(c, verifier)
			if err != nil {
				return err
			}
			if !claims.IsAdmin && claims.SubjectID != c.Param("id") {
				return NewAppError(http.StatusForbidden, msgAccessDenied, domain.ErrInsufficientPrivilege)
			}
			c.Set(claimsContextKey, claims)
			return next(c)
		}
	}
}

// ClaimsFromContext は検証済みクレームを取り出します。
// 認証ミドルウェアを通過していないルートではok=falseを返します。
func ClaimsFromContext(c echo.Context) (domain.TokenClaims, bool) {
	claims, ok := c.Get(claimsContextKey).(domain.TokenClaims)
	return claims, ok
}

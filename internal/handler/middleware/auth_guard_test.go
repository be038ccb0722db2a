package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/labstack/echo/v4"
	"go.uber.org/mock/gomock"

	"github.com/hieptb/storefront/internal/domain"
	"github.com/hieptb/storefront/internal/handler/middleware"
	mock_middleware "github.com/hieptb/storefront/tests/middleware"
)

func newGuardedContext(t *testing.T, headers map[string][]string) echo.Context {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for name, values := range headers {
		for _, value := range values {
			req.Header.Add(name, value)
		}
	}
	return echo.New().NewContext(req, httptest.NewRecorder())
}

func assertAppError(t *testing.T, err error, wantStatus int, wantMessage string) {
	t.Helper()
	var appErr *middleware.AppError
	if !errors.As(err, &appErr) {
		t.Fatalf("error = %v, want *AppError", err)
	}
	if appErr.StatusCode != wantStatus {
		t.Errorf("StatusCode = %d, want %d", appErr.StatusCode, wantStatus)
	}
	if appErr.Message != wantMessage {
		t.Errorf("Message = %q, want %q", appErr.Message, wantMessage)
	}
}

func TestRequireAuthenticated(t *testing.T) {
	claims := domain.TokenClaims{SubjectID: "u-1", Kind: domain.TokenKindAccess}

	t.Run("正常系: 有効なトークンでクレームがコンテキストに入る", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		verifier := mock_middleware.NewMockTokenVerifier(ctrl)
		verifier.EXPECT().VerifyAccess("valid-token").Return(claims, nil)

		c := newGuardedContext(t, map[string][]string{"token": {"valid-token"}})
		var gotClaims domain.TokenClaims
		next := func(c echo.Context) error {
			gotClaims, _ = middleware.ClaimsFromContext(c)
			return nil
		}

		if err := middleware.RequireAuthenticated(verifier)(next)(c); err != nil {
			t.Fatalf("middleware failed: %v", err)
		}
		if diff := cmp.Diff(claims, gotClaims); diff != "" {
			t.Errorf("claims mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("正常系: 多重ヘッダーは先頭の値だけが検証される", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		verifier := mock_middleware.NewMockTokenVerifier(ctrl)
		verifier.EXPECT().VerifyAccess("first-token").Return(claims, nil)

		c := newGuardedContext(t, map[string][]string{"token": {"first-token", "second-token"}})
		next := func(c echo.Context) error { return nil }

		if err := middleware.RequireAuthenticated(verifier)(next)(c); err != nil {
			t.Fatalf("middleware failed: %v", err)
		}
	})

	t.Run("異常系: トークンがない場合は401", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		verifier := mock_middleware.NewMockTokenVerifier(ctrl)

		c := newGuardedContext(t, nil)
		next := func(c echo.Context) error {
			t.Error("next must not run without a token")
			return nil
		}

		err := middleware.RequireAuthenticated(verifier)(next)(c)
		assertAppError(t, err, http.StatusUnauthorized, "no token provided")
	})

	t.Run("異常系: 検証に失敗した場合は404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		verifier := mock_middleware.NewMockTokenVerifier(ctrl)
		verifier.EXPECT().VerifyAccess("expired-token").Return(domain.TokenClaims{}, domain.ErrExpiredToken)

		c := newGuardedContext(t, map[string][]string{"token": {"expired-token"}})
		next := func(c echo.Context) error {
			t.Error("next must not run with an invalid token")
			return nil
		}

		err := middleware.RequireAuthenticated(verifier)(next)(c)
		assertAppError(t, err, http.StatusNotFound, "the authentication failed")
		if !errors.Is(err, domain.ErrExpiredToken) {
			t.Errorf("error chain must keep the verify failure, got %v", err)
		}
	})
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name       string
		claims     domain.TokenClaims
		wantStatus int
	}{
		{
			name:   "正常系: 管理者クレームを持つトークン",
			claims: domain.TokenClaims{SubjectID: "admin-1", IsAdmin: true},
		},
		{
			name:       "異常系: 一般ユーザーのトークンは403",
			claims:     domain.TokenClaims{SubjectID: "u-1"},
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			verifier := mock_middleware.NewMockTokenVerifier(ctrl)
			verifier.EXPECT().VerifyAccess("some-token").Return(tt.claims, nil)

			c := newGuardedContext(t, map[string][]string{"token": {"some-token"}})
			nextRan := false
			next := func(c echo.Context) error {
				nextRan = true
				return nil
			}

			err := middleware.RequireAdmin(verifier)(next)(c)

			if tt.wantStatus != 0 {
				assertAppError(t, err, tt.wantStatus, "access denied. admins only")
				if nextRan {
					t.Error("next must not run for non-admin callers")
				}
				return
			}
			if err != nil {
				t.Fatalf("middleware failed: %v", err)
			}
			if !nextRan {
				t.Error("next did not run")
			}
		})
	}
}

func TestRequireSelfOrAdmin(t *testing.T) {
	tests := []struct {
		name       string
		claims     domain.TokenClaims
		paramID    string
		wantStatus int
	}{
		{
			name:    "正常系: 自分自身のリソース",
			claims:  domain.TokenClaims{SubjectID: "u-1"},
			paramID: "u-1",
		},
		{
			name:    "正常系: 管理者は他人のリソースにアクセスできる",
			claims:  domain.TokenClaims{SubjectID: "admin-1", IsAdmin: true},
			paramID: "u-1",
		},
		{
			name:       "異常系: 他人のリソースは403",
			claims:     domain.TokenClaims{SubjectID: "u-2"},
			paramID:    "u-1",
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			verifier := mock_middleware.NewMockTokenVerifier(ctrl)
			verifier.EXPECT().VerifyAccess("some-token").Return(tt.claims, nil)

			c := newGuardedContext(t, map[string][]string{"token": {"some-token"}})
			c.SetParamNames("id")
			c.SetParamValues(tt.paramID)
			next := func(c echo.Context) error { return nil }

			err := middleware.RequireSelfOrAdmin(verifier)(next)(c)

			if tt.wantStatus != 0 {
				assertAppError(t, err, tt.wantStatus, "access denied")
				return
			}
			if err != nil {
				t.Fatalf("middleware failed: %v", err)
			}
		})
	}
}

func TestRawToken(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string][]string
		want    string
	}{
		{
			name:    "正常系: tokenヘッダーの値を返す",
			headers: map[string][]string{"token": {"refresh-token"}},
			want:    "refresh-token",
		},
		{
			name:    "正常系: 多重値は先頭に正規化される",
			headers: map[string][]string{"token": {"first", "second"}},
			want:    "first",
		},
		{
			name: "正常系: ヘッダーがなければ空文字列",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newGuardedContext(t, tt.headers)
			if got := middleware.RawToken(c); got != tt.want {
				t.Errorf("RawToken() = %q, want %q", got, tt.want)
			}
		})
	}
}

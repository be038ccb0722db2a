package auth_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/newmo-oss/ctxtime/ctxtimetest"
	"github.com/newmo-oss/testid"

	"github.com/hieptb/storefront/internal/auth"
	"github.com/hieptb/storefront/internal/domain"
)

const (
	testAccessSecret  = "test-access-secret"
	testRefreshSecret = "test-refresh-secret"
)

func fixedContext(t *testing.T, now time.Time) context.Context {
	t.Helper()
	ctx := testid.WithValue(context.Background(), uuid.NewString())
	ctxtimetest.SetFixedNow(t, ctx, now)
	return ctx
}

func TestNew(t *testing.T) {
	tests := []struct {
		name          string
		accessSecret  string
		refreshSecret string
		wantErr       error
	}{
		{
			name:          "正常系: 両方のシークレットが設定されている",
			accessSecret:  testAccessSecret,
			refreshSecret: testRefreshSecret,
			wantErr:       nil,
		},
		{
			name:          "異常系: アクセストークンのシークレットが空",
			accessSecret:  "",
			refreshSecret: testRefreshSecret,
			wantErr:       auth.ErrEmptyAccessSecret,
		},
		{
			name:          "異常系: リフレッシュトークンのシークレットが空",
			accessSecret:  testAccessSecret,
			refreshSecret: "",
			wantErr:       auth.ErrEmptyRefreshSecret,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := auth.New(tt.accessSecret, tt.refreshSecret)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("New() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTokenService_IssueAndVerifyAccess(t *testing.T) {
	tests := []struct {
		name      string
		subjectID string
		isAdmin   bool
	}{
		{
			name:      "正常系: 一般ユーザーのアクセストークンを発行・検証できる",
			subjectID: "user-1",
			isAdmin:   false,
		},
		{
			name:      "正常系: 管理者クレームが往復で保持される",
			subjectID: "admin-1",
			isAdmin:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := auth.New(testAccessSecret, testRefreshSecret)
			if err != nil {
				t.Fatalf("New() failed: %v", err)
			}

			now := time.Now().Truncate(time.Second)
			ctx := fixedContext(t, now)

			token, err := svc.IssueAccess(ctx, tt.subjectID, tt.isAdmin)
			if err != nil {
				t.Fatalf("IssueAccess() failed: %v", err)
			}

			got, err := svc.VerifyAccess(token)
			if err != nil {
				t.Fatalf("VerifyAccess() failed: %v", err)
			}

			want := domain.TokenClaims{
				SubjectID: tt.subjectID,
				IsAdmin:   tt.isAdmin,
				Kind:      domain.TokenKindAccess,
				IssuedAt:  now,
				ExpiresAt: now.Add(time.Hour),
			}
			if diff := cmp.Diff(want, got); diff != "" {
				t.Errorf("claims mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenService_VerifyAccess_Errors(t *testing.T) {
	svc, err := auth.New(testAccessSecret, testRefreshSecret)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}
	otherSvc, err := auth.New("another-secret", testRefreshSecret)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	tests := []struct {
		name    string
		token   func(t *testing.T) string
		wantErr error
	}{
		{
			name: "異常系: 別の鍵で署名されたトークンは署名エラーになる",
			token: func(t *testing.T) string {
				token, err := otherSvc.IssueAccess(fixedContext(t, time.Now()), "user-1", false)
				if err != nil {
					t.Fatalf("IssueAccess() failed: %v", err)
				}
				return token
			},
			wantErr: domain.ErrInvalidSignature,
		},
		{
			name: "異常系: リフレッシュトークンはアクセストークンとして検証できない",
			token: func(t *testing.T) string {
				token, err := svc.IssueRefresh(fixedContext(t, time.Now()), "user-1", false)
				if err != nil {
					t.Fatalf("IssueRefresh() failed: %v", err)
				}
				return token
			},
			wantErr: domain.ErrInvalidSignature,
		},
		{
			name: "異常系: 期限切れトークンは期限切れエラーになる",
			token: func(t *testing.T) string {
				past := time.Now().Add(-48 * time.Hour)
				token, err := svc.IssueAccess(fixedContext(t, past), "user-1", false)
				if err != nil {
					t.Fatalf("IssueAccess() failed: %v", err)
				}
				return token
			},
			wantErr: domain.ErrExpiredToken,
		},
		{
			name: "異常系: 破損した文字列は不正形式エラーになる",
			token: func(t *testing.T) string {
				return "not-a-jwt"
			},
			wantErr: domain.ErrMalformedToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.VerifyAccess(tt.token(t))
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("VerifyAccess() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestTokenService_ExchangeRefresh(t *testing.T) {
	svc, err := auth.New(testAccessSecret, testRefreshSecret)
	if err != nil {
		t.Fatalf("New() failed: %v", err)
	}

	t.Run("正常系: リフレッシュトークンから同じクレームのアクセストークンが得られる", func(t *testing.T) {
		now := time.Now().Truncate(time.Second)
		ctx := fixedContext(t, now)

		refresh, err := svc.IssueRefresh(ctx, "admin-1", true)
		if err != nil {
			t.Fatalf("IssueRefresh() failed: %v", err)
		}

		access, err := svc.ExchangeRefresh(ctx, refresh)
		if err != nil {
			t.Fatalf("ExchangeRefresh() failed: %v", err)
		}

		claims, err := svc.VerifyAccess(access)
		if err != nil {
			t.Fatalf("VerifyAccess() failed: %v", err)
		}
		if claims.SubjectID != "admin-1" || !claims.IsAdmin {
			t.Errorf("claims = %+v, want SubjectID=admin-1 IsAdmin=true", claims)
		}
		if got, want := claims.ExpiresAt, now.Add(time.Hour); !got.Equal(want) {
			t.Errorf("ExpiresAt = %v, want %v", got, want)
		}
	})

	t.Run("異常系: アクセストークンではリフレッシュ交換できない", func(t *testing.T) {
		ctx := fixedContext(t, time.Now())
		access, err := svc.IssueAccess(ctx, "user-1", false)
		if err != nil {
			t.Fatalf("IssueAccess() failed: %v", err)
		}

		if _, err := svc.ExchangeRefresh(ctx, access); !errors.Is(err, domain.ErrInvalidSignature) {
			t.Errorf("ExchangeRefresh() error = %v, want %v", err, domain.ErrInvalidSignature)
		}
	})
}

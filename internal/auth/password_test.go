package auth_test

import (
	"errors"
	"testing"

	"github.com/hieptb/storefront/internal/auth"
)

func TestHashAndComparePassword(t *testing.T) {
	t.Run("正常系: ハッシュ化したパスワードと平文が照合できる", func(t *testing.T) {
		hash, err := auth.HashPassword("secret-password")
		if err != nil {
			t.Fatalf("HashPassword() failed: %v", err)
		}
		if hash == "secret-password" {
			t.Error("hash must not equal the plaintext password")
		}
		if err := auth.ComparePassword(hash, "secret-password"); err != nil {
			t.Errorf("ComparePassword() error = %v, want nil", err)
		}
	})

	t.Run("異常系: 異なるパスワードは照合エラーになる", func(t *testing.T) {
		hash, err := auth.HashPassword("secret-password")
		if err != nil {
			t.Fatalf("HashPassword() failed: %v", err)
		}
		if err := auth.ComparePassword(hash, "wrong-password"); !errors.Is(err, auth.ErrPasswordMismatch) {
			t.Errorf("ComparePassword() error = %v, want %v", err, auth.ErrPasswordMismatch)
		}
	})
}

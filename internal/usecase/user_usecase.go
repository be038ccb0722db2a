package usecase

import (
	"context"

	"github.com/newmo-oss/ctxtime"

	"github.com/hieptb/storefront/internal/auth"
	"github.com/hieptb/storefront/internal/domain"
)

type RegisterInput struct {
	Name            string
	Email           string
	Password        string
	ConfirmPassword string
	Phone           string
}

// UpdateUserInput の各フィールドはnilの場合更新されません
type UpdateUserInput struct {
	Name    *string
	Email   *string
	Phone   *string
	IsAdmin *bool
}

// LoginResult はログインおよび登録成功時に返されるトークンの組です
type LoginResult struct {
	User         *domain.User
	AccessToken  string
	RefreshToken string
}

type UserUseCase struct {
	users  UserRepository
	tokens TokenIssuer
}

func NewUserUseCase(users UserRepository, tokens TokenIssuer) *UserUseCase {
	return &UserUseCase{
		users:  users,
		tokens: tokens,
	}
}

// Register は新しいユーザーを作成します。管理者フラグは常にfalseで作成されます。
func (uc *UserUseCase) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if input.Password == "" || input.Password != input.ConfirmPassword {
		return nil, domain.ErrValidation
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user, err := domain.NewUser(ctx, input.Name, input.Email, hash, input.Phone)
	if err != nil {
		return nil, err
	}

	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login はメールアドレスとパスワードを検証し、アクセストークンと
// リフレッシュトークンを発行します
func (uc *UserUseCase) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrValidation
	}

	user, err := uc.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, ErrWrongPassword
	}

	accessToken, err := uc.tokens.IssueAccess(ctx, user.ID, user.IsAdmin)
	if err != nil {
		return nil, err
	}
	refreshToken, err := uc.tokens.IssueRefresh(ctx, user.ID, user.IsAdmin)
	if err != nil {
		return nil, err
	}

	return &LoginResult{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// Refresh はリフレッシュトークンと引き換えに新しいアクセストークンを発行します。
// リフレッシュトークン自体は失効もローテーションもされません。
func (uc *UserUseCase) Refresh(ctx context.Context, refreshToken string) (string, error) {
	return uc.tokens.ExchangeRefresh(ctx, refreshToken)
}

func (uc *UserUseCase) Get(ctx context.Context, id string) (*domain.User, error) {
	return uc.users.FindByID(ctx, id)
}

func (uc *UserUseCase) List(ctx context.Context) ([]domain.User, error) {
	return uc.users.List(ctx)
}

func (uc *UserUseCase) Update(ctx context.Context, id string, input UpdateUserInput) (*domain.User, error) {
	user, err := uc.users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.IsAdmin != nil {
		user.IsAdmin = *input.IsAdmin
	}
	user.UpdatedAt = ctxtime.Now(ctx)

	if err := uc.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (uc *UserUseCase) Delete(ctx context.Context, id string) error {
	return uc.users.Delete(ctx, id)
}

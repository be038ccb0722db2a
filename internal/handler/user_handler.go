package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hieptb/storefront/internal/domain"
	"github.com/hieptb/storefront/internal/handler/middleware"
	"github.com/hieptb/storefront/internal/usecase"
)

type RegisterRequest struct {
	Name            string `json:"name"`
	Email           string `json:"email"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Phone           string `json:"phone"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Phone   *string `json:"phone"`
	IsAdmin *bool   `json:"isAdmin"`
}

type LoginResponse struct {
	Success      bool         `json:"success"`
	Message      string       `json:"message"`
	User         *domain.User `json:"user"`
	AccessToken  string       `json:"accessToken"`
	RefreshToken string       `json:"refreshToken"`
}

type UserResponse struct {
	Success bool         `json:"success"`
	User    *domain.User `json:"user"`
}

type UsersResponse struct {
	Success bool          `json:"success"`
	Users   []domain.User `json:"users"`
}

type RefreshResponse struct {
	Success     bool   `json:"success"`
	AccessToken string `json:"accessToken"`
}

type UserHandler struct {
	users *usecase.UserUseCase
}

func NewUserHandler(users *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		users: users,
	}
}

// Register は新規ユーザーを登録します。管理者権限は付与されません。
func (h *UserHandler) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req RegisterRequest
	if err := c.Bind(&req); err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "invalid request body", err)
	}

	user, err := h.users.Register(ctx, usecase.RegisterInput{
		Name:            req.Name,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
		Phone:           req.Phone,
	})
	if err != nil {
		return toAppError(err)
	}

	return c.JSON(http.StatusCreated, UserResponse{Success: true, User: user})
}

// Login は認証に成功するとアクセストークンとリフレッシュトークンの組を返します。
func (h *UserHandler) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req LoginRequest
	if err := c.Bind(&req); err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "invalid request body", err)
	}

	result, err := h.users.Login(ctx, req.Email, req.Password)
	if err != nil {
		return toAppError(err)
	}

	return c.JSON(http.StatusOK, LoginResponse{
		Success:      true,
		Message:      "login successful",
		User:         result.User,
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
	})
}

// Refresh はtokenヘッダーで受けたリフレッシュトークンを新しい
// アクセストークンへ交換します。リフレッシュトークンは回転しません。
func (h *UserHandler) Refresh(c echo.Context) error {
	ctx := c.Request().Context()

	token := middleware.RawToken(c)
	if token == "" {
		return middleware.NewAppError(http.StatusUnauthorized, "no token provided", domain.ErrMissingCredential)
	}

	accessToken, err := h.users.Refresh(ctx, token)
	if err != nil {
		return middleware.NewAppError(http.StatusNotFound, "the authentication failed", err)
	}

	return c.JSON(http.StatusOK, RefreshResponse{Success: true, AccessToken: accessToken})
}

func (h *UserHandler) List(c echo.Context) error {
	ctx := c.Request().Context()

	users, err := h.users.List(ctx)
	if err != nil {
		return toAppError(err)
	}

	return c.JSON(http.StatusOK, UsersResponse{Success: true, Users: users})
}

func (h *UserHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	user, err := h.users.Get(ctx, c.Param("id"))
	if err != nil {
		return toAppError(err)
	}

	return c.JSON(http.StatusOK, UserResponse{Success: true, User: user})
}

func (h *UserHandler) Update(c echo.Context) error {
	ctx := c.Request().Context()

	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "invalid request body", err)
	}

	user, err := h.users.Update(ctx, c.Param("id"), usecase.UpdateUserInput{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		IsAdmin: req.IsAdmin,
	})
	if err != nil {
		return toAppError(err)
	}

	return c.JSON(http.StatusOK, UserResponse{Success: true, User: user})
}

func (h *UserHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.users.Delete(ctx, c.Param("id")); err != nil {
		return toAppError(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "user deleted successfully"})
}

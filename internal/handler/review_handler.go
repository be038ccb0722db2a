package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hieptb/storefront/internal/domain"
	"github.com/hieptb/storefront/internal/handler/middleware"
	"github.com/hieptb/storefront/internal/usecase"
)

type AddReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type ReviewResponse struct {
	Success bool           `json:"success"`
	Review  *domain.Review `json:"review"`
}

type ReviewsResponse struct {
	Success bool            `json:"success"`
	Reviews []domain.Review `json:"reviews"`
}

type ReviewHandler struct {
	reviews *usecase.ReviewUseCase
}

func NewReviewHandler(reviews *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviews: reviews,
	}
}

func (h *ReviewHandler) ListByProduct(c echo.Context) error {
	ctx := c.Request().Context()

	reviews, err := h.reviews.ListByProduct(ctx, c.Param("id"))
	if err != nil {
		return toAppError(err)
	}

	return c.JSON(http.StatusOK, ReviewsResponse{Success: true, Reviews: reviews})
}

// Add は認証済みユーザーのレビューを商品に追加します。
func (h *ReviewHandler) Add(c echo.Context) error {
	ctx := c.Request().Context()

	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return middleware.NewAppError(http.StatusUnauthorized, "no token provided", domain.ErrMissingCredential)
	}

	var req AddReviewRequest
	if err := c.Bind(&req); err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "invalid request body", err)
	}

	review, err := h.reviews.Add(ctx, c.Param("id"), claims.SubjectID, req.Rating, req.Comment)
	if err != nil {
		return toAppError(err)
	}

	return c.JSON(http.StatusCreated, ReviewResponse{Success: true, Review: review})
}

// Delete はレビューの所有者か管理者による削除を受け付けます。
func (h *ReviewHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return middleware.NewAppError(http.StatusUnauthorized, "no token provided", domain.ErrMissingCredential)
	}

	if err := h.reviews.Delete(ctx, c.Param("id"), claims); err != nil {
		return toAppError(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "review deleted successfully"})
}

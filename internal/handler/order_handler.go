package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/hieptb/storefront/internal/domain"
	"github.com/hieptb/storefront/internal/handler/middleware"
	"github.com/hieptb/storefront/internal/usecase"
)

type CreateOrderRequest struct {
	Items []OrderItemRequest `json:"items"`
}

type OrderItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int64  `json:"quantity"`
}

type OrderResponse struct {
	Success bool          `json:"success"`
	Order   *domain.Order `json:"order"`
}

type OrdersResponse struct {
	Success bool           `json:"success"`
	Orders  []domain.Order `json:"orders"`
}

type OrderHandler struct {
	orders *usecase.OrderUseCase
}

func NewOrderHandler(orders *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orders: orders,
	}
}

// Create は認証済みユーザーの注文を作成します。注文主体はトークンの
// クレームから取られ、リクエストボディでは指定できません。
func (h *OrderHandler) Create(c echo.Context) error {
	ctx := c.Request().Context()

	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return middleware.NewAppError(http.StatusUnauthorized, "no token provided", domain.ErrMissingCredential)
	}

	var req CreateOrderRequest
	if err := c.Bind(&req); err != nil {
		return middleware.NewAppError(http.StatusBadRequest, "invalid request body", err)
	}

	items := make([]usecase.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, usecase.OrderItemInput{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	order, err := h.orders.Create(ctx, claims.SubjectID, items)
	if err != nil {
		return toAppError(err)
	}

	return c.JSON(http.StatusCreated, OrderResponse{Success: true, Order: order})
}

// My は呼び出し主体自身の注文一覧を返します。
func (h *OrderHandler) My(c echo.Context) error {
	ctx := c.Request().Context()

	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return middleware.NewAppError(http.StatusUnauthorized, "no token provided", domain.ErrMissingCredential)
	}

	orders, err := h.orders.My(ctx, claims.SubjectID)
	if err != nil {
		return toAppError(err)
	}

	return c.JSON(http.StatusOK, OrdersResponse{Success: true, Orders: orders})
}

func (h *OrderHandler) All(c echo.Context) error {
	ctx := c.Request().Context()

	orders, err := h.orders.All(ctx)
	if err != nil {
		return toAppError(err)
	}

	return c.JSON(http.StatusOK, OrdersResponse{Success: true, Orders: orders})
}

// Get は注文の所有者か管理者にのみ注文を返します。
func (h *OrderHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()

	claims, ok := middleware.ClaimsFromContext(c)
	if !ok {
		return middleware.NewAppError(http.StatusUnauthorized, "no token provided", domain.ErrMissingCredential)
	}

	order, err := h.orders.Get(ctx, c.Param("id"))
	if err != nil {
		return toAppError(err)
	}
	if !claims.IsAdmin && order.UserID != claims.SubjectID {
		return middleware.NewAppError(http.StatusForbidden, "access denied", domain.ErrInsufficientPrivilege)
	}

	return c.JSON(http.StatusOK, OrderResponse{Success: true, Order: &order})
}

// Process は注文の状態を placed -> shipped -> delivered の順に1段階進めます。
func (h *OrderHandler) Process(c echo.Context) error {
	ctx := c.Request().Context()

	order, err := h.orders.Process(ctx, c.Param("id"))
	if err != nil {
		return toAppError(err)
	}

	return c.JSON(http.StatusOK, OrderResponse{Success: true, Order: order})
}

func (h *OrderHandler) Delete(c echo.Context) error {
	ctx := c.Request().Context()

	if err := h.orders.Delete(ctx, c.Param("id")); err != nil {
		return toAppError(err)
	}

	return c.JSON(http.StatusOK, MessageResponse{Success: true, Message: "order deleted successfully"})
}

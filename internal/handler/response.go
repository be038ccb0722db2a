package handler

import (
	"errors"
	"net/http"

	"github.com/hieptb/storefront/internal/domain"
	"github.com/hieptb/storefront/internal/handler/middleware"
	"github.com/hieptb/storefront/internal/usecase"
)

// MessageResponse は本文を持たない成功レスポンスです。
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// clientFaults は4xxにマップされるエラーとそのステータスコードの対応表です。
// ここに載らないエラーはすべて500として扱われ、内部の詳細は漏らしません。
var clientFaults = []struct {
	sentinel error
	status   int
}{
	{domain.ErrNotFound, http.StatusNotFound},
	{domain.ErrDuplicate, http.StatusBadRequest},
	{domain.ErrValidation, http.StatusBadRequest},
	{domain.ErrInvalidPrice, http.StatusBadRequest},
	{domain.ErrInvalidStock, http.StatusBadRequest},
	{domain.ErrEmptyOrder, http.StatusBadRequest},
	{domain.ErrInvalidOrderStatus, http.StatusBadRequest},
	{domain.ErrInvalidRating, http.StatusBadRequest},
	{domain.ErrInvalidSortOrder, http.StatusBadRequest},
	{usecase.ErrNoImages, http.StatusBadRequest},
	{usecase.ErrTooManyImages, http.StatusBadRequest},
	{usecase.ErrWrongPassword, http.StatusBadRequest},
	{usecase.ErrReviewNotOwned, http.StatusForbidden},
}

// toAppError はユースケース層のエラーをHTTPステータス付きのAppErrorへ
// 変換します。既にAppErrorであればそのまま返します。
func toAppError(err error) error {
	var appErr *middleware.AppError
	if errors.As(err, &appErr) {
		return err
	}
	for _, fault := range clientFaults {
		if errors.Is(err, fault.sentinel) {
			return middleware.NewAppError(fault.status, fault.sentinel.Error(), err)
		}
	}
	return middleware.NewAppError(http.StatusInternalServerError, "internal server error", err)
}

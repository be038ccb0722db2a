package usecase

import "errors"

var (
	ErrNoImages       = errors.New("at least one image is required")
	ErrTooManyImages  = errors.New("you can only upload 5 images")
	ErrWrongPassword  = errors.New("password is incorrect")
	ErrReviewNotOwned = errors.New("review belongs to another user")
)

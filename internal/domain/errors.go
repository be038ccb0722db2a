package domain

import "errors"

var (
	ErrNotFound   = errors.New("not found")
	ErrDuplicate  = errors.New("already exists")
	ErrValidation = errors.New("validation failed")

	ErrMissingCredential     = errors.New("no token provided")
	ErrInvalidSignature      = errors.New("token signature is invalid")
	ErrExpiredToken          = errors.New("token is expired")
	ErrMalformedToken        = errors.New("token is malformed")
	ErrAuthenticationFailed  = errors.New("the authentication failed")
	ErrInsufficientPrivilege = errors.New("access denied")
)

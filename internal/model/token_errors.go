package model

import "errors"

var (
	ErrTokenInvalid      = errors.New("token invalid")
	ErrTokenExpired      = errors.New("token expired")
	ErrTokenMissingClaim = errors.New("token identity claim missing")
)

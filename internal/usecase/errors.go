package usecase

import (
	"errors"

	"github.com/riskibarqy/scouting/internal/domain"
)

var (
	ErrInvalidInput   = domain.ErrValidation
	ErrNotFound       = domain.ErrNotFound
	ErrAuthentication = domain.ErrAuthentication
	ErrFormat         = domain.ErrFormat
	ErrUnauthorized   = errors.New("unauthorized")
	ErrConflict       = errors.New("already exists")
)

package service

import (
	"errors"

	"github.com/lshigami/meowcdd/internal/repository"
)

var (
	ErrNotFound     = repository.ErrNotFound
	ErrDuplicate    = repository.ErrDuplicate
	ErrInvalidInput = errors.New("invalid input")
)

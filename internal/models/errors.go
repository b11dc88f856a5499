package models

import (
	"errors"
)

var (
	ErrEmptyContent    = errors.New("memo content is empty")
	ErrUnknownCategory = errors.New("unknown category")
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation error")

	ErrOracleDeclined = errors.New("deep analyzer declined")
)

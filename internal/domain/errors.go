package domain

import "errors"

var (
	ErrNotFound     = errors.New("resource not found")
	ErrConflict     = errors.New("resource conflict")
	ErrNoPlan       = errors.New("no training plan generated yet")
	ErrInvalidInput = errors.New("invalid input")
)

package store

import (
	"net/http"

	"github.com/officialsayandeeppaul/ambyluxe-gold-glow/internal/pkg/apperror"
)

var (
	ErrInvalidQuantity = apperror.New(
		apperror.CodeInvalidInput,
		"Quantity must be at least 1",
		http.StatusBadRequest,
	)

	ErrInvalidProduct = apperror.New(
		apperror.CodeInvalidInput,
		"Product is missing an id",
		http.StatusBadRequest,
	)
)

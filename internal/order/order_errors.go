package order

import (
	"net/http"

	"github.com/officialsayandeeppaul/ambyluxe-gold-glow/internal/pkg/apperror"
)

var (
	ErrInvalidOrderID = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid order ID",
		http.StatusBadRequest,
	)

	ErrOrderNotFound = apperror.New(
		apperror.CodeNotFound,
		"Order not found",
		http.StatusNotFound,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Unknown order status",
		http.StatusBadRequest,
	)

	ErrInvalidTransition = apperror.New(
		apperror.CodeInvalidState,
		"Order status transition not allowed",
		http.StatusConflict,
	)
)

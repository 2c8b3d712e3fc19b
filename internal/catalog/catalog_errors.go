package catalog

import (
	"net/http"

	"github.com/officialsayandeeppaul/ambyluxe-gold-glow/internal/pkg/apperror"
)

var ErrProductNotFound = apperror.New(
	apperror.CodeNotFound,
	"Product not found",
	http.StatusNotFound,
)

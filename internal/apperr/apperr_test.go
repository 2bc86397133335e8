package apperr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected int
	}{
		{"not found", ErrNotFound, http.StatusNotFound},
		{"conflict", ErrConflict, http.StatusConflict},
		{"validation", ErrValidation, http.StatusBadRequest},
		{"unauthorized", ErrUnauthorized, http.StatusForbidden},
		{"storage", ErrStorage, http.StatusInternalServerError},
		{"unknown error", errors.New("autre"), http.StatusInternalServerError},
		{"wrapped conflict", Wrap(ErrConflict, "email déjà utilisé"), http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HTTPStatus(tt.err))
		})
	}
}

func TestWrapKeepsTaxonomy(t *testing.T) {
	err := Wrapf(ErrValidation, "bio limitée à %d caractères", 300)

	assert.ErrorIs(t, err, ErrValidation)
	assert.Contains(t, err.Error(), "300")
}

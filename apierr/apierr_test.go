// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package apierr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindStatus(t *testing.T) {
	tests := []struct {
		kind Kind
		want int
	}{
		{KindValidation, http.StatusBadRequest},
		{KindConflict, http.StatusConflict},
		{KindAuth, http.StatusUnauthorized},
		{KindNotFound, http.StatusNotFound},
		{KindTooLarge, http.StatusRequestEntityTooLarge},
		{KindUnavailable, http.StatusInternalServerError},
		{KindInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.Status())
		})
	}
}

func TestFrom(t *testing.T) {
	t.Run("nil stays nil", func(t *testing.T) {
		assert.Nil(t, From(nil))
	})

	t.Run("classified error passes through wrapping", func(t *testing.T) {
		wrapped := fmt.Errorf("listing contacts: %w", NotFound("contact not found"))
		e := From(wrapped)
		require.NotNil(t, e)
		assert.Equal(t, KindNotFound, e.Kind)
		assert.Equal(t, "contact not found", e.Message)
	})

	t.Run("unknown error becomes internal with generic message", func(t *testing.T) {
		raw := errors.New("dial tcp 10.0.0.5:3306: connect: connection refused")
		e := From(raw)
		require.NotNil(t, e)
		assert.Equal(t, KindInternal, e.Kind)
		assert.Equal(t, MsgInternal, e.Message)
		assert.ErrorIs(t, e, raw)
	})
}

func TestUnavailableHidesCause(t *testing.T) {
	cause := errors.New("Access denied for user 'root'@'localhost'")
	e := Unavailable(cause)

	assert.Equal(t, MsgUnavailable, e.Message)
	assert.Equal(t, http.StatusInternalServerError, e.Kind.Status())
	assert.True(t, IsKind(e, KindUnavailable))
	assert.False(t, IsKind(e, KindInternal))
	assert.ErrorIs(t, e, cause)
}

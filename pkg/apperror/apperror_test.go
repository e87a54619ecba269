package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, KindArgument.Status())
	assert.Equal(t, http.StatusInternalServerError, KindInvalidOperation.Status())
	assert.Equal(t, http.StatusInternalServerError, KindUnclassified.Status())
}

func TestConstructors(t *testing.T) {
	cause := errors.New("boom")

	t.Run("argument", func(t *testing.T) {
		err := Argument(cause, "bad input")
		assert.Equal(t, KindArgument, err.Kind)
		assert.Equal(t, http.StatusBadRequest, err.Code)
		assert.Equal(t, "bad input", err.Error())
		assert.ErrorIs(t, err, cause)
	})

	t.Run("invalid operation", func(t *testing.T) {
		err := InvalidOperation(cause, "cannot run")
		assert.Equal(t, KindInvalidOperation, err.Kind)
		assert.Equal(t, http.StatusInternalServerError, err.Code)
	})

	t.Run("unclassified keeps message verbatim", func(t *testing.T) {
		err := Unclassified(cause)
		assert.Equal(t, KindUnclassified, err.Kind)
		assert.Equal(t, "boom", err.Message)
	})

	t.Run("new and wrap", func(t *testing.T) {
		assert.Equal(t, http.StatusConflict, New(http.StatusConflict, "dup").Code)
		wrapped := Wrap(cause, http.StatusNotFound, "missing")
		assert.Equal(t, http.StatusNotFound, wrapped.Code)
		assert.ErrorIs(t, wrapped, cause)
	})
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("outer: %w", Argument(nil, "bad"))
	require.True(t, IsKind(wrapped, KindArgument))
	assert.Equal(t, KindArgument, KindOf(wrapped))
	assert.Equal(t, KindUnclassified, KindOf(errors.New("plain")))
	assert.False(t, IsKind(errors.New("plain"), KindInvalidOperation))
}

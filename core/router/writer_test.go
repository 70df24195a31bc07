package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseWriter(t *testing.T) {
	t.Parallel()

	t.Run("records the first status only", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		ww := newResponseWriter(rec)

		assert.False(t, ww.Written())
		assert.Equal(t, 0, ww.Status())

		ww.WriteHeader(http.StatusCreated)
		ww.WriteHeader(http.StatusInternalServerError)

		assert.True(t, ww.Written())
		assert.Equal(t, http.StatusCreated, ww.Status())
		assert.Equal(t, http.StatusCreated, rec.Code)
	})

	t.Run("write implies 200", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		ww := newResponseWriter(rec)

		_, err := ww.Write([]byte("hello"))
		assert.NoError(t, err)
		assert.True(t, ww.Written())
		assert.Equal(t, http.StatusOK, ww.Status())
		assert.Equal(t, "hello", rec.Body.String())
	})

	t.Run("flush reaches the underlying writer", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		ww := newResponseWriter(rec)

		_, _ = ww.Write([]byte("chunk"))
		ww.Flush()

		assert.True(t, rec.Flushed)
	})

	t.Run("unwrap exposes the original writer", func(t *testing.T) {
		t.Parallel()

		rec := httptest.NewRecorder()
		ww := newResponseWriter(rec)

		assert.Same(t, http.ResponseWriter(rec), ww.Unwrap())
	})
}

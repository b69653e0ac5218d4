package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMethodOverride(t *testing.T) {
	var seen string
	handler := MethodOverride(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = r.Method
	}))

	t.Run("query parameter", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/deleteImage?imageId=5&_method=DELETE", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, http.MethodDelete, seen)
	})

	t.Run("form field", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/editImage", strings.NewReader("_method=PUT&imageId=5"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		handler.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, http.MethodPut, seen)
	})

	t.Run("plain post untouched", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/images/upload", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, http.MethodPost, seen)
	})

	t.Run("only put and delete are honored", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/x?_method=CONNECT", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, http.MethodPost, seen)
	})

	t.Run("get untouched", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/images?_method=DELETE", nil)
		handler.ServeHTTP(httptest.NewRecorder(), req)
		assert.Equal(t, http.MethodGet, seen)
	})
}

package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/user-management/internal/logger"
)

func TestWithRecover(t *testing.T) {
	tests := []struct {
		name     string
		panicVal any
		wantBody string
	}{
		{name: "string", panicVal: "something broke", wantBody: "something broke"},
		{name: "error", panicVal: errors.New("nil map write"), wantBody: "nil map write"},
		{name: "number", panicVal: 42, wantBody: "42"},
	}

	h := &Handler{logger: logger.Nop()}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := h.withRecover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
				panic(tt.panicVal)
			}))

			rr := httptest.NewRecorder()
			assert.NotPanics(t, func() {
				handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
			})

			assert.Equal(t, http.StatusInternalServerError, rr.Code)
			assert.Equal(t, tt.wantBody, rr.Body.String())
		})
	}
}

func TestWithRecover_PassesThrough(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	handler := h.withRecover(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

func TestWithRecover_ReRaisesAbortHandler(t *testing.T) {
	h := &Handler{logger: logger.Nop()}
	handler := h.withRecover(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecovery_PanicReturns500(t *testing.T) { //nolint:paralleltest // modifies global slog default
	h := setupTestLogger(t) //nolint:varnamelen // h is conventional for handler

	handler := RequestID()(Recovery()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("tile index corrupt")
	})))

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	req.Header.Set(RequestIDHeader, "req-1")

	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	records := h.all()
	require.Len(t, records, 1)
	assert.Equal(t, "panic recovered", records[0].Message)
	assert.Equal(t, "tile index corrupt", records[0].Attrs["panic"])
	assert.Equal(t, "/panic", records[0].Attrs["path"])
	assert.Equal(t, "req-1", records[0].Attrs["request_id"])
	assert.Contains(t, records[0].Attrs["stack"], "goroutine")
}

func TestRecovery_PanicAfterPartialWrite(t *testing.T) { //nolint:paralleltest // modifies global slog default
	h := setupTestLogger(t) //nolint:varnamelen // h is conventional for handler

	handler := Recovery()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("partial"))

		panic("mid-stream")
	}))

	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/stream", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "partial", rec.Body.String())

	records := h.all()
	require.Len(t, records, 1)
	assert.Equal(t, "panic recovered after response was already written", records[0].Message)
}

func TestRecovery_ErrAbortHandlerRePanics(t *testing.T) { //nolint:paralleltest // modifies global slog default
	setupTestLogger(t)

	handler := Recovery()(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.PanicsWithValue(t, http.ErrAbortHandler, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))
	})
}

func TestRecovery_NoPanicPassesThrough(t *testing.T) { //nolint:paralleltest // modifies global slog default
	h := setupTestLogger(t) //nolint:varnamelen // h is conventional for handler

	handler := Recovery()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	}))

	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Empty(t, h.all())
}

func TestRecovery_PreservesFlusher(t *testing.T) { //nolint:paralleltest // modifies global slog default
	setupTestLogger(t)

	var flushable bool

	handler := Recovery()(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, flushable = w.(http.Flusher)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	assert.True(t, flushable)
}

package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakePool struct {
	pingErr error
}

func (f *fakePool) Ping(ctx context.Context) error { return f.pingErr }
func (f *fakePool) Close()                         {}

func TestHandleHealthz(t *testing.T) {
	req := httptest.NewRequest("GET", "/healthz", nil)
	rec := httptest.NewRecorder()

	HandleHealthz()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestHandleReadyz(t *testing.T) {
	t.Run("Database reachable", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/readyz", nil)
		rec := httptest.NewRecorder()

		HandleReadyz(&fakePool{})(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	})

	t.Run("Database unreachable", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/readyz", nil)
		rec := httptest.NewRecorder()

		HandleReadyz(&fakePool{pingErr: errors.New("connection refused")})(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "unavailable")
	})
}

func TestHandleVersion(t *testing.T) {
	req := httptest.NewRequest("GET", "/version", nil)
	rec := httptest.NewRecorder()

	HandleVersion()(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"go_version"`)
}

package newrelic

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestMiddlewareNilApplication(t *testing.T) {
	e := echo.New()
	e.Use(Middleware(nil))
	e.GET("/ping", func(c echo.Context) error {
		return c.String(http.StatusOK, "pong")
	})

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "pong", rec.Body.String())
}

func TestWithSegmentNoTransaction(t *testing.T) {
	called := false
	err := WithSegment(context.Background(), "test.segment", func() error {
		called = true
		return nil
	})

	assert.NoError(t, err)
	assert.True(t, called)
}

func TestWithSegmentPropagatesError(t *testing.T) {
	wantErr := errors.New("provider down")
	err := WithSegment(context.Background(), "test.segment", func() error {
		return wantErr
	})

	assert.ErrorIs(t, err, wantErr)
}

func TestStartSegmentNilTransaction(t *testing.T) {
	assert.Nil(t, StartSegment(nil, "test.segment"))
}

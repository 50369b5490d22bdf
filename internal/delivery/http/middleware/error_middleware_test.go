package middleware

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"

	domainerrors "kumoart/internal/domain/errors"
	"kumoart/internal/errors"
)

func newErrorTestContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/products/tidak-ada", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestHandleHTTPError_AppError(t *testing.T) {
	m := NewErrorMiddleware(slog.Default())
	c, rec := newErrorTestContext()

	m.HandleHTTPError(errors.WithStack(domainerrors.ErrProductNotFound), c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"success":false`)
	assert.Contains(t, body, `"code":404`)
	assert.Contains(t, body, `"PRODUCT_NOT_FOUND"`)
}

func TestHandleHTTPError_EchoHTTPError(t *testing.T) {
	m := NewErrorMiddleware(slog.Default())
	c, rec := newErrorTestContext()

	m.HandleHTTPError(echo.NewHTTPError(http.StatusMethodNotAllowed, "Method Not Allowed"), c)

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.Contains(t, rec.Body.String(), `"HTTP_ERROR"`)
}

func TestHandleHTTPError_UnknownError(t *testing.T) {
	m := NewErrorMiddleware(slog.Default())
	c, rec := newErrorTestContext()

	m.HandleHTTPError(errors.New("koneksi terputus"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"INTERNAL_ERROR"`)
	assert.Contains(t, body, "koneksi terputus")
}

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	apperrors "contactbook/internal/errors"
)

// MockAuthService is a mock implementation of service.AuthService.
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (string, error) {
	args := m.Called(ctx, email, password)
	return args.String(0), args.Error(1)
}

func postForm(e *echo.Echo, path string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Token(t *testing.T) {
	t.Run("valid credentials return a bearer token", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("Login", mock.Anything, "user@example.com", "password123").
			Return("signed.jwt.token", nil)

		h := NewAuthHandler(mockService)
		e := echo.New()
		c, rec := postForm(e, "/token", url.Values{
			"username": {"user@example.com"},
			"password": {"password123"},
		})

		require.NoError(t, h.Token(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp TokenResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.Equal(t, "signed.jwt.token", resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)
		mockService.AssertExpectations(t)
	})

	t.Run("bad credentials return 401 with a challenge header", func(t *testing.T) {
		mockService := new(MockAuthService)
		mockService.On("Login", mock.Anything, "user@example.com", "wrong").
			Return("", apperrors.ErrInvalidCredentials)

		h := NewAuthHandler(mockService)
		e := echo.New()
		c, rec := postForm(e, "/token", url.Values{
			"username": {"user@example.com"},
			"password": {"wrong"},
		})

		err := h.Token(c)
		require.Error(t, err)

		httpErr, ok := err.(*echo.HTTPError)
		require.True(t, ok)
		assert.Equal(t, http.StatusUnauthorized, httpErr.Code)
		assert.Equal(t, "Bearer", rec.Header().Get(echo.HeaderWWWAuthenticate))
		mockService.AssertExpectations(t)
	})
}

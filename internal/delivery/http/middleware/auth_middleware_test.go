package middleware

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"tienda/internal/delivery/http/response"
	domainerrors "tienda/internal/domain/errors"
	mockSvc "tienda/internal/mocks/service"

	"tienda/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProtectedEcho(t *testing.T, tokenSvc service.TokenService) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(logger).HandleHTTPError

	authMw := NewAuthMiddleware(tokenSvc)
	e.GET("/user/profile", func(c echo.Context) error {
		userID, _ := c.Get(ContextKeyUserID).(uint64)
		email, _ := c.Get(ContextKeyEmail).(string)

		return c.JSON(http.StatusOK, map[string]any{"id": userID, "email": email})
	}, authMw.Authenticate)

	return e
}

func doProtected(e *echo.Echo, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/user/profile", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.Response {
	t.Helper()

	var envelope response.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))

	return envelope
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Validate("good-token").Return(&service.TokenClaims{UserID: 1, Email: "ana@example.com"}, nil)

	e := newProtectedEcho(t, tokenSvc)
	rec := doProtected(e, "Bearer good-token")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "ana@example.com")
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	e := newProtectedEcho(t, tokenSvc)
	rec := doProtected(e, "")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	envelope := decodeError(t, rec)
	assert.Equal(t, "TOKEN_INVALID", envelope.Error.Code)
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)

	e := newProtectedEcho(t, tokenSvc)
	rec := doProtected(e, "Basic abc123")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	envelope := decodeError(t, rec)
	assert.Equal(t, "TOKEN_INVALID", envelope.Error.Code)
}

// An elapsed expiry and a tampered token both reject with 401, but the
// envelope distinguishes them.
func TestAuthMiddleware_ExpiredVersusInvalid(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().Validate("expired-token").Return(nil, errors.Wrap(domainerrors.ErrTokenExpired, "token verification failed"))
	tokenSvc.EXPECT().Validate("tampered-token").Return(nil, errors.Wrap(domainerrors.ErrTokenInvalid, "token verification failed"))

	e := newProtectedEcho(t, tokenSvc)

	recExpired := doProtected(e, "Bearer expired-token")
	require.Equal(t, http.StatusUnauthorized, recExpired.Code)
	envExpired := decodeError(t, recExpired)
	assert.Equal(t, "TOKEN_EXPIRED", envExpired.Error.Code)
	assert.Equal(t, "Token expirado", envExpired.Message)

	recInvalid := doProtected(e, "Bearer tampered-token")
	require.Equal(t, http.StatusUnauthorized, recInvalid.Code)
	envInvalid := decodeError(t, recInvalid)
	assert.Equal(t, "TOKEN_INVALID", envInvalid.Error.Code)
	assert.Equal(t, "Token inválido", envInvalid.Message)
}

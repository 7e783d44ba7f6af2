package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"swadwala/internal/config"
	"swadwala/internal/middleware"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

var testCfg = config.Config{JWTSecret: "test-secret"}

func signToken(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	assert.NoError(t, err)
	return s
}

func runProtected(t *testing.T, cookie *http.Cookie) (*httptest.ResponseRecorder, int64) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	var gotUserID int64
	handler := middleware.AuthJWT(testCfg)(func(c echo.Context) error {
		gotUserID = c.Get(middleware.CtxUserIDKey).(int64)
		return c.NoContent(http.StatusOK)
	})

	assert.NoError(t, handler(c))
	return rec, gotUserID
}

func TestAuthJWT_ValidToken(t *testing.T) {
	token := signToken(t, testCfg.JWTSecret, jwt.MapClaims{
		"id":  7,
		"iat": time.Now().Unix(),
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	rec, userID := runProtected(t, &http.Cookie{Name: middleware.SessionCookie, Value: token})

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(7), userID)
}

func TestAuthJWT_MissingCookie(t *testing.T) {
	rec, _ := runProtected(t, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"token not found"}`, rec.Body.String())
}

func TestAuthJWT_WrongSecret(t *testing.T) {
	token := signToken(t, "other-secret", jwt.MapClaims{
		"id":  7,
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	rec, _ := runProtected(t, &http.Cookie{Name: middleware.SessionCookie, Value: token})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.JSONEq(t, `{"message":"authentication failed"}`, rec.Body.String())
}

func TestAuthJWT_ExpiredToken(t *testing.T) {
	token := signToken(t, testCfg.JWTSecret, jwt.MapClaims{
		"id":  7,
		"exp": time.Now().Add(-time.Hour).Unix(),
	})

	rec, _ := runProtected(t, &http.Cookie{Name: middleware.SessionCookie, Value: token})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_MissingIDClaim(t *testing.T) {
	token := signToken(t, testCfg.JWTSecret, jwt.MapClaims{
		"exp": time.Now().Add(time.Hour).Unix(),
	})

	rec, _ := runProtected(t, &http.Cookie{Name: middleware.SessionCookie, Value: token})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/louis5103/st-booking-system/internal/config"
	"github.com/louis5103/st-booking-system/internal/utils"
)

const testSecret = "test-secret"

func run(mw echo.MiddlewareFunc, authHeader string) (*httptest.ResponseRecorder, echo.Context) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	handler := mw(func(c echo.Context) error { return c.String(http.StatusOK, "ok") })
	_ = handler(c)
	return rec, c
}

func TestJWTAuthInjectsIdentity(t *testing.T) {
	tok, err := utils.NewAccessToken(testSecret, 42, "ADMIN", 5)
	require.NoError(t, err)

	rec, c := run(JWTAuth(testSecret), "Bearer "+tok.Token)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, uint64(42), UserID(c))
	assert.Equal(t, "ADMIN", c.Get("role"))
}

func TestJWTAuthRejectsMissingHeader(t *testing.T) {
	rec, _ := run(JWTAuth(testSecret), "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJWTAuthRejectsWrongSecret(t *testing.T) {
	tok, err := utils.NewAccessToken("other-secret", 42, "ADMIN", 5)
	require.NoError(t, err)

	rec, _ := run(JWTAuth(testSecret), "Bearer "+tok.Token)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestRequireRole(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("role", "CUSTOMER")

	h := RequireRole("ADMIN")(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	require.NoError(t, h(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	rec2 := httptest.NewRecorder()
	c2 := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec2)
	c2.Set("role", "ADMIN")
	h2 := RequireRole("ADMIN", "CUSTOMER")(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	require.NoError(t, h2(c2))
	assert.Equal(t, http.StatusOK, rec2.Code)
}

func TestRequireRoleMissingRole(t *testing.T) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	h := RequireRole("ADMIN")(func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	require.NoError(t, h(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestDisabledCacheAndLimiterPassThrough(t *testing.T) {
	// nil Redis must turn both middlewares into no-ops.
	cacheMW := NewRedisCache(config.CacheConfig{Enabled: true}, nil)
	rec, _ := run(cacheMW, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-Cache"))

	limitMW := NewTokenBucket(config.RateLimitConfig{Enabled: true}, nil)
	rec, _ = run(limitMW, "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, rec.Header().Get("X-RateLimit-Limit"))
}

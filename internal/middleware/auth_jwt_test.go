package middleware_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"bookstore/internal/auth"
	"bookstore/internal/middleware"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

type mwErrorResponse struct {
	Error string `json:"error"`
}

// AuthJWTを通過した先でcontextの中身を返すだけのハンドラ
func echoClaimsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"email": c.Get(middleware.CtxUserEmailKey),
	})
}

func doAuthJWT(t *testing.T, tokens *auth.TokenService, authz string) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authz != "" {
		req.Header.Set("Authorization", authz)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	h := middleware.AuthJWT(tokens)(echoClaimsHandler)
	assert.NoError(t, h(c))
	return rec
}

func TestAuthJWT_MissingHeader(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")

	rec := doAuthJWT(t, tokens, "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	var body mwErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Invalid authorization", body.Error)
}

func TestAuthJWT_NotBearer(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")

	rec := doAuthJWT(t, tokens, "Basic abc")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthJWT_BadToken(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")

	//別シークレットで署名されたトークンは403
	other := auth.NewTokenService("other-secret")
	token, err := other.Issue(auth.Claims{"email": "a@x.com"})
	assert.NoError(t, err)

	rec := doAuthJWT(t, tokens, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	var body mwErrorResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "Forbidden access", body.Error)
}

func TestAuthJWT_NoEmailClaim(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")

	token, err := tokens.Issue(auth.Claims{"name": "no-email"})
	assert.NoError(t, err)

	rec := doAuthJWT(t, tokens, "Bearer "+token)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAuthJWT_OK(t *testing.T) {
	tokens := auth.NewTokenService("test-secret")

	token, err := tokens.Issue(auth.Claims{"email": "a@x.com"})
	assert.NoError(t, err)

	rec := doAuthJWT(t, tokens, "Bearer "+token)
	assert.Equal(t, http.StatusOK, rec.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "a@x.com", body["email"])
}

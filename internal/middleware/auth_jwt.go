package middleware

import (
	"net/http"
	"strings"

	"bookstore/internal/auth"

	"github.com/labstack/echo/v4"
)

const (
	CtxUserEmailKey = "user_email" // string
	CtxClaimsKey    = "claims"     // auth.Claims
)

// bearerAuth用のトークン検証ミドルウェア。
// ヘッダ無しは401、署名不正・期限切れは403。
func AuthJWT(tokens *auth.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			//Authorizationヘッダを取得
			authz := c.Request().Header.Get("Authorization")
			if authz == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("Invalid authorization"))
			}

			//Bearer形式か確認してtokenを抜く
			parts := strings.SplitN(authz, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
				return c.JSON(http.StatusUnauthorized, errorJSON("Invalid authorization"))
			}
			rawToken := strings.TrimSpace(parts[1])
			if rawToken == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("Invalid authorization"))
			}

			//トークンを検証してclaimsを取り出す
			claims, err := tokens.Verify(rawToken)
			if err != nil {
				return c.JSON(http.StatusForbidden, errorJSON("Forbidden access"))
			}

			email := claims.Email()
			if email == "" {
				return c.JSON(http.StatusForbidden, errorJSON("Forbidden access"))
			}

			//contextへ保存
			c.Set(CtxUserEmailKey, email)
			c.Set(CtxClaimsKey, claims)

			return next(c)
		}
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func errorJSON(msg string) errorResponse {
	return errorResponse{Error: msg}
}

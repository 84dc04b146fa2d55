package middleware

import (
	"net/http"

	"bookstore/internal/domain/model"
	"bookstore/internal/store"

	"github.com/labstack/echo/v4"
)

// RoleGuard はAuthJWTの後段で、保存済みユーザーのroleを確認する。
// ユーザーが存在しない場合もrole不一致と同じ拒否（401）にする。
func RoleGuard(s store.Store, required model.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawEmail := c.Get(CtxUserEmailKey)
			email, ok := rawEmail.(string)
			if !ok || email == "" {
				return c.JSON(http.StatusUnauthorized, errorJSON("unauthorized"))
			}

			var user model.User
			err := s.FindOne(c.Request().Context(), store.CollectionUsers, store.Filter{"email": email}, &user)
			if err == store.ErrNotFound {
				//該当ユーザーなしは拒否。roleの参照まで進まない。
				return c.JSON(http.StatusUnauthorized, errorJSON("Forbidden access"))
			}
			if err != nil {
				c.Logger().Error(err)
				return c.JSON(http.StatusInternalServerError, errorJSON("internal error"))
			}

			if user.Role != required {
				return c.JSON(http.StatusUnauthorized, errorJSON("Forbidden access"))
			}

			return next(c)
		}
	}
}

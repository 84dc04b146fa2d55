package server

import (
	"net/http"

	"bookstore/internal/auth"
	"bookstore/internal/store"

	"github.com/labstack/echo/v4"
)

func RegisterRoutes(e *echo.Echo, tokens *auth.TokenService, s store.Store, h Handlers) {
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "Hello World!")
	})

	h.Auth.RegisterRoutes(e)
	h.User.RegisterRoutes(e, tokens, s)
	h.Book.RegisterRoutes(e, tokens, s)
	h.Cart.RegisterRoutes(e, tokens)
	h.Favourite.RegisterRoutes(e, tokens)
	h.Payment.RegisterRoutes(e, tokens)
}

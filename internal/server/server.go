package server

import (
	"bookstore/internal/auth"
	"bookstore/internal/config"
	"bookstore/internal/handler"
	"bookstore/internal/store"
	"bookstore/internal/validator"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

type Handlers struct {
	Auth      *handler.AuthHandler
	User      *handler.UserHandler
	Book      *handler.BookHandler
	Cart      *handler.CartHandler
	Favourite *handler.FavouriteHandler
	Payment   *handler.PaymentHandler
}

// New はechoを組み立てて全ルートを登録する。
func New(cfg config.Config, tokens *auth.TokenService, s store.Store, h Handlers) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = validator.New()

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: []string{cfg.FEURL},
	}))

	RegisterRoutes(e, tokens, s, h)
	return e
}

func Start(e *echo.Echo, addr string) error {
	return e.Start(addr)
}

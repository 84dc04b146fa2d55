package handler

import (
	"net/http"

	"bookstore/internal/auth"
	"bookstore/internal/middleware"
	"bookstore/internal/usecase"

	"github.com/labstack/echo/v4"
)

// /cartまわりのHTTP
type CartHandler struct {
	uc *usecase.CartUsecase
}

// DI
func NewCartHandler(uc *usecase.CartUsecase) *CartHandler {
	return &CartHandler{uc: uc}
}

type AddCartRequest struct {
	UserMail string `json:"userMail" validate:"required,email"`
	BookID   string `json:"bookId" validate:"required"`
}

func (h *CartHandler) RegisterRoutes(e *echo.Echo, tokens *auth.TokenService) {
	authed := middleware.AuthJWT(tokens)

	e.POST("/add-to-cart", h.add, authed)
	e.GET("/cart/:email", h.list, authed)
	e.DELETE("/delete-cart-item/:id", h.delete, authed)
}

func (h *CartHandler) add(c echo.Context) error {
	var req AddCartRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AddToCart(c.Request().Context(), usecase.AddItemInput{
		UserEmail: req.UserMail,
		BookID:    req.BookID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) list(c echo.Context) error {
	out, err := h.uc.ListCart(c.Request().Context(), c.Param("email"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *CartHandler) delete(c echo.Context) error {
	out, err := h.uc.DeleteCartItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

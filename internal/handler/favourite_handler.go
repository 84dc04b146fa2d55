package handler

import (
	"net/http"

	"bookstore/internal/auth"
	"bookstore/internal/middleware"
	"bookstore/internal/usecase"

	"github.com/labstack/echo/v4"
)

type FavouriteHandler struct {
	uc *usecase.FavouriteUsecase
}

// DI
func NewFavouriteHandler(uc *usecase.FavouriteUsecase) *FavouriteHandler {
	return &FavouriteHandler{uc: uc}
}

type AddFavouriteRequest struct {
	UserMail string `json:"userMail" validate:"required,email"`
	BookID   string `json:"bookId" validate:"required"`
}

func (h *FavouriteHandler) RegisterRoutes(e *echo.Echo, tokens *auth.TokenService) {
	authed := middleware.AuthJWT(tokens)

	e.POST("/add-to-favourite", h.add, authed)
	e.GET("/favourites/:email", h.list, authed)
	e.DELETE("/delete-favourite-item/:id", h.delete, authed)
}

func (h *FavouriteHandler) add(c echo.Context) error {
	var req AddFavouriteRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.AddToFavourites(c.Request().Context(), usecase.AddItemInput{
		UserEmail: req.UserMail,
		BookID:    req.BookID,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FavouriteHandler) list(c echo.Context) error {
	out, err := h.uc.ListFavourites(c.Request().Context(), c.Param("email"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *FavouriteHandler) delete(c echo.Context) error {
	out, err := h.uc.DeleteFavouriteItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

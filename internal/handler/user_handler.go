package handler

import (
	"net/http"

	"bookstore/internal/auth"
	"bookstore/internal/domain/model"
	"bookstore/internal/middleware"
	"bookstore/internal/store"
	"bookstore/internal/usecase"

	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	uc *usecase.UserUsecase
}

// DI
func NewUserHandler(uc *usecase.UserUsecase) *UserHandler {
	return &UserHandler{uc: uc}
}

type NewUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
	PhotoURL string `json:"photoUrl"`
	About    string `json:"about"`
	Password string `json:"password"`
}

type UpdateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	About    string `json:"about"`
	PhotoURL string `json:"photoUrl"`
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo, tokens *auth.TokenService, s store.Store) {
	e.POST("/new-user", h.create)
	e.GET("/users", h.list)
	e.GET("/users/:id", h.byID)

	e.GET("/user/:email", h.byEmail, middleware.AuthJWT(tokens))

	//role変更とユーザー削除はadminだけ
	admin := []echo.MiddlewareFunc{
		middleware.AuthJWT(tokens),
		middleware.RoleGuard(s, model.RoleAdmin),
	}
	e.PATCH("/update-user/:id", h.update, admin...)
	e.DELETE("/delete-user/:id", h.delete, admin...)
}

func (h *UserHandler) create(c echo.Context) error {
	var req NewUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreateUser(c.Request().Context(), usecase.CreateUserInput{
		Email:    req.Email,
		Name:     req.Name,
		Role:     req.Role,
		PhotoURL: req.PhotoURL,
		About:    req.About,
		Password: req.Password,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) list(c echo.Context) error {
	out, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) byID(c echo.Context) error {
	out, err := h.uc.GetUserByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) byEmail(c echo.Context) error {
	out, err := h.uc.GetUserByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) update(c echo.Context) error {
	var req UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateUser(c.Request().Context(), c.Param("id"), usecase.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Role:     req.Role,
		About:    req.About,
		PhotoURL: req.PhotoURL,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *UserHandler) delete(c echo.Context) error {
	out, err := h.uc.DeleteUser(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

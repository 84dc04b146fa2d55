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

// 本カタログのHTTP
type BookHandler struct {
	uc *usecase.BookUsecase
}

// DI
func NewBookHandler(uc *usecase.BookUsecase) *BookHandler {
	return &BookHandler{uc: uc}
}

type UploadBookRequest struct {
	BookTitle       string  `json:"bookTitle" validate:"required"`
	AuthorName      string  `json:"authorName"`
	Category        string  `json:"category"`
	BookDescription string  `json:"bookDescription"`
	Price           float64 `json:"price" validate:"gte=0"`
	ImageURL        string  `json:"imageUrl"`
	BookPDFURL      string  `json:"bookPdfUrl"`
}

type UpdateBookRequest struct {
	BookTitle       string   `json:"bookTitle"`
	AuthorName      string   `json:"authorName"`
	Category        string   `json:"category"`
	BookDescription string   `json:"bookDescription"`
	Price           *float64 `json:"price"`
	ImageURL        string   `json:"imageUrl"`
	BookPDFURL      string   `json:"bookPdfUrl"`
}

// 読み取りは全公開、書き込みはinstructor、統計はadmin。
func (h *BookHandler) RegisterRoutes(e *echo.Echo, tokens *auth.TokenService, s store.Store) {
	e.GET("/all-books", h.list)
	e.GET("/book/:id", h.detail)

	instructor := []echo.MiddlewareFunc{
		middleware.AuthJWT(tokens),
		middleware.RoleGuard(s, model.RoleInstructor),
	}
	e.POST("/upload-book", h.upload, instructor...)
	e.PATCH("/book/:id", h.update, instructor...)
	e.DELETE("/book/:id", h.delete, instructor...)

	e.GET("/admin-stats", h.adminStats,
		middleware.AuthJWT(tokens),
		middleware.RoleGuard(s, model.RoleAdmin),
	)
}

func (h *BookHandler) list(c echo.Context) error {
	category := c.QueryParam("category")

	out, err := h.uc.ListBooks(c.Request().Context(), category)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BookHandler) detail(c echo.Context) error {
	out, err := h.uc.GetBook(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BookHandler) upload(c echo.Context) error {
	var req UploadBookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UploadBook(c.Request().Context(), usecase.UploadBookInput{
		BookTitle:       req.BookTitle,
		AuthorName:      req.AuthorName,
		Category:        req.Category,
		BookDescription: req.BookDescription,
		Price:           req.Price,
		ImageURL:        req.ImageURL,
		BookPDFURL:      req.BookPDFURL,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BookHandler) update(c echo.Context) error {
	var req UpdateBookRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.UpdateBook(c.Request().Context(), c.Param("id"), usecase.UpdateBookInput{
		BookTitle:       req.BookTitle,
		AuthorName:      req.AuthorName,
		Category:        req.Category,
		BookDescription: req.BookDescription,
		Price:           req.Price,
		ImageURL:        req.ImageURL,
		BookPDFURL:      req.BookPDFURL,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BookHandler) delete(c echo.Context) error {
	out, err := h.uc.DeleteBook(c.Request().Context(), c.Param("id"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *BookHandler) adminStats(c echo.Context) error {
	out, err := h.uc.AdminStats(c.Request().Context())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

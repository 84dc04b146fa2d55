package handler

import (
	"net/http"

	"bookstore/internal/auth"
	"bookstore/internal/middleware"
	"bookstore/internal/usecase"

	"github.com/labstack/echo/v4"
)

// 決済と購入記録のHTTP
type PaymentHandler struct {
	uc *usecase.CheckoutUsecase
}

// DI
func NewPaymentHandler(uc *usecase.CheckoutUsecase) *PaymentHandler {
	return &PaymentHandler{uc: uc}
}

type CreatePaymentIntentRequest struct {
	Price float64 `json:"price"`
}

type PaymentInfoRequest struct {
	UserEmail     string   `json:"userEmail" validate:"required,email"`
	BookIDs       []string `json:"bookId" validate:"required,min=1"`
	TransactionID string   `json:"transactionId" validate:"required"`
	Amount        float64  `json:"amount" validate:"gte=0"`
}

func (h *PaymentHandler) RegisterRoutes(e *echo.Echo, tokens *auth.TokenService) {
	authed := middleware.AuthJWT(tokens)

	e.POST("/create-payment-intent", h.createIntent, authed)
	e.POST("/payment-info", h.paymentInfo, authed)
	e.GET("/payment-history/:email", h.history, authed)

	//所有している本の一覧は公開
	e.GET("/purchased-books/:email", h.purchasedBooks)
}

func (h *PaymentHandler) createIntent(c echo.Context) error {
	var req CreatePaymentIntentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.CreatePaymentIntent(c.Request().Context(), req.Price)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentHandler) paymentInfo(c echo.Context) error {
	var req PaymentInfoRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.RecordPurchase(c.Request().Context(), usecase.RecordPurchaseInput{
		UserEmail:     req.UserEmail,
		BookIDs:       req.BookIDs,
		TransactionID: req.TransactionID,
		Amount:        req.Amount,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentHandler) history(c echo.Context) error {
	out, err := h.uc.PaymentHistory(c.Request().Context(), c.Param("email"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *PaymentHandler) purchasedBooks(c echo.Context) error {
	out, err := h.uc.PurchasedBooks(c.Request().Context(), c.Param("email"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

package usecase

import (
	"context"
	"net/http"

	"bookstore/internal/auth"
	"bookstore/internal/domain/model"
	"bookstore/internal/store"

	"golang.org/x/crypto/bcrypt"
)

// AuthUsecase はトークン発行まわり。
type AuthUsecase struct {
	store  store.Store
	tokens *auth.TokenService
}

func NewAuthUsecase(s store.Store, tokens *auth.TokenService) *AuthUsecase {
	return &AuthUsecase{store: s, tokens: tokens}
}

type TokenOutput struct {
	Token string `json:"token"`
}

// SetToken はクライアントが送ってきたID claimsをそのまま署名して返す。
// 最低限emailが必要。
func (u *AuthUsecase) SetToken(ctx context.Context, claims auth.Claims) (TokenOutput, error) {
	if claims.Email() == "" {
		return TokenOutput{}, NewHTTPError(http.StatusBadRequest, "email is required")
	}

	token, err := u.tokens.Issue(claims)
	if err != nil {
		return TokenOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}
	return TokenOutput{Token: token}, nil
}

type LoginInput struct {
	Email    string
	Password string
}

// Login はローカルクレデンシャルでの認証。
// パスワード登録のないユーザー（外部IDプロバイダのみ）は常に401。
func (u *AuthUsecase) Login(ctx context.Context, in LoginInput) (TokenOutput, error) {
	if in.Email == "" || in.Password == "" {
		return TokenOutput{}, NewHTTPError(http.StatusBadRequest, "email and password are required")
	}

	var user model.User
	err := u.store.FindOne(ctx, store.CollectionUsers, store.Filter{"email": in.Email}, &user)
	if err == store.ErrNotFound {
		return TokenOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	if err != nil {
		return TokenOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	if user.PasswordHash == "" {
		return TokenOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		return TokenOutput{}, NewHTTPError(http.StatusUnauthorized, "invalid credentials")
	}

	token, err := u.tokens.Issue(auth.Claims{
		"email": user.Email,
		"name":  user.Name,
		"role":  string(user.Role),
	})
	if err != nil {
		return TokenOutput{}, NewHTTPError(http.StatusInternalServerError, "internal error")
	}

	return TokenOutput{Token: token}, nil
}

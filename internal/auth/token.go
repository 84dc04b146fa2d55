package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// 署名不正・期限切れなどはすべてこれに寄せる
var ErrInvalidToken = errors.New("invalid token")

// トークンの有効期限
const tokenTTL = 24 * time.Hour

// Claims はトークンに埋めるID情報。最低限emailを含む。
type Claims map[string]any

// Email はclaimsからemailを取り出す。無ければ空文字。
func (c Claims) Email() string {
	v, ok := c["email"].(string)
	if !ok {
		return ""
	}
	return v
}

// TokenService はセッショントークンの発行と検証。状態は持たない。
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue はclaimsをHS256で署名して24時間有効のトークンを返す。
func (s *TokenService) Issue(claims Claims) (string, error) {
	now := time.Now()

	mc := jwt.MapClaims{}
	for k, v := range claims {
		mc[k] = v
	}
	mc["iat"] = now.Unix()
	mc["exp"] = now.Add(tokenTTL).Unix()

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, mc)
	return tok.SignedString(s.secret)
}

// Verify はトークンを検証してclaimsを返す。
// 署名不一致・期限切れは ErrInvalidToken。
func (s *TokenService) Verify(raw string) (Claims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil || token == nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	return Claims(mc), nil
}

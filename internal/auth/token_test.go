package auth_test

import (
	"strings"
	"testing"

	"bookstore/internal/auth"

	"github.com/stretchr/testify/assert"
)

func TestTokenService_IssueAndVerify(t *testing.T) {
	svc := auth.NewTokenService("test-secret")

	token, err := svc.Issue(auth.Claims{
		"email": "a@x.com",
		"name":  "A",
	})
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Verify(token)
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email())
	assert.Equal(t, "A", claims["name"])
}

func TestTokenService_Verify_WrongSecret(t *testing.T) {
	issuer := auth.NewTokenService("secret-a")
	verifier := auth.NewTokenService("secret-b")

	token, err := issuer.Issue(auth.Claims{"email": "a@x.com"})
	assert.NoError(t, err)

	_, err = verifier.Verify(token)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenService_Verify_TamperedToken(t *testing.T) {
	svc := auth.NewTokenService("test-secret")

	token, err := svc.Issue(auth.Claims{"email": "a@x.com"})
	assert.NoError(t, err)

	//署名部分を壊す
	parts := strings.Split(token, ".")
	assert.Len(t, parts, 3)
	tampered := parts[0] + "." + parts[1] + "." + "x" + parts[2]

	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	//payload部分を壊す
	tampered = parts[0] + "." + "x" + parts[1] + "." + parts[2]

	_, err = svc.Verify(tampered)
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

func TestTokenService_Verify_Garbage(t *testing.T) {
	svc := auth.NewTokenService("test-secret")

	_, err := svc.Verify("not-a-token")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)

	_, err = svc.Verify("")
	assert.ErrorIs(t, err, auth.ErrInvalidToken)
}

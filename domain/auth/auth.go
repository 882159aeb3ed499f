package auth

import (
	"github.com/golang-jwt/jwt"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/domain"
	"github.com/x-xyz/rentableft/domain/session"
)

type JwtCustomClaims struct {
	Address   domain.Address `json:"address"`
	ChainId   domain.ChainId `json:"chainId"`
	SessionId string         `json:"sid"`
	jwt.StandardClaims
}

type SignInRequest struct {
	Address   domain.Address `json:"address" validate:"required,eth_addr"`
	ChainId   domain.ChainId `json:"chainId" validate:"required"`
	Signature string         `json:"signature" validate:"required"`
	// SessionId keeps the previous session when the wallet switches accounts.
	// Only honoured when the caller also sends that session's bearer token.
	SessionId string `json:"sessionId,omitempty"`
}

type SignInResult struct {
	Token   string          `json:"token"`
	Session session.Session `json:"session"`
}

type Usecase interface {
	// GetNonce issues a one-time nonce the wallet has to sign
	GetNonce(c ctx.Ctx, address domain.Address) (string, error)
	SigningMsgTemplate() string
	// SignIn verifies the signed nonce, issues a token and starts a scan for the session.
	// current is the session of the caller's bearer token, if any.
	SignIn(c ctx.Ctx, current session.Session, req *SignInRequest) (*SignInResult, error)
	ParseToken(c ctx.Ctx, token string) (session.Session, error)
	// SignOut disconnects the session
	SignOut(c ctx.Ctx, s session.Session) error
}

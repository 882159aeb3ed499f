package usecase

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/google/uuid"
	"golang.org/x/xerrors"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/base/ethereum"
	"github.com/x-xyz/rentableft/base/log"
	"github.com/x-xyz/rentableft/domain"
	"github.com/x-xyz/rentableft/domain/auth"
	"github.com/x-xyz/rentableft/domain/scan"
	"github.com/x-xyz/rentableft/domain/session"
	"github.com/x-xyz/rentableft/service/cache"
)

type Config struct {
	JwtSecret string
	// SigningMsgTemplate must contain exactly one %s for the nonce
	SigningMsgTemplate string
	TokenTtl           time.Duration
	NonceCache         cache.Service
	Scan               scan.UseCase
}

type impl struct {
	jwtSecret  []byte
	template   string
	tokenTtl   time.Duration
	nonceCache cache.Service
	scan       scan.UseCase
}

func New(cfg *Config) auth.Usecase {
	ttl := cfg.TokenTtl
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &impl{
		jwtSecret:  []byte(cfg.JwtSecret),
		template:   cfg.SigningMsgTemplate,
		tokenTtl:   ttl,
		nonceCache: cfg.NonceCache,
		scan:       cfg.Scan,
	}
}

func (im *impl) SigningMsgTemplate() string {
	return im.template
}

func (im *impl) GetNonce(c ctx.Ctx, address domain.Address) (string, error) {
	nonce := uuid.NewString()
	if err := im.nonceCache.Set(c, address.ToLowerStr(), nonce); err != nil {
		c.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("nonceCache.Set failed")
		return "", err
	}
	return nonce, nil
}

func (im *impl) SignIn(c ctx.Ctx, current session.Session, req *auth.SignInRequest) (*auth.SignInResult, error) {
	key := req.Address.ToLowerStr()
	nonce := ""
	if err := im.nonceCache.Get(c, key, &nonce); err == cache.ErrNotFound {
		return nil, xerrors.Errorf("no pending nonce for %s: %w", req.Address, domain.ErrUnauthorized)
	} else if err != nil {
		c.WithField("err", err).Error("nonceCache.Get failed")
		return nil, err
	}

	msg := []byte(fmt.Sprintf(im.template, nonce))
	if ok, err := ethereum.ValidateMsgSignature(msg, req.Signature, string(req.Address)); err != nil {
		return nil, xerrors.Errorf("%v: %w", err, domain.ErrInvalidSignature)
	} else if !ok {
		return nil, domain.ErrInvalidSignature
	}

	// nonces are single use
	if err := im.nonceCache.Del(c, key); err != nil {
		c.WithField("err", err).Warn("nonceCache.Del failed")
	}

	s := session.Session{
		Id:      uuid.NewString(),
		Address: req.Address.ToLower(),
		ChainId: req.ChainId,
	}
	if req.SessionId != "" {
		if req.SessionId == current.Id {
			s.Id = current.Id
		} else {
			c.WithField("sessionId", req.SessionId).Warn("sessionId not held by caller, start a new session")
		}
	}

	token, err := im.signToken(c, s)
	if err != nil {
		return nil, err
	}

	im.scan.Trigger(c, s)
	return &auth.SignInResult{Token: token, Session: s}, nil
}

func (im *impl) SignOut(c ctx.Ctx, s session.Session) error {
	im.scan.Reset(s.Id)
	return nil
}

func (im *impl) signToken(c ctx.Ctx, s session.Session) (string, error) {
	claims := auth.JwtCustomClaims{
		Address:   s.Address,
		ChainId:   s.ChainId,
		SessionId: s.Id,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(im.tokenTtl).Unix(),
			IssuedAt:  time.Now().Unix(),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	ss, err := token.SignedString(im.jwtSecret)
	if err != nil {
		c.WithField("err", err).Error("token.SignedString failed")
		return "", err
	}
	return ss, nil
}

func (im *impl) ParseToken(c ctx.Ctx, str string) (session.Session, error) {
	token, err := jwt.ParseWithClaims(str, &auth.JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return im.jwtSecret, nil
	})
	if err != nil {
		return session.Session{}, xerrors.Errorf("%v: %w", err, domain.ErrUnauthorized)
	}
	claims, ok := token.Claims.(*auth.JwtCustomClaims)
	if !ok || !token.Valid || claims.SessionId == "" {
		return session.Session{}, domain.ErrUnauthorized
	}
	return session.Session{
		Id:      claims.SessionId,
		Address: claims.Address,
		ChainId: claims.ChainId,
	}, nil
}

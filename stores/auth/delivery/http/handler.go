package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/base/delivery"
	"github.com/x-xyz/rentableft/base/log"
	"github.com/x-xyz/rentableft/domain"
	"github.com/x-xyz/rentableft/domain/auth"
	bMiddleware "github.com/x-xyz/rentableft/middleware"
	"github.com/x-xyz/rentableft/stores/auth/delivery/http/middleware"
)

type authHandler struct {
	auth auth.Usecase
}

func New(e *echo.Echo, auth auth.Usecase, authMiddleware *middleware.AuthMiddleware) {
	handler := &authHandler{
		auth: auth,
	}
	g := e.Group("/auth")
	g.GET("/nonce/:address", handler.getNonce, bMiddleware.IsValidAddress("address"))
	g.GET("/signingMsgTemplate", handler.getSigningMsgTemplate)
	g.POST("/sign", handler.sign, authMiddleware.OptionalAuth())
	g.DELETE("/session", handler.signOut, authMiddleware.Auth())
}

// getNonce
//
//	@Summary		Get sign-in nonce
//	@Description	Issue a one-time nonce for address, valid for a few minutes
//	@Tags			auth
//	@Produce		json
//	@Param			address	path		string	true	"wallet address"
//	@Success		200		{object}	object{data=string}
//	@Failure		400
//	@Router			/auth/nonce/{address} [get]
func (h *authHandler) getNonce(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	nonce, err := h.auth.GetNonce(ctx, domain.Address(c.Param("address")))
	if err != nil {
		ctx.WithField("err", err).Error("auth.GetNonce failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nonce)
}

// sign
//
//	@Summary		Sign in
//	@Description	Verify the signed nonce and create an access token for the wallet session
//	@Tags			auth
//	@Accept			json
//	@Produce		json
//	@Param			params	body		auth.SignInRequest	true	"params"
//	@Success		201		{object}	object{data=auth.SignInResult}
//	@Failure		400
//	@Failure		401
//	@Failure		403
//	@Security		ApiKeyAuth
//	@Router			/auth/sign [post]
func (h *authHandler) sign(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	req := &auth.SignInRequest{}
	if err := c.Bind(req); err != nil {
		ctx.WithField("err", err).Warn("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(req); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.auth.SignIn(ctx, middleware.SessionOf(c), req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"address": req.Address,
			"err":     err,
		}).Warn("auth.SignIn failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

// signOut
//
//	@Summary		Disconnect
//	@Description	Drop the session's scan state
//	@Tags			auth
//	@Security		ApiKeyAuth
//	@Success		200
//	@Router			/auth/session [delete]
func (h *authHandler) signOut(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	if err := h.auth.SignOut(ctx, middleware.SessionOf(c)); err != nil {
		ctx.WithField("err", err).Error("auth.SignOut failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, nil)
}

// getSigningMsgTemplate
//
//	@Summary		Get signature template
//	@Description	Replace %s with the nonce from /auth/nonce to build the signing message
//	@Tags			auth
//	@Produce		json
//	@Success		200	{object}	object{template=string}	"signing message template"
//	@Router			/auth/signingMsgTemplate [get]
func (h *authHandler) getSigningMsgTemplate(c echo.Context) error {
	res := struct {
		Msg string `json:"template"`
	}{
		Msg: h.auth.SigningMsgTemplate(),
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

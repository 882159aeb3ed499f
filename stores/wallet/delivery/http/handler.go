package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/base/delivery"
	"github.com/x-xyz/rentableft/base/log"
	"github.com/x-xyz/rentableft/domain"
	"github.com/x-xyz/rentableft/domain/wallet"
	bMiddleware "github.com/x-xyz/rentableft/middleware"
	"github.com/x-xyz/rentableft/stores/auth/delivery/http/middleware"
)

type walletHandler struct {
	wallet  wallet.Usecase
	chainId domain.ChainId
}

func New(e *echo.Echo, walletUC wallet.Usecase, chainId domain.ChainId, authMiddleware *middleware.AuthMiddleware, cacheMiddleware echo.MiddlewareFunc) {
	handler := &walletHandler{
		wallet:  walletUC,
		chainId: chainId,
	}
	g := e.Group("/wallet")
	g.GET("", handler.getStatus, authMiddleware.OptionalAuth())
	g.GET("/network", handler.getNetwork, cacheMiddleware)
	g.GET("/:address/balance", handler.getBalance, bMiddleware.IsValidAddress("address"))
}

// getStatus
//
//	@Summary		Wallet status
//	@Description	Connection, chain check and balance of the caller. Without a token the wallet is reported as disconnected.
//	@Tags			wallet
//	@Security		ApiKeyAuth
//	@Produce		json
//	@Success		200	{object}	object{data=wallet.Status}
//	@Router			/wallet [get]
func (h *walletHandler) getStatus(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	return delivery.MakeJsonResp(c, http.StatusOK, h.wallet.Status(ctx, middleware.SessionOf(c)))
}

// getNetwork
//
//	@Summary		Target network
//	@Description	Parameters for wallet_addEthereumChain
//	@Tags			wallet
//	@Produce		json
//	@Success		200	{object}	object{data=wallet.Network}
//	@Router			/wallet/network [get]
func (h *walletHandler) getNetwork(c echo.Context) error {
	return delivery.MakeJsonResp(c, http.StatusOK, h.wallet.Network())
}

// getBalance
//
//	@Summary		Native balance
//	@Tags			wallet
//	@Produce		json
//	@Param			address	path		string	true	"wallet address"
//	@Success		200		{object}	object{data=string}
//	@Failure		400
//	@Router			/wallet/{address}/balance [get]
func (h *walletHandler) getBalance(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	address := domain.Address(c.Param("address"))

	bal, err := h.wallet.Balance(ctx, h.chainId, address)
	if err != nil {
		ctx.WithFields(log.Fields{
			"address": address,
			"err":     err,
		}).Error("wallet.Balance failed")
		return delivery.MakeJsonResp(c, http.StatusBadGateway, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, bal)
}

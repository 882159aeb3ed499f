package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/base/delivery"
	"github.com/x-xyz/rentableft/base/log"
	"github.com/x-xyz/rentableft/domain"
	"github.com/x-xyz/rentableft/domain/transaction"
	"github.com/x-xyz/rentableft/stores/auth/delivery/http/middleware"
)

type transactionHandler struct {
	tx transaction.Usecase
}

func New(e *echo.Echo, tx transaction.Usecase, authMiddleware *middleware.AuthMiddleware) {
	handler := &transactionHandler{
		tx: tx,
	}
	g := e.Group("/transactions", authMiddleware.Auth())
	g.POST("/buy", handler.buy)
	g.POST("/rent", handler.rent)
}

func bindAndValidate(c echo.Context, req interface{}) error {
	if err := c.Bind(req); err != nil {
		return domain.ErrBadParamInput
	}
	return c.Validate(req)
}

// buy
//
//	@Summary		Buy an NFT
//	@Description	Simulated purchase, completes after the confirmation delay
//	@Tags			transactions
//	@Security		ApiKeyAuth
//	@Accept			json
//	@Produce		json
//	@Param			params	body		transaction.BuyRequest	true	"params"
//	@Success		200		{object}	object{data=transaction.Receipt}
//	@Failure		400
//	@Failure		401
//	@Router			/transactions/buy [post]
func (h *transactionHandler) buy(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	req := &transaction.BuyRequest{}
	if err := bindAndValidate(c, req); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	r, err := h.tx.Buy(ctx, middleware.SessionOf(c), req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"assetId": req.AssetId,
			"err":     err,
		}).Warn("tx.Buy failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, r)
}

// rent
//
//	@Summary		Rent an NFT
//	@Description	Simulated rental for a number of days (1 when omitted)
//	@Tags			transactions
//	@Security		ApiKeyAuth
//	@Accept			json
//	@Produce		json
//	@Param			params	body		transaction.RentRequest	true	"params"
//	@Success		200		{object}	object{data=transaction.Receipt}
//	@Failure		400
//	@Failure		401
//	@Router			/transactions/rent [post]
func (h *transactionHandler) rent(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	req := &transaction.RentRequest{}
	if err := bindAndValidate(c, req); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	r, err := h.tx.Rent(ctx, middleware.SessionOf(c), req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"assetId": req.AssetId,
			"days":    req.Days,
			"err":     err,
		}).Warn("tx.Rent failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, r)
}

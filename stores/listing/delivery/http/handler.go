package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/base/delivery"
	"github.com/x-xyz/rentableft/base/log"
	"github.com/x-xyz/rentableft/domain"
	"github.com/x-xyz/rentableft/domain/listing"
	"github.com/x-xyz/rentableft/stores/auth/delivery/http/middleware"
)

const (
	eventListings = "listings"
)

var keepAliveInterval = 15 * time.Second

type listingHandler struct {
	listing listing.Usecase
}

func New(e *echo.Echo, listingUC listing.Usecase, authMiddleware *middleware.AuthMiddleware, cacheMiddleware echo.MiddlewareFunc) {
	handler := &listingHandler{
		listing: listingUC,
	}
	g := e.Group("/listings")
	g.GET("", handler.getListings, cacheMiddleware)
	g.GET("/stream", handler.stream)
	g.POST("", handler.create, authMiddleware.Auth())
}

func bindFilter(c echo.Context) (listing.Filter, error) {
	filter := listing.Filter{}
	if err := c.Bind(&filter); err != nil {
		return filter, domain.ErrBadParamInput
	}
	if err := c.Validate(&filter); err != nil {
		return filter, err
	}
	return filter, nil
}

// getListings
//
//	@Summary		Marketplace listings
//	@Description	Available listings, newest first
//	@Tags			listings
//	@Produce		json
//	@Param			search		query		string	false	"case insensitive title search"
//	@Param			category	query		string	false	"category or all"
//	@Param			price		query		string	false	"all, low, medium or high"
//	@Success		200			{object}	object{data=[]asset.Asset}
//	@Failure		400
//	@Router			/listings [get]
func (h *listingHandler) getListings(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	filter, err := bindFilter(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.listing.ListAvailable(ctx, filter)
	if err != nil {
		ctx.WithField("err", err).Error("listing.ListAvailable failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusOK, res)
}

// stream
//
//	@Summary		Live marketplace
//	@Description	Server-sent events. The current listings first, then the full set again after every change.
//	@Tags			listings
//	@Produce		text/event-stream
//	@Param			search		query	string	false	"case insensitive title search"
//	@Param			category	query	string	false	"category or all"
//	@Param			price		query	string	false	"all, low, medium or high"
//	@Success		200
//	@Router			/listings/stream [get]
func (h *listingHandler) stream(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	filter, err := bindFilter(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	ch, err := h.listing.Subscribe(ctx, filter)
	if err != nil {
		ctx.WithField("err", err).Error("listing.Subscribe failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case assets, ok := <-ch:
			if !ok {
				return nil
			}
			data, err := json.Marshal(delivery.JsonResponse{Data: assets, Status: delivery.JsonResponseStatusSuccess})
			if err != nil {
				ctx.WithField("err", err).Error("json.Marshal failed")
				return nil
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", eventListings, data); err != nil {
				ctx.WithFields(log.Fields{"err": err}).Info("client gone")
				return nil
			}
			w.Flush()
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return nil
			}
			w.Flush()
		case <-ctx.Done():
			return nil
		}
	}
}

// create
//
//	@Summary		List an NFT
//	@Description	Put an NFT up for sale, and optionally for rent
//	@Tags			listings
//	@Security		ApiKeyAuth
//	@Accept			json
//	@Produce		json
//	@Param			params	body		listing.CreateRequest	true	"listing"
//	@Success		201		{object}	object{data=listing.Listing}
//	@Failure		400
//	@Failure		401
//	@Failure		409
//	@Router			/listings [post]
func (h *listingHandler) create(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	req := &listing.CreateRequest{}
	if err := c.Bind(req); err != nil {
		ctx.WithField("err", err).Warn("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	if err := c.Validate(req); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	res, err := h.listing.Create(ctx, middleware.SessionOf(c), req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"contract": req.ContractAddress,
			"tokenId":  req.TokenId,
			"err":      err,
		}).Warn("listing.Create failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

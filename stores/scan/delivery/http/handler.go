package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/base/delivery"
	"github.com/x-xyz/rentableft/domain"
	"github.com/x-xyz/rentableft/domain/scan"
	"github.com/x-xyz/rentableft/stores/auth/delivery/http/middleware"
)

type scanHandler struct {
	scan scan.UseCase
}

func New(e *echo.Echo, scanUC scan.UseCase, authMiddleware *middleware.AuthMiddleware) {
	handler := &scanHandler{
		scan: scanUC,
	}
	g := e.Group("/scan", authMiddleware.Auth())
	g.GET("", handler.getSnapshot)
	g.POST("", handler.trigger)
}

// getSnapshot
//
//	@Summary		My assets
//	@Description	Current scan state of the session. With wait=true a pass runs first and the response carries its result.
//	@Tags			scan
//	@Security		ApiKeyAuth
//	@Produce		json
//	@Param			wait	query		bool	false	"scan synchronously"
//	@Success		200		{object}	object{data=scan.Snapshot}
//	@Failure		400
//	@Router			/scan [get]
func (h *scanHandler) getSnapshot(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	s := middleware.SessionOf(c)

	wait := false
	if v := c.QueryParam("wait"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
		}
		wait = b
	}

	if wait {
		return delivery.MakeJsonResp(c, http.StatusOK, h.scan.Run(ctx, s))
	}
	return delivery.MakeJsonResp(c, http.StatusOK, h.scan.Snapshot(s.Id))
}

// trigger
//
//	@Summary		Rescan
//	@Description	Start a background scan for the session; also used to retry after a failure
//	@Tags			scan
//	@Security		ApiKeyAuth
//	@Produce		json
//	@Success		202	{object}	object{data=scan.Snapshot}
//	@Router			/scan [post]
func (h *scanHandler) trigger(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)
	return delivery.MakeJsonResp(c, http.StatusAccepted, h.scan.Trigger(ctx, middleware.SessionOf(c)))
}

package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/base/delivery"
	"github.com/x-xyz/rentableft/domain"
	"github.com/x-xyz/rentableft/domain/metadata"
	"github.com/x-xyz/rentableft/domain/upload"
	"github.com/x-xyz/rentableft/stores/auth/delivery/http/middleware"
)

type uploadHandler struct {
	upload upload.Usecase
}

func New(e *echo.Echo, uploadUC upload.Usecase, authMiddleware *middleware.AuthMiddleware) {
	handler := &uploadHandler{
		upload: uploadUC,
	}
	g := e.Group("/upload", authMiddleware.Auth())
	g.POST("/file", handler.uploadFile)
	g.POST("/metadata", handler.uploadMetadata)
}

// uploadFile
//
//	@Summary		Upload an image
//	@Description	Pin an image (JPG, PNG, GIF, ...) to IPFS
//	@Tags			upload
//	@Security		ApiKeyAuth
//	@Accept			multipart/form-data
//	@Produce		json
//	@Param			file	formData	file	true	"image"
//	@Success		201		{object}	object{data=upload.Result}
//	@Failure		400
//	@Failure		415
//	@Router			/upload/file [post]
func (h *uploadHandler) uploadFile(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	fh, err := c.FormFile("file")
	if err != nil {
		ctx.WithField("err", err).Warn("c.FormFile failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}
	file, err := fh.Open()
	if err != nil {
		ctx.WithField("err", err).Error("fh.Open failed")
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}
	defer file.Close()

	res, err := h.upload.UploadFile(ctx, file, fh.Filename)
	if err != nil {
		ctx.WithField("err", err).Warn("upload.UploadFile failed")
		return delivery.MakeJsonResp(c, http.StatusBadGateway, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

// uploadMetadata
//
//	@Summary		Upload token metadata
//	@Description	Pin a metadata document to IPFS; the returned uri is a valid tokenURI
//	@Tags			upload
//	@Security		ApiKeyAuth
//	@Accept			json
//	@Produce		json
//	@Param			params	body		metadata.Record	true	"metadata"
//	@Success		201		{object}	object{data=upload.Result}
//	@Failure		400
//	@Router			/upload/metadata [post]
func (h *uploadHandler) uploadMetadata(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	record := &metadata.Record{}
	if err := c.Bind(record); err != nil {
		ctx.WithField("err", err).Warn("bind failed")
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	res, err := h.upload.UploadMetadata(ctx, record)
	if err != nil {
		ctx.WithField("err", err).Warn("upload.UploadMetadata failed")
		return delivery.MakeJsonResp(c, http.StatusBadGateway, err)
	}
	return delivery.MakeJsonResp(c, http.StatusCreated, res)
}

package usecase

import (
	"encoding/json"
	"net/url"

	bCtx "github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/base/log"
	"github.com/x-xyz/rentableft/domain"
)

type WebResourceUseCaseCfg struct {
	HttpReader    domain.WebResourceReaderRepository
	DataUriReader domain.WebResourceReaderRepository
}

type webResourceUseCase struct {
	httpReader    domain.WebResourceReaderRepository
	dataUriReader domain.WebResourceReaderRepository
}

func NewWebResourceUseCase(cfg *WebResourceUseCaseCfg) domain.WebResourceUseCase {
	return &webResourceUseCase{
		httpReader:    cfg.HttpReader,
		dataUriReader: cfg.DataUriReader,
	}
}

func (u *webResourceUseCase) Get(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	return u.get(c, rawUrl)
}

func (u *webResourceUseCase) GetJson(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	data, err := u.get(c, rawUrl)
	if err != nil {
		return nil, err
	}
	if !json.Valid(data) {
		c.WithFields(log.Fields{
			"url": rawUrl,
		}).Warn("invalid json")
		return nil, domain.ErrInvalidJsonFormat
	}

	return data, nil
}

func (u *webResourceUseCase) get(c bCtx.Ctx, rawUrl string) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	pUrl, err := url.Parse(rawUrl)
	if err != nil {
		c.WithFields(log.Fields{
			"url": rawUrl,
			"err": err,
		}).Warn("failed to parse url")
		return nil, err
	}

	switch pUrl.Scheme {
	case "https", "http":
		data, err = u.httpReader.Get(c, rawUrl)
	case "data":
		data, err = u.dataUriReader.Get(c, rawUrl)
	default:
		return nil, domain.ErrUnsupportedSchema
	}

	if err != nil {
		c.WithFields(log.Fields{
			"schema": pUrl.Scheme,
			"url":    rawUrl,
			"err":    err,
		}).Warn("failed to fetch")
		return nil, err
	}
	return data, nil
}

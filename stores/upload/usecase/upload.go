package usecase

import (
	"bytes"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"
	"golang.org/x/xerrors"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/base/log"
	"github.com/x-xyz/rentableft/domain"
	"github.com/x-xyz/rentableft/domain/metadata"
	"github.com/x-xyz/rentableft/domain/upload"
)

const (
	defaultMaxSize = 10 << 20
	metadataName   = "metadata.json"
)

type UploadUseCaseCfg struct {
	Pinner   upload.Pinner
	Resolver metadata.Resolver
	// MaxSize in bytes, 10MB when unset
	MaxSize int64
}

type impl struct {
	pinner   upload.Pinner
	resolver metadata.Resolver
	maxSize  int64
}

func New(cfg *UploadUseCaseCfg) upload.Usecase {
	maxSize := cfg.MaxSize
	if maxSize <= 0 {
		maxSize = defaultMaxSize
	}
	return &impl{
		pinner:   cfg.Pinner,
		resolver: cfg.Resolver,
		maxSize:  maxSize,
	}
}

func (im *impl) result(cid string) *upload.Result {
	uri := metadata.IpfsScheme + cid
	return &upload.Result{
		Cid: cid,
		Uri: uri,
		Url: im.resolver.NormalizeURL(uri),
	}
}

func (im *impl) UploadFile(c ctx.Ctx, file io.Reader, name string) (*upload.Result, error) {
	data, err := io.ReadAll(io.LimitReader(file, im.maxSize+1))
	if err != nil {
		c.WithField("err", err).Error("io.ReadAll failed")
		return nil, err
	}
	if int64(len(data)) > im.maxSize {
		return nil, xerrors.Errorf("file larger than %d bytes: %w", im.maxSize, domain.ErrBadParamInput)
	}

	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return nil, xerrors.Errorf("%s: %w", mime.String(), domain.ErrUnsupportedMedia)
	}
	if name == "" {
		name = "image" + mime.Extension()
	}

	cid, err := im.pinner.Pin(c, bytes.NewReader(data), name)
	if err != nil {
		c.WithFields(log.Fields{
			"name": name,
			"mime": mime.String(),
			"err":  err,
		}).Error("pinner.Pin failed")
		return nil, err
	}
	return im.result(cid), nil
}

func (im *impl) UploadMetadata(c ctx.Ctx, record *metadata.Record) (*upload.Result, error) {
	if record == nil || record.Name == "" || record.Image == "" {
		return nil, xerrors.Errorf("metadata needs name and image: %w", domain.ErrBadParamInput)
	}

	cid, err := im.pinner.PinJson(c, record, metadataName)
	if err != nil {
		c.WithFields(log.Fields{
			"name": record.Name,
			"err":  err,
		}).Error("pinner.PinJson failed")
		return nil, err
	}
	return im.result(cid), nil
}

package usecase

import (
	"encoding/json"
	"errors"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/base/log"
	"github.com/x-xyz/rentableft/base/metrics"
	"github.com/x-xyz/rentableft/domain"
	"github.com/x-xyz/rentableft/domain/metadata"
	"github.com/x-xyz/rentableft/stores/metadata/parser"
)

type ResolverCfg struct {
	// Gateways in priority order, only the first is used for fetching
	Gateways []string
	// CtxTimeout bounds a single fetch, 0 means no deadline
	CtxTimeout    time.Duration
	WebResourceUC domain.WebResourceUseCase
	Parser        parser.AttributeParser
}

type resolver struct {
	gateways      []string
	ctxTimeout    time.Duration
	webResourceUC domain.WebResourceUseCase
	parser        parser.AttributeParser
	met           metrics.Service
}

func NewResolver(cfg *ResolverCfg) (metadata.Resolver, error) {
	if len(cfg.Gateways) == 0 {
		return nil, xerrors.Errorf("no ipfs gateway configured: %w", domain.ErrBadParamInput)
	}
	p := cfg.Parser
	if p == nil {
		p = parser.NewDefaultParser()
	}
	gateways := make([]string, len(cfg.Gateways))
	copy(gateways, cfg.Gateways)
	return &resolver{
		gateways:      gateways,
		ctxTimeout:    cfg.CtxTimeout,
		webResourceUC: cfg.WebResourceUC,
		parser:        p,
		met:           metrics.New("metadata"),
	}, nil
}

func (r *resolver) NormalizeURL(pointer string) string {
	return metadata.NormalizeURL(pointer, r.gateways)
}

func (r *resolver) Resolve(c bCtx.Ctx, pointer string) (*metadata.Record, error) {
	defer r.met.BumpTime("resolve.latency").End()

	url := r.NormalizeURL(pointer)
	ctx, cancel := bCtx.WithTimeout(c, r.ctxTimeout)
	defer cancel()

	data, err := r.webResourceUC.GetJson(ctx, url)
	if err != nil {
		c.WithFields(log.Fields{
			"pointer": pointer,
			"url":     url,
			"err":     err,
		}).Warn("webResourceUC.GetJson failed")
		return nil, xerrors.Errorf("fetch %s: %v: %w", url, err, domain.ErrResolutionFailure)
	}

	doc := map[string]interface{}{}
	if err := json.Unmarshal(data, &doc); err != nil {
		c.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Warn("metadata is not a json object")
		return nil, xerrors.Errorf("decode %s: %v: %w", url, err, domain.ErrResolutionFailure)
	}

	record := &metadata.Record{
		Name:         stringField(doc, "name", metadata.DefaultName),
		Description:  stringField(doc, "description", ""),
		Image:        stringField(doc, "image", ""),
		AnimationUrl: stringField(doc, "animation_url", ""),
		ExternalUrl:  stringField(doc, "external_url", ""),
	}
	record.Image = r.NormalizeURL(record.Image)
	record.AnimationUrl = r.NormalizeURL(record.AnimationUrl)

	if attrs, err := r.parser.Parse(c, data); err == nil {
		record.Attributes = attrs
	} else if !errors.Is(err, domain.ErrNotFound) {
		c.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Debug("no parsable attributes")
	}
	return record, nil
}

// stringField returns doc[key] when it is a non-empty string, def otherwise
func stringField(doc map[string]interface{}, key, def string) string {
	if s, ok := doc[key].(string); ok && s != "" {
		return s
	}
	return def
}

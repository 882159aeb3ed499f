package usecase

import (
	"fmt"
	"math/big"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/base/log"
	"github.com/x-xyz/rentableft/base/metrics"
	"github.com/x-xyz/rentableft/base/ptr"
	"github.com/x-xyz/rentableft/domain"
	"github.com/x-xyz/rentableft/domain/asset"
	"github.com/x-xyz/rentableft/domain/metadata"
	"github.com/x-xyz/rentableft/domain/scan"
	"github.com/x-xyz/rentableft/domain/session"
)

type orchestrator struct {
	cfg      scan.Config
	reader   domain.ChainReader
	resolver metadata.Resolver
	met      metrics.Service
}

func NewOrchestrator(cfg *scan.Config, reader domain.ChainReader, resolver metadata.Resolver) scan.Orchestrator {
	return &orchestrator{
		cfg:      *cfg,
		reader:   reader,
		resolver: resolver,
		met:      metrics.New("scan"),
	}
}

func (o *orchestrator) Scan(c bCtx.Ctx, s session.Session) (res *scan.Result, err error) {
	holder := s.Address
	empty := &scan.Result{Holder: holder, Assets: []asset.Asset{}}
	if !s.IsConnected() {
		return empty, nil
	}
	if err := o.reader.Available(o.cfg.ChainId); err != nil {
		c.WithFields(log.Fields{
			"chainId": o.cfg.ChainId,
			"err":     err,
		}).Error("chain reader unavailable")
		return empty, xerrors.Errorf("%v: %w", err, domain.ErrScanFailure)
	}

	defer func() {
		if r := recover(); r != nil {
			c.WithFields(log.Fields{
				"holder": holder,
				"panic":  r,
			}).Error("scan aborted")
			res, err = empty, xerrors.Errorf("panic %v: %w", r, domain.ErrScanFailure)
		}
	}()
	defer o.met.BumpTime("scan.time").End()

	c = bCtx.WithValue(c, "holder", holder)
	res = &scan.Result{Holder: holder, Assets: []asset.Asset{}}
	for _, contract := range o.contracts() {
		if err := c.Err(); err != nil {
			return empty, xerrors.Errorf("%v: %w", err, domain.ErrScanFailure)
		}
		res.Assets = append(res.Assets, o.scanContract(c, contract, holder)...)
	}
	// a pass cut short is never a complete result
	if err := c.Err(); err != nil {
		return empty, xerrors.Errorf("%v: %w", err, domain.ErrScanFailure)
	}
	o.met.BumpSum("scan.items", float64(len(res.Assets)))
	return res, nil
}

func (o *orchestrator) contracts() []domain.Address {
	if o.cfg.MaxContracts >= 0 && o.cfg.MaxContracts < len(o.cfg.Contracts) {
		return o.cfg.Contracts[:o.cfg.MaxContracts]
	}
	return o.cfg.Contracts
}

func (o *orchestrator) scanContract(c bCtx.Ctx, contract, holder domain.Address) []asset.Asset {
	c = bCtx.WithValue(c, "contract", contract)
	assets := []asset.Asset{}

	n, err := o.reader.BalanceOf(c, o.cfg.ChainId, contract, holder)
	if err != nil {
		o.met.BumpSum("scan.read.err", 1, "method", "balanceOf")
		c.WithField("err", err).Warn("reader.BalanceOf failed, treating as zero holdings")
		n = 0
	}
	if n > o.cfg.MaxItemsPerContract {
		n = o.cfg.MaxItemsPerContract
	}

	for i := uint64(0); i < n; i++ {
		if c.Err() != nil {
			break
		}
		a, err := o.scanItem(c, contract, holder, i)
		if err != nil {
			c.WithFields(log.Fields{
				"index": i,
				"err":   err,
			}).Warn("skip item")
			continue
		}
		if a != nil {
			assets = append(assets, *a)
		}
	}
	return assets
}

// scanItem returns nil without error when the token has no image to show
func (o *orchestrator) scanItem(c bCtx.Ctx, contract, holder domain.Address, index uint64) (a *asset.Asset, err error) {
	defer func() {
		if r := recover(); r != nil {
			a, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()

	tokenId, err := o.reader.TokenOfOwnerByIndex(c, o.cfg.ChainId, contract, holder, index)
	if err != nil {
		o.met.BumpSum("scan.read.err", 1, "method", "tokenOfOwnerByIndex")
		return nil, err
	}
	pointer, err := o.reader.TokenURI(c, o.cfg.ChainId, contract, tokenId)
	if err != nil {
		o.met.BumpSum("scan.read.err", 1, "method", "tokenURI")
		return nil, err
	}

	record, err := o.resolver.Resolve(c, pointer)
	if err != nil {
		o.met.BumpSum("scan.resolve.err", 1)
		c.WithFields(log.Fields{
			"tokenId": tokenId,
			"pointer": pointer,
			"err":     err,
		}).Warn("resolver.Resolve failed, using sentinel")
		record = metadata.Sentinel()
	}
	if record.Image == "" {
		return nil, nil
	}
	return o.toAsset(contract, holder, tokenId, pointer, record), nil
}

func (o *orchestrator) toAsset(contract, holder domain.Address, tokenId *big.Int, pointer string, record *metadata.Record) *asset.Asset {
	return &asset.Asset{
		Id:              asset.MakeId(contract, tokenId),
		TokenId:         new(big.Int).Set(tokenId),
		Title:           record.Name,
		Description:     record.Description,
		Image:           record.Image,
		Price:           o.cfg.PlaceholderPrice,
		Owner:           string(holder),
		IsRentable:      true,
		IsAvailable:     true,
		Category:        o.cfg.Category,
		ContractAddress: contract,
		TokenURI:        ptr.String(pointer),
		Attributes:      record.Attributes,
	}
}

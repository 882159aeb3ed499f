package usecase

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/base/goroutine"
	"github.com/x-xyz/rentableft/base/log"
	"github.com/x-xyz/rentableft/base/ptr"
	"github.com/x-xyz/rentableft/domain"
	"github.com/x-xyz/rentableft/domain/asset"
	"github.com/x-xyz/rentableft/domain/listing"
	"github.com/x-xyz/rentableft/domain/session"
)

var timeNow = time.Now

type ListingUseCaseCfg struct {
	ListingRepo listing.ListingRepo
}

type impl struct {
	repo listing.ListingRepo
}

func New(cfg *ListingUseCaseCfg) listing.Usecase {
	return &impl{
		repo: cfg.ListingRepo,
	}
}

// formatPrice renders the shortest decimal form, e.g. 150 or 0.1
func formatPrice(p float64) string {
	return decimal.NewFromFloat(p).String()
}

func toAsset(l *listing.Listing) (asset.Asset, error) {
	tokenId, err := l.TokenId.ToBig()
	if err != nil {
		return asset.Asset{}, err
	}

	a := asset.Asset{
		Id:              l.NftId,
		TokenId:         tokenId,
		Title:           l.Title,
		Image:           l.ImageUrl,
		Price:           formatPrice(l.Price),
		Owner:           l.SellerName,
		IsRentable:      l.IsRentable,
		IsAvailable:     l.IsAvailable,
		Category:        l.Category,
		ContractAddress: l.ContractAddress,
	}
	if a.Id == "" {
		a.Id = asset.MakeId(l.ContractAddress, tokenId)
	}
	if a.Owner == "" {
		a.Owner = string(l.SellerAddress)
	}
	a.Description = ptr.StringOr(l.Description, "")
	if l.RentPrice != nil {
		a.RentPrice = ptr.String(formatPrice(*l.RentPrice))
	}
	return a, nil
}

func (im *impl) ListAvailable(c ctx.Ctx, filter listing.Filter) ([]asset.Asset, error) {
	rows, err := im.repo.FindAvailable(c, filter)
	if err != nil {
		c.WithField("err", err).Error("repo.FindAvailable failed")
		return nil, err
	}

	res := make([]asset.Asset, 0, len(rows))
	for _, row := range rows {
		a, err := toAsset(row)
		if err != nil {
			c.WithFields(log.Fields{
				"nftId": row.NftId,
				"err":   err,
			}).Warn("toAsset failed, skip")
			continue
		}
		res = append(res, a)
	}
	return res, nil
}

func (im *impl) Subscribe(c ctx.Ctx, filter listing.Filter) (<-chan []asset.Asset, error) {
	first, err := im.ListAvailable(c, filter)
	if err != nil {
		return nil, err
	}

	out := make(chan []asset.Asset, 1)
	out <- first

	goroutine.RecoverableGo(func() {
		defer close(out)

		err := im.repo.Watch(c, func(c ctx.Ctx) error {
			assets, err := im.ListAvailable(c, filter)
			if err != nil {
				return err
			}
			select {
			case out <- assets:
				return nil
			case <-c.Done():
				return c.Err()
			}
		})
		if err != nil && c.Err() == nil {
			c.WithField("err", err).Warn("listing feed ended")
		}
	}, goroutine.WithLogger(c.Logger), goroutine.WithName("listing.subscribe"))

	return out, nil
}

func parsePrice(s string) (float64, error) {
	d, err := decimal.NewFromString(s)
	if err != nil || !d.IsPositive() {
		return 0, xerrors.Errorf("invalid price %q: %w", s, domain.ErrBadParamInput)
	}
	f, _ := d.Float64()
	return f, nil
}

func (im *impl) Create(c ctx.Ctx, s session.Session, req *listing.CreateRequest) (*listing.Listing, error) {
	if !s.IsConnected() {
		return nil, domain.ErrWalletNotConnected
	}

	tokenId, err := req.TokenId.ToBig()
	if err != nil {
		return nil, xerrors.Errorf("%v: %w", err, domain.ErrBadParamInput)
	}
	price, err := parsePrice(req.Price)
	if err != nil {
		return nil, err
	}

	l := &listing.Listing{
		NftId:           asset.MakeId(req.ContractAddress, tokenId),
		TokenId:         domain.TokenIdFromBig(tokenId),
		ContractAddress: req.ContractAddress,
		Title:           req.Title,
		ImageUrl:        req.Image,
		Category:        req.Category,
		Price:           price,
		IsRentable:      req.IsRentable,
		IsAvailable:     true,
		SellerAddress:   s.Address,
		SellerName:      string(s.Address),
		CreatedAt:       timeNow(),
	}
	if req.Description != "" {
		l.Description = ptr.String(req.Description)
	}
	if req.IsRentable {
		if req.RentPrice == nil {
			return nil, xerrors.Errorf("rentable listing without rent price: %w", domain.ErrBadParamInput)
		}
		rent, err := parsePrice(*req.RentPrice)
		if err != nil {
			return nil, err
		}
		l.RentPrice = ptr.Float64(rent)
	}

	// the unique nft_id index is only a backstop when mongo.checkIndex is off
	if existing, err := im.repo.FindOne(c, l.NftId); err == nil {
		return nil, xerrors.Errorf("listed by %s: %w", existing.SellerAddress, domain.ErrConflict)
	} else if !errors.Is(err, domain.ErrNotFound) {
		c.WithFields(log.Fields{
			"nftId": l.NftId,
			"err":   err,
		}).Error("repo.FindOne failed")
		return nil, err
	}

	if err := im.repo.Create(c, l); err != nil {
		c.WithFields(log.Fields{
			"nftId": l.NftId,
			"err":   err,
		}).Warn("repo.Create failed")
		return nil, err
	}
	return l, nil
}

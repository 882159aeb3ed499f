package usecase

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/base/log"
	"github.com/x-xyz/rentableft/base/metrics"
	"github.com/x-xyz/rentableft/domain"
	"github.com/x-xyz/rentableft/domain/session"
	"github.com/x-xyz/rentableft/domain/transaction"
)

const (
	defaultCurrency = "MATIC"
	defaultDays     = 1
)

var timeNow = time.Now

type TransactionUseCaseCfg struct {
	// Delay is how long a transaction takes to "confirm"
	Delay    time.Duration
	Currency string
}

type impl struct {
	delay    time.Duration
	currency string
	met      metrics.Service
}

func New(cfg *TransactionUseCaseCfg) transaction.Usecase {
	currency := cfg.Currency
	if currency == "" {
		currency = defaultCurrency
	}
	return &impl{
		delay:    cfg.Delay,
		currency: currency,
		met:      metrics.New("transaction"),
	}
}

func (im *impl) confirm(c ctx.Ctx) error {
	if im.delay <= 0 {
		return c.Err()
	}
	timer := time.NewTimer(im.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-c.Done():
		return c.Err()
	}
}

func (im *impl) receipt(kind transaction.Kind, s session.Session, assetId string) *transaction.Receipt {
	return &transaction.Receipt{
		Id:          uuid.NewString(),
		Kind:        kind,
		AssetId:     assetId,
		Account:     s.Address,
		Currency:    im.currency,
		CompletedAt: timeNow(),
	}
}

func (im *impl) Buy(c ctx.Ctx, s session.Session, req *transaction.BuyRequest) (*transaction.Receipt, error) {
	if !s.IsConnected() {
		return nil, domain.ErrWalletNotConnected
	}
	price, err := decimal.NewFromString(req.Price)
	if err != nil || !price.IsPositive() {
		return nil, xerrors.Errorf("invalid price %q: %w", req.Price, domain.ErrBadParamInput)
	}

	c = ctx.WithValues(c, map[string]interface{}{
		"assetId": req.AssetId,
		"account": s.Address,
	})
	defer im.met.BumpTime("confirm.time", "kind", string(transaction.KindBuy)).End()
	if err := im.confirm(c); err != nil {
		c.WithField("err", err).Info("buy canceled")
		return nil, err
	}

	r := im.receipt(transaction.KindBuy, s, req.AssetId)
	r.Amount = req.Price
	r.Total = req.Price
	r.Message = fmt.Sprintf("Successfully purchased NFT for %s %s!", req.Price, im.currency)
	c.WithField("receipt", r.Id).Info("buy completed")
	return r, nil
}

func plural(days int) string {
	if days > 1 {
		return "days"
	}
	return "day"
}

func (im *impl) Rent(c ctx.Ctx, s session.Session, req *transaction.RentRequest) (*transaction.Receipt, error) {
	if !s.IsConnected() {
		return nil, domain.ErrWalletNotConnected
	}
	days := req.Days
	if days < 0 {
		return nil, xerrors.Errorf("invalid days %d: %w", days, domain.ErrBadParamInput)
	} else if days == 0 {
		days = defaultDays
	}
	rentPrice, err := decimal.NewFromString(req.RentPrice)
	if err != nil || !rentPrice.IsPositive() {
		return nil, xerrors.Errorf("invalid rent price %q: %w", req.RentPrice, domain.ErrBadParamInput)
	}
	total := rentPrice.Mul(decimal.NewFromInt(int64(days))).StringFixed(4)

	c = ctx.WithValues(c, map[string]interface{}{
		"assetId": req.AssetId,
		"account": s.Address,
	})
	defer im.met.BumpTime("confirm.time", "kind", string(transaction.KindRent)).End()
	if err := im.confirm(c); err != nil {
		c.WithFields(log.Fields{"err": err, "days": days}).Info("rent canceled")
		return nil, err
	}

	r := im.receipt(transaction.KindRent, s, req.AssetId)
	r.Amount = req.RentPrice
	r.Days = days
	r.Total = total
	r.Message = fmt.Sprintf("Successfully rented NFT for %s %s for %d %s!", total, im.currency, days, plural(days))
	c.WithField("receipt", r.Id).Info("rent completed")
	return r, nil
}

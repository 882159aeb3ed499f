package transaction

import (
	"time"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/domain"
	"github.com/x-xyz/rentableft/domain/session"
)

type Kind string

const (
	KindBuy  Kind = "buy"
	KindRent Kind = "rent"
)

type BuyRequest struct {
	AssetId string `json:"assetId" validate:"required"`
	Price   string `json:"price" validate:"required,positive_decimal"`
}

type RentRequest struct {
	AssetId   string `json:"assetId" validate:"required"`
	RentPrice string `json:"rentPrice" validate:"required,positive_decimal"`
	// Days is 1 when omitted
	Days int `json:"days"`
}

// Receipt describes a completed simulated transaction
type Receipt struct {
	Id          string         `json:"id"`
	Kind        Kind           `json:"kind"`
	AssetId     string         `json:"assetId"`
	Account     domain.Address `json:"account"`
	Amount      string         `json:"amount"`
	Days        int            `json:"days,omitempty"`
	Total       string         `json:"total"`
	Currency    string         `json:"currency"`
	Message     string         `json:"message"`
	CompletedAt time.Time      `json:"completedAt"`
}

// Usecase simulates settlement: after a fixed confirmation delay every valid request succeeds
type Usecase interface {
	Buy(c ctx.Ctx, s session.Session, req *BuyRequest) (*Receipt, error)
	Rent(c ctx.Ctx, s session.Session, req *RentRequest) (*Receipt, error)
}

package listing

import (
	"time"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/domain"
	"github.com/x-xyz/rentableft/domain/asset"
	"github.com/x-xyz/rentableft/domain/session"
)

// Listing is a marketplace row; bson names follow the listings collection columns
type Listing struct {
	NftId           string         `json:"nftId" bson:"nft_id"`
	TokenId         domain.TokenId `json:"tokenId" bson:"token_id"`
	ContractAddress domain.Address `json:"contractAddress" bson:"contract_address"`
	Title           string         `json:"title" bson:"title"`
	Description     *string        `json:"description,omitempty" bson:"description"`
	ImageUrl        string         `json:"imageUrl" bson:"image_url"`
	Category        string         `json:"category" bson:"category"`
	Price           float64        `json:"price" bson:"price"`
	RentPrice       *float64       `json:"rentPrice,omitempty" bson:"rent_price"`
	IsRentable      bool           `json:"isRentable" bson:"is_rentable"`
	IsAvailable     bool           `json:"isAvailable" bson:"is_available"`
	SellerAddress   domain.Address `json:"sellerAddress" bson:"seller_address"`
	SellerName      string         `json:"sellerName" bson:"seller_name"`
	CreatedAt       time.Time      `json:"createdAt" bson:"created_at"`
}

type PriceBand string

const (
	PriceBandAll    PriceBand = "all"
	PriceBandLow    PriceBand = "low"
	PriceBandMedium PriceBand = "medium"
	PriceBandHigh   PriceBand = "high"
)

// band edges in MATIC
const (
	PriceMediumFrom = 200
	PriceHighFrom   = 500
)

// CategoryAll disables the category filter
const CategoryAll = "all"

// Filter narrows the marketplace. Zero values mean no filtering.
type Filter struct {
	Search   string    `query:"search"`
	Category string    `query:"category"`
	Price    PriceBand `query:"price" validate:"omitempty,oneof=all low medium high"`
}

type CreateRequest struct {
	ContractAddress domain.Address `json:"contractAddress" validate:"required,eth_addr"`
	TokenId         domain.TokenId `json:"tokenId" validate:"required,numeric"`
	Title           string         `json:"title" validate:"required,max=256"`
	Description     string         `json:"description"`
	Image           string         `json:"image" validate:"required"`
	Category        string         `json:"category" validate:"required,oneof=Weapon Armor Mount Vehicle Pet Gaming Other"`
	Price           string         `json:"price" validate:"required,positive_decimal"`
	RentPrice       *string        `json:"rentPrice" validate:"omitempty,positive_decimal"`
	IsRentable      bool           `json:"isRentable"`
}

type ListingRepo interface {
	// FindAvailable returns rows with is_available set, newest first
	FindAvailable(c ctx.Ctx, filter Filter) ([]*Listing, error)
	FindOne(c ctx.Ctx, nftId string) (*Listing, error)
	Create(c ctx.Ctx, l *Listing) error
	// Watch calls onChange after every insert, update, replace or delete until c is done
	Watch(c ctx.Ctx, onChange func(c ctx.Ctx) error) error
}

type Usecase interface {
	ListAvailable(c ctx.Ctx, filter Filter) ([]asset.Asset, error)
	// Subscribe publishes the current marketplace first and then once per change.
	// The channel is closed when c is done or the change feed fails.
	Subscribe(c ctx.Ctx, filter Filter) (<-chan []asset.Asset, error)
	Create(c ctx.Ctx, s session.Session, req *CreateRequest) (*Listing, error)
}

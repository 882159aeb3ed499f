package asset

import (
	"fmt"
	"math/big"

	"github.com/x-xyz/rentableft/domain"
)

type Attribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

type Attributes []Attribute

// Asset is the display record shared by scanned holdings and marketplace listings
type Asset struct {
	Id              string         `json:"id"`
	TokenId         *big.Int       `json:"tokenId"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Image           string         `json:"image"`
	Price           string         `json:"price"`
	RentPrice       *string        `json:"rentPrice,omitempty"`
	Owner           string         `json:"owner"`
	IsRentable      bool           `json:"isRentable"`
	IsAvailable     bool           `json:"isAvailable"`
	Category        string         `json:"category"`
	TimeLeft        *string        `json:"timeLeft,omitempty"`
	ContractAddress domain.Address `json:"contractAddress"`
	TokenURI        *string        `json:"tokenURI,omitempty"`
	Attributes      Attributes     `json:"attributes,omitempty"`
}

// MakeId derives the asset identifier from (contract, token id). The
// contract is used verbatim so ids stay stable for the same source string.
func MakeId(contract domain.Address, tokenId *big.Int) string {
	return fmt.Sprintf("%s-%s", contract, tokenId.String())
}

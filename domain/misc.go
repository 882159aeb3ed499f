package domain

import (
	"math/big"
	"strings"

	"golang.org/x/xerrors"
)

type ChainId int32

type Address string

const EmptyAddress = Address("0x0000000000000000000000000000000000000000")

func (a Address) ToLower() Address {
	return Address(strings.ToLower(string(a)))
}

func (a Address) ToLowerStr() string {
	return strings.ToLower(string(a))
}

func (a Address) IsEmpty() bool {
	return len(a) == 0
}

func (a Address) Equals(b Address) bool {
	return a.ToLowerStr() == b.ToLowerStr()
}

// TokenId is the decimal string form of an on-chain token id
type TokenId string

func (i TokenId) String() string {
	return string(i)
}

func (i TokenId) ToBig() (*big.Int, error) {
	id, ok := new(big.Int).SetString(i.String(), 10)
	if !ok {
		return nil, xerrors.Errorf("invalid id %s: %w", i, ErrInvalidNumberFormat)
	}
	return id, nil
}

func TokenIdFromBig(i *big.Int) TokenId {
	if i == nil {
		return ""
	}
	return TokenId(i.String())
}

// Table is a collection name in the document store
type Table string

const (
	TableListings Table = "nft_listings"
)

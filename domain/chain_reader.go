package domain

import (
	"math/big"

	"github.com/x-xyz/rentableft/base/ctx"
)

// ChainReader exposes typed reads against the ERC721 ownership interface.
// Every read failure wraps ErrReadFailure; the caller decides whether it
// means "skip" or "zero".
type ChainReader interface {
	// Available returns ErrUnsupportedChain when no rpc connection exists for chainId
	Available(chainId ChainId) error
	BalanceOf(c ctx.Ctx, chainId ChainId, contract, holder Address) (uint64, error)
	TokenOfOwnerByIndex(c ctx.Ctx, chainId ChainId, contract, holder Address, index uint64) (*big.Int, error)
	TokenURI(c ctx.Ctx, chainId ChainId, contract Address, tokenId *big.Int) (string, error)
	OwnerOf(c ctx.Ctx, chainId ChainId, contract Address, tokenId *big.Int) (Address, error)
}

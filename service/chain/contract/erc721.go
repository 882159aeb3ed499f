package contract

import (
	"math/big"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/xerrors"

	baseabi "github.com/x-xyz/rentableft/base/abi"
	bCtx "github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/domain"
	"github.com/x-xyz/rentableft/service/chain"
)

type Erc721 struct {
	chainService chain.Client
	abi          ethabi.ABI
}

func NewErc721(chainService chain.Client) *Erc721 {
	return &Erc721{
		abi:          baseabi.ERC721TokenABI,
		chainService: chainService,
	}
}

func (e *Erc721) Available(chainId domain.ChainId) error {
	if !e.chainService.Supports(chainId) {
		return domain.ErrUnsupportedChain
	}
	return nil
}

func (e *Erc721) call(ctx bCtx.Ctx, chainId domain.ChainId, contract domain.Address, method string, params ...interface{}) (interface{}, error) {
	unpacked, err := e.chainService.Call(ctx, chainId, common.HexToAddress(string(contract)), nil, e.abi, method, params...)
	if err != nil {
		return nil, xerrors.Errorf("%s on %s: %v: %w", method, contract, err, domain.ErrReadFailure)
	}
	if len(unpacked) == 0 {
		return nil, xerrors.Errorf("%s on %s: empty response: %w", method, contract, domain.ErrReadFailure)
	}
	return unpacked[0], nil
}

func (e *Erc721) BalanceOf(ctx bCtx.Ctx, chainId domain.ChainId, contract, holder domain.Address) (uint64, error) {
	out, err := e.call(ctx, chainId, contract, "balanceOf", common.HexToAddress(string(holder)))
	if err != nil {
		return 0, err
	}
	bal, ok := out.(*big.Int)
	if !ok || bal.Sign() < 0 || !bal.IsUint64() {
		return 0, xerrors.Errorf("balanceOf on %s: malformed %v: %w", contract, out, domain.ErrReadFailure)
	}
	return bal.Uint64(), nil
}

func (e *Erc721) TokenOfOwnerByIndex(ctx bCtx.Ctx, chainId domain.ChainId, contract, holder domain.Address, index uint64) (*big.Int, error) {
	out, err := e.call(ctx, chainId, contract, "tokenOfOwnerByIndex", common.HexToAddress(string(holder)), new(big.Int).SetUint64(index))
	if err != nil {
		return nil, err
	}
	id, ok := out.(*big.Int)
	if !ok {
		return nil, xerrors.Errorf("tokenOfOwnerByIndex on %s: malformed %v: %w", contract, out, domain.ErrReadFailure)
	}
	return id, nil
}

func (e *Erc721) TokenURI(ctx bCtx.Ctx, chainId domain.ChainId, contract domain.Address, tokenId *big.Int) (string, error) {
	out, err := e.call(ctx, chainId, contract, "tokenURI", tokenId)
	if err != nil {
		return "", err
	}
	uri, ok := out.(string)
	if !ok {
		return "", xerrors.Errorf("tokenURI on %s: malformed %v: %w", contract, out, domain.ErrReadFailure)
	}
	return uri, nil
}

func (e *Erc721) OwnerOf(ctx bCtx.Ctx, chainId domain.ChainId, contract domain.Address, tokenId *big.Int) (domain.Address, error) {
	out, err := e.call(ctx, chainId, contract, "ownerOf", tokenId)
	if err != nil {
		return "", err
	}
	owner, ok := out.(common.Address)
	if !ok {
		return "", xerrors.Errorf("ownerOf on %s: malformed %v: %w", contract, out, domain.ErrReadFailure)
	}
	return domain.Address(owner.String()), nil
}

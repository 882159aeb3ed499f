package usecase

import (
	"fmt"
	"math/big"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"golang.org/x/xerrors"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/base/log"
	"github.com/x-xyz/rentableft/base/validator"
	"github.com/x-xyz/rentableft/domain"
	"github.com/x-xyz/rentableft/domain/keys"
	"github.com/x-xyz/rentableft/domain/session"
	"github.com/x-xyz/rentableft/domain/wallet"
	"github.com/x-xyz/rentableft/service/cache"
	"github.com/x-xyz/rentableft/service/chain"
)

type NetworkCfg struct {
	ChainId      domain.ChainId `mapstructure:"chainId"`
	ChainName    string         `mapstructure:"chainName"`
	Symbol       string         `mapstructure:"symbol"`
	Decimals     int32          `mapstructure:"decimals"`
	RpcUrls      []string       `mapstructure:"rpcUrls"`
	ExplorerUrls []string       `mapstructure:"explorerUrls"`
}

type WalletUseCaseCfg struct {
	Chain        chain.Client
	BalanceCache cache.Service
	Network      NetworkCfg
}

type impl struct {
	chain   chain.Client
	cache   cache.Service
	network NetworkCfg
}

func New(cfg *WalletUseCaseCfg) wallet.Usecase {
	return &impl{
		chain:   cfg.Chain,
		cache:   cfg.BalanceCache,
		network: cfg.Network,
	}
}

// formatBalance renders wei with 4 decimals and the currency symbol
func formatBalance(wei *big.Int, decimals int32, symbol string) string {
	return fmt.Sprintf("%s %s", decimal.NewFromBigInt(wei, -decimals).StringFixed(4), symbol)
}

func (im *impl) Balance(c ctx.Ctx, chainId domain.ChainId, address domain.Address) (string, error) {
	if !validator.IsValidAddress(string(address)) {
		return "", domain.ErrInvalidAddress
	}

	key := keys.RedisKey(strconv.Itoa(int(chainId)), address.ToLowerStr())
	res := ""
	if err := im.cache.GetByFunc(c, key, &res, func() (interface{}, error) {
		wei, err := im.chain.BalanceAt(c, chainId, common.HexToAddress(string(address)))
		if err != nil {
			return nil, xerrors.Errorf("balance of %s: %w", address, err)
		}
		s := formatBalance(wei, im.network.Decimals, im.network.Symbol)
		return &s, nil
	}); err != nil {
		c.WithFields(log.Fields{
			"chainId": chainId,
			"address": address,
			"err":     err,
		}).Warn("cache.GetByFunc failed")
		return "", err
	}
	return res, nil
}

func (im *impl) Status(c ctx.Ctx, s session.Session) wallet.Status {
	res := wallet.Status{
		Address:        s.Address,
		ChainId:        s.ChainId,
		IsConnected:    s.IsConnected(),
		IsCorrectChain: s.IsCorrectChain(im.network.ChainId),
		Balance:        wallet.ZeroBalance,
	}
	if !res.IsConnected {
		return res
	}
	if bal, err := im.Balance(c, im.network.ChainId, s.Address); err == nil {
		res.Balance = bal
	}
	return res
}

func (im *impl) Network() wallet.Network {
	return wallet.Network{
		ChainId:   fmt.Sprintf("0x%x", im.network.ChainId),
		ChainName: im.network.ChainName,
		NativeCurrency: wallet.NativeCurrency{
			Name:     im.network.Symbol,
			Symbol:   im.network.Symbol,
			Decimals: im.network.Decimals,
		},
		RpcUrls:           im.network.RpcUrls,
		BlockExplorerUrls: im.network.ExplorerUrls,
	}
}

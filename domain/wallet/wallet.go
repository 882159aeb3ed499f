package wallet

import (
	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/domain"
	"github.com/x-xyz/rentableft/domain/session"
)

// ZeroBalance is shown when nothing could be read
const ZeroBalance = "0 MATIC"

type Status struct {
	Address        domain.Address `json:"address"`
	ChainId        domain.ChainId `json:"chainId"`
	IsConnected    bool           `json:"isConnected"`
	IsCorrectChain bool           `json:"isCorrectChain"`
	Balance        string         `json:"balance"`
}

type NativeCurrency struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	Decimals int32  `json:"decimals"`
}

// Network is the parameter object of wallet_addEthereumChain
type Network struct {
	ChainId           string         `json:"chainId"`
	ChainName         string         `json:"chainName"`
	NativeCurrency    NativeCurrency `json:"nativeCurrency"`
	RpcUrls           []string       `json:"rpcUrls"`
	BlockExplorerUrls []string       `json:"blockExplorerUrls"`
}

type Usecase interface {
	// Balance is the native balance on chainId, e.g. "12.3457 MATIC"
	Balance(c ctx.Ctx, chainId domain.ChainId, address domain.Address) (string, error)
	Status(c ctx.Ctx, s session.Session) Status
	Network() Network
}

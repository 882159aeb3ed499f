package chain

import (
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/ethclient"
	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/base/log"
	"github.com/x-xyz/rentableft/base/metrics"
	"github.com/x-xyz/rentableft/domain"
)

type ClientCfg struct {
	RpcUrls map[domain.ChainId]string
	// MaxConcurrency limits in-flight requests per chain, 0 means unlimited
	MaxConcurrency int
}

type Client interface {
	// Supports reports whether an rpc client was constructed for the chain
	Supports(chainId domain.ChainId) bool
	// Call packs method+params with _abi, runs eth_call at blk (nil = latest) and unpacks the result
	Call(c bCtx.Ctx, chainId domain.ChainId, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error)
	// BalanceAt returns the native balance in wei at the latest block
	BalanceAt(c bCtx.Ctx, chainId domain.ChainId, addr common.Address) (*big.Int, error)
}

type rpcClient interface {
	CallContract(ctx bCtx.Ctx, msg ethereum.CallMsg, blk *big.Int) ([]byte, error)
	BalanceAt(ctx bCtx.Ctx, addr common.Address, blk *big.Int) (*big.Int, error)
}

type ethRpc struct {
	c *ethclient.Client
}

func (e *ethRpc) CallContract(ctx bCtx.Ctx, msg ethereum.CallMsg, blk *big.Int) ([]byte, error) {
	return e.c.CallContract(ctx, msg, blk)
}

func (e *ethRpc) BalanceAt(ctx bCtx.Ctx, addr common.Address, blk *big.Int) (*big.Int, error) {
	return e.c.BalanceAt(ctx, addr, blk)
}

type clientImpl struct {
	clients map[domain.ChainId]rpcClient
	met     metrics.Service
}

// NewClient dials every configured rpc url. A failed dial is logged and the
// chain is left unsupported; the first dial error is returned alongside the
// usable client.
func NewClient(ctx bCtx.Ctx, cfg *ClientCfg) (Client, error) {
	var (
		anyerr error
	)
	clients := make(map[domain.ChainId]rpcClient)
	for chainId, url := range cfg.RpcUrls {
		client, err := ethclient.DialContext(ctx, url)
		if err != nil {
			if anyerr == nil {
				anyerr = xerrors.Errorf("dial chain %d: %w", chainId, err)
			}
			ctx.WithFields(log.Fields{
				"err":     err,
				"chainId": chainId,
				"url":     url,
			}).Warn("failed to dial rpc")
			// soft warning, still let the server start
			continue
		}
		clients[chainId] = newThrottled(&ethRpc{client}, cfg.MaxConcurrency)
	}
	return &clientImpl{
		clients: clients,
		met:     metrics.New("chain"),
	}, anyerr
}

func (c *clientImpl) Supports(chainId domain.ChainId) bool {
	_, ok := c.clients[chainId]
	return ok
}

func (c *clientImpl) Call(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address, blk *big.Int, _abi abi.ABI, method string, params ...interface{}) ([]interface{}, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, domain.ErrUnsupportedChain
	}
	defer c.met.BumpTime("call.latency", "method", method).End()

	data, err := _abi.Pack(method, params...)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"params": params,
			"err":    err,
		}).Error("abi.Pack failed")
		return nil, err
	}
	msg := ethereum.CallMsg{
		To:   &addr,
		Data: data,
	}
	res, err := client.CallContract(ctx, msg, blk)
	if err != nil {
		c.met.BumpSum("call.err", 1, "method", method)
		ctx.WithFields(log.Fields{
			"method": method,
			"addr":   addr.Hex(),
			"err":    err,
		}).Warn("client.CallContract failed")
		return nil, err
	}
	unpacked, err := _abi.Unpack(method, res)
	if err != nil {
		ctx.WithFields(log.Fields{
			"method": method,
			"err":    err,
		}).Warn("abi.Unpack failed")
		return nil, err
	}
	return unpacked, nil
}

func (c *clientImpl) BalanceAt(ctx bCtx.Ctx, chainId domain.ChainId, addr common.Address) (*big.Int, error) {
	client, ok := c.clients[chainId]
	if !ok {
		return nil, domain.ErrUnsupportedChain
	}
	defer c.met.BumpTime("balance.latency").End()

	bal, err := client.BalanceAt(ctx, addr, nil)
	if err != nil {
		ctx.WithFields(log.Fields{
			"addr": addr.Hex(),
			"err":  err,
		}).Warn("client.BalanceAt failed")
		return nil, err
	}
	return bal, nil
}

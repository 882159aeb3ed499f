package chain

import (
	"math/big"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"

	bCtx "github.com/x-xyz/rentableft/base/ctx"
)

// throttled caps the number of in-flight rpc requests to one endpoint.
// Public endpoints such as polygon-rpc.com rate limit aggressively.
type throttled struct {
	rpcClient
	tokens chan struct{}
}

func newThrottled(c rpcClient, n int) rpcClient {
	if n <= 0 {
		return c
	}
	return &throttled{
		rpcClient: c,
		tokens:    make(chan struct{}, n),
	}
}

func (t *throttled) acquire(ctx bCtx.Ctx) error {
	select {
	case t.tokens <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (t *throttled) release() {
	<-t.tokens
}

func (t *throttled) CallContract(ctx bCtx.Ctx, msg ethereum.CallMsg, blk *big.Int) ([]byte, error) {
	if err := t.acquire(ctx); err != nil {
		return nil, err
	}
	defer t.release()
	return t.rpcClient.CallContract(ctx, msg, blk)
}

func (t *throttled) BalanceAt(ctx bCtx.Ctx, addr common.Address, blk *big.Int) (*big.Int, error) {
	if err := t.acquire(ctx); err != nil {
		return nil, err
	}
	defer t.release()
	return t.rpcClient.BalanceAt(ctx, addr, blk)
}

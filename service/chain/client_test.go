package chain

import (
	"errors"
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"

	baseabi "github.com/x-xyz/rentableft/base/abi"
	bCtx "github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/base/metrics"
	"github.com/x-xyz/rentableft/domain"
)

type fakeRpc struct {
	callRes []byte
	callErr error
	balance *big.Int
	lastMsg ethereum.CallMsg
}

func (f *fakeRpc) CallContract(_ bCtx.Ctx, msg ethereum.CallMsg, _ *big.Int) ([]byte, error) {
	f.lastMsg = msg
	return f.callRes, f.callErr
}

func (f *fakeRpc) BalanceAt(bCtx.Ctx, common.Address, *big.Int) (*big.Int, error) {
	return f.balance, nil
}

func newTestClient(rpc rpcClient) *clientImpl {
	return &clientImpl{
		clients: map[domain.ChainId]rpcClient{137: rpc},
		met:     metrics.New("chain_test"),
	}
}

func TestCall(t *testing.T) {
	req := require.New(t)
	ctx := bCtx.Background()
	contract := common.HexToAddress("0x2953399124F0cBB46d2CbACD8A89cF0599974963")
	holder := common.HexToAddress("0x939ae6A4C8dfDBB1f7085189574F0A938013952A")

	out, err := baseabi.ERC721TokenABI.Methods["balanceOf"].Outputs.Pack(big.NewInt(3))
	req.NoError(err)
	rpc := &fakeRpc{callRes: out}
	c := newTestClient(rpc)

	res, err := c.Call(ctx, 137, contract, nil, baseabi.ERC721TokenABI, "balanceOf", holder)
	req.NoError(err)
	req.Equal(big.NewInt(3), res[0].(*big.Int))
	req.Equal(contract, *rpc.lastMsg.To)

	_, err = c.Call(ctx, 1, contract, nil, baseabi.ERC721TokenABI, "balanceOf", holder)
	req.ErrorIs(err, domain.ErrUnsupportedChain)

	rpc.callErr = errors.New("execution reverted")
	_, err = c.Call(ctx, 137, contract, nil, baseabi.ERC721TokenABI, "balanceOf", holder)
	req.Error(err)

	// malformed response
	rpc.callErr = nil
	rpc.callRes = []byte{0x01}
	_, err = c.Call(ctx, 137, contract, nil, baseabi.ERC721TokenABI, "balanceOf", holder)
	req.Error(err)
}

func TestSupportsAndBalance(t *testing.T) {
	req := require.New(t)
	c := newTestClient(&fakeRpc{balance: big.NewInt(42)})

	req.True(c.Supports(137))
	req.False(c.Supports(1))

	bal, err := c.BalanceAt(bCtx.Background(), 137, common.Address{})
	req.NoError(err)
	req.Equal(int64(42), bal.Int64())

	_, err = c.BalanceAt(bCtx.Background(), 5, common.Address{})
	req.ErrorIs(err, domain.ErrUnsupportedChain)
}

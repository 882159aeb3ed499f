package usecase

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/domain"
	"github.com/x-xyz/rentableft/domain/keys"
	"github.com/x-xyz/rentableft/domain/session"
	"github.com/x-xyz/rentableft/domain/wallet"
	"github.com/x-xyz/rentableft/service/cache"
	"github.com/x-xyz/rentableft/service/cache/provider/primitive"
	"github.com/x-xyz/rentableft/service/chain/mocks"
)

const (
	polygon = domain.ChainId(137)
	holder  = domain.Address("0x5aeda56215b167893e80b4fe645ba6d5bab767de")
)

func TestFormatBalance(t *testing.T) {
	req := require.New(t)
	wei, _ := new(big.Int).SetString("12345678900000000000", 10)

	req.Equal("12.3457 MATIC", formatBalance(wei, 18, "MATIC"))
	req.Equal("0.0000 MATIC", formatBalance(big.NewInt(0), 18, "MATIC"))
	req.Equal("1.0000 MATIC", formatBalance(big.NewInt(1e18), 18, "MATIC"))
}

type walletSuite struct {
	suite.Suite
	ctx   ctx.Ctx
	chain *mocks.Client
	im    wallet.Usecase
}

func TestWalletSuite(t *testing.T) {
	suite.Run(t, new(walletSuite))
}

func (s *walletSuite) SetupTest() {
	s.ctx = ctx.Background()
	s.chain = &mocks.Client{}
	s.im = New(&WalletUseCaseCfg{
		Chain: s.chain,
		BalanceCache: cache.New(cache.ServiceConfig{
			Ttl:   time.Minute,
			Pfx:   keys.PfxBalance,
			Cache: primitive.NewPrimitive("balance", 1),
		}),
		Network: NetworkCfg{
			ChainId:      polygon,
			ChainName:    "Polygon",
			Symbol:       "MATIC",
			Decimals:     18,
			RpcUrls:      []string{"https://polygon-rpc.com/"},
			ExplorerUrls: []string{"https://polygonscan.com/"},
		},
	})
}

func (s *walletSuite) TearDownTest() {
	s.chain.AssertExpectations(s.T())
}

func (s *walletSuite) TestBalanceIsCached() {
	s.chain.On("BalanceAt", mock.Anything, polygon, common.HexToAddress(string(holder))).Return(big.NewInt(25e17), nil).Once()

	bal, err := s.im.Balance(s.ctx, polygon, holder)
	s.Require().NoError(err)
	s.Equal("2.5000 MATIC", bal)

	// checksummed form shares the cache entry
	bal, err = s.im.Balance(s.ctx, polygon, domain.Address(common.HexToAddress(string(holder)).Hex()))
	s.Require().NoError(err)
	s.Equal("2.5000 MATIC", bal)
}

func (s *walletSuite) TestBalanceInvalidAddress() {
	_, err := s.im.Balance(s.ctx, polygon, "0x1234")
	s.ErrorIs(err, domain.ErrInvalidAddress)
}

func (s *walletSuite) TestBalanceReadFailure() {
	s.chain.On("BalanceAt", mock.Anything, polygon, mock.Anything).Return(nil, domain.ErrUnsupportedChain).Once()

	_, err := s.im.Balance(s.ctx, polygon, holder)
	s.ErrorIs(err, domain.ErrUnsupportedChain)
}

func (s *walletSuite) TestStatus() {
	s.Equal(wallet.Status{Balance: wallet.ZeroBalance}, s.im.Status(s.ctx, session.Session{Id: "sid"}))

	s.chain.On("BalanceAt", mock.Anything, polygon, mock.Anything).Return(nil, errors.New("rpc down")).Once()
	s.Equal(wallet.Status{
		Address:        holder,
		ChainId:        1,
		IsConnected:    true,
		IsCorrectChain: false,
		Balance:        wallet.ZeroBalance,
	}, s.im.Status(s.ctx, session.Session{Id: "sid", Address: holder, ChainId: 1}))

	s.chain.On("BalanceAt", mock.Anything, polygon, mock.Anything).Return(big.NewInt(1e18), nil).Once()
	s.Equal(wallet.Status{
		Address:        holder,
		ChainId:        polygon,
		IsConnected:    true,
		IsCorrectChain: true,
		Balance:        "1.0000 MATIC",
	}, s.im.Status(s.ctx, session.Session{Id: "sid", Address: holder, ChainId: polygon}))
}

func (s *walletSuite) TestNetwork() {
	s.Equal(wallet.Network{
		ChainId:   "0x89",
		ChainName: "Polygon",
		NativeCurrency: wallet.NativeCurrency{
			Name:     "MATIC",
			Symbol:   "MATIC",
			Decimals: 18,
		},
		RpcUrls:           []string{"https://polygon-rpc.com/"},
		BlockExplorerUrls: []string{"https://polygonscan.com/"},
	}, s.im.Network())
}

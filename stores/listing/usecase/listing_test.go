package usecase

import (
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/base/ptr"
	"github.com/x-xyz/rentableft/domain"
	"github.com/x-xyz/rentableft/domain/asset"
	"github.com/x-xyz/rentableft/domain/listing"
	"github.com/x-xyz/rentableft/domain/listing/mocks"
	"github.com/x-xyz/rentableft/domain/session"
)

const (
	contract = domain.Address("0x76be3b62873462d2142405439777e971754e8e77")
	seller   = domain.Address("0x5aeda56215b167893e80b4fe645ba6d5bab767de")
)

type listingSuite struct {
	suite.Suite
	ctx  ctx.Ctx
	repo *mocks.ListingRepo
	im   listing.Usecase
	now  time.Time
}

func TestListingSuite(t *testing.T) {
	suite.Run(t, new(listingSuite))
}

func (s *listingSuite) SetupTest() {
	s.ctx = ctx.Background()
	s.repo = &mocks.ListingRepo{}
	s.im = New(&ListingUseCaseCfg{ListingRepo: s.repo})
	s.now = time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	timeNow = func() time.Time { return s.now }
}

func (s *listingSuite) TearDownTest() {
	timeNow = time.Now
	s.repo.AssertExpectations(s.T())
}

func (s *listingSuite) rows() []*listing.Listing {
	return []*listing.Listing{
		{
			NftId:           "0xabc-7",
			TokenId:         "7",
			ContractAddress: "0xabc",
			Title:           "Dragon Sword",
			Description:     ptr.String("sharp"),
			ImageUrl:        "https://img/7.png",
			Category:        "Weapon",
			Price:           150,
			RentPrice:       ptr.Float64(0.5),
			IsRentable:      true,
			IsAvailable:     true,
			SellerAddress:   seller,
			SellerName:      "Alice",
		},
		{
			TokenId:         "8",
			ContractAddress: "0xabc",
			Title:           "Old Shield",
			ImageUrl:        "https://img/8.png",
			Category:        "Armor",
			Price:           0.1,
			IsAvailable:     true,
			SellerAddress:   seller,
		},
		{
			NftId:   "broken",
			TokenId: "not-a-number",
		},
	}
}

func (s *listingSuite) TestListAvailable() {
	filter := listing.Filter{Category: "all"}
	s.repo.On("FindAvailable", s.ctx, filter).Return(s.rows(), nil).Once()

	res, err := s.im.ListAvailable(s.ctx, filter)
	s.Require().NoError(err)
	s.Equal([]asset.Asset{
		{
			Id:              "0xabc-7",
			TokenId:         big.NewInt(7),
			Title:           "Dragon Sword",
			Description:     "sharp",
			Image:           "https://img/7.png",
			Price:           "150",
			RentPrice:       ptr.String("0.5"),
			Owner:           "Alice",
			IsRentable:      true,
			IsAvailable:     true,
			Category:        "Weapon",
			ContractAddress: "0xabc",
		},
		{
			Id:              "0xabc-8",
			TokenId:         big.NewInt(8),
			Title:           "Old Shield",
			Description:     "",
			Image:           "https://img/8.png",
			Price:           "0.1",
			Owner:           string(seller),
			IsAvailable:     true,
			Category:        "Armor",
			ContractAddress: "0xabc",
		},
	}, res)
}

func (s *listingSuite) TestListAvailableRepoError() {
	errDB := errors.New("db down")
	s.repo.On("FindAvailable", s.ctx, listing.Filter{}).Return(nil, errDB).Once()

	_, err := s.im.ListAvailable(s.ctx, listing.Filter{})
	s.ErrorIs(err, errDB)
}

func (s *listingSuite) TestSubscribe() {
	c, cancel := ctx.WithCancel(s.ctx)
	defer cancel()

	s.repo.On("FindAvailable", mock.Anything, listing.Filter{}).Return(s.rows()[:1], nil).Once()
	s.repo.On("FindAvailable", mock.Anything, listing.Filter{}).Return(s.rows()[:2], nil).Once()
	s.repo.On("FindAvailable", mock.Anything, listing.Filter{}).Return([]*listing.Listing{}, nil).Once()
	s.repo.On("Watch", c, mock.Anything).Return(func(c ctx.Ctx, onChange func(ctx.Ctx) error) error {
		// insert then delete
		if err := onChange(c); err != nil {
			return err
		}
		return onChange(c)
	}).Once()

	ch, err := s.im.Subscribe(c, listing.Filter{})
	s.Require().NoError(err)

	sizes := []int{}
	for assets := range ch {
		sizes = append(sizes, len(assets))
	}
	s.Equal([]int{1, 2, 0}, sizes)
}

func (s *listingSuite) TestSubscribeFeedError() {
	s.repo.On("FindAvailable", mock.Anything, listing.Filter{}).Return(s.rows()[:1], nil).Once()
	s.repo.On("Watch", s.ctx, mock.Anything).Return(errors.New("change streams need a replica set")).Once()

	ch, err := s.im.Subscribe(s.ctx, listing.Filter{})
	s.Require().NoError(err)

	first, ok := <-ch
	s.True(ok)
	s.Len(first, 1)
	_, ok = <-ch
	s.False(ok)
}

func (s *listingSuite) TestCreate() {
	sess := session.Session{Id: "sid", Address: seller, ChainId: 137}
	req := &listing.CreateRequest{
		ContractAddress: contract,
		TokenId:         "42",
		Title:           "Flying Carpet",
		Image:           "ipfs://QmCarpet",
		Category:        "Mount",
		Price:           "250.50",
		RentPrice:       ptr.String("2.5"),
	}

	expected := &listing.Listing{
		NftId:           string(contract) + "-42",
		TokenId:         "42",
		ContractAddress: contract,
		Title:           "Flying Carpet",
		ImageUrl:        "ipfs://QmCarpet",
		Category:        "Mount",
		Price:           250.5,
		IsAvailable:     true,
		SellerAddress:   seller,
		SellerName:      string(seller),
		CreatedAt:       s.now,
	}
	s.repo.On("FindOne", s.ctx, expected.NftId).Return(nil, domain.ErrNotFound).Once()
	s.repo.On("Create", s.ctx, expected).Return(nil).Once()

	// rent price is ignored unless rentable
	res, err := s.im.Create(s.ctx, sess, req)
	s.Require().NoError(err)
	s.Equal(expected, res)

	req.IsRentable = true
	req.TokenId = "43"
	rentable := *expected
	rentable.NftId = string(contract) + "-43"
	rentable.TokenId = "43"
	rentable.IsRentable = true
	rentable.RentPrice = ptr.Float64(2.5)
	s.repo.On("FindOne", s.ctx, rentable.NftId).Return(nil, domain.ErrNotFound).Once()
	s.repo.On("Create", s.ctx, &rentable).Return(nil).Once()

	res, err = s.im.Create(s.ctx, sess, req)
	s.Require().NoError(err)
	s.Equal(&rentable, res)
}

func (s *listingSuite) TestCreateRejects() {
	connected := session.Session{Id: "sid", Address: seller}
	valid := func() *listing.CreateRequest {
		return &listing.CreateRequest{
			ContractAddress: contract,
			TokenId:         "1",
			Title:           "t",
			Image:           "i",
			Category:        "Pet",
			Price:           "1",
		}
	}

	_, err := s.im.Create(s.ctx, session.Session{Id: "sid"}, valid())
	s.ErrorIs(err, domain.ErrWalletNotConnected)

	req := valid()
	req.Price = "-3"
	_, err = s.im.Create(s.ctx, connected, req)
	s.ErrorIs(err, domain.ErrBadParamInput)

	req = valid()
	req.TokenId = "x"
	_, err = s.im.Create(s.ctx, connected, req)
	s.ErrorIs(err, domain.ErrBadParamInput)

	req = valid()
	req.IsRentable = true
	_, err = s.im.Create(s.ctx, connected, req)
	s.ErrorIs(err, domain.ErrBadParamInput)

	req.RentPrice = ptr.String("free")
	_, err = s.im.Create(s.ctx, connected, req)
	s.ErrorIs(err, domain.ErrBadParamInput)
}

func (s *listingSuite) TestCreateDuplicate() {
	req := &listing.CreateRequest{
		ContractAddress: contract,
		TokenId:         "1",
		Price:           "1",
	}
	nftId := string(contract) + "-1"

	// already listed
	s.repo.On("FindOne", s.ctx, nftId).Return(&listing.Listing{NftId: nftId, SellerAddress: seller}, nil).Once()
	_, err := s.im.Create(s.ctx, session.Session{Address: seller}, req)
	s.ErrorIs(err, domain.ErrConflict)
	s.repo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)

	// lost a race with another insert
	s.repo.On("FindOne", s.ctx, nftId).Return(nil, domain.ErrNotFound).Once()
	s.repo.On("Create", s.ctx, mock.Anything).Return(domain.ErrConflict).Once()
	_, err = s.im.Create(s.ctx, session.Session{Address: seller}, req)
	s.ErrorIs(err, domain.ErrConflict)
}

func (s *listingSuite) TestCreateLookupError() {
	boom := errors.New("mongo down")
	s.repo.On("FindOne", s.ctx, mock.Anything).Return(nil, boom).Once()

	_, err := s.im.Create(s.ctx, session.Session{Address: seller}, &listing.CreateRequest{
		ContractAddress: contract,
		TokenId:         "1",
		Price:           "1",
	})
	s.ErrorIs(err, boom)
	s.repo.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

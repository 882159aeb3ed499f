package http

import (
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/rentableft/base/validator"
	"github.com/x-xyz/rentableft/domain"
	"github.com/x-xyz/rentableft/domain/asset"
	mAuth "github.com/x-xyz/rentableft/domain/auth/mocks"
	"github.com/x-xyz/rentableft/domain/listing"
	mListing "github.com/x-xyz/rentableft/domain/listing/mocks"
	"github.com/x-xyz/rentableft/domain/session"
	bMiddleware "github.com/x-xyz/rentableft/middleware"
	"github.com/x-xyz/rentableft/stores/auth/delivery/http/middleware"
)

type handlerSuite struct {
	suite.Suite
	e       *echo.Echo
	auth    *mAuth.Usecase
	listing *mListing.Usecase
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupTest() {
	s.auth = &mAuth.Usecase{}
	s.listing = &mListing.Usecase{}

	s.e = echo.New()
	s.e.Validator = validator.NewCustomValidator(validator.New())
	s.e.Use(bMiddleware.InitMiddleware("").AddContext())
	passthrough := func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	New(s.e, s.listing, middleware.New(s.auth), passthrough)
}

func (s *handlerSuite) TearDownTest() {
	s.auth.AssertExpectations(s.T())
	s.listing.AssertExpectations(s.T())
}

func (s *handlerSuite) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func sword() asset.Asset {
	return asset.Asset{
		Id:              "0xabc-7",
		TokenId:         big.NewInt(7),
		Title:           "Dragon Sword",
		Price:           "150",
		Category:        "Weapon",
		ContractAddress: "0xabc",
		IsAvailable:     true,
	}
}

func (s *handlerSuite) TestGetListings() {
	s.listing.On("ListAvailable", mock.Anything, listing.Filter{Search: "sword", Category: "Weapon", Price: listing.PriceBandLow}).
		Return([]asset.Asset{sword()}, nil).Once()

	rec := s.do(http.MethodGet, "/listings?search=sword&category=Weapon&price=low", "", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"title":"Dragon Sword"`)
	s.Contains(rec.Body.String(), `"status":"success"`)
}

func (s *handlerSuite) TestGetListingsBadBand() {
	rec := s.do(http.MethodGet, "/listings?price=cheap", "", nil)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestGetListingsFailure() {
	s.listing.On("ListAvailable", mock.Anything, listing.Filter{}).Return(nil, errors.New("db down")).Once()

	rec := s.do(http.MethodGet, "/listings", "", nil)
	s.Equal(http.StatusInternalServerError, rec.Code)
	s.Contains(rec.Body.String(), `"status":"fail"`)
}

func (s *handlerSuite) TestStream() {
	ch := make(chan []asset.Asset, 2)
	ch <- []asset.Asset{sword()}
	ch <- []asset.Asset{}
	close(ch)
	s.listing.On("Subscribe", mock.Anything, listing.Filter{}).Return((<-chan []asset.Asset)(ch), nil).Once()

	rec := s.do(http.MethodGet, "/listings/stream", "", nil)
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("text/event-stream", rec.Header().Get(echo.HeaderContentType))

	events := strings.Split(strings.TrimSpace(rec.Body.String()), "\n\n")
	s.Require().Len(events, 2)
	s.True(strings.HasPrefix(events[0], "event: listings\ndata: {"))
	s.Contains(events[0], `"Dragon Sword"`)
	s.Equal(`event: listings`+"\n"+`data: {"data":[],"status":"success"}`, events[1])
}

func (s *handlerSuite) TestCreate() {
	sess := session.Session{Id: "sid", Address: "0x5aeda56215b167893e80b4fe645ba6d5bab767de", ChainId: 137}
	s.auth.On("ParseToken", mock.Anything, "good").Return(sess, nil).Once()
	s.listing.On("Create", mock.Anything, sess, mock.MatchedBy(func(req *listing.CreateRequest) bool {
		return req.Title == "Flying Carpet" && req.Price == "250" && req.RentPrice == nil
	})).Return(&listing.Listing{NftId: "0x76be3b62873462d2142405439777e971754e8e77-42"}, nil).Once()

	body := `{"contractAddress":"0x76be3b62873462d2142405439777e971754e8e77","tokenId":"42","title":"Flying Carpet","image":"ipfs://QmCarpet","category":"Mount","price":"250"}`
	rec := s.do(http.MethodPost, "/listings", body, map[string]string{
		echo.HeaderContentType:   echo.MIMEApplicationJSON,
		echo.HeaderAuthorization: "Bearer good",
	})
	s.Equal(http.StatusCreated, rec.Code)
	s.Contains(rec.Body.String(), `"nftId":"0x76be3b62873462d2142405439777e971754e8e77-42"`)
}

func (s *handlerSuite) TestCreateRejects() {
	sess := session.Session{Id: "sid", Address: "0x5aeda56215b167893e80b4fe645ba6d5bab767de"}
	headers := map[string]string{
		echo.HeaderContentType:   echo.MIMEApplicationJSON,
		echo.HeaderAuthorization: "Bearer good",
	}
	s.auth.On("ParseToken", mock.Anything, "good").Return(sess, nil)
	s.auth.On("ParseToken", mock.Anything, "bad").Return(session.Session{}, domain.ErrUnauthorized).Once()

	// unknown category
	rec := s.do(http.MethodPost, "/listings", `{"contractAddress":"0x76be3b62873462d2142405439777e971754e8e77","tokenId":"1","title":"t","image":"i","category":"Spaceship","price":"1"}`, headers)
	s.Equal(http.StatusBadRequest, rec.Code)

	// bad address
	rec = s.do(http.MethodPost, "/listings", `{"contractAddress":"0x123","tokenId":"1","title":"t","image":"i","category":"Pet","price":"1"}`, headers)
	s.Equal(http.StatusBadRequest, rec.Code)

	// duplicate
	s.listing.On("Create", mock.Anything, sess, mock.Anything).Return(nil, domain.ErrConflict).Once()
	rec = s.do(http.MethodPost, "/listings", `{"contractAddress":"0x76be3b62873462d2142405439777e971754e8e77","tokenId":"1","title":"t","image":"i","category":"Pet","price":"1"}`, headers)
	s.Equal(http.StatusConflict, rec.Code)

	rec = s.do(http.MethodPost, "/listings", `{}`, map[string]string{
		echo.HeaderContentType:   echo.MIMEApplicationJSON,
		echo.HeaderAuthorization: "Bearer bad",
	})
	s.Equal(http.StatusUnauthorized, rec.Code)
}

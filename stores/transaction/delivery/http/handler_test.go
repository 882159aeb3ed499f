package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/rentableft/base/validator"
	mAuth "github.com/x-xyz/rentableft/domain/auth/mocks"
	"github.com/x-xyz/rentableft/domain/session"
	bMiddleware "github.com/x-xyz/rentableft/middleware"
	"github.com/x-xyz/rentableft/stores/auth/delivery/http/middleware"
	"github.com/x-xyz/rentableft/stores/transaction/usecase"
)

type handlerSuite struct {
	suite.Suite
	e    *echo.Echo
	auth *mAuth.Usecase
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupTest() {
	s.auth = &mAuth.Usecase{}
	s.e = echo.New()
	s.e.Validator = validator.NewCustomValidator(validator.New())
	s.e.Use(bMiddleware.InitMiddleware("").AddContext())
	New(s.e, usecase.New(&usecase.TransactionUseCaseCfg{}), middleware.New(s.auth))

	s.auth.On("ParseToken", mock.Anything, "tok").Return(session.Session{
		Id:      "sid",
		Address: "0x5aeda56215b167893e80b4fe645ba6d5bab767de",
		ChainId: 137,
	}, nil).Maybe()
}

func (s *handlerSuite) post(target, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *handlerSuite) TestBuy() {
	rec := s.post("/transactions/buy", `{"assetId":"0xabc-7","price":"150"}`)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Successfully purchased NFT for 150 MATIC!")

	rec = s.post("/transactions/buy", `{"assetId":"0xabc-7","price":"-1"}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestRent() {
	rec := s.post("/transactions/rent", `{"assetId":"0xabc-7","rentPrice":"2.5","days":2}`)
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), "Successfully rented NFT for 5.0000 MATIC for 2 days!")

	rec = s.post("/transactions/rent", `{"assetId":"0xabc-7","rentPrice":"2.5","days":-1}`)
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestRequiresToken() {
	req := httptest.NewRequest(http.MethodPost, "/transactions/buy", strings.NewReader(`{}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	s.NotEqual(http.StatusOK, rec.Code)
}

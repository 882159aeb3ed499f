package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	mAuth "github.com/x-xyz/rentableft/domain/auth/mocks"
	"github.com/x-xyz/rentableft/domain/scan"
	mScan "github.com/x-xyz/rentableft/domain/scan/mocks"
	"github.com/x-xyz/rentableft/domain/session"
	bMiddleware "github.com/x-xyz/rentableft/middleware"
	"github.com/x-xyz/rentableft/stores/auth/delivery/http/middleware"
)

type handlerSuite struct {
	suite.Suite
	e    *echo.Echo
	scan *mScan.UseCase
	sess session.Session
}

func TestHandlerSuite(t *testing.T) {
	suite.Run(t, new(handlerSuite))
}

func (s *handlerSuite) SetupTest() {
	s.sess = session.Session{Id: "sid", Address: "0x5aeda56215b167893e80b4fe645ba6d5bab767de", ChainId: 137}
	auth := &mAuth.Usecase{}
	auth.On("ParseToken", mock.Anything, "tok").Return(s.sess, nil)

	s.scan = &mScan.UseCase{}
	s.e = echo.New()
	s.e.Use(bMiddleware.InitMiddleware("").AddContext())
	New(s.e, s.scan, middleware.New(auth))
}

func (s *handlerSuite) TearDownTest() {
	s.scan.AssertExpectations(s.T())
}

func (s *handlerSuite) do(method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set(echo.HeaderAuthorization, "Bearer tok")
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func (s *handlerSuite) TestSnapshot() {
	s.scan.On("Snapshot", "sid").Return(scan.Snapshot{State: scan.StateScanning, Generation: 2}).Once()

	rec := s.do(http.MethodGet, "/scan")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"state":"scanning"`)
}

func (s *handlerSuite) TestWait() {
	s.scan.On("Run", mock.Anything, s.sess).Return(scan.Snapshot{State: scan.StatePopulated, Generation: 3}).Once()

	rec := s.do(http.MethodGet, "/scan?wait=true")
	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"state":"populated"`)

	rec = s.do(http.MethodGet, "/scan?wait=maybe")
	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *handlerSuite) TestTrigger() {
	s.scan.On("Trigger", mock.Anything, s.sess).Return(scan.Snapshot{State: scan.StateScanning, Generation: 4}).Once()

	rec := s.do(http.MethodPost, "/scan")
	s.Equal(http.StatusAccepted, rec.Code)
	s.Contains(rec.Body.String(), `"generation":4`)
}

func (s *handlerSuite) TestRequiresToken() {
	req := httptest.NewRequest(http.MethodGet, "/scan", nil)
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	s.NotEqual(http.StatusOK, rec.Code)
}

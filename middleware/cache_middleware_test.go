package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/domain/keys"
	"github.com/x-xyz/rentableft/service/cache"
	"github.com/x-xyz/rentableft/service/cache/provider/primitive"
)

type cacheMiddlewareSuite struct {
	suite.Suite
	e     *echo.Echo
	cache cache.Service
}

func TestCacheMiddleware(t *testing.T) {
	suite.Run(t, new(cacheMiddlewareSuite))
}

func (s *cacheMiddlewareSuite) SetupTest() {
	s.e = echo.New()
	s.cache = cache.New(cache.ServiceConfig{
		Ttl:   30 * time.Second,
		Pfx:   keys.PfxHttpCache,
		Cache: primitive.NewPrimitive("http", 1),
	})
}

func (s *cacheMiddlewareSuite) serve(target string, h echo.HandlerFunc) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	c := s.e.NewContext(httptest.NewRequest(http.MethodGet, target, nil), rec)
	c.Set("ctx", ctx.Background())
	s.Require().NoError(CacheHttp(s.cache)(h)(c))
	return rec
}

func (s *cacheMiddlewareSuite) TestHit() {
	rec := s.serve("/listings?category=Pet&price=low", func(c echo.Context) error {
		return c.String(http.StatusOK, "first")
	})
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("first", rec.Body.String())

	// same query in another order
	rec = s.serve("/listings?price=low&category=Pet", func(c echo.Context) error {
		return c.String(http.StatusOK, "second")
	})
	s.Equal(http.StatusOK, rec.Code)
	s.Equal("first", rec.Body.String())
}

func (s *cacheMiddlewareSuite) TestErrorsAreNotCached() {
	rec := s.serve("/wallet/network", func(c echo.Context) error {
		return c.String(http.StatusBadGateway, "down")
	})
	s.Equal(http.StatusBadGateway, rec.Code)

	rec = s.serve("/wallet/network", func(c echo.Context) error {
		return c.String(http.StatusOK, "up")
	})
	s.Equal("up", rec.Body.String())
}

package middleware

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/base/delivery"
	"github.com/x-xyz/rentableft/base/log"
	"github.com/x-xyz/rentableft/base/metrics"
	"github.com/x-xyz/rentableft/base/validator"
	"github.com/x-xyz/rentableft/domain"
)

// GoMiddleware holds the app wide echo middlewares
type GoMiddleware struct {
	allowOrigin string
}

func InitMiddleware(allowOrigin string) *GoMiddleware {
	if allowOrigin == "" {
		allowOrigin = "*"
	}
	return &GoMiddleware{allowOrigin: allowOrigin}
}

// CORS answers preflights and allows the configured origin
func (m *GoMiddleware) CORS() echo.MiddlewareFunc {
	return echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{m.allowOrigin},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	})
}

// AddContext puts a request scoped ctx.Ctx under "ctx"
func (m *GoMiddleware) AddContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			parent := ctx.From(c.Request().Context())
			c.Set("ctx", ctx.WithValue(parent, "requestID", c.Response().Header().Get(echo.HeaderXRequestID)))
			return next(c)
		}
	}
}

// ResponseLogger logs response for every request
func (m *GoMiddleware) ResponseLogger() echo.MiddlewareFunc {
	met := metrics.New("http")
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			defer met.BumpTime("request.time", "method", c.Request().Method, "path", c.Path()).End()

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			req := c.Request()
			res := c.Response()
			fields := log.Fields{
				"ms":         time.Since(start).Seconds() * 1000,
				"httpStatus": res.Status,
				"host":       req.Host,
				"remoteIP":   c.RealIP(),
				"uri":        req.URL.Path,
				"httpMethod": req.Method,
				"size":       res.Size,
				"userAgent":  req.UserAgent(),
				"referer":    req.Header.Get("Referer"),
			}
			if res.Status >= 400 {
				fields["nextErr"] = err
			}

			logger, ok := c.Get("ctx").(ctx.Ctx)
			if !ok {
				logger = ctx.Background()
			}
			logger.WithFields(fields).Info("response")
			return nil
		}
	}
}

// IsValidAddress rejects requests whose path param is not a hex address
func IsValidAddress(param string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if !validator.IsValidAddress(c.Param(param)) {
				return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrInvalidAddress)
			}
			return next(c)
		}
	}
}

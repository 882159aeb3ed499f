package middleware

import (
	"bytes"
	"hash/fnv"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/service/cache"
)

// Response is what CacheHttp stores per url
type Response struct {
	Value  []byte
	Header http.Header
}

type bodyDumpResponseWriter struct {
	statusCode int
	io.Writer
	http.ResponseWriter
}

func (w *bodyDumpResponseWriter) WriteHeader(code int) {
	w.statusCode = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyDumpResponseWriter) Write(b []byte) (int, error) {
	return w.Writer.Write(b)
}

func (w *bodyDumpResponseWriter) Flush() {
	w.ResponseWriter.(http.Flusher).Flush()
}

// cacheKey is stable under query parameter reordering
func cacheKey(u *url.URL) string {
	params := u.Query()
	for _, values := range params {
		sort.Strings(values)
	}
	hash := fnv.New64a()
	hash.Write([]byte(u.Path + "?" + params.Encode()))
	return strconv.FormatUint(hash.Sum64(), 36)
}

// CacheHttp serves successful GET responses from cacheService until they expire
func CacheHttp(cacheService cache.Service) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Get("ctx").(ctx.Ctx)
			key := cacheKey(c.Request().URL)

			cached := Response{}
			err := cacheService.Get(ctx, key, &cached)
			if err == nil {
				for k, v := range cached.Header {
					c.Response().Header().Set(k, strings.Join(v, ","))
				}
				c.Response().WriteHeader(http.StatusOK)
				_, err := c.Response().Write(cached.Value)
				return err
			} else if err != cache.ErrNotFound {
				ctx.WithField("err", err).Warn("cacheService.Get failed")
			}

			body := new(bytes.Buffer)
			writer := &bodyDumpResponseWriter{
				statusCode:     http.StatusOK,
				Writer:         io.MultiWriter(c.Response().Writer, body),
				ResponseWriter: c.Response().Writer,
			}
			c.Response().Writer = writer
			if err := next(c); err != nil {
				c.Error(err)
			}

			if writer.statusCode < 400 {
				res := Response{
					Value:  body.Bytes(),
					Header: writer.Header(),
				}
				if err := cacheService.Set(ctx, key, res); err != nil {
					ctx.WithField("err", err).Warn("cacheService.Set failed")
				}
			}
			return nil
		}
	}
}

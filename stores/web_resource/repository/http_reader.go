package repository

import (
	"io"
	"net/http"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/base/log"
	"github.com/x-xyz/rentableft/domain"
)

// maxBodySize caps metadata documents; anything larger is not a metadata json
const maxBodySize = 8 << 20

type httpReaderRepo struct {
	client     *http.Client
	ctxTimeout time.Duration
	headers    map[string]string
}

// NewHttpReaderRepo returns a reader for http(s) urls. timeout <= 0 applies no deadline of its own.
func NewHttpReaderRepo(client *http.Client, timeout time.Duration, headers map[string]string) domain.WebResourceReaderRepository {
	return &httpReaderRepo{client: client, ctxTimeout: timeout, headers: headers}
}

func (r *httpReaderRepo) Get(c bCtx.Ctx, url string) ([]byte, error) {
	ctx, cancel := bCtx.WithTimeout(c, r.ctxTimeout)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	for k, v := range r.headers {
		req.Header.Set(k, v)
	}
	resp, err := r.client.Do(req)
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Warn("failed with request")
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ctx.WithFields(log.Fields{
			"url":        url,
			"statusCode": resp.StatusCode,
		}).Warn("resp.StatusCode != 200")
		return nil, xerrors.Errorf("get %s: status %d", url, resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		ctx.WithFields(log.Fields{
			"url": url,
			"err": err,
		}).Warn("failed to read body")
		return nil, err
	}
	return body, nil
}

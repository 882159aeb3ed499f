package repository

import (
	"encoding/base64"
	"net/url"
	"strings"

	"golang.org/x/xerrors"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/domain"
)

const dataUriSchema = "data:"

type dataUriReaderRepo struct {
}

// NewDataUriReaderRepo decodes on-chain data: uris (data:[<mediatype>][;base64],<data>)
func NewDataUriReaderRepo() domain.WebResourceReaderRepository {
	return &dataUriReaderRepo{}
}

func (r *dataUriReaderRepo) Get(_ ctx.Ctx, uri string) ([]byte, error) {
	if !strings.HasPrefix(uri, dataUriSchema) {
		return nil, xerrors.Errorf("invalid data uri")
	}
	uriParts := strings.SplitN(strings.TrimPrefix(uri, dataUriSchema), ",", 2)
	if len(uriParts) < 2 || len(uriParts[1]) == 0 {
		return nil, xerrors.Errorf("no data part provided")
	}

	if strings.HasSuffix(uriParts[0], ";base64") {
		return base64.StdEncoding.DecodeString(uriParts[1])
	}
	if strings.Contains(uriParts[1], "%") {
		if unescaped, err := url.PathUnescape(uriParts[1]); err == nil {
			return []byte(unescaped), nil
		}
	}
	// treat as plain text
	return []byte(uriParts[1]), nil
}

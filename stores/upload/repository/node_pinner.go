package repository

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"time"

	ipfsapi "github.com/ipfs/go-ipfs-api"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/base/log"
	"github.com/x-xyz/rentableft/domain/upload"
)

type nodePinner struct {
	shell *ipfsapi.Shell
}

// NewNodePinner pins through the http api of an ipfs node, e.g. localhost:5001
func NewNodePinner(url string, timeout time.Duration) upload.Pinner {
	return &nodePinner{
		shell: ipfsapi.NewShellWithClient(url, &http.Client{Timeout: timeout}),
	}
}

func (p *nodePinner) Pin(c ctx.Ctx, file io.Reader, name string) (string, error) {
	cid, err := p.shell.Add(file, ipfsapi.Pin(true))
	if err != nil {
		c.WithFields(log.Fields{
			"name": name,
			"err":  err,
		}).Error("shell.Add failed")
		return "", err
	}
	return cid, nil
}

func (p *nodePinner) PinJson(c ctx.Ctx, value interface{}, name string) (string, error) {
	data, err := json.Marshal(value)
	if err != nil {
		c.WithField("err", err).Error("json.Marshal failed")
		return "", err
	}
	return p.Pin(c, bytes.NewReader(data), name)
}

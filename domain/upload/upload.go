package upload

import (
	"io"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/domain/metadata"
)

type Provider string

const (
	ProviderPinata Provider = "pinata"
	ProviderNode   Provider = "node"
)

// Result locates pinned content
type Result struct {
	Cid string `json:"cid"`
	// Uri is ipfs://<cid>
	Uri string `json:"uri"`
	// Url is Uri through the first gateway
	Url string `json:"url"`
}

// Pinner stores content on IPFS and returns its CID
type Pinner interface {
	Pin(c ctx.Ctx, file io.Reader, name string) (string, error)
	PinJson(c ctx.Ctx, value interface{}, name string) (string, error)
}

type Usecase interface {
	// UploadFile accepts images only
	UploadFile(c ctx.Ctx, file io.Reader, name string) (*Result, error)
	UploadMetadata(c ctx.Ctx, record *metadata.Record) (*Result, error)
}

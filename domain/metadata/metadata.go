package metadata

import (
	"strings"

	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/domain/asset"
)

const (
	// DefaultName is used when a fetched document has no usable name
	DefaultName = "Unnamed NFT"
	// SentinelName marks a record that could not be fetched or parsed at all
	SentinelName = "Unknown NFT"

	IpfsScheme = "ipfs://"
)

var (
	DefaultGateways = []string{
		"https://ipfs.io/ipfs/",
		"https://gateway.pinata.cloud/ipfs/",
		"https://cloudflare-ipfs.com/ipfs/",
	}
)

// Record is the canonical form of a token metadata document
type Record struct {
	Name         string           `json:"name"`
	Description  string           `json:"description"`
	Image        string           `json:"image"`
	AnimationUrl string           `json:"animation_url,omitempty"`
	ExternalUrl  string           `json:"external_url,omitempty"`
	Attributes   asset.Attributes `json:"attributes,omitempty"`
}

// Sentinel is substituted by callers when resolution fails
func Sentinel() *Record {
	return &Record{Name: SentinelName}
}

type Resolver interface {
	Resolve(c ctx.Ctx, pointer string) (*Record, error)
	// NormalizeURL rewrites a content-addressed pointer into a gateway url
	NormalizeURL(pointer string) string
}

// IsContentAddressed reports whether pointer is an ipfs:// locator or a bare CID
func IsContentAddressed(pointer string) bool {
	return strings.HasPrefix(pointer, IpfsScheme) ||
		strings.HasPrefix(pointer, "Qm") ||
		strings.HasPrefix(pointer, "bafy")
}

// NormalizeURL rewrites content-addressed pointers with the first gateway and
// returns everything else unchanged. The ipfs:// prefix is stripped once.
func NormalizeURL(pointer string, gateways []string) string {
	if !IsContentAddressed(pointer) || len(gateways) == 0 {
		return pointer
	}
	return gateways[0] + strings.TrimPrefix(pointer, IpfsScheme)
}

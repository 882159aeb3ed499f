package pinata

import (
	"errors"
	"time"

	"github.com/x-xyz/rentableft/domain/upload"
)

var (
	ErrRequestFailed = errors.New("request failed")
)

const (
	DefaultEndpoint = "https://api.pinata.cloud"
	defaultTimeout  = 60 * time.Second
)

type PinataMetadata struct {
	Name string `json:"name,omitempty"`
	// can only store string, bool, int
	KeyValues map[string]interface{} `json:"keyvalues,omitempty"`
}

type PinataOptions struct {
	CidVersion CidVersion `json:"cidVersion"`
}

type CidVersion uint8

const (
	CidVersion_0 CidVersion = 0
	CidVersion_1 CidVersion = 1
)

type pinJsonBody struct {
	Metadata      *PinataMetadata `json:"pinataMetadata,omitempty"`
	Options       *PinataOptions  `json:"pinataOptions,omitempty"`
	PinataContent interface{}     `json:"pinataContent"`
}

type Config struct {
	ApiKey    string `mapstructure:"apiKey"`
	ApiSecret string `mapstructure:"apiSecret"`
	// Endpoint defaults to DefaultEndpoint
	Endpoint   string        `mapstructure:"endpoint"`
	CidVersion CidVersion    `mapstructure:"cidVersion"`
	Timeout    time.Duration `mapstructure:"timeout"`
	// KeyValues are attached to every pin
	KeyValues map[string]interface{} `mapstructure:"keyValues"`
}

// Service is a pinata backed upload.Pinner
type Service interface {
	upload.Pinner
}

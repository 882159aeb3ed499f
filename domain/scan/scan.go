package scan

import (
	"github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/domain"
	"github.com/x-xyz/rentableft/domain/asset"
	"github.com/x-xyz/rentableft/domain/session"
)

type State string

const (
	StateIdle      State = "idle"
	StateScanning  State = "scanning"
	StatePopulated State = "populated"
	StateFailed    State = "failed"
)

type Config struct {
	ChainId domain.ChainId `mapstructure:"chainId"`
	// Contracts is the ordered allow-list, only the first MaxContracts are scanned
	Contracts           []domain.Address `mapstructure:"contracts"`
	MaxContracts        int              `mapstructure:"maxContracts"`
	MaxItemsPerContract uint64           `mapstructure:"maxItemsPerContract"`
	PlaceholderPrice    string           `mapstructure:"placeholderPrice"`
	Category            string           `mapstructure:"category"`
}

// Result is the ordered outcome of one pass
type Result struct {
	Holder domain.Address `json:"holder"`
	Assets []asset.Asset  `json:"assets"`
}

type Snapshot struct {
	State      State          `json:"state"`
	Generation uint64         `json:"generation"`
	Holder     domain.Address `json:"holder"`
	Assets     []asset.Asset  `json:"assets"`
	Error      string         `json:"error,omitempty"`
}

type Orchestrator interface {
	// Scan runs one sequential pass over the allow-list for the session's holder.
	// It fails only with ErrScanFailure; per-item failures are skipped.
	Scan(c ctx.Ctx, s session.Session) (*Result, error)
}

// UseCase keeps one scan tracker per session id
type UseCase interface {
	// Trigger starts a background pass and returns the snapshot right after it was scheduled
	Trigger(c ctx.Ctx, s session.Session) Snapshot
	// Run performs the pass synchronously
	Run(c ctx.Ctx, s session.Session) Snapshot
	Snapshot(sessionId string) Snapshot
	// Reset disconnects the session, any in-flight pass is discarded
	Reset(sessionId string)
}

package usecase

import (
	"errors"
	"sync"
	"time"

	"golang.org/x/xerrors"

	bCtx "github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/base/log"
	"github.com/x-xyz/rentableft/domain"
	"github.com/x-xyz/rentableft/domain/asset"
	"github.com/x-xyz/rentableft/domain/scan"
	"github.com/x-xyz/rentableft/domain/session"
)

// Scheduler runs task in the background or reports why it could not
type Scheduler func(task func()) error

// Tracker is the per session scan state machine: idle -> scanning -> populated | failed.
// Every Trigger/Run/Reset bumps the generation; a pass only lands if its
// generation is still the latest one when it completes.
type Tracker struct {
	orchestrator scan.Orchestrator
	schedule     Scheduler

	mu         sync.Mutex
	generation uint64
	state      scan.State
	holder     domain.Address
	assets     []asset.Asset
	errMsg     string

	// settled and settledHolder are restored when a pass is cancelled
	settled       scan.State
	settledHolder domain.Address
	// touched is the last time the tracker was used, for idle eviction
	touched       time.Time
}

func NewTracker(orchestrator scan.Orchestrator, schedule Scheduler) *Tracker {
	return &Tracker{
		orchestrator: orchestrator,
		schedule:     schedule,
		state:        scan.StateIdle,
		settled:      scan.StateIdle,
		assets:       []asset.Asset{},
		touched:      timeNow(),
	}
}

// Trigger starts a pass for s in the background
func (t *Tracker) Trigger(c bCtx.Ctx, s session.Session) scan.Snapshot {
	gen, done := t.begin(s)
	if done {
		return t.Snapshot()
	}

	// the pass outlives the request that triggered it
	detached := bCtx.Detach(c)
	task := func() {
		defer func() {
			if r := recover(); r != nil {
				t.apply(detached, gen, nil, xerrors.Errorf("panic %v: %w", r, domain.ErrScanFailure))
			}
		}()
		res, err := t.orchestrator.Scan(detached, s)
		t.apply(detached, gen, res, err)
	}
	if err := t.schedule(task); err != nil {
		c.WithField("err", err).Error("failed to schedule scan")
		t.apply(c, gen, nil, xerrors.Errorf("schedule: %v: %w", err, domain.ErrScanFailure))
	}
	return t.Snapshot()
}

// Run performs the pass on the caller's goroutine
func (t *Tracker) Run(c bCtx.Ctx, s session.Session) scan.Snapshot {
	gen, done := t.begin(s)
	if done {
		return t.Snapshot()
	}
	res, err := t.orchestrator.Scan(c, s)
	if c.Err() != nil {
		t.abandon(c, gen)
		return t.Snapshot()
	}
	t.apply(c, gen, res, err)
	return t.Snapshot()
}

func (t *Tracker) Snapshot() scan.Snapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.touched = timeNow()
	assets := make([]asset.Asset, len(t.assets))
	copy(assets, t.assets)
	return scan.Snapshot{
		State:      t.state,
		Generation: t.generation,
		Holder:     t.holder,
		Assets:     assets,
		Error:      t.errMsg,
	}
}

// Reset returns to idle; in-flight passes become stale
func (t *Tracker) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.generation++
	t.state = scan.StateIdle
	t.settled = scan.StateIdle
	t.settledHolder = ""
	t.holder = ""
	t.assets = []asset.Asset{}
	t.errMsg = ""
}

// begin opens a new generation. done is true when no pass is needed.
func (t *Tracker) begin(s session.Session) (gen uint64, done bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.generation++
	t.touched = timeNow()
	if t.state != scan.StateScanning {
		t.settled = t.state
		t.settledHolder = t.holder
	}
	t.holder = s.Address
	t.errMsg = ""
	if !s.IsConnected() {
		t.state = scan.StatePopulated
		t.settled = scan.StatePopulated
		t.settledHolder = s.Address
		t.assets = []asset.Asset{}
		return t.generation, true
	}
	// previous assets stay visible until the pass lands
	t.state = scan.StateScanning
	return t.generation, false
}

// abandon undoes begin for a pass that was cancelled, keeping the previous results
func (t *Tracker) abandon(c bCtx.Ctx, gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.generation {
		return
	}
	c.WithField("generation", gen).Info("scan cancelled, keep previous results")
	if t.holder != t.settledHolder {
		// results of another holder are never shown for this one
		t.state = scan.StateIdle
		t.assets = []asset.Asset{}
		return
	}
	t.state = t.settled
}

// idleSince reports whether the tracker was last used before deadline
func (t *Tracker) idleSince(deadline time.Time) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state != scan.StateScanning && t.touched.Before(deadline)
}

func (t *Tracker) apply(c bCtx.Ctx, gen uint64, res *scan.Result, err error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.generation {
		c.WithFields(log.Fields{
			"generation": gen,
			"latest":     t.generation,
		}).Info("discard stale scan")
		return
	}
	if err != nil {
		t.state = scan.StateFailed
		t.settled = scan.StateFailed
		t.settledHolder = t.holder
		t.assets = []asset.Asset{}
		t.errMsg = err.Error()
		if errors.Is(err, domain.ErrScanFailure) {
			t.errMsg = domain.ErrScanFailure.Error()
		}
		return
	}
	t.state = scan.StatePopulated
	t.settled = scan.StatePopulated
	t.settledHolder = t.holder
	t.assets = res.Assets
	if t.assets == nil {
		t.assets = []asset.Asset{}
	}
}

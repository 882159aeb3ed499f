package usecase

import (
	"sync"
	"time"

	"github.com/viney-shih/goroutines"

	bCtx "github.com/x-xyz/rentableft/base/ctx"
	"github.com/x-xyz/rentableft/domain/asset"
	"github.com/x-xyz/rentableft/domain/scan"
	"github.com/x-xyz/rentableft/domain/session"
)

const sweepInterval = time.Minute

var timeNow = time.Now

type RegistryCfg struct {
	Orchestrator scan.Orchestrator
	WorkerPool   *goroutines.Pool
	// ScheduleTimeout bounds the wait for a free worker
	ScheduleTimeout time.Duration
	// IdleTtl evicts trackers nobody touched for that long, 24h when unset
	IdleTtl time.Duration
}

type registry struct {
	orchestrator scan.Orchestrator
	schedule     Scheduler

	idleTtl time.Duration

	mu        sync.Mutex
	trackers  map[string]*Tracker
	lastSweep time.Time
}

func NewRegistry(cfg *RegistryCfg) scan.UseCase {
	pool := cfg.WorkerPool
	timeout := cfg.ScheduleTimeout
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	idleTtl := cfg.IdleTtl
	if idleTtl <= 0 {
		idleTtl = 24 * time.Hour
	}
	return &registry{
		idleTtl:      idleTtl,
		lastSweep:    timeNow(),
		orchestrator: cfg.Orchestrator,
		schedule: func(task func()) error {
			return pool.ScheduleWithTimeout(timeout, task)
		},
		trackers: make(map[string]*Tracker),
	}
}

func (r *registry) Trigger(c bCtx.Ctx, s session.Session) scan.Snapshot {
	return r.tracker(s.Id, true).Trigger(bCtx.WithValue(c, "sessionId", s.Id), s)
}

func (r *registry) Run(c bCtx.Ctx, s session.Session) scan.Snapshot {
	return r.tracker(s.Id, true).Run(bCtx.WithValue(c, "sessionId", s.Id), s)
}

func (r *registry) Snapshot(sessionId string) scan.Snapshot {
	if t := r.tracker(sessionId, false); t != nil {
		return t.Snapshot()
	}
	return scan.Snapshot{State: scan.StateIdle, Assets: []asset.Asset{}}
}

// Reset drops the session's tracker, in-flight passes land on the detached tracker
func (r *registry) Reset(sessionId string) {
	r.mu.Lock()
	t, ok := r.trackers[sessionId]
	delete(r.trackers, sessionId)
	r.mu.Unlock()
	if ok {
		t.Reset()
	}
}

func (r *registry) tracker(sessionId string, create bool) *Tracker {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.trackers[sessionId]
	if !ok && create {
		r.sweep()
		t = NewTracker(r.orchestrator, r.schedule)
		r.trackers[sessionId] = t
	}
	return t
}

// sweep evicts idle trackers, at most once per sweepInterval. Caller holds r.mu.
func (r *registry) sweep() {
	now := timeNow()
	interval := r.idleTtl
	if interval > sweepInterval {
		interval = sweepInterval
	}
	if now.Sub(r.lastSweep) < interval {
		return
	}
	r.lastSweep = now
	deadline := now.Add(-r.idleTtl)
	for id, t := range r.trackers {
		if t.idleSince(deadline) {
			delete(r.trackers, id)
		}
	}
}

func (r *registry) size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.trackers)
}

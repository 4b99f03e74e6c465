package main

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hansschaa/JSoko-2.0/board"
	"github.com/hansschaa/JSoko-2.0/sokoconfig"
	"github.com/hansschaa/JSoko-2.0/solver"
	"github.com/hansschaa/JSoko-2.0/solver/levelcheck"
)

type jobStatus string

const (
	jobQueued    jobStatus = "queued"
	jobRunning   jobStatus = "running"
	jobDone      jobStatus = "done"
	jobError     jobStatus = "error"
	jobCancelled jobStatus = "cancelled"
)

// job tracks one async solve request: the teacher has no equivalent (its
// AI search runs synchronously inline per-tick), so this shape is grounded
// on search_backlog.go's worker/result-slot pattern instead, adapted from a
// backlog of board evaluations to a single-job poll/cancel lifecycle.
type job struct {
	mu       sync.Mutex
	id       string
	kind     string
	status   jobStatus
	solution *solver.Solution
	errMsg   string
	cancel   context.CancelFunc
}

func (j *job) snapshot() jobView {
	j.mu.Lock()
	defer j.mu.Unlock()
	v := jobView{ID: j.id, Kind: j.kind, Status: string(j.status), Error: j.errMsg}
	if j.solution != nil {
		v.Name = j.solution.Name
		v.LURD = j.solution.LURD
	}
	return v
}

func (j *job) setResult(sol *solver.Solution, err error) {
	j.mu.Lock()
	defer j.mu.Unlock()
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, solver.ErrCancelled) {
			j.status = jobCancelled
		} else {
			j.status = jobError
			j.errMsg = err.Error()
		}
		return
	}
	j.status = jobDone
	j.solution = sol
}

func (j *job) setRunning() {
	j.mu.Lock()
	j.status = jobRunning
	j.mu.Unlock()
}

type jobView struct {
	ID     string `json:"id"`
	Kind   string `json:"kind"`
	Status string `json:"status"`
	Name   string `json:"name,omitempty"`
	LURD   string `json:"lurd,omitempty"`
	Error  string `json:"error,omitempty"`
}

// jobManager owns every in-flight and completed job, keyed by a
// monotonically increasing id, guarded by a mutex the way the teacher's
// Hub guards its client set.
type jobManager struct {
	mu      sync.Mutex
	jobs    map[string]*job
	nextID  atomic.Int64
	hub     *Hub
}

func newJobManager(hub *Hub) *jobManager {
	return &jobManager{jobs: make(map[string]*job), hub: hub}
}

func (m *jobManager) launch(ctx context.Context, b *board.Board, kind string) *job {
	id := strconv.FormatInt(m.nextID.Add(1), 10)
	jobCtx, cancel := context.WithCancel(ctx)
	j := &job{id: id, kind: kind, status: jobQueued, cancel: cancel}

	m.mu.Lock()
	m.jobs[id] = j
	m.mu.Unlock()

	go m.run(jobCtx, j, b)
	return j
}

func (m *jobManager) run(ctx context.Context, j *job, b *board.Board) {
	j.setRunning()
	m.hub.broadcastJob <- jobPayload{JobID: j.id, Status: string(jobRunning)}

	progress := func(msg string) {
		select {
		case m.hub.broadcastProgress <- progressPayload{JobID: j.id, Message: msg}:
		default:
		}
	}

	var sol *solver.Solution
	var err error
	switch j.kind {
	case "b-type":
		if vErr := levelcheck.ValidateBType(b); vErr != nil {
			err = vErr
		} else {
			cfg := sokoconfig.Get()
			sol, err = solver.SolveBType(ctx, b, solver.BTypeOptions{
				WorkerCount:  cfg.BTypeWorkerCount,
				QuiesceSleep: time.Duration(cfg.QuiesceSleepMs) * time.Millisecond,
				Progress:     progress,
			})
		}
	default:
		sol, err = solver.SolveMovesEqualsPushes(ctx, b, progress)
	}

	j.setResult(sol, err)
	m.hub.broadcastJob <- jobPayload{JobID: j.id, Status: j.snapshot().Status}
}

func (m *jobManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.jobs)
}

func (m *jobManager) get(id string) (*job, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	j, ok := m.jobs[id]
	return j, ok
}

func (m *jobManager) cancel(id string) bool {
	j, ok := m.get(id)
	if !ok {
		return false
	}
	j.cancel()
	return true
}

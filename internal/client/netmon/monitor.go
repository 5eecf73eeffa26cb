package netmon

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ospolov/fieldsync/internal/models"
	"github.com/ospolov/fieldsync/pkg/api"
)

// Prober is the connectivity check the monitor runs, a subset of the
// API client
type Prober interface {
	Health(ctx context.Context) (*api.HealthResponse, error)
}

// Options tune the monitor. Zero values fall back to the defaults below.
type Options struct {
	// ProbeInterval is how often connectivity is checked
	ProbeInterval time.Duration

	// Stabilization is how long an offline->online transition must hold
	// before restoration callbacks fire. Guards against flapping links
	// triggering a drain per blip.
	Stabilization time.Duration

	// ProbeTimeout bounds a single probe
	ProbeTimeout time.Duration
}

const (
	defaultProbeInterval = 10 * time.Second
	defaultStabilization = 1 * time.Second
	defaultProbeTimeout  = 5 * time.Second
)

// Monitor tracks online/offline transitions by probing the server's
// health endpoint. Restoration callbacks fire exactly once per
// offline->online transition, after the stabilization delay and a
// confirming re-probe.
type Monitor struct {
	prober Prober
	logger *slog.Logger

	probeInterval time.Duration
	stabilization time.Duration
	probeTimeout  time.Duration

	mu       sync.Mutex
	state    models.NetworkState
	restored []func()
}

// NewMonitor creates a network monitor over the given prober
func NewMonitor(prober Prober, logger *slog.Logger, opts Options) *Monitor {
	if opts.ProbeInterval <= 0 {
		opts.ProbeInterval = defaultProbeInterval
	}
	if opts.Stabilization <= 0 {
		opts.Stabilization = defaultStabilization
	}
	if opts.ProbeTimeout <= 0 {
		opts.ProbeTimeout = defaultProbeTimeout
	}

	return &Monitor{
		prober:        prober,
		logger:        logger,
		probeInterval: opts.ProbeInterval,
		stabilization: opts.Stabilization,
		probeTimeout:  opts.ProbeTimeout,
	}
}

// OnRestored registers a callback fired after each confirmed
// offline->online transition
func (m *Monitor) OnRestored(callback func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.restored = append(m.restored, callback)
}

// State returns the current connectivity snapshot
func (m *Monitor) State() models.NetworkState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// Online reports current connectivity
func (m *Monitor) Online() bool {
	return m.State().Online
}

// GoodConnection is an advisory quality predicate for consumers that
// adapt payload size to link quality. It never gates sync correctness.
func (m *Monitor) GoodConnection() bool {
	state := m.State()
	return state.Online && (state.EffectiveType == "4g" || state.DownlinkMbps >= 1.5)
}

// Run probes connectivity until the context is cancelled. The initial
// probe establishes the baseline without firing restoration callbacks.
func (m *Monitor) Run(ctx context.Context) {
	m.setState(m.probe(ctx))

	ticker := time.NewTicker(m.probeInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			m.Check(ctx)
		}
	}
}

// Check performs one probe cycle and fires restoration callbacks on a
// confirmed offline->online transition. Exported so composition roots
// without a Run loop can drive the monitor themselves.
func (m *Monitor) Check(ctx context.Context) {
	state := m.probe(ctx)

	m.mu.Lock()
	wasOnline := m.state.Online
	m.mu.Unlock()

	switch {
	case state.Online == wasOnline:
		m.setState(state)
	case !state.Online:
		m.setState(state)
		m.logger.Info("network went offline")
	default:
		// Offline->online: hold for the stabilization window, then
		// confirm before announcing restoration
		select {
		case <-ctx.Done():
			return
		case <-time.After(m.stabilization):
		}

		confirm := m.probe(ctx)
		m.setState(confirm)
		if !confirm.Online {
			m.logger.Debug("network restoration did not stabilize")
			return
		}

		m.logger.Info("network restored",
			"effective_type", confirm.EffectiveType,
			"downlink_mbps", confirm.DownlinkMbps)
		m.fireRestored()
	}
}

// probe runs one health check and derives quality hints from its latency
func (m *Monitor) probe(ctx context.Context) models.NetworkState {
	probeCtx, cancel := context.WithTimeout(ctx, m.probeTimeout)
	defer cancel()

	start := time.Now()
	_, err := m.prober.Health(probeCtx)
	latency := time.Since(start)

	state := models.NetworkState{CheckedAt: time.Now()}
	if err != nil {
		return state
	}

	state.Online = true
	state.EffectiveType, state.DownlinkMbps = classifyLatency(latency)
	return state
}

// classifyLatency maps probe round-trip time to coarse link-quality
// hints in the shape UI consumers expect
func classifyLatency(latency time.Duration) (string, float64) {
	switch {
	case latency < 100*time.Millisecond:
		return "4g", 10.0
	case latency < 300*time.Millisecond:
		return "3g", 2.0
	default:
		return "2g", 0.5
	}
}

func (m *Monitor) setState(state models.NetworkState) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state = state
}

func (m *Monitor) fireRestored() {
	m.mu.Lock()
	callbacks := make([]func(), len(m.restored))
	copy(callbacks, m.restored)
	m.mu.Unlock()

	for _, callback := range callbacks {
		callback()
	}
}

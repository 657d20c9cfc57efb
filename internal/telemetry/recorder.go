package telemetry

import (
	"context"
	"sync"
	"time"

	"github.com/specwave/spec-core/internal/spec"
)

// defaultInterval between registry snapshots.
const defaultInterval = 60 * time.Second

// Sink receives measurement points. Satisfied by *influxdb.Client.
type Sink interface {
	WritePoint(measurement string, tags map[string]string, fields map[string]interface{})
	Flush()
}

// Recorder writes registry metrics to a sink.
type Recorder struct {
	sink      Sink
	query     *spec.Query
	serviceID string
	interval  time.Duration
	logger    spec.Logger

	mu      sync.Mutex
	running bool
	cancel  context.CancelFunc
	done    chan struct{}
}

// New creates a recorder for the given service identity.
func New(sink Sink, query *spec.Query, serviceID string) *Recorder {
	return &Recorder{
		sink:      sink,
		query:     query,
		serviceID: serviceID,
		interval:  defaultInterval,
		logger:    spec.NopLogger(),
	}
}

// SetInterval overrides the snapshot interval. Must be called before Start.
func (r *Recorder) SetInterval(interval time.Duration) {
	if interval > 0 {
		r.interval = interval
	}
}

// SetLogger sets the logger for the recorder.
func (r *Recorder) SetLogger(logger spec.Logger) {
	r.logger = logger
}

// RecordSnapshot writes one registry_snapshot point from current stats.
func (r *Recorder) RecordSnapshot() {
	stats := r.query.Stats()

	fields := map[string]interface{}{
		"total_specs": stats.TotalSpecs,
		"complete":    stats.Complete,
		"categories":  len(stats.ByCategory),
	}
	for mode, count := range stats.ByMode {
		fields[string(mode)] = count
	}

	r.sink.WritePoint("registry_snapshot",
		map[string]string{"service": r.serviceID},
		fields,
	)
}

// RecordDiscovery writes one discovery_run point from a run report.
func (r *Recorder) RecordDiscovery(report *spec.Report) {
	r.sink.WritePoint("discovery_run",
		map[string]string{"service": r.serviceID},
		map[string]interface{}{
			"registered":  report.Registered,
			"replaced":    report.Replaced,
			"collisions":  len(report.Collisions),
			"failures":    len(report.Failures),
			"duration_ms": report.Duration.Milliseconds(),
		},
	)
}

// Start begins periodic snapshot recording. An initial snapshot is
// written immediately, then one per interval until Stop or context
// cancellation.
func (r *Recorder) Start(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.running {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	r.cancel = cancel
	r.done = make(chan struct{})
	r.running = true

	r.logger.Info("telemetry recorder started", "interval", r.interval.String())
	go r.loop(ctx)
}

// loop drives the snapshot ticker.
func (r *Recorder) loop(ctx context.Context) {
	defer close(r.done)

	r.RecordSnapshot()

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.RecordSnapshot()
		}
	}
}

// Stop halts periodic recording and flushes pending points.
func (r *Recorder) Stop() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.running {
		return
	}

	r.cancel()
	<-r.done
	r.running = false
	r.sink.Flush()
	r.logger.Info("telemetry recorder stopped")
}

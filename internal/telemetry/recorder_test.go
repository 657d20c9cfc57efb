package telemetry

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/specwave/spec-core/internal/spec"
)

// memSink collects points in memory.
type memSink struct {
	mu      sync.Mutex
	points  []point
	flushes int
}

type point struct {
	measurement string
	tags        map[string]string
	fields      map[string]interface{}
}

func (m *memSink) WritePoint(measurement string, tags map[string]string, fields map[string]interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.points = append(m.points, point{measurement, tags, fields})
}

func (m *memSink) Flush() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.flushes++
}

func (m *memSink) snapshot() []point {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]point(nil), m.points...)
}

func testQuery(t *testing.T) *spec.Query {
	t.Helper()

	store := spec.NewStore()
	seed := []*spec.DeviceSpec{
		{ID: "dji/tello", Name: "Tello", Category: "drone",
			Flags: spec.Flags{HasHardwareDriver: true, HasDigitalAsset: true, HasSimulationModel: true}},
		{ID: "velodyne/puck", Name: "Puck", Category: "lidar"},
	}
	for _, s := range seed {
		if err := store.Register(s); err != nil {
			t.Fatalf("seeding store: %v", err)
		}
	}
	return spec.NewQuery(store)
}

func TestRecordSnapshot(t *testing.T) {
	sink := &memSink{}
	rec := New(sink, testQuery(t), "specwave-test")

	rec.RecordSnapshot()

	points := sink.snapshot()
	if len(points) != 1 {
		t.Fatalf("points = %d, want 1", len(points))
	}

	p := points[0]
	if p.measurement != "registry_snapshot" {
		t.Errorf("measurement = %s, want registry_snapshot", p.measurement)
	}
	if p.tags["service"] != "specwave-test" {
		t.Errorf("service tag = %s", p.tags["service"])
	}
	if p.fields["total_specs"] != 2 {
		t.Errorf("total_specs = %v, want 2", p.fields["total_specs"])
	}
	if p.fields["complete"] != 1 {
		t.Errorf("complete = %v, want 1", p.fields["complete"])
	}
	if p.fields[string(spec.ModeHybrid)] != 1 {
		t.Errorf("hybrid count = %v, want 1", p.fields[string(spec.ModeHybrid)])
	}
	if p.fields[string(spec.ModeSpecificationOnly)] != 1 {
		t.Errorf("specification_only count = %v, want 1", p.fields[string(spec.ModeSpecificationOnly)])
	}
}

func TestRecordDiscovery(t *testing.T) {
	sink := &memSink{}
	rec := New(sink, testQuery(t), "specwave-test")

	report := &spec.Report{
		Registered: 10,
		Replaced:   2,
		Collisions: []spec.Collision{{ID: "a/b"}},
		Duration:   1500 * time.Millisecond,
	}
	rec.RecordDiscovery(report)

	points := sink.snapshot()
	if len(points) != 1 {
		t.Fatalf("points = %d, want 1", len(points))
	}

	p := points[0]
	if p.measurement != "discovery_run" {
		t.Errorf("measurement = %s, want discovery_run", p.measurement)
	}
	if p.fields["registered"] != 10 || p.fields["replaced"] != 2 {
		t.Errorf("fields = %v", p.fields)
	}
	if p.fields["collisions"] != 1 {
		t.Errorf("collisions = %v, want 1", p.fields["collisions"])
	}
	if p.fields["duration_ms"] != int64(1500) {
		t.Errorf("duration_ms = %v, want 1500", p.fields["duration_ms"])
	}
}

func TestStartStop(t *testing.T) {
	sink := &memSink{}
	rec := New(sink, testQuery(t), "specwave-test")
	rec.SetInterval(10 * time.Millisecond)

	rec.Start(context.Background())

	// Immediate snapshot plus at least one tick.
	deadline := time.After(2 * time.Second)
	for len(sink.snapshot()) < 2 {
		select {
		case <-deadline:
			t.Fatal("timed out waiting for periodic snapshots")
		case <-time.After(5 * time.Millisecond):
		}
	}

	rec.Stop()
	if sink.flushes != 1 {
		t.Errorf("flushes = %d, want 1", sink.flushes)
	}

	// No further writes after Stop.
	count := len(sink.snapshot())
	time.Sleep(30 * time.Millisecond)
	if got := len(sink.snapshot()); got != count {
		t.Errorf("points grew after Stop: %d -> %d", count, got)
	}
}

func TestStartIdempotent(t *testing.T) {
	sink := &memSink{}
	rec := New(sink, testQuery(t), "specwave-test")
	rec.SetInterval(time.Hour)

	rec.Start(context.Background())
	rec.Start(context.Background()) // no-op
	rec.Stop()
	rec.Stop() // no-op
}

// Package telemetry records registry metrics to the time-series store.
//
// Two measurements are produced:
//
//   - registry_snapshot: periodic counts of registered specs, broken down
//     by deployment mode. Written on an interval while the recorder runs.
//   - discovery_run: one point per discovery run with registration and
//     diagnostic counts plus the run duration.
//
// The recorder writes through a narrow sink interface so the registry
// core never links against the InfluxDB client directly, and tests can
// substitute an in-memory sink.
package telemetry

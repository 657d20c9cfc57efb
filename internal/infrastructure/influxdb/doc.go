// Package influxdb provides InfluxDB connectivity for SpecWave Core.
//
// It wraps the official influxdb-client-go v2 library with SpecWave-specific
// patterns for connection management, point writing, and health monitoring.
//
// # Purpose
//
// This package handles time-series data storage for:
//   - Registry snapshots (spec counts by category and deployment mode)
//   - Discovery run metrics (registered, replaced, collisions, failures)
//
// The domain-level measurements themselves live in the telemetry package;
// this package only knows how to move points to the server.
//
// # Usage
//
//	cfg := config.InfluxDBConfig{
//	    URL:    "http://localhost:8086",
//	    Token:  "your-token",
//	    Org:    "specwave",
//	    Bucket: "registry",
//	}
//
//	client, err := influxdb.Connect(cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	client.WritePoint("registry_snapshot",
//	    map[string]string{"service": "specwave-001"},
//	    map[string]interface{}{"total_specs": 15})
//
// # Thread Safety
//
// All methods are safe for concurrent use from multiple goroutines.
// The underlying write API uses non-blocking batched writes.
//
// # Error Handling
//
// Write operations are non-blocking and batch errors are logged via a callback.
// Connection and health check errors are returned directly.
//
// # Performance
//
// Writes are batched according to config.yaml settings (batch_size, flush_interval).
// This reduces network overhead when snapshot intervals are short.
package influxdb

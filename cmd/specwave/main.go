// SpecWave Core - Device Specification Registry
//
// This is the main entry point for the SpecWave Core service. SpecWave
// maintains the catalogue of device specifications for robot fleets:
//   - Built-in specs for common robots, cameras, and sensors
//   - YAML spec documents discovered from configured directories
//   - Custom specs registered over the REST API and persisted in SQLite
//
// The registry classifies every spec into a deployment mode, resolves
// unknown device IDs through category-level generic specs, and announces
// catalogue changes over MQTT.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/specwave/spec-core/migrations"

	"github.com/specwave/spec-core/internal/announce"
	"github.com/specwave/spec-core/internal/api"
	"github.com/specwave/spec-core/internal/catalog"
	"github.com/specwave/spec-core/internal/infrastructure/config"
	"github.com/specwave/spec-core/internal/infrastructure/database"
	"github.com/specwave/spec-core/internal/infrastructure/influxdb"
	"github.com/specwave/spec-core/internal/infrastructure/logging"
	"github.com/specwave/spec-core/internal/infrastructure/mqtt"
	"github.com/specwave/spec-core/internal/spec"
	"github.com/specwave/spec-core/internal/telemetry"
)

// Version information - set at build time via ldflags
// Example: go build -ldflags "-X main.version=1.0.0 -X main.commit=abc123"
var (
	version = "dev"     // Semantic version (e.g., "1.0.0")
	commit  = "unknown" // Git commit hash
	date    = "unknown" // Build date
)

// Default configuration file path
const defaultConfigPath = "configs/config.yaml"

func main() {
	// Cancel on interrupt signals (Ctrl+C, SIGTERM) for graceful shutdown
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run is the actual application logic, separated from main for testability.
// Returning an error allows main to handle exit codes consistently.
func run(ctx context.Context) error {
	// Use default logger until config is loaded
	log := logging.Default()
	log.Info("starting SpecWave Core",
		"version", version,
		"commit", commit,
		"build_date", date,
	)

	configPath := getConfigPath()
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log.Info("configuration loaded", "path", configPath)

	// Reinitialise logger with config settings
	log = logging.New(cfg.Logging, version)
	log.Info("logger initialised",
		"level", cfg.Logging.Level,
		"format", cfg.Logging.Format,
	)

	// Open database
	db, err := database.Open(database.Config{
		Path:        cfg.Database.Path,
		WALMode:     cfg.Database.WALMode,
		BusyTimeout: cfg.Database.BusyTimeout,
	})
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		log.Info("closing database")
		if closeErr := db.Close(); closeErr != nil {
			log.Error("error closing database", "error", closeErr)
		}
	}()
	log.Info("database connected", "path", cfg.Database.Path)

	if migrateErr := db.Migrate(ctx); migrateErr != nil {
		return fmt.Errorf("running migrations: %w", migrateErr)
	}
	log.Info("database migrations complete")

	// Registry core
	store := spec.NewStore()
	store.SetLogger(log)
	resolver := spec.NewResolver(store)
	resolver.SetLogger(log)
	query := spec.NewQuery(store)
	repo := spec.NewSQLiteRepository(db.DB)

	// Discovery: builtins, spec file directories, persisted custom specs
	loader := spec.NewLoader(store)
	loader.SetLogger(log)
	if cfg.Discovery.Builtins {
		loader.Add(catalog.Robots(), catalog.Cameras(), catalog.Sensors(), catalog.Construction())
	}
	var fileContributor *catalog.FileContributor
	if len(cfg.Discovery.Dirs) > 0 {
		fileContributor = catalog.NewFileContributor(cfg.Discovery.Dirs, cfg.Discovery.Patterns)
		fileContributor.SetLogger(log)
		loader.Add(fileContributor)
	}
	loader.Add(spec.RepositoryContributor{Repo: repo})

	report := loader.Run()
	if !report.OK() {
		log.Warn("initial discovery completed with diagnostics",
			"collisions", len(report.Collisions),
			"failures", len(report.Failures),
		)
	}
	log.Info("spec registry loaded", "specs", store.Len())

	// Connect to InfluxDB (optional)
	var recorder *telemetry.Recorder
	if cfg.InfluxDB.Enabled {
		influxClient, influxErr := influxdb.Connect(cfg.InfluxDB)
		if influxErr != nil {
			return fmt.Errorf("connecting to InfluxDB: %w", influxErr)
		}
		defer func() {
			log.Info("closing InfluxDB connection")
			if closeErr := influxClient.Close(); closeErr != nil {
				log.Error("error closing InfluxDB", "error", closeErr)
			}
		}()
		influxClient.SetOnError(func(err error) {
			log.Error("InfluxDB write error", "error", err)
		})
		log.Info("InfluxDB connected",
			"url", cfg.InfluxDB.URL,
			"org", cfg.InfluxDB.Org,
			"bucket", cfg.InfluxDB.Bucket,
		)

		recorder = telemetry.New(influxClient, query, cfg.Service.ID)
		recorder.SetLogger(log.With("component", "telemetry"))
		recorder.RecordDiscovery(report)
		recorder.Start(ctx)
		defer recorder.Stop()
	} else {
		log.Info("InfluxDB disabled")
	}

	// rediscover re-runs discovery, records the run, and refreshes the
	// retained stats announcement; used by the file watcher and the MQTT
	// request handler. The announcer is assigned below, after the broker
	// connection is up.
	var announcer *announce.Announcer
	rediscover := func() *spec.Report {
		rep := loader.Run()
		if recorder != nil {
			recorder.RecordDiscovery(rep)
		}
		if announcer != nil {
			if statsErr := announcer.Stats(query.Stats()); statsErr != nil {
				log.Warn("publishing registry stats failed", "error", statsErr)
			}
		}
		return rep
	}

	// Connect to MQTT broker (optional)
	if cfg.MQTT.Enabled {
		mqttClient, mqttErr := mqtt.Connect(cfg.MQTT)
		if mqttErr != nil {
			return fmt.Errorf("connecting to MQTT: %w", mqttErr)
		}
		defer func() {
			log.Info("disconnecting from MQTT")
			if closeErr := mqttClient.Close(); closeErr != nil {
				log.Error("error closing MQTT", "error", closeErr)
			}
		}()
		mqttClient.SetLogger(log.With("component", "mqtt"))
		mqttClient.SetOnConnect(func() {
			log.Info("MQTT reconnected")
		})
		mqttClient.SetOnDisconnect(func(err error) {
			log.Warn("MQTT disconnected", "error", err)
		})
		log.Info("MQTT connected",
			"broker", fmt.Sprintf("%s:%d", cfg.MQTT.Broker.Host, cfg.MQTT.Broker.Port),
			"client_id", cfg.MQTT.Broker.ClientID,
		)

		announcer = announce.New(mqttClient, cfg.MQTT.QoS)
		announcer.SetLogger(log.With("component", "announce"))
		if announceErr := announcer.DiscoveryReport(report); announceErr != nil {
			log.Warn("announcing initial discovery failed", "error", announceErr)
		}
		if statsErr := announcer.Stats(query.Stats()); statsErr != nil {
			log.Warn("publishing registry stats failed", "error", statsErr)
		}
		if serveErr := announcer.ServeRequests(rediscover); serveErr != nil {
			return fmt.Errorf("subscribing to discovery requests: %w", serveErr)
		}
	} else {
		log.Info("MQTT disabled")
	}

	// Watch spec directories for changes (optional)
	if cfg.Discovery.Watch && fileContributor != nil {
		watcher, watchErr := catalog.NewWatcher(cfg.Discovery.Dirs, func() {
			rep := rediscover()
			log.Info("spec files changed, rediscovered",
				"registered", rep.Registered,
				"replaced", rep.Replaced,
			)
			if announcer != nil {
				if announceErr := announcer.DiscoveryReport(rep); announceErr != nil {
					log.Warn("announcing rediscovery failed", "error", announceErr)
				}
			}
		})
		if watchErr != nil {
			return fmt.Errorf("creating spec watcher: %w", watchErr)
		}
		watcher.SetLogger(log)
		if startErr := watcher.Start(ctx); startErr != nil {
			return fmt.Errorf("starting spec watcher: %w", startErr)
		}
		defer func() {
			log.Info("stopping spec watcher")
			if stopErr := watcher.Stop(); stopErr != nil {
				log.Error("error stopping spec watcher", "error", stopErr)
			}
		}()
		log.Info("spec watcher started", "dirs", cfg.Discovery.Dirs)
	}

	// Start the REST API
	deps := api.Deps{
		Config:   cfg.API,
		Security: cfg.Security,
		Logger:   log.With("component", "api"),
		Store:    store,
		Resolver: resolver,
		Query:    query,
		Loader:   loader,
		Repo:     repo,
		Version:  version,
	}
	// Assign through a nil check: a nil *announce.Announcer in the
	// interface field would not compare equal to nil.
	if announcer != nil {
		deps.Notifier = announcer
	}
	server, err := api.New(deps)
	if err != nil {
		return fmt.Errorf("creating API server: %w", err)
	}
	if startErr := server.Start(ctx); startErr != nil {
		return fmt.Errorf("starting API server: %w", startErr)
	}
	defer func() {
		if closeErr := server.Close(); closeErr != nil {
			log.Error("error closing API server", "error", closeErr)
		}
	}()

	if err := healthCheck(ctx, db, server); err != nil {
		return fmt.Errorf("health check failed: %w", err)
	}
	log.Info("all health checks passed")

	log.Info("initialisation complete, waiting for shutdown signal")

	<-ctx.Done()

	log.Info("shutdown signal received, cleaning up")

	// Deferred Close() calls run in reverse order:
	// 1. API server
	// 2. Spec watcher (if enabled)
	// 3. MQTT (if enabled)
	// 4. Telemetry recorder and InfluxDB (if enabled)
	// 5. Database

	log.Info("SpecWave Core stopped")
	return nil
}

// getConfigPath returns the configuration file path.
// Uses SPECWAVE_CONFIG environment variable if set, otherwise default.
func getConfigPath() string {
	if path := os.Getenv("SPECWAVE_CONFIG"); path != "" {
		return path
	}
	return defaultConfigPath
}

// healthCheck verifies infrastructure connections are healthy.
func healthCheck(ctx context.Context, db *database.DB, server *api.Server) error {
	if err := db.HealthCheck(ctx); err != nil {
		return fmt.Errorf("database: %w", err)
	}

	if err := server.HealthCheck(ctx); err != nil {
		return fmt.Errorf("api: %w", err)
	}

	// MQTT and InfluxDB are optional; their connect calls already failed
	// fast if the brokers were unreachable.

	return nil
}

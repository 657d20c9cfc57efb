// Package spec provides the device specification registry for SpecWave Core.
//
// A DeviceSpec is a declarative description of a hardware or virtual asset:
// its identity, functional capabilities, communication protocols, setup
// metadata, and — centrally — three capability flags declaring which
// implementations exist for it (hardware driver, digital asset, simulation
// model). The registry stores specs, classifies them into deployment modes,
// and resolves identifiers that were never registered.
//
// # Architecture
//
//	┌───────────────────────────────────────────────────────────────────────┐
//	│                          Spec Registry                                │
//	│                                                                       │
//	│  ┌────────────┐   ┌────────────┐   ┌────────────┐   ┌─────────────┐  │
//	│  │   Loader   │──▶│    Store   │◀──│  Resolver  │   │    Query    │  │
//	│  │(discovery) │   │ (indexes)  │   │ (fallback) │   │  (facade)   │  │
//	│  └────────────┘   └────────────┘   └────────────┘   └─────────────┘  │
//	│        ▲                 │                │                │          │
//	└────────│─────────────────│────────────────│────────────────│──────────┘
//	         │                 ▼                ▼                ▼
//	  Contributors       Classify(flags)   Resolution      filtered views
//	  (catalogue,        -> deployment     (never fails)
//	  spec files,        mode
//	  custom repo)
//
// # Key behaviours
//
//   - Classification is a pure function of the three core flags. The
//     simulation flag never changes the four-way mode; it is reported
//     alongside it.
//   - Resolution always succeeds: exact match, then the category's
//     "generic/<category>" spec, then a synthesized specification-only
//     stub. "Unknown device" is a first-class low-capability result,
//     never an error.
//   - Discovery is first-writer-wins across contributors: a different
//     contributor reusing an existing ID is reported as a collision and
//     ignored. A contributor may overwrite its own specs. Re-running
//     discovery with unchanged contributors is a no-op.
//
// # Usage
//
//	store := spec.NewStore()
//	loader := spec.NewLoader(store)
//	loader.Add(catalog.Builtin()...)
//	report := loader.Run()
//
//	resolver := spec.NewResolver(store)
//	res := resolver.Resolve("dji/tello", "drone")
//	mode := spec.Classify(res.Spec.Flags)
//
//	query := spec.NewQuery(store)
//	hybrid := query.ByDeploymentMode(spec.ModeHybrid)
//
// # Thread Safety
//
// The Store serialises writers and allows concurrent readers; both indices
// are updated under a single lock so no query ever observes a torn state.
// Resolver and Query hold no mutable state of their own. Synthesized specs
// are caller-local values needing no synchronisation.
package spec

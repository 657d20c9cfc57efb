package spec

import (
	"fmt"
	"sync"
	"time"
)

// Contributor is a source of device specs: the built-in catalogue, a
// directory of spec files, a persistence layer replaying custom specs, or
// a third-party extension package. The Loader only needs a name for
// diagnostics and a way to ask for specs.
type Contributor interface {
	// Name identifies the contributor in collision and failure reports,
	// e.g. "builtin/robots" or "files:/etc/specwave/specs".
	Name() string

	// Specs produces the contributor's specs. Called on every discovery
	// run; implementations should be cheap and side-effect free.
	Specs() ([]*DeviceSpec, error)
}

// Overrider is an optional Contributor extension. A contributor reporting
// Override() == true deliberately replaces same-ID specs owned by other
// contributors instead of colliding with them, and takes over ownership.
// Used by the repository contributor: a persisted custom spec is an
// explicit operator action and must win over catalogue entries, on live
// re-discovery and after a restart alike.
type Overrider interface {
	Override() bool
}

// ContributorFunc adapts a function to the Contributor interface.
type ContributorFunc struct {
	ContributorName string
	Produce         func() ([]*DeviceSpec, error)
}

// Name returns the contributor name.
func (c ContributorFunc) Name() string { return c.ContributorName }

// Specs invokes the wrapped function.
func (c ContributorFunc) Specs() ([]*DeviceSpec, error) { return c.Produce() }

// Collision records a discovery attempt to register an ID already owned by
// a different contributor. The first registration wins.
type Collision struct {
	ID          string `json:"id"`
	Contributor string `json:"contributor"`
	Owner       string `json:"owner"`
}

// Failure records a contributor that failed while producing specs, or a
// spec of theirs that could not be registered.
type Failure struct {
	Contributor string `json:"contributor"`
	Err         error  `json:"-"`
	Message     string `json:"error"`
}

// Report summarises one discovery run. Collisions and Failures are
// diagnostics, never fatal: a bad contributor or malformed spec does not
// prevent the rest of the registry from loading.
type Report struct {
	Registered int           `json:"registered"`
	Replaced   int           `json:"replaced"`
	Collisions []Collision   `json:"collisions,omitempty"`
	Failures   []Failure     `json:"failures,omitempty"`
	Duration   time.Duration `json:"duration_ns"`
}

// OK reports whether the run completed without diagnostics.
func (r *Report) OK() bool {
	return len(r.Collisions) == 0 && len(r.Failures) == 0
}

// Loader merges specs from all registered contributors into the Store.
//
// Ownership is tracked across runs: a contributor may freely re-register
// its own IDs (hot reload), but an ID owned by a different contributor is
// a collision and the existing spec is kept — unless the contributor is an
// Overrider, which takes the ID over. Re-running discovery with unchanged
// contributors leaves the Store identical, including order.
type Loader struct {
	mu           sync.Mutex
	store        *Store
	contributors []Contributor
	owners       map[string]string // spec ID -> contributor name
	overridden   map[string]bool   // IDs claimed by an overriding contributor
	logger       Logger
}

// NewLoader creates a loader over the given store.
func NewLoader(store *Store) *Loader {
	return &Loader{
		store:      store,
		owners:     make(map[string]string),
		overridden: make(map[string]bool),
		logger:     noopLogger{},
	}
}

// SetLogger sets the logger for the loader.
func (l *Loader) SetLogger(logger Logger) {
	l.logger = logger
}

// Add registers contributors to be consulted on the next Run.
func (l *Loader) Add(contributors ...Contributor) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.contributors = append(l.contributors, contributors...)
}

// Run invokes every contributor and merges the produced specs into the
// Store. Contributor failures (including panics) are collected in the
// report and do not abort the remaining contributors.
func (l *Loader) Run() *Report {
	l.mu.Lock()
	defer l.mu.Unlock()

	start := time.Now()
	report := &Report{}

	for _, contributor := range l.contributors {
		l.runContributor(contributor, report)
	}

	report.Duration = time.Since(start)
	l.logger.Info("discovery complete",
		"contributors", len(l.contributors),
		"registered", report.Registered,
		"replaced", report.Replaced,
		"collisions", len(report.Collisions),
		"failures", len(report.Failures),
		"duration_ms", report.Duration.Milliseconds(),
	)
	return report
}

// runContributor loads one contributor, converting panics into failures.
func (l *Loader) runContributor(contributor Contributor, report *Report) {
	name := contributor.Name()

	specs, err := func() (specs []*DeviceSpec, err error) {
		defer func() {
			if rec := recover(); rec != nil {
				err = fmt.Errorf("%w: panic: %v", ErrContributorFailure, rec)
			}
		}()
		return contributor.Specs()
	}()
	if err != nil {
		l.logger.Error("contributor failed", "contributor", name, "error", err)
		report.Failures = append(report.Failures, Failure{
			Contributor: name,
			Err:         err,
			Message:     err.Error(),
		})
		return
	}

	override := false
	if o, ok := contributor.(Overrider); ok {
		override = o.Override()
	}

	for _, s := range specs {
		l.merge(name, s, override, report)
	}
}

// merge registers one contributed spec, enforcing first-writer-wins across
// contributors unless the contributor overrides.
func (l *Loader) merge(contributor string, s *DeviceSpec, override bool, report *Report) {
	if err := Validate(s); err != nil {
		report.Failures = append(report.Failures, Failure{
			Contributor: contributor,
			Err:         err,
			Message:     err.Error(),
		})
		return
	}

	owner, claimed := l.owners[s.ID]
	if claimed && owner != contributor {
		if !override {
			if l.overridden[s.ID] {
				// The current owner deliberately took this ID over. Later
				// runs of the original contributor must not collide with,
				// or win back, the override.
				l.logger.Debug("spec shadowed by override",
					"id", s.ID, "owner", owner, "contributor", contributor)
				return
			}
			// An unrelated package reusing an ID is almost certainly a
			// packaging error, not an intentional override. Keep the first.
			l.logger.Warn("spec identifier collision",
				"id", s.ID, "owner", owner, "contributor", contributor)
			report.Collisions = append(report.Collisions, Collision{
				ID:          s.ID,
				Contributor: contributor,
				Owner:       owner,
			})
			return
		}
		l.logger.Info("spec override",
			"id", s.ID, "previous_owner", owner, "contributor", contributor)
	}

	if err := l.store.Register(s); err != nil {
		report.Failures = append(report.Failures, Failure{
			Contributor: contributor,
			Err:         err,
			Message:     err.Error(),
		})
		return
	}

	l.owners[s.ID] = contributor
	if override {
		l.overridden[s.ID] = true
	}
	if claimed {
		report.Replaced++
	} else {
		report.Registered++
	}
}

// Release forgets the ownership of an ID. Used when a spec is removed
// through the API: the next discovery run may then re-register the ID
// from any contributor, including a catalogue entry that an override
// had been shadowing.
func (l *Loader) Release(id string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.owners, id)
	delete(l.overridden, id)
}

// Owner returns the contributor that owns an ID, if any.
func (l *Loader) Owner(id string) (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	owner, ok := l.owners[id]
	return owner, ok
}

package spec

import "sync"

// Logger defines the logging interface used by this package.
// This allows different logging implementations to be used.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// noopLogger is a logger that does nothing.
type noopLogger struct{}

func (noopLogger) Debug(string, ...any) {}
func (noopLogger) Info(string, ...any)  {}
func (noopLogger) Warn(string, ...any)  {}
func (noopLogger) Error(string, ...any) {}

// NopLogger returns a Logger that discards everything. Useful as a default
// for collaborating packages that accept this package's Logger interface.
func NopLogger() Logger { return noopLogger{} }

// Store is the in-memory catalogue of device specifications, indexed by ID
// and by category. It is the single shared registry instance for a process;
// construct it once and pass it to the Loader, Resolver, and Query facade.
//
// All public methods are thread-safe. Writers are serialised; readers run
// concurrently and always observe both indices in a consistent state.
// Specs are cloned on the way in and on the way out, so nothing a caller
// holds ever aliases Store contents.
type Store struct {
	mu       sync.RWMutex
	specs    map[string]*DeviceSpec
	order    []string            // IDs in first-registration order
	category map[string][]string // category -> IDs in first-registration order
	logger   Logger
}

// NewStore creates an empty spec store.
func NewStore() *Store {
	return &Store{
		specs:    make(map[string]*DeviceSpec),
		category: make(map[string][]string),
		logger:   noopLogger{},
	}
}

// SetLogger sets the logger for the store.
func (st *Store) SetLogger(logger Logger) {
	st.logger = logger
}

// Register inserts or replaces a spec by ID.
//
// A malformed ID is rejected with ErrInvalidIdentifier and nothing is
// stored. Replacing an existing spec keeps its original position in
// registration order; if the category changed, the spec moves to the end
// of the new category's index. Both indices are updated under one lock,
// so readers never see a half-applied registration.
func (st *Store) Register(s *DeviceSpec) error {
	if err := ValidateID(s.ID); err != nil {
		return err
	}

	cloned := s.Clone()

	st.mu.Lock()
	defer st.mu.Unlock()

	if existing, ok := st.specs[cloned.ID]; ok {
		if existing.Category != cloned.Category {
			st.category[existing.Category] = removeID(st.category[existing.Category], cloned.ID)
			st.category[cloned.Category] = append(st.category[cloned.Category], cloned.ID)
		}
		st.specs[cloned.ID] = cloned
		st.logger.Debug("spec replaced", "id", cloned.ID, "category", cloned.Category)
		return nil
	}

	st.specs[cloned.ID] = cloned
	st.order = append(st.order, cloned.ID)
	st.category[cloned.Category] = append(st.category[cloned.Category], cloned.ID)
	st.logger.Debug("spec registered", "id", cloned.ID, "category", cloned.Category)
	return nil
}

// Get performs an exact lookup by ID. A miss returns (nil, false) and is
// not an error: it is the normal trigger for fallback resolution.
func (st *Store) Get(id string) (*DeviceSpec, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	s, ok := st.specs[id]
	if !ok {
		return nil, false
	}
	return s.Clone(), true
}

// Has reports whether an ID is registered.
func (st *Store) Has(id string) bool {
	st.mu.RLock()
	defer st.mu.RUnlock()
	_, ok := st.specs[id]
	return ok
}

// GetByCategory returns all specs in a category, in registration order.
func (st *Store) GetByCategory(category string) []*DeviceSpec {
	st.mu.RLock()
	defer st.mu.RUnlock()

	ids := st.category[category]
	if len(ids) == 0 {
		return nil
	}
	specs := make([]*DeviceSpec, 0, len(ids))
	for _, id := range ids {
		specs = append(specs, st.specs[id].Clone())
	}
	return specs
}

// List returns all specs in registration order.
func (st *Store) List() []*DeviceSpec {
	st.mu.RLock()
	defer st.mu.RUnlock()

	specs := make([]*DeviceSpec, 0, len(st.order))
	for _, id := range st.order {
		specs = append(specs, st.specs[id].Clone())
	}
	return specs
}

// Remove deletes a spec from both indices atomically.
// Returns false if the ID was not registered.
func (st *Store) Remove(id string) bool {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.specs[id]
	if !ok {
		return false
	}
	delete(st.specs, id)
	st.order = removeID(st.order, id)
	st.category[s.Category] = removeID(st.category[s.Category], id)
	if len(st.category[s.Category]) == 0 {
		delete(st.category, s.Category)
	}
	st.logger.Debug("spec removed", "id", id)
	return true
}

// Len returns the number of registered specs.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.specs)
}

// Categories returns all categories with at least one spec, in first-seen
// order of the specs that introduced them.
func (st *Store) Categories() []string {
	st.mu.RLock()
	defer st.mu.RUnlock()

	seen := make(map[string]struct{}, len(st.category))
	var categories []string
	for _, id := range st.order {
		c := st.specs[id].Category
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		categories = append(categories, c)
	}
	return categories
}

// removeID returns ids with the first occurrence of id removed,
// preserving order.
func removeID(ids []string, id string) []string {
	for i, candidate := range ids {
		if candidate == id {
			return append(ids[:i:i], ids[i+1:]...)
		}
	}
	return ids
}

package spec

// ResolutionSource records how an identifier was resolved.
type ResolutionSource string

// ResolutionSource constants.
const (
	// ResolvedExact: the requested ID was registered.
	ResolvedExact ResolutionSource = "exact"

	// ResolvedGeneric: the requested ID was unknown; a category-level
	// generic spec was substituted.
	ResolvedGeneric ResolutionSource = "generic"

	// ResolvedSynthesized: no generic spec existed either; a minimal
	// specification-only stub was built in memory.
	ResolvedSynthesized ResolutionSource = "synthesized"
)

// Resolution is the result of resolving an identifier. Spec is never nil.
//
// When Source is not ResolvedExact, Spec.ID differs from (or merely echoes)
// the requested identifier; RequestedID preserves what the caller asked for
// so telemetry can distinguish exact hits from fallbacks.
type Resolution struct {
	Spec        *DeviceSpec      `json:"spec"`
	RequestedID string           `json:"requested_id"`
	Source      ResolutionSource `json:"source"`
}

// Resolver produces a usable spec for any identifier, registered or not.
// Resolution never fails: unknown devices come back as low-capability
// specification-only stubs rather than errors.
type Resolver struct {
	store  *Store
	logger Logger
}

// NewResolver creates a resolver over the given store.
func NewResolver(store *Store) *Resolver {
	return &Resolver{store: store, logger: noopLogger{}}
}

// SetLogger sets the logger for the resolver.
func (r *Resolver) SetLogger(logger Logger) {
	r.logger = logger
}

// Resolve finds a spec for the identifier, in order of preference:
//
//  1. Exact lookup in the store.
//  2. The category-level generic spec ("generic/<category>"), using the
//     caller's category hint, or a category inferred from the identifier
//     when no hint is given.
//  3. A synthesized minimal spec: requested ID, all core flags false,
//     humanized name, empty capability/protocol/setup lists.
//
// Synthesized specs are caller-local values and are never written back to
// the store; persisting one requires an explicit Register by the caller.
func (r *Resolver) Resolve(id, category string) Resolution {
	if s, ok := r.store.Get(id); ok {
		return Resolution{Spec: s, RequestedID: id, Source: ResolvedExact}
	}

	if category == "" {
		category = InferCategory(id)
	}

	if category != "" {
		if generic, ok := r.genericForCategory(category); ok {
			r.logger.Info("resolved via generic fallback",
				"requested_id", id, "category", category, "fallback_id", generic.ID)
			return Resolution{Spec: generic, RequestedID: id, Source: ResolvedGeneric}
		}
	}

	r.logger.Warn("no spec or generic fallback, synthesizing stub",
		"requested_id", id, "category", category)
	return Resolution{
		Spec:        Synthesize(id, category),
		RequestedID: id,
		Source:      ResolvedSynthesized,
	}
}

// genericForCategory locates the generic spec for a category.
//
// The direct candidate "generic/<category>" wins. Failing that, any spec in
// the category whose namespace is "generic" qualifies, preferring ones with
// both a hardware driver and a digital asset.
func (r *Resolver) genericForCategory(category string) (*DeviceSpec, bool) {
	if s, ok := r.store.Get(GenericIDForCategory(category)); ok {
		return s, true
	}

	var first *DeviceSpec
	for _, s := range r.store.GetByCategory(category) {
		ns, _ := SplitID(s.ID)
		if ns != NamespaceGeneric {
			continue
		}
		if s.HasHardwareDriver && s.HasDigitalAsset {
			return s, true
		}
		if first == nil {
			first = s
		}
	}
	if first != nil {
		return first, true
	}
	return nil, false
}

// Synthesize builds a minimal in-memory spec for an unknown identifier.
// The result classifies as specification-only: all core flags false, no
// capabilities, protocols, or setup fields. The fallback asset class is
// filled in per category so external asset factories can still pick a
// generic visual.
func Synthesize(id, category string) *DeviceSpec {
	if category == "" {
		category = "unknown"
	}
	namespace, name := SplitID(id)
	manufacturer := ""
	if namespace != "" && !isReservedNamespace(namespace) {
		manufacturer = HumanizeID(namespace)
	}

	return &DeviceSpec{
		ID:                 id,
		Name:               HumanizeID(id),
		Category:           category,
		Manufacturer:       manufacturer,
		Model:              name,
		Description:        "Unknown device: " + id,
		FallbackAssetClass: fallbackAssetForCategory(category),
	}
}

// isReservedNamespace reports whether a namespace is one of the well-known
// non-manufacturer namespaces.
func isReservedNamespace(ns string) bool {
	switch ns {
	case NamespaceGeneric, NamespaceProps, NamespaceLandmarks,
		NamespaceInfrastructure, NamespaceCustom, "unknown":
		return true
	}
	return false
}

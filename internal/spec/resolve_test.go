package spec

import (
	"testing"
)

func TestResolveExact(t *testing.T) {
	store := NewStore()
	s := testSpec("dji/tello", "drone")
	s.Flags = Flags{HasHardwareDriver: true, HasDigitalAsset: true}
	if err := store.Register(s); err != nil {
		t.Fatalf("Register: %v", err)
	}

	res := NewResolver(store).Resolve("dji/tello", "drone")
	if res.Source != ResolvedExact {
		t.Errorf("Source = %q, want %q", res.Source, ResolvedExact)
	}
	if res.Spec.ID != "dji/tello" {
		t.Errorf("Spec.ID = %q, want dji/tello", res.Spec.ID)
	}
	if res.RequestedID != "dji/tello" {
		t.Errorf("RequestedID = %q, want dji/tello", res.RequestedID)
	}
}

func TestResolveGenericFallback(t *testing.T) {
	store := NewStore()
	generic := testSpec("generic/ip-camera", "ip_camera")
	generic.Flags = Flags{HasHardwareDriver: true, HasDigitalAsset: true}
	if err := store.Register(generic); err != nil {
		t.Fatalf("Register: %v", err)
	}

	res := NewResolver(store).Resolve("unknown/x", "ip_camera")
	if res.Source != ResolvedGeneric {
		t.Fatalf("Source = %q, want %q", res.Source, ResolvedGeneric)
	}
	if res.Spec.ID != "generic/ip-camera" {
		t.Errorf("Spec.ID = %q, want generic/ip-camera", res.Spec.ID)
	}
	if res.RequestedID != "unknown/x" {
		t.Errorf("RequestedID = %q, want unknown/x", res.RequestedID)
	}
	if got := Classify(res.Spec.Flags); got != ModeHybrid {
		t.Errorf("Classify = %q, want %q", got, ModeHybrid)
	}
}

func TestResolveSynthesized(t *testing.T) {
	store := NewStore()

	res := NewResolver(store).Resolve("unknown/x", "drone")
	if res.Source != ResolvedSynthesized {
		t.Fatalf("Source = %q, want %q", res.Source, ResolvedSynthesized)
	}

	s := res.Spec
	if s.ID != "unknown/x" {
		t.Errorf("ID = %q, want unknown/x", s.ID)
	}
	if s.Category != "drone" {
		t.Errorf("Category = %q, want drone", s.Category)
	}
	if s.HasHardwareDriver || s.HasDigitalAsset || s.HasSimulationModel {
		t.Errorf("synthesized spec has implementation flags set: %+v", s.Flags)
	}
	if got := Classify(s.Flags); got != ModeSpecificationOnly {
		t.Errorf("Classify = %q, want %q", got, ModeSpecificationOnly)
	}
	if len(s.Capabilities) != 0 || len(s.Protocols) != 0 || len(s.SetupFields) != 0 {
		t.Error("synthesized spec is not minimal")
	}
	if s.Name != "Unknown X" {
		t.Errorf("Name = %q, want humanized %q", s.Name, "Unknown X")
	}

	// Synthesized specs are never written back into the store.
	if store.Len() != 0 {
		t.Errorf("store grew to %d from read traffic", store.Len())
	}
	if _, ok := store.Get("unknown/x"); ok {
		t.Error("synthesized spec was persisted implicitly")
	}
}

func TestResolveInfersCategory(t *testing.T) {
	store := NewStore()
	generic := testSpec("generic/drone", "drone")
	generic.HasDigitalAsset = true
	if err := store.Register(generic); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// No category hint; "drone" is inferred from the ID.
	res := NewResolver(store).Resolve("acme/cargo-drone", "")
	if res.Source != ResolvedGeneric {
		t.Fatalf("Source = %q, want %q", res.Source, ResolvedGeneric)
	}
	if res.Spec.ID != "generic/drone" {
		t.Errorf("Spec.ID = %q, want generic/drone", res.Spec.ID)
	}
}

func TestResolveGenericScanPrefersComplete(t *testing.T) {
	store := NewStore()

	// Two generic specs in the category, neither at the direct candidate
	// ID. The one with driver + asset should win.
	partial := testSpec("generic/cam-basic", "cctv")
	if err := store.Register(partial); err != nil {
		t.Fatalf("Register: %v", err)
	}
	full := testSpec("generic/cam-full", "cctv")
	full.Flags = Flags{HasHardwareDriver: true, HasDigitalAsset: true}
	if err := store.Register(full); err != nil {
		t.Fatalf("Register: %v", err)
	}

	res := NewResolver(store).Resolve("acme/unknown-thing", "cctv")
	if res.Source != ResolvedGeneric {
		t.Fatalf("Source = %q, want %q", res.Source, ResolvedGeneric)
	}
	if res.Spec.ID != "generic/cam-full" {
		t.Errorf("Spec.ID = %q, want generic/cam-full", res.Spec.ID)
	}
}

func TestResolveNonGenericSpecsNeverSubstituted(t *testing.T) {
	store := NewStore()
	other := testSpec("acme/cam-pro", "cctv")
	other.Flags = Flags{HasHardwareDriver: true, HasDigitalAsset: true}
	if err := store.Register(other); err != nil {
		t.Fatalf("Register: %v", err)
	}

	res := NewResolver(store).Resolve("acme/cam-lite", "cctv")
	if res.Source != ResolvedSynthesized {
		t.Errorf("Source = %q, want %q (manufacturer spec must not substitute)",
			res.Source, ResolvedSynthesized)
	}
}

func TestSynthesize(t *testing.T) {
	s := Synthesize("boston-dynamics/spot-mini", "quadruped")
	if s.Manufacturer != "Boston Dynamics" {
		t.Errorf("Manufacturer = %q, want Boston Dynamics", s.Manufacturer)
	}
	if s.Model != "spot-mini" {
		t.Errorf("Model = %q, want spot-mini", s.Model)
	}
	if s.FallbackAssetClass != "assets.GenericQuadruped" {
		t.Errorf("FallbackAssetClass = %q", s.FallbackAssetClass)
	}

	// Reserved namespaces are not manufacturers.
	s = Synthesize("custom/thing", "")
	if s.Manufacturer != "" {
		t.Errorf("Manufacturer = %q for reserved namespace, want empty", s.Manufacturer)
	}
	if s.Category != "unknown" {
		t.Errorf("Category = %q, want unknown", s.Category)
	}
}

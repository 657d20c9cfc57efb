package spec

import (
	"errors"
	"fmt"
	"reflect"
	"sync"
	"testing"
)

// testSpec creates a spec for testing.
func testSpec(id, category string) *DeviceSpec {
	return &DeviceSpec{
		ID:       id,
		Name:     HumanizeID(id),
		Category: category,
		Capabilities: []Capability{
			{Name: "basic", Commands: []string{"connect", "disconnect", "status"}},
		},
		Specs: map[string]any{"weight_g": 80},
	}
}

func TestStoreRegisterAndGet(t *testing.T) {
	store := NewStore()
	s := testSpec("dji/tello", "drone")
	s.Flags = Flags{HasHardwareDriver: true, HasDigitalAsset: true, HasSimulationModel: true}

	if err := store.Register(s); err != nil {
		t.Fatalf("Register: %v", err)
	}

	got, ok := store.Get("dji/tello")
	if !ok {
		t.Fatal("Get returned miss for registered spec")
	}
	if !reflect.DeepEqual(got, s) {
		t.Errorf("Get returned %+v, want %+v", got, s)
	}
}

func TestStoreRejectsInvalidID(t *testing.T) {
	store := NewStore()

	for _, id := range []string{"", "tello", "dji/tello/v2", "DJI/Tello"} {
		err := store.Register(&DeviceSpec{ID: id, Name: "x", Category: "drone"})
		if !errors.Is(err, ErrInvalidIdentifier) {
			t.Errorf("Register(%q) = %v, want ErrInvalidIdentifier", id, err)
		}
	}
	if store.Len() != 0 {
		t.Errorf("store grew to %d after rejected registrations", store.Len())
	}
}

func TestStoreGetMissIsNotAnError(t *testing.T) {
	store := NewStore()
	got, ok := store.Get("unknown/x")
	if ok || got != nil {
		t.Errorf("Get on empty store = (%v, %v), want (nil, false)", got, ok)
	}
}

func TestStoreCloneIsolation(t *testing.T) {
	store := NewStore()
	s := testSpec("dji/tello", "drone")
	if err := store.Register(s); err != nil {
		t.Fatalf("Register: %v", err)
	}

	// Mutating the input after registration must not affect the store.
	s.Name = "mutated"
	s.Capabilities[0].Commands[0] = "mutated"
	s.Specs["weight_g"] = 999

	got, _ := store.Get("dji/tello")
	if got.Name == "mutated" || got.Capabilities[0].Commands[0] == "mutated" {
		t.Error("store aliases caller-owned spec after Register")
	}
	if got.Specs["weight_g"] == 999 {
		t.Error("store aliases caller-owned specs map after Register")
	}

	// Mutating a returned spec must not affect subsequent reads.
	got.Capabilities[0].Commands[0] = "tampered"
	again, _ := store.Get("dji/tello")
	if again.Capabilities[0].Commands[0] == "tampered" {
		t.Error("store aliases returned spec")
	}
}

func TestStoreListRegistrationOrder(t *testing.T) {
	store := NewStore()
	ids := []string{"dji/tello", "kuka/kr3", "generic/ip-camera", "acme/widget"}
	for _, id := range ids {
		if err := store.Register(testSpec(id, "misc")); err != nil {
			t.Fatalf("Register(%s): %v", id, err)
		}
	}

	list := store.List()
	if len(list) != len(ids) {
		t.Fatalf("List returned %d specs, want %d", len(list), len(ids))
	}
	for i, s := range list {
		if s.ID != ids[i] {
			t.Errorf("List[%d] = %s, want %s", i, s.ID, ids[i])
		}
	}
}

func TestStoreReplaceKeepsOrder(t *testing.T) {
	store := NewStore()
	for _, id := range []string{"a/one", "b/two", "c/three"} {
		if err := store.Register(testSpec(id, "misc")); err != nil {
			t.Fatalf("Register: %v", err)
		}
	}

	replacement := testSpec("b/two", "misc")
	replacement.Name = "Replaced"
	if err := store.Register(replacement); err != nil {
		t.Fatalf("re-Register: %v", err)
	}

	list := store.List()
	if len(list) != 3 {
		t.Fatalf("List returned %d specs after replace, want 3", len(list))
	}
	if list[1].ID != "b/two" || list[1].Name != "Replaced" {
		t.Errorf("replaced spec not in original position: List[1] = %s (%s)", list[1].ID, list[1].Name)
	}
}

func TestStoreReplaceMovesCategory(t *testing.T) {
	store := NewStore()
	if err := store.Register(testSpec("acme/widget", "drone")); err != nil {
		t.Fatalf("Register: %v", err)
	}

	moved := testSpec("acme/widget", "sensor")
	if err := store.Register(moved); err != nil {
		t.Fatalf("re-Register: %v", err)
	}

	if got := store.GetByCategory("drone"); len(got) != 0 {
		t.Errorf("old category still lists spec after category change: %d entries", len(got))
	}
	got := store.GetByCategory("sensor")
	if len(got) != 1 || got[0].ID != "acme/widget" {
		t.Errorf("new category index wrong: %+v", got)
	}
}

func TestStoreGetByCategory(t *testing.T) {
	store := NewStore()
	specs := map[string]string{
		"dji/tello":         "drone",
		"parrot/anafi":      "drone",
		"generic/ip-camera": "ip_camera",
		"velodyne/puck":     "sensor",
	}
	for id, cat := range specs {
		if err := store.Register(testSpec(id, cat)); err != nil {
			t.Fatalf("Register: %v", err)
		}
	}

	drones := store.GetByCategory("drone")
	if len(drones) != 2 {
		t.Fatalf("GetByCategory(drone) returned %d, want 2", len(drones))
	}
	for _, s := range drones {
		if s.Category != "drone" {
			t.Errorf("GetByCategory(drone) returned spec with category %q", s.Category)
		}
	}

	// Result set size must equal the filtered List size.
	count := 0
	for _, s := range store.List() {
		if s.Category == "drone" {
			count++
		}
	}
	if count != len(drones) {
		t.Errorf("GetByCategory size %d != filtered List size %d", len(drones), count)
	}

	if got := store.GetByCategory("nonexistent"); got != nil {
		t.Errorf("GetByCategory(nonexistent) = %v, want nil", got)
	}
}

func TestStoreRemove(t *testing.T) {
	store := NewStore()
	if err := store.Register(testSpec("dji/tello", "drone")); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if !store.Remove("dji/tello") {
		t.Fatal("Remove returned false for registered spec")
	}
	if _, ok := store.Get("dji/tello"); ok {
		t.Error("spec still retrievable after Remove")
	}
	if got := store.GetByCategory("drone"); len(got) != 0 {
		t.Error("category index still lists spec after Remove")
	}
	if store.Remove("dji/tello") {
		t.Error("Remove returned true for already-removed spec")
	}
}

func TestStoreCategories(t *testing.T) {
	store := NewStore()
	for _, pair := range [][2]string{
		{"dji/tello", "drone"},
		{"generic/ip-camera", "ip_camera"},
		{"parrot/anafi", "drone"},
	} {
		if err := store.Register(testSpec(pair[0], pair[1])); err != nil {
			t.Fatalf("Register: %v", err)
		}
	}

	want := []string{"drone", "ip_camera"}
	if got := store.Categories(); !reflect.DeepEqual(got, want) {
		t.Errorf("Categories = %v, want %v", got, want)
	}
}

// TestStoreConcurrentAccess exercises readers racing writers. Run with
// -race to catch torn index updates.
func TestStoreConcurrentAccess(t *testing.T) {
	store := NewStore()
	var wg sync.WaitGroup

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				id := fmt.Sprintf("vendor%d/device%d", n, j)
				if err := store.Register(testSpec(id, "drone")); err != nil {
					t.Errorf("Register: %v", err)
				}
			}
		}(i)
	}

	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				// Readers must always observe consistent indices: every
				// spec visible by category must also be visible by ID.
				for _, s := range store.GetByCategory("drone") {
					if _, ok := store.Get(s.ID); !ok {
						t.Errorf("spec %s in category index but not primary index", s.ID)
					}
				}
				store.List()
			}
		}()
	}

	wg.Wait()

	if store.Len() != 8*50 {
		t.Errorf("Len = %d, want %d", store.Len(), 8*50)
	}
}

func BenchmarkStoreGet(b *testing.B) {
	store := NewStore()
	for i := 0; i < 500; i++ {
		if err := store.Register(testSpec(fmt.Sprintf("vendor/device%d", i), "drone")); err != nil {
			b.Fatalf("Register: %v", err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, ok := store.Get("vendor/device250"); !ok {
			b.Fatal("spec not found")
		}
	}
}

func BenchmarkStoreGetByCategory(b *testing.B) {
	store := NewStore()
	for i := 0; i < 500; i++ {
		category := "drone"
		if i%2 == 0 {
			category = "camera"
		}
		if err := store.Register(testSpec(fmt.Sprintf("vendor/device%d", i), category)); err != nil {
			b.Fatalf("Register: %v", err)
		}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if got := store.GetByCategory("camera"); len(got) == 0 {
			b.Fatal("no specs in category")
		}
	}
}

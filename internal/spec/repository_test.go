package spec

import (
	"context"
	"database/sql"
	"errors"
	"reflect"
	"testing"

	_ "github.com/mattn/go-sqlite3"
)

// setupTestDB creates an in-memory SQLite database with the custom_specs table.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite3", ":memory:")
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	schema := `
		CREATE TABLE custom_specs (
			id TEXT PRIMARY KEY,
			category TEXT NOT NULL,
			document TEXT NOT NULL,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL
		) STRICT;
		CREATE INDEX idx_custom_specs_category ON custom_specs(category);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		t.Fatalf("failed to create test schema: %v", err)
	}

	t.Cleanup(func() {
		db.Close()
	})
	return db
}

func TestSQLiteRepositorySaveAndGet(t *testing.T) {
	repo := NewSQLiteRepository(setupTestDB(t))
	ctx := context.Background()

	s := testSpec("custom/inspector", "sensor")
	s.Flags = Flags{HasDigitalAsset: true}
	s.ExtendedCapabilities = map[string]bool{"has_ros_driver": true}
	// JSON numbers decode as float64; keep the document comparable.
	s.Specs = map[string]any{"weight_g": 80.5}

	if err := repo.Save(ctx, s); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := repo.Get(ctx, "custom/inspector")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !reflect.DeepEqual(got, s) {
		t.Errorf("Get returned %+v, want %+v", got, s)
	}
}

func TestSQLiteRepositorySaveUpsert(t *testing.T) {
	repo := NewSQLiteRepository(setupTestDB(t))
	ctx := context.Background()

	s := testSpec("custom/cam", "camera")
	if err := repo.Save(ctx, s); err != nil {
		t.Fatalf("Save: %v", err)
	}
	s.Name = "Updated Cam"
	if err := repo.Save(ctx, s); err != nil {
		t.Fatalf("Save (update): %v", err)
	}

	specs, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(specs) != 1 {
		t.Fatalf("List returned %d specs after upsert, want 1", len(specs))
	}
	if specs[0].Name != "Updated Cam" {
		t.Errorf("Name = %q, want Updated Cam", specs[0].Name)
	}
}

func TestSQLiteRepositorySaveRejectsInvalid(t *testing.T) {
	repo := NewSQLiteRepository(setupTestDB(t))

	err := repo.Save(context.Background(), &DeviceSpec{ID: "bad", Name: "X", Category: "misc"})
	if !errors.Is(err, ErrInvalidIdentifier) {
		t.Errorf("Save = %v, want ErrInvalidIdentifier", err)
	}
}

func TestSQLiteRepositoryGetNotFound(t *testing.T) {
	repo := NewSQLiteRepository(setupTestDB(t))

	_, err := repo.Get(context.Background(), "custom/missing")
	if !errors.Is(err, ErrSpecNotFound) {
		t.Errorf("Get = %v, want ErrSpecNotFound", err)
	}
}

func TestSQLiteRepositoryDelete(t *testing.T) {
	repo := NewSQLiteRepository(setupTestDB(t))
	ctx := context.Background()

	if err := repo.Save(ctx, testSpec("custom/cam", "camera")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := repo.Delete(ctx, "custom/cam"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, "custom/cam"); !errors.Is(err, ErrSpecNotFound) {
		t.Errorf("second Delete = %v, want ErrSpecNotFound", err)
	}
}

func TestSQLiteRepositoryListInsertionOrder(t *testing.T) {
	repo := NewSQLiteRepository(setupTestDB(t))
	ctx := context.Background()

	ids := []string{"custom/one", "custom/two", "custom/three"}
	for _, id := range ids {
		if err := repo.Save(ctx, testSpec(id, "misc")); err != nil {
			t.Fatalf("Save(%s): %v", id, err)
		}
	}

	specs, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for i, s := range specs {
		if s.ID != ids[i] {
			t.Errorf("List[%d] = %s, want %s", i, s.ID, ids[i])
		}
	}
}

func TestRepositoryContributor(t *testing.T) {
	repo := NewSQLiteRepository(setupTestDB(t))
	ctx := context.Background()
	if err := repo.Save(ctx, testSpec("custom/cam", "camera")); err != nil {
		t.Fatalf("Save: %v", err)
	}

	store := NewStore()
	loader := NewLoader(store)
	loader.Add(RepositoryContributor{Repo: repo})

	report := loader.Run()
	if !report.OK() {
		t.Fatalf("report not OK: %+v", report)
	}
	if _, ok := store.Get("custom/cam"); !ok {
		t.Error("persisted spec not replayed into store")
	}
}

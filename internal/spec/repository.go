package spec

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Repository persists custom specs registered at runtime so they survive a
// restart. It sits outside the core resolution path: the Store never reads
// or writes it during lookups. At discovery time a repository-backed
// Contributor replays the persisted specs into the Store.
type Repository interface {
	// Save inserts or replaces a spec document by ID.
	Save(ctx context.Context, s *DeviceSpec) error

	// Get retrieves a persisted spec by ID.
	// Returns ErrSpecNotFound if it does not exist.
	Get(ctx context.Context, id string) (*DeviceSpec, error)

	// List retrieves all persisted specs in insertion order.
	List(ctx context.Context) ([]*DeviceSpec, error)

	// Delete removes a persisted spec by ID.
	// Returns ErrSpecNotFound if it does not exist.
	Delete(ctx context.Context, id string) error
}

// SQLiteRepository implements Repository using SQLite. Specs are stored as
// JSON documents; the category column is extracted for inspection with
// ordinary SQL tooling.
type SQLiteRepository struct {
	db *sql.DB
}

// NewSQLiteRepository creates a new SQLite-backed repository.
// The db parameter should be an open SQLite connection with the
// custom_specs table migrated.
func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Save inserts or replaces a spec document by ID.
func (r *SQLiteRepository) Save(ctx context.Context, s *DeviceSpec) error {
	if err := Validate(s); err != nil {
		return err
	}

	document, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("marshalling spec %s: %w", s.ID, err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	query := `
		INSERT INTO custom_specs (id, category, document, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			category = excluded.category,
			document = excluded.document,
			updated_at = excluded.updated_at`

	if _, err := r.db.ExecContext(ctx, query, s.ID, s.Category, string(document), now, now); err != nil {
		return fmt.Errorf("saving spec %s: %w", s.ID, err)
	}
	return nil
}

// Get retrieves a persisted spec by ID.
func (r *SQLiteRepository) Get(ctx context.Context, id string) (*DeviceSpec, error) {
	var document string
	err := r.db.QueryRowContext(ctx,
		`SELECT document FROM custom_specs WHERE id = ?`, id,
	).Scan(&document)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSpecNotFound
		}
		return nil, fmt.Errorf("querying spec by id: %w", err)
	}
	return unmarshalSpec(document)
}

// List retrieves all persisted specs in insertion order.
func (r *SQLiteRepository) List(ctx context.Context) ([]*DeviceSpec, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT document FROM custom_specs ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("listing specs: %w", err)
	}
	defer rows.Close() //nolint:errcheck // Read-only rows; close errors are not actionable

	var specs []*DeviceSpec
	for rows.Next() {
		var document string
		if err := rows.Scan(&document); err != nil {
			return nil, fmt.Errorf("scanning spec row: %w", err)
		}
		s, err := unmarshalSpec(document)
		if err != nil {
			return nil, err
		}
		specs = append(specs, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating spec rows: %w", err)
	}
	return specs, nil
}

// Delete removes a persisted spec by ID.
func (r *SQLiteRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM custom_specs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting spec %s: %w", id, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking delete result: %w", err)
	}
	if affected == 0 {
		return ErrSpecNotFound
	}
	return nil
}

// unmarshalSpec decodes a stored JSON document into a DeviceSpec.
func unmarshalSpec(document string) (*DeviceSpec, error) {
	var s DeviceSpec
	if err := json.Unmarshal([]byte(document), &s); err != nil {
		return nil, fmt.Errorf("unmarshalling spec document: %w", err)
	}
	return &s, nil
}

// RepositoryContributor replays persisted custom specs into the Store at
// discovery time.
type RepositoryContributor struct {
	Repo Repository
}

// Name identifies the contributor in discovery reports.
func (c RepositoryContributor) Name() string { return "custom/repository" }

// Override marks persisted custom specs as deliberate replacements: a spec
// saved through the API must keep winning over a catalogue entry with the
// same ID when discovery replays it.
func (c RepositoryContributor) Override() bool { return true }

// Specs loads all persisted specs.
func (c RepositoryContributor) Specs() ([]*DeviceSpec, error) {
	specs, err := c.Repo.List(context.Background())
	if err != nil {
		return nil, fmt.Errorf("%w: loading custom specs: %w", ErrContributorFailure, err)
	}
	return specs, nil
}

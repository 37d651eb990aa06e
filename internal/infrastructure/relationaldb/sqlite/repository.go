// Package sqlite provides a SQLite implementation of the ListingStore interface.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/ersonp/adopt-card/internal/domain/entities"
	"github.com/ersonp/adopt-card/internal/domain/ports"
	"github.com/ersonp/adopt-card/internal/infrastructure/config"
)

// timeNow returns the current time (can be mocked in tests).
var timeNow = time.Now

// Repository implements ports.ListingStore using SQLite.
type Repository struct {
	db   *sql.DB
	path string
}

// NewRepository creates a new SQLite repository.
func NewRepository(cfg config.SQLiteConfig) (*Repository, error) {
	if cfg.Path == "" {
		return nil, errors.New("sqlite path is required")
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}

	// Each connection to ":memory:" is a separate database.
	if cfg.Path == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	// Enable WAL mode for better concurrent read/write performance
	if _, err := db.Exec("PRAGMA journal_mode = WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	// Set busy timeout to avoid "database is locked" errors
	if _, err := db.Exec("PRAGMA busy_timeout = 5000"); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting busy timeout: %w", err)
	}

	return &Repository{
		db:   db,
		path: cfg.Path,
	}, nil
}

// Close closes the database connection.
func (r *Repository) Close() error {
	return r.db.Close()
}

// Path returns the database file path.
func (r *Repository) Path() string {
	return r.path
}

// EnsureSchema creates the database schema if it doesn't exist.
func (r *Repository) EnsureSchema(ctx context.Context) error {
	schema := `
	-- Adoption listings (one record each)
	CREATE TABLE IF NOT EXISTS listings (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		normalized_name TEXT NOT NULL UNIQUE,
		birth_date TEXT NOT NULL,
		category TEXT NOT NULL,
		image TEXT NOT NULL DEFAULT '',
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_listings_category ON listings(category);

	-- Audit log (tracks catalog changes)
	CREATE TABLE IF NOT EXISTS audit_log (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		action TEXT NOT NULL,
		listing_id TEXT,
		details TEXT,
		created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_audit_log_listing ON audit_log(listing_id);
	CREATE INDEX IF NOT EXISTS idx_audit_log_action ON audit_log(action);
	`

	_, err := r.db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}

const listingColumns = `id, name, birth_date, category, image, created_at`

// SaveListing saves or updates a listing.
func (r *Repository) SaveListing(ctx context.Context, listing *entities.Listing) error {
	createdAt := listing.CreatedAt
	if createdAt.IsZero() {
		createdAt = timeNow().UTC()
	}

	query := `
		INSERT INTO listings (id, name, normalized_name, birth_date, category, image, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			normalized_name = excluded.normalized_name,
			birth_date = excluded.birth_date,
			category = excluded.category,
			image = excluded.image
	`
	record := listing.Record
	_, err := r.db.ExecContext(ctx, query,
		listing.ID,
		record.Name(),
		entities.NormalizeName(record.Name()),
		record.BirthDate().Format(entities.DateLayout),
		record.Category().String(),
		string(record.Image()),
		createdAt,
	)
	if err != nil {
		return fmt.Errorf("saving listing: %w", err)
	}
	return nil
}

// FindListing finds a listing by ID.
func (r *Repository) FindListing(ctx context.Context, id string) (*entities.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = ?`
	return r.queryListing(ctx, query, id)
}

// FindListingByName finds a listing by its normalized name (case-insensitive).
func (r *Repository) FindListingByName(ctx context.Context, name string) (*entities.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE normalized_name = ?`
	return r.queryListing(ctx, query, entities.NormalizeName(name))
}

// ListListings lists listings matching the filter ordered by name.
// A limit of zero or less means no limit.
func (r *Repository) ListListings(ctx context.Context, filter ports.ListingFilter, limit, offset int) ([]entities.Listing, error) {
	if limit <= 0 {
		limit = -1
	}
	query := `
		SELECT ` + listingColumns + `
		FROM listings
		WHERE (? = '' OR category = ?)
		ORDER BY normalized_name ASC
		LIMIT ? OFFSET ?
	`
	category := filter.Category.String()
	rows, err := r.db.QueryContext(ctx, query, category, category, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("querying listings: %w", err)
	}
	defer rows.Close()

	result := []entities.Listing{}
	for rows.Next() {
		listing, err := scanListing(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *listing)
	}
	return result, rows.Err()
}

// CountListings counts listings matching the filter.
func (r *Repository) CountListings(ctx context.Context, filter ports.ListingFilter) (int, error) {
	category := filter.Category.String()
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM listings WHERE (? = '' OR category = ?)`, category, category).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("counting listings: %w", err)
	}
	return count, nil
}

// DeleteListing deletes a listing by ID.
func (r *Repository) DeleteListing(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM listings WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting listing: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("checking rows affected: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("listing not found: %s", id)
	}
	return nil
}

func (r *Repository) queryListing(ctx context.Context, query string, args ...any) (*entities.Listing, error) {
	row := r.db.QueryRowContext(ctx, query, args...)
	listing, err := scanListing(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return listing, err
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanListing(row rowScanner) (*entities.Listing, error) {
	var (
		listing   entities.Listing
		name      string
		birthDate string
		category  string
		image     string
	)
	if err := row.Scan(&listing.ID, &name, &birthDate, &category, &image, &listing.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scanning listing: %w", err)
	}

	born, err := time.Parse(entities.DateLayout, birthDate)
	if err != nil {
		return nil, fmt.Errorf("listing %s: parsing birth date: %w", listing.ID, err)
	}
	tier, err := entities.ParseCategory(category)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", listing.ID, err)
	}

	listing.Record = entities.NewRecord(name, born, tier, entities.ImageRef(image))
	return &listing, nil
}

// LogAction logs an action to the audit log.
func (r *Repository) LogAction(ctx context.Context, action string, listingID string, details map[string]any) error {
	var detailsJSON sql.NullString
	if details != nil {
		data, err := json.Marshal(details)
		if err != nil {
			return fmt.Errorf("marshaling details: %w", err)
		}
		detailsJSON = sql.NullString{String: string(data), Valid: true}
	}

	var listingIDPtr sql.NullString
	if listingID != "" {
		listingIDPtr = sql.NullString{String: listingID, Valid: true}
	}

	query := `INSERT INTO audit_log (action, listing_id, details, created_at) VALUES (?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query, action, listingIDPtr, detailsJSON, timeNow().UTC())
	if err != nil {
		return fmt.Errorf("logging action: %w", err)
	}
	return nil
}

// FindAuditLog finds audit log entries for a specific listing, newest first.
func (r *Repository) FindAuditLog(ctx context.Context, listingID string) ([]entities.AuditEntry, error) {
	query := `
		SELECT id, action, listing_id, details, created_at
		FROM audit_log
		WHERE listing_id = ?
		ORDER BY id DESC
	`
	rows, err := r.db.QueryContext(ctx, query, listingID)
	if err != nil {
		return nil, fmt.Errorf("querying audit log: %w", err)
	}
	defer rows.Close()

	var entries []entities.AuditEntry
	for rows.Next() {
		var entry entities.AuditEntry
		var id, details sql.NullString

		if err := rows.Scan(
			&entry.ID,
			&entry.Action,
			&id,
			&details,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning audit entry: %w", err)
		}

		entry.ListingID = id.String

		if details.Valid && details.String != "" {
			if err := json.Unmarshal([]byte(details.String), &entry.Details); err != nil {
				return nil, fmt.Errorf("unmarshaling details: %w", err)
			}
		}

		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

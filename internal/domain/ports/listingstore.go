package ports

import (
	"context"

	"github.com/ersonp/adopt-card/internal/domain/entities"
)

// ListingFilter narrows listing queries. The zero value matches everything.
type ListingFilter struct {
	Category entities.Category
}

// ListingStore defines the interface for the adoption catalog storage.
type ListingStore interface {
	// EnsureSchema creates the database schema if it doesn't exist.
	EnsureSchema(ctx context.Context) error

	// Close closes the database connection.
	Close() error

	// SaveListing saves or updates a listing.
	SaveListing(ctx context.Context, listing *entities.Listing) error

	// FindListing finds a listing by ID. Returns nil if not found.
	FindListing(ctx context.Context, id string) (*entities.Listing, error)

	// FindListingByName finds a listing by name (case-insensitive). Returns nil if not found.
	FindListingByName(ctx context.Context, name string) (*entities.Listing, error)

	// ListListings lists listings matching the filter, ordered by name.
	ListListings(ctx context.Context, filter ListingFilter, limit, offset int) ([]entities.Listing, error)

	// CountListings counts listings matching the filter.
	CountListings(ctx context.Context, filter ListingFilter) (int, error)

	// DeleteListing deletes a listing by ID.
	DeleteListing(ctx context.Context, id string) error

	// LogAction logs an action to the audit log.
	LogAction(ctx context.Context, action string, listingID string, details map[string]any) error

	// FindAuditLog finds audit log entries for a listing, newest first.
	FindAuditLog(ctx context.Context, listingID string) ([]entities.AuditEntry, error)
}

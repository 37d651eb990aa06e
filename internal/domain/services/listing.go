package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/ersonp/adopt-card/internal/domain/entities"
	"github.com/ersonp/adopt-card/internal/domain/ports"
)

// ErrListingNotFound is returned when no listing matches an ID or name.
var ErrListingNotFound = errors.New("listing not found")

// timeNow returns the current time (can be replaced in tests).
var timeNow = time.Now

// ListingService manages the adoption catalog.
type ListingService struct {
	store ports.ListingStore
}

// NewListingService creates a new ListingService.
func NewListingService(store ports.ListingStore) *ListingService {
	return &ListingService{
		store: store,
	}
}

// Add stores a new listing for the given record fields.
// The catalog requires a name and a category even though Record does not.
func (s *ListingService) Add(ctx context.Context, name string, birthDate time.Time, category entities.Category, image entities.ImageRef) (*entities.Listing, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.New("name is required")
	}
	if category.IsZero() {
		return nil, errors.New("category is required")
	}

	existing, err := s.store.FindListingByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("checking listing: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("listing %q already exists", name)
	}

	listing := &entities.Listing{
		ID:        uuid.New().String(),
		Record:    entities.NewRecord(name, birthDate, category, image),
		CreatedAt: timeNow().UTC(),
	}
	if err := s.store.SaveListing(ctx, listing); err != nil {
		return nil, fmt.Errorf("saving listing: %w", err)
	}
	if err := s.logAction(ctx, entities.AuditAdd, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// Replace overwrites the record of an existing listing, keeping its ID.
func (s *ListingService) Replace(ctx context.Context, id string, record entities.Record) (*entities.Listing, error) {
	existing, err := s.store.FindListing(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("finding listing: %w", err)
	}
	if existing == nil {
		return nil, fmt.Errorf("%w: %s", ErrListingNotFound, id)
	}

	existing.Record = record
	if err := s.store.SaveListing(ctx, existing); err != nil {
		return nil, fmt.Errorf("saving listing: %w", err)
	}
	if err := s.logAction(ctx, entities.AuditReplace, existing); err != nil {
		return nil, err
	}
	return existing, nil
}

// Get finds a listing by ID, falling back to a case-insensitive name match.
func (s *ListingService) Get(ctx context.Context, ref string) (*entities.Listing, error) {
	listing, err := s.store.FindListing(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("finding listing: %w", err)
	}
	if listing != nil {
		return listing, nil
	}

	listing, err = s.store.FindListingByName(ctx, ref)
	if err != nil {
		return nil, fmt.Errorf("finding listing by name: %w", err)
	}
	if listing == nil {
		return nil, fmt.Errorf("%w: %s", ErrListingNotFound, ref)
	}
	return listing, nil
}

// FindByName finds a listing by name. Returns nil if not found.
func (s *ListingService) FindByName(ctx context.Context, name string) (*entities.Listing, error) {
	return s.store.FindListingByName(ctx, name)
}

// List returns listings matching the filter with pagination.
func (s *ListingService) List(ctx context.Context, filter ports.ListingFilter, limit, offset int) ([]entities.Listing, error) {
	return s.store.ListListings(ctx, filter, limit, offset)
}

// Count returns the number of listings matching the filter.
func (s *ListingService) Count(ctx context.Context, filter ports.ListingFilter) (int, error) {
	return s.store.CountListings(ctx, filter)
}

// Remove deletes a listing by ID or name and returns what was removed.
func (s *ListingService) Remove(ctx context.Context, ref string) (*entities.Listing, error) {
	listing, err := s.Get(ctx, ref)
	if err != nil {
		return nil, err
	}
	if err := s.store.DeleteListing(ctx, listing.ID); err != nil {
		return nil, fmt.Errorf("deleting listing: %w", err)
	}
	if err := s.logAction(ctx, entities.AuditRemove, listing); err != nil {
		return nil, err
	}
	return listing, nil
}

// History returns the audit trail of a listing ID, newest first.
// Removed listings keep their history.
func (s *ListingService) History(ctx context.Context, id string) ([]entities.AuditEntry, error) {
	return s.store.FindAuditLog(ctx, id)
}

func (s *ListingService) logAction(ctx context.Context, action string, listing *entities.Listing) error {
	details := map[string]any{
		"name":       listing.Record.Name(),
		"birth_date": listing.Record.BirthDate().Format(entities.DateLayout),
		"category":   listing.Record.Category().String(),
	}
	if err := s.store.LogAction(ctx, action, listing.ID, details); err != nil {
		return fmt.Errorf("logging %s: %w", action, err)
	}
	return nil
}

package mocks

import (
	"context"
	"sort"

	"github.com/ersonp/adopt-card/internal/domain/entities"
	"github.com/ersonp/adopt-card/internal/domain/ports"
)

// ListingStore is an in-memory mock implementation of ports.ListingStore.
type ListingStore struct {
	Listings map[string]*entities.Listing
	Audit    []entities.AuditEntry
	Err      error
}

// NewListingStore creates a new mock ListingStore.
func NewListingStore() *ListingStore {
	return &ListingStore{
		Listings: make(map[string]*entities.Listing),
	}
}

// EnsureSchema returns the configured error.
func (m *ListingStore) EnsureSchema(_ context.Context) error {
	return m.Err
}

// Close is a no-op.
func (m *ListingStore) Close() error {
	return nil
}

// SaveListing stores the listing by ID.
func (m *ListingStore) SaveListing(_ context.Context, listing *entities.Listing) error {
	if m.Err != nil {
		return m.Err
	}
	stored := *listing
	m.Listings[listing.ID] = &stored
	return nil
}

// FindListing finds a listing by ID.
func (m *ListingStore) FindListing(_ context.Context, id string) (*entities.Listing, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	l, ok := m.Listings[id]
	if !ok {
		return nil, nil
	}
	found := *l
	return &found, nil
}

// FindListingByName finds a listing by normalized name.
func (m *ListingStore) FindListingByName(_ context.Context, name string) (*entities.Listing, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	normalized := entities.NormalizeName(name)
	for _, l := range m.Listings {
		if entities.NormalizeName(l.Record.Name()) == normalized {
			found := *l
			return &found, nil
		}
	}
	return nil, nil
}

// ListListings returns matching listings sorted by name.
func (m *ListingStore) ListListings(_ context.Context, filter ports.ListingFilter, limit, offset int) ([]entities.Listing, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	matched := m.matching(filter)
	if offset >= len(matched) {
		return []entities.Listing{}, nil
	}
	matched = matched[offset:]
	if limit > 0 && limit < len(matched) {
		matched = matched[:limit]
	}
	return matched, nil
}

// CountListings counts matching listings.
func (m *ListingStore) CountListings(_ context.Context, filter ports.ListingFilter) (int, error) {
	if m.Err != nil {
		return 0, m.Err
	}
	return len(m.matching(filter)), nil
}

// DeleteListing removes a listing by ID.
func (m *ListingStore) DeleteListing(_ context.Context, id string) error {
	if m.Err != nil {
		return m.Err
	}
	delete(m.Listings, id)
	return nil
}

// LogAction appends an audit entry.
func (m *ListingStore) LogAction(_ context.Context, action string, listingID string, details map[string]any) error {
	if m.Err != nil {
		return m.Err
	}
	m.Audit = append(m.Audit, entities.AuditEntry{
		ID:        int64(len(m.Audit) + 1),
		Action:    action,
		ListingID: listingID,
		Details:   details,
	})
	return nil
}

// FindAuditLog returns audit entries for a listing, newest first.
func (m *ListingStore) FindAuditLog(_ context.Context, listingID string) ([]entities.AuditEntry, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	var result []entities.AuditEntry
	for i := len(m.Audit) - 1; i >= 0; i-- {
		if m.Audit[i].ListingID == listingID {
			result = append(result, m.Audit[i])
		}
	}
	return result, nil
}

func (m *ListingStore) matching(filter ports.ListingFilter) []entities.Listing {
	result := make([]entities.Listing, 0, len(m.Listings))
	for _, l := range m.Listings {
		if !filter.Category.IsZero() && l.Record.Category() != filter.Category {
			continue
		}
		result = append(result, *l)
	}
	sort.Slice(result, func(i, j int) bool {
		return entities.NormalizeName(result[i].Record.Name()) < entities.NormalizeName(result[j].Record.Name())
	})
	return result
}

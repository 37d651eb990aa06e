package handlers

import (
	"context"
	"time"

	"github.com/ersonp/adopt-card/internal/domain/entities"
	"github.com/ersonp/adopt-card/internal/domain/ports"
	"github.com/ersonp/adopt-card/internal/domain/services"
)

// ListingHandler handles catalog operations at the application layer.
type ListingHandler struct {
	listingService *services.ListingService
}

// NewListingHandler creates a new ListingHandler.
func NewListingHandler(listingService *services.ListingService) *ListingHandler {
	return &ListingHandler{
		listingService: listingService,
	}
}

// AddRequest holds the fields for a new listing.
type AddRequest struct {
	Name      string
	BirthDate time.Time
	Category  entities.Category
	Image     entities.ImageRef
}

// ListingListResult contains the result of listing the catalog.
type ListingListResult struct {
	Listings []entities.Listing `json:"listings"`
	Total    int                `json:"total"`
}

// HandleAdd adds a listing to the catalog.
func (h *ListingHandler) HandleAdd(ctx context.Context, req AddRequest) (*entities.Listing, error) {
	return h.listingService.Add(ctx, req.Name, req.BirthDate, req.Category, req.Image)
}

// HandleList returns listings matching the filter with pagination.
func (h *ListingHandler) HandleList(ctx context.Context, filter ports.ListingFilter, limit, offset int) (*ListingListResult, error) {
	listings, err := h.listingService.List(ctx, filter, limit, offset)
	if err != nil {
		return nil, err
	}

	count, err := h.listingService.Count(ctx, filter)
	if err != nil {
		return nil, err
	}

	return &ListingListResult{
		Listings: listings,
		Total:    count,
	}, nil
}

// HandleGet returns a listing by ID or name.
func (h *ListingHandler) HandleGet(ctx context.Context, ref string) (*entities.Listing, error) {
	return h.listingService.Get(ctx, ref)
}

// HandleRemove removes a listing by ID or name.
func (h *ListingHandler) HandleRemove(ctx context.Context, ref string) (*entities.Listing, error) {
	return h.listingService.Remove(ctx, ref)
}

// HandleHistory returns the audit trail of a listing ID, newest first.
func (h *ListingHandler) HandleHistory(ctx context.Context, id string) ([]entities.AuditEntry, error) {
	return h.listingService.History(ctx, id)
}

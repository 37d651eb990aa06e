// Package handlers contains application use case handlers.
package handlers

import (
	"context"

	"github.com/ersonp/adopt-card/internal/domain/entities"
	"github.com/ersonp/adopt-card/internal/domain/ports"
	"github.com/ersonp/adopt-card/internal/domain/services"
)

// CardHandler turns catalog listings into rendered adoption cards.
type CardHandler struct {
	presenter *services.PresenterService
	listings  *services.ListingService
}

// NewCardHandler creates a new CardHandler.
func NewCardHandler(presenter *services.PresenterService, listings *services.ListingService) *CardHandler {
	return &CardHandler{
		presenter: presenter,
		listings:  listings,
	}
}

// CardResult pairs a listing with its presentation.
type CardResult struct {
	Listing      *entities.Listing     `json:"listing"`
	Presentation entities.Presentation `json:"presentation"`
}

// HandlePresent looks up a listing by ID or name and presents it.
func (h *CardHandler) HandlePresent(ctx context.Context, ref string) (*CardResult, error) {
	listing, err := h.listings.Get(ctx, ref)
	if err != nil {
		return nil, err
	}

	return &CardResult{
		Listing:      listing,
		Presentation: h.presenter.Present(listing.Record),
	}, nil
}

// HandleRender presents a listing and writes it into surface.
func (h *CardHandler) HandleRender(ctx context.Context, ref string, surface ports.CardSurface) (*CardResult, error) {
	result, err := h.HandlePresent(ctx, ref)
	if err != nil {
		return nil, err
	}

	Bind(result.Presentation, surface)
	return result, nil
}

// HandlePreview presents a record that is not in the catalog and writes it into surface.
func (h *CardHandler) HandlePreview(record entities.Record, surface ports.CardSurface) entities.Presentation {
	p := h.presenter.Present(record)
	Bind(p, surface)
	return p
}

// Bind copies each presentation field into its slot on surface.
func Bind(p entities.Presentation, surface ports.CardSurface) {
	surface.SetImage(p.DisplayImage)
	surface.SetName(p.DisplayName)
	surface.SetAge(p.AgeText)
	surface.SetFee(p.FeeText)
}

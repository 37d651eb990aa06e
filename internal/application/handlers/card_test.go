package handlers

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/adopt-card/internal/domain/entities"
	"github.com/ersonp/adopt-card/internal/domain/mocks"
	"github.com/ersonp/adopt-card/internal/domain/services"
	"github.com/ersonp/adopt-card/internal/infrastructure/clock"
)

var today = time.Date(2026, time.October, 19, 9, 0, 0, 0, time.UTC)

func newTestCardHandler(t *testing.T) (*CardHandler, *services.ListingService) {
	t.Helper()
	listings := services.NewListingService(mocks.NewListingStore())
	presenter := services.NewPresenterService(clock.Fixed(today, time.UTC))
	return NewCardHandler(presenter, listings), listings
}

func TestCardHandler_HandleRender(t *testing.T) {
	handler, listings := newTestCardHandler(t)
	added, err := listings.Add(context.Background(), "Stuart", today.AddDate(0, 0, -2*366), entities.CategoryVeryRare, "stuart.png")
	require.NoError(t, err)

	surface := &mocks.CardSurface{}
	result, err := handler.HandleRender(context.Background(), "stuart", surface)

	require.NoError(t, err)
	assert.Equal(t, added.ID, result.Listing.ID)
	assert.Equal(t, entities.ImageRef("stuart.png"), surface.Image)
	assert.Equal(t, "Stuart", surface.Name)
	assert.Equal(t, "2 years old", surface.Age)
	assert.Equal(t, "$500.00", surface.Fee)
	assert.Equal(t, 4, surface.Writes)
}

func TestCardHandler_HandleRender_NotFound(t *testing.T) {
	handler, _ := newTestCardHandler(t)
	surface := &mocks.CardSurface{}

	_, err := handler.HandleRender(context.Background(), "ghost", surface)

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrListingNotFound)
	assert.Zero(t, surface.Writes)
}

func TestCardHandler_HandlePresent(t *testing.T) {
	handler, listings := newTestCardHandler(t)
	added, err := listings.Add(context.Background(), "Pip", time.Date(2023, time.October, 20, 0, 0, 0, 0, time.UTC), entities.CategoryUncommon, "")
	require.NoError(t, err)

	result, err := handler.HandlePresent(context.Background(), added.ID)

	require.NoError(t, err)
	assert.Equal(t, "2 years old", result.Presentation.AgeText)
	assert.Equal(t, "$75.00", result.Presentation.FeeText)
}

func TestCardHandler_HandlePreview(t *testing.T) {
	handler, _ := newTestCardHandler(t)
	surface := &mocks.CardSurface{}
	record := entities.NewRecord("Moss", today, entities.CategoryRare, "moss.png")

	p := handler.HandlePreview(record, surface)

	assert.Equal(t, "0 years old", p.AgeText)
	assert.Equal(t, "$150.00", surface.Fee)
	assert.Equal(t, "Moss", surface.Name)
}

func TestBind(t *testing.T) {
	surface := &mocks.CardSurface{}
	Bind(entities.Presentation{
		DisplayName:  "Nova",
		DisplayImage: "nova.png",
		AgeText:      "5 years old",
		FeeText:      "$50.00",
	}, surface)

	assert.Equal(t, &mocks.CardSurface{
		Image:  "nova.png",
		Name:   "Nova",
		Age:    "5 years old",
		Fee:    "$50.00",
		Writes: 4,
	}, surface)
}

// Package services contains domain business logic.
package services

import (
	"fmt"

	"github.com/ersonp/adopt-card/internal/domain/entities"
	"github.com/ersonp/adopt-card/internal/domain/ports"
)

// PresenterService derives display-ready card fields from a Record.
// It holds no mutable state and is safe for concurrent use.
type PresenterService struct {
	clock ports.Clock
}

// NewPresenterService creates a new PresenterService.
func NewPresenterService(clock ports.Clock) *PresenterService {
	return &PresenterService{
		clock: clock,
	}
}

// Present builds the Presentation for record as of the clock's current day.
// It panics if record's category is not one of the tiers.
func (s *PresenterService) Present(record entities.Record) entities.Presentation {
	return entities.Presentation{
		DisplayName:  record.Name(),
		DisplayImage: record.Image(),
		AgeText:      AgeText(s.ageInYears(record)),
		FeeText:      FeeText(record.Category()),
	}
}

// ageInYears returns whole years between the birth date and today.
// Birth dates after today count as 0.
func (s *PresenterService) ageInYears(record entities.Record) int {
	today := s.clock.StartOfDay(s.clock.Now())
	born := s.clock.StartOfDay(record.BirthDate())

	years := s.clock.YearsBetween(born, today)
	if years < 0 {
		return 0
	}
	return years
}

// AgeText formats a year count, e.g. "2 years old".
func AgeText(years int) string {
	return fmt.Sprintf("%d years old", years)
}

// FeeText formats the adoption fee for a category, e.g. "$500.00".
// Every tier has a fee; anything else, such as the zero Category, is a
// programming error and panics.
func FeeText(category entities.Category) string {
	cents := category.FeeCents()
	if cents <= 0 {
		panic(fmt.Sprintf("services: category %q has no fee", category.String()))
	}
	return fmt.Sprintf("$%d.%02d", cents/100, cents%100)
}

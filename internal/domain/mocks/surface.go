package mocks

import "github.com/ersonp/adopt-card/internal/domain/entities"

// CardSurface is a mock implementation of ports.CardSurface that records
// what was written to each slot.
type CardSurface struct {
	Image  entities.ImageRef
	Name   string
	Age    string
	Fee    string
	Writes int
}

// SetImage records the image slot.
func (m *CardSurface) SetImage(image entities.ImageRef) {
	m.Image = image
	m.Writes++
}

// SetName records the name slot.
func (m *CardSurface) SetName(text string) {
	m.Name = text
	m.Writes++
}

// SetAge records the age slot.
func (m *CardSurface) SetAge(text string) {
	m.Age = text
	m.Writes++
}

// SetFee records the fee slot.
func (m *CardSurface) SetFee(text string) {
	m.Fee = text
	m.Writes++
}

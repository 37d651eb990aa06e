package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/ersonp/adopt-card/internal/domain/entities"
)

// JSONCard collects the four card slots and encodes them as one JSON object.
type JSONCard struct {
	w    io.Writer
	card cardJSON
}

type cardJSON struct {
	Image entities.ImageRef `json:"image"`
	Name  string            `json:"name"`
	Age   string            `json:"age"`
	Fee   string            `json:"fee"`
}

// NewJSONCard creates a JSONCard that writes to w.
func NewJSONCard(w io.Writer) *JSONCard {
	return &JSONCard{w: w}
}

// SetImage sets the image slot.
func (c *JSONCard) SetImage(image entities.ImageRef) { c.card.Image = image }

// SetName sets the name slot.
func (c *JSONCard) SetName(text string) { c.card.Name = text }

// SetAge sets the age slot.
func (c *JSONCard) SetAge(text string) { c.card.Age = text }

// SetFee sets the fee slot.
func (c *JSONCard) SetFee(text string) { c.card.Fee = text }

// Flush writes the card as indented JSON followed by a newline.
func (c *JSONCard) Flush() error {
	enc := json.NewEncoder(c.w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(c.card); err != nil {
		return fmt.Errorf("encoding card: %w", err)
	}
	return nil
}

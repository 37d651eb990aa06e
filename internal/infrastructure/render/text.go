// Package render provides CardSurface implementations for terminals and JSON.
package render

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/ersonp/adopt-card/internal/domain/entities"
)

// MinTextWidth is the narrowest inner width of a text card.
const MinTextWidth = 24

// TextCard lays the four card slots out vertically inside a box:
// image, name, age, fee. Nothing is written until Flush.
type TextCard struct {
	w     io.Writer
	image entities.ImageRef
	name  string
	age   string
	fee   string
}

// NewTextCard creates a TextCard that writes to w.
func NewTextCard(w io.Writer) *TextCard {
	return &TextCard{w: w}
}

// SetImage sets the image slot.
func (c *TextCard) SetImage(image entities.ImageRef) { c.image = image }

// SetName sets the name slot.
func (c *TextCard) SetName(text string) { c.name = text }

// SetAge sets the age slot.
func (c *TextCard) SetAge(text string) { c.age = text }

// SetFee sets the fee slot.
func (c *TextCard) SetFee(text string) { c.fee = text }

// Lines returns the card contents top to bottom, without the border.
func (c *TextCard) Lines() []string {
	image := "[no image]"
	if c.image != "" {
		image = fmt.Sprintf("[image: %s]", c.image)
	}
	return []string{image, c.name, c.age, c.fee}
}

// Flush writes the boxed card to the underlying writer.
func (c *TextCard) Flush() error {
	lines := c.Lines()

	width := MinTextWidth
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > width {
			width = n
		}
	}

	border := "+" + strings.Repeat("-", width+2) + "+\n"

	var b strings.Builder
	b.WriteString(border)
	for _, line := range lines {
		pad := width - utf8.RuneCountInString(line)
		b.WriteString("| ")
		b.WriteString(line)
		b.WriteString(strings.Repeat(" ", pad))
		b.WriteString(" |\n")
	}
	b.WriteString(border)

	if _, err := io.WriteString(c.w, b.String()); err != nil {
		return fmt.Errorf("writing card: %w", err)
	}
	return nil
}

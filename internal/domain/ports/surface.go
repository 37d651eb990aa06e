package ports

import "github.com/ersonp/adopt-card/internal/domain/entities"

// CardSurface is a rendering target with four write-only slots.
// It never computes anything; it only displays what it is given.
type CardSurface interface {
	SetImage(image entities.ImageRef)
	SetName(text string)
	SetAge(text string)
	SetFee(text string)
}

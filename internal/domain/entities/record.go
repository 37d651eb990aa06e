package entities

import (
	"encoding/json"
	"strings"
	"time"
)

// DateLayout is the day-granularity layout used for birth dates everywhere
// they cross a boundary (storage, import files, CLI flags, JSON).
const DateLayout = "2006-01-02"

// ImageRef is an opaque handle to an already-loaded image resource, such as
// an asset path or URL. Records never load or decode images.
type ImageRef string

// Record describes an adoptable animal. It is immutable: fields are set once
// by NewRecord and only exposed through accessors.
type Record struct {
	name      string
	birthDate time.Time
	category  Category
	image     ImageRef
}

// NewRecord creates a Record.
func NewRecord(name string, birthDate time.Time, category Category, image ImageRef) Record {
	return Record{
		name:      name,
		birthDate: birthDate,
		category:  category,
		image:     image,
	}
}

// Name returns the animal's name.
func (r Record) Name() string { return r.name }

// BirthDate returns the birth date.
func (r Record) BirthDate() time.Time { return r.birthDate }

// Category returns the fee tier.
func (r Record) Category() Category { return r.category }

// Image returns the image handle.
func (r Record) Image() ImageRef { return r.image }

type recordJSON struct {
	Name      string   `json:"name"`
	BirthDate string   `json:"birth_date"`
	Category  Category `json:"category"`
	Image     ImageRef `json:"image,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(recordJSON{
		Name:      r.name,
		BirthDate: r.birthDate.Format(DateLayout),
		Category:  r.category,
		Image:     r.image,
	})
}

// UnmarshalJSON implements json.Unmarshaler. The birth date is read in UTC.
func (r *Record) UnmarshalJSON(data []byte) error {
	var raw recordJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	birthDate, err := time.Parse(DateLayout, strings.TrimSpace(raw.BirthDate))
	if err != nil {
		return err
	}
	*r = NewRecord(raw.Name, birthDate, raw.Category, raw.Image)
	return nil
}

// Listing is a Record kept in the adoption catalog.
type Listing struct {
	ID        string    `json:"id"`
	Record    Record    `json:"record"`
	CreatedAt time.Time `json:"created_at"`
}

// NormalizeName converts a name to lowercase for case-insensitive matching.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

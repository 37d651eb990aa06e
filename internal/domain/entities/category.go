// Package entities contains core domain data structures.
package entities

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownCategory is returned when a category name is not one of the four tiers.
var ErrUnknownCategory = errors.New("unknown category")

// Category is an adoption-fee tier. The set is closed: the only valid values
// are the four tiers declared below. The zero Category is not a tier.
type Category struct {
	name     string
	feeCents int64
}

// The four tiers. Each tier carries its fee, so a tier cannot exist without one.
var (
	CategoryCommon   = Category{name: "common", feeCents: 5000}
	CategoryUncommon = Category{name: "uncommon", feeCents: 7500}
	CategoryRare     = Category{name: "rare", feeCents: 15000}
	CategoryVeryRare = Category{name: "very-rare", feeCents: 50000}
)

// categories lists every tier in ascending fee order.
var categories = [...]Category{
	CategoryCommon,
	CategoryUncommon,
	CategoryRare,
	CategoryVeryRare,
}

func init() {
	seen := make(map[string]bool, len(categories))
	for _, c := range categories {
		if c.name == "" || c.feeCents <= 0 {
			panic(fmt.Sprintf("entities: category %q has no fee", c.name))
		}
		if seen[c.name] {
			panic(fmt.Sprintf("entities: duplicate category %q", c.name))
		}
		seen[c.name] = true
	}
}

// Categories returns all tiers in ascending fee order.
func Categories() []Category {
	out := make([]Category, len(categories))
	copy(out, categories[:])
	return out
}

// CategoryNames returns the names of all tiers in ascending fee order.
func CategoryNames() []string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.name
	}
	return names
}

// ParseCategory returns the tier with the given name. Matching ignores case,
// surrounding whitespace, and accepts "_" or " " in place of "-".
func ParseCategory(name string) (Category, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.NewReplacer("_", "-", " ", "-").Replace(normalized)
	for _, c := range categories {
		if c.name == normalized {
			return c, nil
		}
	}
	return Category{}, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownCategory, name, strings.Join(CategoryNames(), ", "))
}

// String returns the tier name, e.g. "very-rare".
func (c Category) String() string {
	return c.name
}

// FeeCents returns the adoption fee in US cents.
func (c Category) FeeCents() int64 {
	return c.feeCents
}

// IsZero reports whether c is the zero Category.
func (c Category) IsZero() bool {
	return c == Category{}
}

// MarshalText implements encoding.TextMarshaler.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.name), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *Category) UnmarshalText(text []byte) error {
	parsed, err := ParseCategory(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// Package category defines the category domain model and its invariants.
package category

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	// MaxCategories is the number of live categories allowed at any time.
	MaxCategories = 5
	// MaxNameLen is the longest accepted category name, in runes.
	MaxNameLen = 50
)

var (
	// ErrNotFound is returned when a category does not exist.
	ErrNotFound = errors.New("category not found")
	// ErrDuplicateName is returned when a live category already has the name.
	ErrDuplicateName = errors.New("category name already exists")
	// ErrLimitReached is returned when creating a category beyond MaxCategories.
	ErrLimitReached = errors.New("category limit reached")
	// ErrEmptyName is returned when a name is empty or whitespace-only.
	ErrEmptyName = errors.New("category name must not be empty")
	// ErrNameTooLong is returned when a name exceeds MaxNameLen runes.
	ErrNameTooLong = errors.New("category name exceeds 50 characters")
	// ErrInvalidColor is returned when a color is not a #RRGGBB token.
	ErrInvalidColor = errors.New("invalid hex color")
)

// DefaultPalette is cycled through when a category is created without
// an explicit color.
var DefaultPalette = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#FFA07A", "#98D8C8",
	"#F7DC6F", "#BB8FCE", "#85C1E2", "#F8B195", "#C06C84",
}

// Category is a named, colored label for tasks.
type Category struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	CreatedAt time.Time `json:"created_at"`
}

// ValidateName checks a category name against the empty and length rules.
func ValidateName(name string) error {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ErrEmptyName
	}
	if utf8.RuneCountInString(trimmed) > MaxNameLen {
		return ErrNameTooLong
	}
	return nil
}

// ValidateColor checks that color is a #RRGGBB hex token.
func ValidateColor(color string) error {
	if !IsHexColor(color) {
		return ErrInvalidColor
	}
	return nil
}

// IsHexColor reports whether s is a #RRGGBB hex color token.
func IsHexColor(s string) bool {
	if len(s) != 7 || s[0] != '#' {
		return false
	}
	for _, c := range s[1:] {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		case c >= 'A' && c <= 'F':
		default:
			return false
		}
	}
	return true
}

// NamesEqual reports whether two category names collide. Uniqueness is
// case-insensitive.
func NamesEqual(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

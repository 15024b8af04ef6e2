package chore

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/colonyops/chore/internal/core/category"
	"github.com/colonyops/chore/internal/store/jsonfile"
)

// CategoryService owns the live category collection and enforces its
// invariants: unique names and at most category.MaxCategories entries.
// Every mutation persists the full collection before committing it in
// memory, so a failed write leaves the prior state intact.
type CategoryService struct {
	store   *jsonfile.CategoryStore
	log     zerolog.Logger
	palette []string
	cats    []category.Category
}

// NewCategoryService loads the category collection from the store.
// palette is cycled through for categories created without a color;
// when empty, category.DefaultPalette is used.
func NewCategoryService(store *jsonfile.CategoryStore, palette []string, log zerolog.Logger) (*CategoryService, error) {
	cats, err := store.Load()
	if err != nil {
		return nil, fmt.Errorf("load categories: %w", err)
	}

	if len(palette) == 0 {
		palette = category.DefaultPalette
	}

	return &CategoryService{
		store:   store,
		log:     log.With().Str("component", "category-service").Logger(),
		palette: palette,
		cats:    cats,
	}, nil
}

// Create adds a new category. An empty color picks the next palette
// entry. Fails with category.ErrLimitReached when the live count is
// already at the maximum, and category.ErrDuplicateName when the name
// collides with an existing one (case-insensitive).
func (s *CategoryService) Create(name, color string) (category.Category, error) {
	if len(s.cats) >= category.MaxCategories {
		return category.Category{}, category.ErrLimitReached
	}

	if err := category.ValidateName(name); err != nil {
		return category.Category{}, err
	}

	name = capitalizeFirst(strings.TrimSpace(name))
	if s.nameTaken(name, "") {
		return category.Category{}, category.ErrDuplicateName
	}

	if color == "" {
		color = s.palette[len(s.cats)%len(s.palette)]
	}
	if err := category.ValidateColor(color); err != nil {
		return category.Category{}, err
	}

	cat := category.Category{
		ID:        uuid.NewString(),
		Name:      name,
		Color:     color,
		CreatedAt: time.Now(),
	}

	next := append(slices.Clone(s.cats), cat)
	if err := s.store.Save(next); err != nil {
		return category.Category{}, err
	}
	s.cats = next

	s.log.Debug().Str("id", cat.ID).Str("name", cat.Name).Msg("category created")
	return cat, nil
}

// CategoryUpdate holds the fields of an update; nil means unchanged.
type CategoryUpdate struct {
	Name  *string
	Color *string
}

// Update renames or recolors a category. A rename is checked against
// the remaining live names.
func (s *CategoryService) Update(id string, patch CategoryUpdate) (category.Category, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return category.Category{}, category.ErrNotFound
	}

	next := slices.Clone(s.cats)
	cat := next[idx]

	if patch.Name != nil {
		if err := category.ValidateName(*patch.Name); err != nil {
			return category.Category{}, err
		}
		name := capitalizeFirst(strings.TrimSpace(*patch.Name))
		if s.nameTaken(name, id) {
			return category.Category{}, category.ErrDuplicateName
		}
		cat.Name = name
	}

	if patch.Color != nil {
		if err := category.ValidateColor(*patch.Color); err != nil {
			return category.Category{}, err
		}
		cat.Color = *patch.Color
	}

	next[idx] = cat
	if err := s.store.Save(next); err != nil {
		return category.Category{}, err
	}
	s.cats = next

	s.log.Debug().Str("id", cat.ID).Msg("category updated")
	return cat, nil
}

// Delete removes a category unconditionally. Tasks still referencing
// it keep their dangling reference; readers render those as
// uncategorized.
func (s *CategoryService) Delete(id string) error {
	idx := s.indexOf(id)
	if idx < 0 {
		return category.ErrNotFound
	}

	next := slices.Delete(slices.Clone(s.cats), idx, idx+1)
	if err := s.store.Save(next); err != nil {
		return err
	}
	s.cats = next

	s.log.Debug().Str("id", id).Msg("category deleted")
	return nil
}

// List returns the live categories in creation order.
func (s *CategoryService) List() []category.Category {
	return slices.Clone(s.cats)
}

// Get returns a category by id.
func (s *CategoryService) Get(id string) (category.Category, error) {
	if idx := s.indexOf(id); idx >= 0 {
		return s.cats[idx], nil
	}
	return category.Category{}, category.ErrNotFound
}

// GetByName returns a category by name (case-insensitive).
func (s *CategoryService) GetByName(name string) (category.Category, bool) {
	for _, c := range s.cats {
		if category.NamesEqual(c.Name, name) {
			return c, true
		}
	}
	return category.Category{}, false
}

// Count returns the number of live categories.
func (s *CategoryService) Count() int {
	return len(s.cats)
}

func (s *CategoryService) indexOf(id string) int {
	return slices.IndexFunc(s.cats, func(c category.Category) bool {
		return c.ID == id
	})
}

// nameTaken reports whether another live category (excluding exceptID)
// already uses the name.
func (s *CategoryService) nameTaken(name, exceptID string) bool {
	for _, c := range s.cats {
		if c.ID != exceptID && category.NamesEqual(c.Name, name) {
			return true
		}
	}
	return false
}

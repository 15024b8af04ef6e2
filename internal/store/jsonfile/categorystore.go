package jsonfile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/colonyops/chore/internal/core/category"
)

// CategoryStore persists the ordered category collection in a single
// JSON file.
type CategoryStore struct {
	path string
	mu   sync.RWMutex
}

// NewCategoryStore creates a category store backed by the given file path.
func NewCategoryStore(path string) *CategoryStore {
	return &CategoryStore{path: path}
}

// Load reads the full category collection. A missing or empty file
// loads as an empty collection; malformed or schema-violating content
// fails with a *CorruptError.
func (s *CategoryStore) Load() ([]category.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []category.Category{}, nil
		}
		return nil, fmt.Errorf("read categories file: %w", err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []category.Category{}, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var cats []category.Category
	if err := dec.Decode(&cats); err != nil {
		return nil, &CorruptError{Path: s.path, Err: err}
	}

	for i, c := range cats {
		if err := validateCategoryRecord(c); err != nil {
			return nil, &CorruptError{Path: s.path, Err: fmt.Errorf("category %d: %w", i, err)}
		}
	}

	return cats, nil
}

// Save overwrites the backing file with the full collection.
func (s *CategoryStore) Save(cats []category.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cats == nil {
		cats = []category.Category{}
	}

	data, err := json.MarshalIndent(cats, "", "  ")
	if err != nil {
		return &WriteError{Path: s.path, Err: err}
	}

	return writeAtomic(s.path, append(data, '\n'))
}

func validateCategoryRecord(c category.Category) error {
	switch {
	case c.ID == "":
		return fmt.Errorf("missing id")
	case c.Name == "":
		return fmt.Errorf("missing name")
	case c.Color == "":
		return fmt.Errorf("missing color")
	case c.CreatedAt.IsZero():
		return fmt.Errorf("missing created_at")
	}
	return nil
}

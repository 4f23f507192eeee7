package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Store is the in-process sneaker catalog. It is built once at startup and
// never mutated, so concurrent readers need no locking.
type Store struct {
	items []Sneaker
	byID  map[string]Sneaker
}

// New builds a catalog from an ordered record slice. Records keep their
// input order; ids must be unique and non-empty.
func New(items []Sneaker) (*Store, error) {
	s := &Store{
		items: items,
		byID:  make(map[string]Sneaker, len(items)),
	}
	for _, sn := range items {
		if sn.ID == "" {
			return nil, fmt.Errorf("catalog: record %q has no id", sn.Name)
		}
		if _, dup := s.byID[sn.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate id %q", sn.ID)
		}
		s.byID[sn.ID] = sn
	}
	return s, nil
}

// Load reads the seed file at path. A missing or malformed file is a startup
// failure; the process must not serve without a catalog.
func Load(path string) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open seed data: %w", err)
	}
	defer f.Close()
	return Read(f)
}

func Read(r io.Reader) (*Store, error) {
	var items []Sneaker
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("catalog: decode seed data: %w", err)
	}
	return New(items)
}

func (s *Store) All() []Sneaker { return s.items }

func (s *Store) ByID(id string) (Sneaker, bool) {
	sn, ok := s.byID[id]
	return sn, ok
}

func (s *Store) Len() int { return len(s.items) }

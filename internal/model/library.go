package model

import "github.com/google/uuid"

// BoxSet is a reusable, named collection of box definitions.
type BoxSet struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Boxes []Box  `json:"boxes"`
}

// NewBoxSet creates a BoxSet with a generated ID.
func NewBoxSet(name string, boxes []Box) BoxSet {
	return BoxSet{
		ID:    uuid.New().String()[:8],
		Name:  name,
		Boxes: boxes,
	}
}

// Library holds the user's saved box sets.
type Library struct {
	Sets []BoxSet `json:"sets"`
}

// DefaultLibrary returns a library with a couple of starter sets.
func DefaultLibrary() Library {
	return Library{
		Sets: []BoxSet{
			NewBoxSet("Nested cubes", []Box{
				NewBox("Cube 4", 4, 4, 4),
				NewBox("Cube 3", 3, 3, 3),
				NewBox("Cube 2", 2, 2, 2),
			}),
			NewBoxSet("Mixed cartons", []Box{
				NewBox("Pallet carton", 12, 10, 6),
				NewBox("Shoe box", 9, 7, 4),
				NewBox("Book carton", 8, 6, 10),
				NewBox("Small parcel", 5, 4, 3),
			}),
		},
	}
}

// FindSetByName returns a pointer to the first set with the given name, or nil.
func (l *Library) FindSetByName(name string) *BoxSet {
	for i := range l.Sets {
		if l.Sets[i].Name == name {
			return &l.Sets[i]
		}
	}
	return nil
}

// SetNames returns the names of all saved sets.
func (l *Library) SetNames() []string {
	names := make([]string, len(l.Sets))
	for i, s := range l.Sets {
		names[i] = s.Name
	}
	return names
}

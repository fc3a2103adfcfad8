package blueprint

import (
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

type (
	// Blueprint holds every shape of one floor plan. Insertion order is
	// kept; later shapes win hit-test ties within their collection.
	Blueprint struct {
		// House is the list of rooms.
		House []*Shape `yaml:"rooms"`
		// Furnishings is the list of placed objects (furniture etc.).
		// Furnishings always hit-test before rooms.
		Furnishings []*Shape `yaml:"furnishings"`
	}
)

func New() *Blueprint {
	return &Blueprint{
		House:       make([]*Shape, 0),
		Furnishings: make([]*Shape, 0),
	}
}

// FindItemAt returns the shape under the point, or nil. Furnishings are
// scanned first, each collection in reverse insertion order, so the most
// recently added shape wins ties.
func (b *Blueprint) FindItemAt(x, y float64) *Shape {
	for i := len(b.Furnishings) - 1; i >= 0; i-- {
		if b.Furnishings[i].Contains(x, y) {
			return b.Furnishings[i]
		}
	}
	for i := len(b.House) - 1; i >= 0; i-- {
		if b.House[i].Contains(x, y) {
			return b.House[i]
		}
	}
	return nil
}

// Append adds a shape to the collection matching its kind.
func (b *Blueprint) Append(s *Shape) {
	if s.Kind == KindObject {
		b.Furnishings = append(b.Furnishings, s)
	} else {
		b.House = append(b.House, s)
	}
}

// Remove takes a shape out of its collection, preserving the order of the
// remaining shapes. Returns false if the shape is not present.
func (b *Blueprint) Remove(s *Shape) bool {
	list := &b.House
	if s.Kind == KindObject {
		list = &b.Furnishings
	}
	for i, it := range *list {
		if it == s {
			*list = append((*list)[:i], (*list)[i+1:]...)
			return true
		}
	}
	return false
}

// TotalArea sums room areas, flooring each dimension at 0.1 so mid-drag
// degenerate rectangles don't flash a zero total.
func (b *Blueprint) TotalArea() float64 {
	total := 0.0
	for _, r := range b.House {
		total += max(0.1, r.Width) * max(0.1, r.Height)
	}
	return total
}

// Bounds returns the minimal plane rectangle containing every shape.
// ok is false when the blueprint is empty.
func (b *Blueprint) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	first := true
	for _, list := range [][]*Shape{b.House, b.Furnishings} {
		for _, s := range list {
			if first {
				minX, minY = s.X, s.Y
				maxX, maxY = s.X+s.Width, s.Y+s.Height
				first = false
				continue
			}
			minX = min(minX, s.X)
			minY = min(minY, s.Y)
			maxX = max(maxX, s.X+s.Width)
			maxY = max(maxY, s.Y+s.Height)
		}
	}
	return minX, minY, maxX, maxY, !first
}

// Clear removes every shape.
func (b *Blueprint) Clear() {
	b.House = b.House[:0]
	b.Furnishings = b.Furnishings[:0]
}

func (b *Blueprint) Save(path string) error {
	_ = os.MkdirAll(filepath.Dir(path), 0755)

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	encoder := yaml.NewEncoder(f)
	defer encoder.Close()
	encoder.SetIndent(4)

	return encoder.Encode(b)
}

func (b *Blueprint) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(b); err != nil {
		return err
	}

	// Kind is implied by the collection and not stored in the file.
	// Files edited by hand may also omit IDs.
	for _, r := range b.House {
		r.Kind = KindRoom
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
	}
	for _, o := range b.Furnishings {
		o.Kind = KindObject
		if o.ID == "" {
			o.ID = uuid.NewString()
		}
	}
	return nil
}

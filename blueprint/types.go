package blueprint

import (
	"math"

	"github.com/google/uuid"
)

type (
	// Kind distinguishes the two shape variants. Only rooms can be
	// resized by handle; furnishings are moved and edited as a whole.
	Kind uint8

	// State is a value snapshot of a shape's editable fields. History
	// entries and the clipboard store states, never shape references.
	State struct {
		Name   string
		X      float64
		Y      float64
		Width  float64
		Height float64
	}

	// Shape is an axis-aligned rectangle on the plane. X/Y is the
	// minimum corner. Collections, the selection, and history entries
	// all share the same *Shape, so undo/redo mutation is observed
	// everywhere at once. ID is a UUID kept stable across edits and
	// save/load.
	Shape struct {
		ID     string  `yaml:"id"`
		Kind   Kind    `yaml:"-"`
		Name   string  `yaml:"name"`
		X      float64 `yaml:"x"`
		Y      float64 `yaml:"y"`
		Width  float64 `yaml:"width"`
		Height float64 `yaml:"height"`
	}

	// Handle identifies one of the eight resize anchors on a room
	// boundary. Corners are the combination of their two edges.
	Handle uint8
)

const (
	KindRoom Kind = iota
	KindObject
)

const (
	HandleLeft Handle = 1 << iota
	HandleRight
	HandleTop
	HandleBottom

	HandleNone Handle = 0
)

// DefaultHandleTolerance is the absolute distance (in plane units) within
// which a pointer counts as being on a boundary line.
const DefaultHandleTolerance = 5

func NewRoom(name string, x, y, width, height float64) *Shape {
	return &Shape{ID: uuid.NewString(), Kind: KindRoom, Name: name, X: x, Y: y, Width: width, Height: height}
}

func NewObject(name string, x, y, width, height float64) *Shape {
	return &Shape{ID: uuid.NewString(), Kind: KindObject, Name: name, X: x, Y: y, Width: width, Height: height}
}

// State returns a value snapshot of the shape.
func (s *Shape) State() State {
	return State{Name: s.Name, X: s.X, Y: s.Y, Width: s.Width, Height: s.Height}
}

// SetState restores a snapshot in place.
func (s *Shape) SetState(st State) {
	s.Name, s.X, s.Y, s.Width, s.Height = st.Name, st.X, st.Y, st.Width, st.Height
}

// Contains reports whether the point lies inside the rectangle,
// boundaries included.
func (s *Shape) Contains(px, py float64) bool {
	return s.X <= px && px <= s.X+s.Width && s.Y <= py && py <= s.Y+s.Height
}

// ResizeHandle returns the handle under the point, or HandleNone. Only
// rooms expose handles. A point near two perpendicular boundary lines
// resolves to the corner, never to a single edge.
func (s *Shape) ResizeHandle(px, py, tolerance float64) Handle {
	if s.Kind != KindRoom {
		return HandleNone
	}
	l, r := s.X, s.X+s.Width
	b, t := s.Y, s.Y+s.Height
	onL := math.Abs(px-l) < tolerance
	onR := math.Abs(px-r) < tolerance
	onB := math.Abs(py-b) < tolerance
	onT := math.Abs(py-t) < tolerance

	switch {
	case onT && onL:
		return HandleTop | HandleLeft
	case onT && onR:
		return HandleTop | HandleRight
	case onB && onL:
		return HandleBottom | HandleLeft
	case onB && onR:
		return HandleBottom | HandleRight
	case onT:
		return HandleTop
	case onB:
		return HandleBottom
	case onL:
		return HandleLeft
	case onR:
		return HandleRight
	}
	return HandleNone
}

func (h Handle) String() string {
	switch h {
	case HandleTop | HandleLeft:
		return "top-left"
	case HandleTop | HandleRight:
		return "top-right"
	case HandleBottom | HandleLeft:
		return "bottom-left"
	case HandleBottom | HandleRight:
		return "bottom-right"
	case HandleTop:
		return "top"
	case HandleBottom:
		return "bottom"
	case HandleLeft:
		return "left"
	case HandleRight:
		return "right"
	}
	return "none"
}

package blueprint

import "testing"

func TestShapeContains(t *testing.T) {
	room := NewRoom("Kitchen", 0, 0, 10, 10)

	tests := []struct {
		name string
		x, y float64
		want bool
	}{
		{"center", 5, 5, true},
		{"left boundary", 0, 5, true},
		{"right boundary", 10, 5, true},
		{"bottom boundary", 5, 0, true},
		{"top boundary", 5, 10, true},
		{"corner", 10, 10, true},
		{"outside right", 10.01, 5, false},
		{"outside left", -0.01, 5, false},
		{"outside above", 5, 10.5, false},
		{"far away", 100, 100, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := room.Contains(tt.x, tt.y); got != tt.want {
				t.Errorf("Contains(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestResizeHandle(t *testing.T) {
	// Room spanning (10,20) to (40,50), tolerance 5.
	room := NewRoom("Study", 10, 20, 30, 30)

	tests := []struct {
		name string
		x, y float64
		want Handle
	}{
		{"interior", 25, 35, HandleNone},
		{"left edge", 12, 35, HandleLeft},
		{"right edge", 38, 35, HandleRight},
		{"bottom edge", 25, 22, HandleBottom},
		{"top edge", 25, 48, HandleTop},
		{"bottom-left corner", 12, 22, HandleBottom | HandleLeft},
		{"bottom-right corner", 38, 22, HandleBottom | HandleRight},
		{"top-left corner", 12, 48, HandleTop | HandleLeft},
		{"top-right corner", 38, 48, HandleTop | HandleRight},
		// A point within tolerance of two perpendicular edges must
		// resolve to the corner, never to a single edge.
		{"near both top and left", 13.5, 46.5, HandleTop | HandleLeft},
		{"just outside tolerance", 16, 35, HandleNone},
		{"outside but within tolerance of right", 43, 35, HandleRight},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := room.ResizeHandle(tt.x, tt.y, DefaultHandleTolerance); got != tt.want {
				t.Errorf("ResizeHandle(%v, %v) = %s, want %s", tt.x, tt.y, got, tt.want)
			}
		})
	}
}

func TestResizeHandleObjectsHaveNone(t *testing.T) {
	obj := NewObject("Sofa", 0, 0, 7, 3)
	if got := obj.ResizeHandle(0, 0, DefaultHandleTolerance); got != HandleNone {
		t.Errorf("objects must not expose resize handles, got %s", got)
	}
}

func TestStateRoundTrip(t *testing.T) {
	room := NewRoom("Kitchen", 1, 2, 3, 4)
	st := room.State()
	room.SetState(State{Name: "Pantry", X: 9, Y: 9, Width: 1, Height: 1})
	room.SetState(st)
	if room.Name != "Kitchen" || room.X != 1 || room.Y != 2 || room.Width != 3 || room.Height != 4 {
		t.Errorf("state restore mismatch: %+v", room)
	}
}

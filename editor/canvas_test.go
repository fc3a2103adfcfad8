package editor

import (
	"testing"

	"gioui.org/f32"
	"gioui.org/io/pointer"
)

// newCanvasEditor returns an editor with a live view: 500x500 px canvas
// over the plane square (0,0)-(50,50), 10 px per unit.
func newCanvasEditor() *Editor {
	e := newTestEditor()
	e.view = view{
		initialized: true,
		originX:     0,
		originY:     50,
		scale:       10,
		width:       500,
		height:      500,
	}
	return e
}

func pt(e *Editor, x, y float64) f32.Point {
	sx, sy := e.view.toScreen(x, y)
	return f32.Point{X: sx, Y: sy}
}

// A drag grabs the pointer, so its release can arrive with a position
// outside the canvas. The release must still finish the drag.
func TestReleaseOutsideCanvasCommitsDrag(t *testing.T) {
	e := newCanvasEditor()
	room := e.addTestRoom(t, "Kitchen", 0, 0, 10, 10)

	e.canvasPointerEvent(pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonPrimary, Position: pt(e, 5, 5)})
	if e.action != actionMoving {
		t.Fatalf("action = %v, want actionMoving", e.action)
	}
	e.canvasPointerEvent(pointer.Event{Kind: pointer.Drag, Buttons: pointer.ButtonPrimary, Position: pt(e, 10, 10)})
	if room.X != 5 || room.Y != 5 {
		t.Fatalf("room at (%v, %v), want (5, 5)", room.X, room.Y)
	}

	e.canvasPointerEvent(pointer.Event{Kind: pointer.Release, Position: f32.Point{X: -3, Y: 400}})

	if e.action != actionIdle {
		t.Errorf("action = %v, want actionIdle after out-of-bounds release", e.action)
	}
	if !e.history.CanUndo() {
		t.Error("the finished move must be recorded")
	}

	// A later buttonless move must not keep applying the drag.
	e.canvasPointerEvent(pointer.Event{Kind: pointer.Move, Position: pt(e, 20, 20)})
	if room.X != 5 || room.Y != 5 {
		t.Errorf("room moved to (%v, %v) without a button held", room.X, room.Y)
	}

	e.undo()
	if room.X != 0 || room.Y != 0 {
		t.Errorf("undo of the move left the room at (%v, %v)", room.X, room.Y)
	}
}

func TestReleaseOutsideCanvasFinishesDraw(t *testing.T) {
	e := newCanvasEditor()
	e.toggleDrawMode()

	e.canvasPointerEvent(pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonPrimary, Position: pt(e, 5, 5)})
	e.canvasPointerEvent(pointer.Event{Kind: pointer.Drag, Buttons: pointer.ButtonPrimary, Position: pt(e, 15, 15)})
	e.canvasPointerEvent(pointer.Event{Kind: pointer.Release, Position: f32.Point{X: 600, Y: 600}})

	if e.dialog == nil || e.dialog.kind != dialogRoomName {
		t.Fatal("releasing a valid draw outside the canvas must still prompt for a name")
	}
	if e.ghost != nil || e.action != actionIdle {
		t.Error("draw state must clear on release")
	}
}

// A pointer.Cancel means the grab was lost; the drag aborts without a
// commit and the shape snaps back to its pointer-down snapshot.
func TestCancelEventAbortsDrag(t *testing.T) {
	e := newCanvasEditor()
	room := e.addTestRoom(t, "Kitchen", 0, 0, 10, 10)

	e.canvasPointerEvent(pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonPrimary, Position: pt(e, 5, 5)})
	e.canvasPointerEvent(pointer.Event{Kind: pointer.Drag, Buttons: pointer.ButtonPrimary, Position: pt(e, 10, 10)})
	e.canvasPointerEvent(pointer.Event{Kind: pointer.Cancel})

	if room.X != 0 || room.Y != 0 {
		t.Errorf("room at (%v, %v), want snapped back to (0, 0)", room.X, room.Y)
	}
	if e.action != actionIdle {
		t.Errorf("action = %v, want actionIdle", e.action)
	}
	if e.history.CanUndo() {
		t.Error("an aborted drag must not record history")
	}
}

func TestCancelEventStopsPan(t *testing.T) {
	e := newCanvasEditor()

	e.canvasPointerEvent(pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonSecondary, Position: f32.Point{X: 100, Y: 100}})
	if !e.isPanning {
		t.Fatal("secondary press must start panning")
	}
	e.canvasPointerEvent(pointer.Event{Kind: pointer.Cancel})
	if e.isPanning {
		t.Error("cancel must stop panning")
	}
}

func TestOutOfBoundsPressIgnored(t *testing.T) {
	e := newCanvasEditor()
	e.addTestRoom(t, "Kitchen", 0, 0, 10, 10)

	e.canvasPointerEvent(pointer.Event{Kind: pointer.Press, Buttons: pointer.ButtonPrimary, Position: f32.Point{X: -10, Y: 100}})

	if e.selected != nil || e.action != actionIdle {
		t.Error("a press outside the canvas must not start an interaction")
	}
}

package editor

import (
	"fmt"
	"math"

	"gioui.org/io/pointer"

	"github.com/modelum/modelum/blueprint"
)

// pointerDown classifies a primary-button press. Evaluated in strict
// priority order: armed object placement, then resize (a handle on the
// already-selected room), then move/select, then free-draw, then
// deselect.
func (e *Editor) pointerDown(x, y float64) {
	if e.modal() {
		return
	}
	e.startX, e.startY = x, y

	if e.pendingObject != nil {
		e.addObjectAt(x, y)
		return
	}

	item := e.bp.FindItemAt(x, y)
	var handle blueprint.Handle
	if item != nil && item.Kind == blueprint.KindRoom {
		handle = item.ResizeHandle(x, y, blueprint.DefaultHandleTolerance)
	}

	switch {
	case handle != blueprint.HandleNone && item == e.selected:
		// Resizing is deliberate: handles only grab on the room that
		// is already selected.
		e.action = actionResizing
		e.activeHandle = handle
		st := item.State()
		e.original = &st
	case item != nil:
		e.selectItem(item)
		e.action = actionMoving
		st := item.State()
		e.original = &st
	case e.drawMode:
		e.selectItem(nil)
		e.action = actionDrawing
		e.ghost = &ghostRect{X: x, Y: y}
	default:
		e.selectItem(nil)
	}
}

// doubleClick opens the properties editor for the shape under the
// pointer. An armed placement token still wins, as on a single press.
func (e *Editor) doubleClick(x, y float64) {
	if e.modal() {
		return
	}
	if e.pendingObject != nil {
		e.addObjectAt(x, y)
		return
	}
	if item := e.bp.FindItemAt(x, y); item != nil {
		e.openProperties(item)
	}
}

// pointerMove applies the current drag, or tracks the placement ghost
// while an object token is armed. Idle moves change no geometry.
func (e *Editor) pointerMove(x, y float64) {
	if e.modal() {
		return
	}
	if e.pendingObject != nil {
		t := e.pendingObject
		e.ghost = &ghostRect{X: x - t.Width/2, Y: y - t.Height/2, W: t.Width, H: t.Height}
		return
	}

	switch e.action {
	case actionDrawing:
		if e.ghost != nil {
			e.ghost.W = x - e.startX
			e.ghost.H = y - e.startY
		}
	case actionMoving:
		if e.selected != nil {
			os := e.original
			e.selected.SetState(blueprint.State{
				Name:   os.Name,
				X:      os.X + (x - e.startX),
				Y:      os.Y + (y - e.startY),
				Width:  os.Width,
				Height: os.Height,
			})
		}
	case actionResizing:
		if e.selected != nil {
			e.resizeTo(x, y)
		}
	}
}

// resizeTo adjusts the edges named by the active handle. Each dimension
// is floored at 1 unit so a drag past the opposite edge clamps instead
// of inverting the rectangle.
func (e *Editor) resizeTo(x, y float64) {
	os := e.original
	nx, ny, nw, nh := os.X, os.Y, os.Width, os.Height
	if e.activeHandle&blueprint.HandleRight != 0 {
		nw = math.Max(1, x-os.X)
	}
	if e.activeHandle&blueprint.HandleLeft != 0 {
		nw, nx = math.Max(1, (os.X+os.Width)-x), x
	}
	if e.activeHandle&blueprint.HandleTop != 0 {
		nh = math.Max(1, y-os.Y)
	}
	if e.activeHandle&blueprint.HandleBottom != 0 {
		nh, ny = math.Max(1, (os.Y+os.Height)-y), y
	}
	e.selected.SetState(blueprint.State{Name: os.Name, X: nx, Y: ny, Width: nw, Height: nh})
}

// pointerUp finishes the current drag. A released draw rectangle larger
// than 1x1 prompts for a name; move/resize drags commit an edit entry
// only when the final state differs from the snapshot.
func (e *Editor) pointerUp() {
	if e.action == actionIdle {
		return
	}

	switch e.action {
	case actionDrawing:
		if g := e.ghost; g != nil && math.Abs(g.W) > 1 && math.Abs(g.H) > 1 {
			e.openRoomName(
				math.Min(g.X, g.X+g.W),
				math.Min(g.Y, g.Y+g.H),
				math.Abs(g.W),
				math.Abs(g.H),
			)
		}
		e.ghost = nil
	case actionMoving, actionResizing:
		if e.selected != nil && e.original != nil && e.selected.State() != *e.original {
			e.commit(blueprint.Edited(e.selected, *e.original, e.selected.State()))
		}
	}

	e.action = actionIdle
	e.original = nil
	e.activeHandle = blueprint.HandleNone
}

// pointerCancel aborts an in-progress drag after the pointer grab is
// lost: the dragged shape snaps back to its pointer-down snapshot and no
// history entry is recorded. Draw mode and the placement token survive.
func (e *Editor) pointerCancel() {
	if e.action == actionIdle {
		return
	}
	if (e.action == actionMoving || e.action == actionResizing) && e.selected != nil && e.original != nil {
		e.selected.SetState(*e.original)
	}
	e.ghost = nil
	e.action = actionIdle
	e.original = nil
	e.activeHandle = blueprint.HandleNone
}

// cancel aborts any in-progress interaction: ghost, placement token, and
// drag state are cleared. Draw mode is kept only for toggle re-entry.
func (e *Editor) cancel(keepDrawMode bool) {
	e.ghost = nil
	e.pendingObject = nil
	if !keepDrawMode {
		e.drawMode = false
	}
	e.action = actionIdle
	e.original = nil
	e.activeHandle = blueprint.HandleNone
	e.cursor = pointer.CursorDefault
}

func (e *Editor) toggleDrawMode() {
	e.drawMode = !e.drawMode
	if e.drawMode {
		e.cancel(true)
		e.cursor = pointer.CursorCrosshair
	} else {
		e.cursor = pointer.CursorDefault
	}
}

// armObject arms the placement token for the currently selected template.
// The next pointer-down commits a centered object and clears the token.
func (e *Editor) armObject() {
	if len(e.templates) == 0 {
		return
	}
	e.cancel(false)
	e.pendingObject = &e.templates[e.selectedTemplate]
	e.cursor = pointer.CursorCrosshair
}

func (e *Editor) addObjectAt(x, y float64) {
	t := e.pendingObject
	obj := blueprint.NewObject(t.Name, x-t.Width/2, y-t.Height/2, t.Width, t.Height)
	e.bp.Append(obj)
	e.commit(blueprint.Added(obj))
	e.cancel(false)
}

// nudgeSelected moves the selection by a fixed increment, one history
// entry per keypress.
func (e *Editor) nudgeSelected(dx, dy float64) {
	if e.selected == nil || e.modal() {
		return
	}
	before := e.selected.State()
	after := before
	after.X += dx
	after.Y += dy
	e.selected.SetState(after)
	e.commit(blueprint.Edited(e.selected, before, after))
}

// copyRoom snapshots the selected room's state. Only rooms can be copied.
func (e *Editor) copyRoom() {
	if e.selected != nil && e.selected.Kind == blueprint.KindRoom {
		st := e.selected.State()
		e.clipboard = &st
	}
}

// pasteRoom adds a copy of the clipboard room at the current view center
// and selects it.
func (e *Editor) pasteRoom() {
	if e.clipboard == nil {
		return
	}
	cx, cy := e.view.center()
	room := blueprint.NewRoom(e.clipboard.Name+"(copy)", cx, cy, e.clipboard.Width, e.clipboard.Height)
	e.bp.Append(room)
	e.commit(blueprint.Added(room))
	e.selectItem(room)
}

// removeShape deletes a shape and records the deletion. The caller is
// responsible for confirmation.
func (e *Editor) removeShape(s *blueprint.Shape) {
	last := s.State()
	if !e.bp.Remove(s) {
		return
	}
	e.commit(blueprint.Deleted(s, last))
	if e.selected == s {
		e.selectItem(nil)
	}
}

func (e *Editor) deleteSelected() {
	if e.selected == nil || e.modal() {
		return
	}
	target := e.selected
	e.openConfirm("Confirm Deletion",
		fmt.Sprintf("Are you sure you want to delete %q?", target.Name),
		func() { e.removeShape(target) })
}

func (e *Editor) clearAll() {
	e.openConfirm("Clear All",
		"This will clear the layout and all history. Continue?",
		e.doClearAll)
}

// doClearAll empties the blueprint, history, and selection. The
// clipboard survives so a copied room can be pasted into the fresh
// layout.
func (e *Editor) doClearAll() {
	e.bp.Clear()
	e.history.Clear()
	e.selectItem(nil)
	e.dirty = true
}

// generateHouse replaces the layout with a random one, confirming first
// when rooms already exist.
func (e *Editor) generateHouse() {
	if len(e.bp.House) > 0 {
		e.openConfirm("Generate House",
			"This will clear the current layout. Continue?",
			e.doGenerate)
		return
	}
	e.doGenerate()
}

func (e *Editor) doGenerate() {
	e.doClearAll()
	for _, r := range blueprint.Generate() {
		e.bp.Append(r)
	}
}

// modal reports whether a dialog currently swallows all editing input.
func (e *Editor) modal() bool {
	return e.dialog != nil || e.showCloseDialog
}

// updateCursor picks the idle pointer affordance: resize beats move,
// move beats draw, draw beats default.
func (e *Editor) updateCursor(x, y float64) {
	if e.action != actionIdle || e.modal() {
		return
	}
	cur := pointer.CursorDefault
	switch {
	case e.pendingObject != nil:
		cur = pointer.CursorCrosshair
	case e.selected != nil && e.selected.ResizeHandle(x, y, blueprint.DefaultHandleTolerance) != blueprint.HandleNone:
		cur = handleCursor(e.selected.ResizeHandle(x, y, blueprint.DefaultHandleTolerance))
	case e.bp.FindItemAt(x, y) != nil:
		cur = pointer.CursorGrab
	case e.drawMode:
		cur = pointer.CursorCrosshair
	}
	e.cursor = cur
}

// handleCursor maps a resize handle to its compass cursor. Plane y points
// up, so the plane top edge sits at the top of the screen as well.
func handleCursor(h blueprint.Handle) pointer.Cursor {
	switch h {
	case blueprint.HandleTop | blueprint.HandleLeft:
		return pointer.CursorNorthWestResize
	case blueprint.HandleTop | blueprint.HandleRight:
		return pointer.CursorNorthEastResize
	case blueprint.HandleBottom | blueprint.HandleLeft:
		return pointer.CursorSouthWestResize
	case blueprint.HandleBottom | blueprint.HandleRight:
		return pointer.CursorSouthEastResize
	case blueprint.HandleTop:
		return pointer.CursorNorthResize
	case blueprint.HandleBottom:
		return pointer.CursorSouthResize
	case blueprint.HandleLeft:
		return pointer.CursorWestResize
	case blueprint.HandleRight:
		return pointer.CursorEastResize
	}
	return pointer.CursorDefault
}

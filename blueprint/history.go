package blueprint

type (
	// Op tags a history entry with the mutation it records.
	Op uint8

	// Entry is one reversible mutation. For add/delete entries only
	// Before is set (the shape's state at commit time); edits carry
	// both snapshots. Shape is the live pointer shared with the
	// collections, so undo/redo restore state in place.
	Entry struct {
		Op     Op
		Shape  *Shape
		Before *State
		After  *State
	}

	// History is the linear undo/redo log. Committing a new entry
	// discards any pending redo entries.
	History struct {
		undo []Entry
		redo []Entry
	}
)

const (
	OpAddRoom Op = iota
	OpDeleteRoom
	OpEditRoom
	OpAddObject
	OpDeleteObject
	OpEditObject
)

// Added builds the entry for a freshly added shape.
func Added(s *Shape) Entry {
	st := s.State()
	op := OpAddRoom
	if s.Kind == KindObject {
		op = OpAddObject
	}
	return Entry{Op: op, Shape: s, Before: &st}
}

// Deleted builds the entry for a removed shape, capturing its last state.
func Deleted(s *Shape, last State) Entry {
	op := OpDeleteRoom
	if s.Kind == KindObject {
		op = OpDeleteObject
	}
	return Entry{Op: op, Shape: s, Before: &last}
}

// Edited builds the entry for an in-place mutation.
func Edited(s *Shape, before, after State) Entry {
	op := OpEditRoom
	if s.Kind == KindObject {
		op = OpEditObject
	}
	return Entry{Op: op, Shape: s, Before: &before, After: &after}
}

func (h *History) Commit(e Entry) {
	h.undo = append(h.undo, e)
	h.redo = h.redo[:0]
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }
func (h *History) CanRedo() bool { return len(h.redo) > 0 }

// Clear drops both stacks. Used by "clear all".
func (h *History) Clear() {
	h.undo = h.undo[:0]
	h.redo = h.redo[:0]
}

// Undo reverts the most recent entry against the blueprint and moves it
// to the redo stack. Returns false when there is nothing to undo.
func (h *History) Undo(b *Blueprint) bool {
	if len(h.undo) == 0 {
		return false
	}
	e := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]

	switch e.Op {
	case OpAddRoom, OpAddObject:
		b.Remove(e.Shape)
	case OpDeleteRoom, OpDeleteObject:
		b.Append(e.Shape)
		e.Shape.SetState(*e.Before)
	case OpEditRoom, OpEditObject:
		e.Shape.SetState(*e.Before)
	}

	h.redo = append(h.redo, e)
	return true
}

// Redo reapplies the most recently undone entry and moves it back to the
// undo stack. Returns false when there is nothing to redo.
func (h *History) Redo(b *Blueprint) bool {
	if len(h.redo) == 0 {
		return false
	}
	e := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]

	switch e.Op {
	case OpAddRoom, OpAddObject:
		b.Append(e.Shape)
	case OpDeleteRoom, OpDeleteObject:
		b.Remove(e.Shape)
	case OpEditRoom, OpEditObject:
		e.Shape.SetState(*e.After)
	}

	h.undo = append(h.undo, e)
	return true
}

package editor

import (
	"strings"
	"testing"

	"github.com/modelum/modelum/blueprint"
)

func setFields(d *dialog, name, x, y, w, h string) {
	d.name.SetText(name)
	d.fieldX.SetText(x)
	d.fieldY.SetText(y)
	d.fieldW.SetText(w)
	d.fieldH.SetText(h)
}

func TestAddRoomDialogValidation(t *testing.T) {
	tests := []struct {
		desc                string
		name, x, y, w, h    string
		wantErr             string
	}{
		{"empty name", "", "0", "0", "10", "10", "name is required"},
		{"blank name", "   ", "0", "0", "10", "10", "name is required"},
		{"non numeric x", "Kitchen", "abc", "0", "10", "10", "start x must be a number"},
		{"non numeric height", "Kitchen", "0", "0", "10", "tall", "height must be a number"},
		{"zero width", "Kitchen", "0", "0", "0", "10", "width and height must be positive"},
		{"negative height", "Kitchen", "0", "0", "10", "-2", "width and height must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			e := newTestEditor()
			e.openAddRoom()
			setFields(e.dialog, tt.name, tt.x, tt.y, tt.w, tt.h)

			e.applyDialog()

			if e.dialog == nil {
				t.Fatal("validation failure must keep the dialog open")
			}
			if !strings.Contains(e.dialog.errText, tt.wantErr) {
				t.Errorf("errText = %q, want %q", e.dialog.errText, tt.wantErr)
			}
			if len(e.bp.House) != 0 || e.history.CanUndo() {
				t.Error("validation failure must not touch the blueprint")
			}
		})
	}
}

func TestAddRoomDialogApply(t *testing.T) {
	e := newTestEditor()
	e.openAddRoom()
	setFields(e.dialog, "Kitchen", "1", "2", "10", "8")

	e.applyDialog()

	if e.dialog != nil {
		t.Fatal("a valid apply must close the dialog")
	}
	if len(e.bp.House) != 1 {
		t.Fatal("a valid apply must add the room")
	}
	room := e.bp.House[0]
	want := blueprint.State{Name: "Kitchen", X: 1, Y: 2, Width: 10, Height: 8}
	if room.State() != want {
		t.Errorf("room = %+v, want %+v", room.State(), want)
	}
	if !e.history.CanUndo() {
		t.Error("adding a room must record history")
	}
}

func TestEditPropertiesCommit(t *testing.T) {
	e := newTestEditor()
	room := blueprint.NewRoom("Kitchen", 0, 0, 10, 10)
	e.bp.Append(room)
	e.openProperties(room)

	setFields(e.dialog, "Pantry", "2", "3", "6", "4")
	e.applyDialog()

	want := blueprint.State{Name: "Pantry", X: 2, Y: 3, Width: 6, Height: 4}
	if room.State() != want {
		t.Fatalf("room = %+v, want %+v", room.State(), want)
	}

	e.undo()
	if room.Name != "Kitchen" || room.Width != 10 {
		t.Errorf("undo must restore the old state, got %+v", room.State())
	}
}

func TestEditPropertiesUnchangedRecordsNothing(t *testing.T) {
	e := newTestEditor()
	room := blueprint.NewRoom("Kitchen", 0, 0, 10, 10)
	e.bp.Append(room)
	e.openProperties(room)

	// Prefilled fields applied unchanged.
	e.applyDialog()

	if e.dialog != nil {
		t.Fatal("apply must close the dialog")
	}
	if e.history.CanUndo() {
		t.Error("an unchanged apply must not record an edit")
	}
}

func TestEditObjectProperties(t *testing.T) {
	e := newTestEditor()
	obj := blueprint.NewObject("Sofa", 0, 0, 7, 3)
	e.bp.Append(obj)
	e.openProperties(obj)

	if e.dialog.kind != dialogObjectProps {
		t.Fatalf("kind = %v, want dialogObjectProps", e.dialog.kind)
	}
	setFields(e.dialog, "Loveseat", "1", "1", "5", "3")
	e.applyDialog()

	if obj.Name != "Loveseat" || obj.Width != 5 {
		t.Errorf("object = %+v", obj.State())
	}
	if obj.Kind != blueprint.KindObject {
		t.Error("editing must not change the shape kind")
	}
}

func TestDialogDeleteFlow(t *testing.T) {
	e := newTestEditor()
	room := blueprint.NewRoom("Kitchen", 0, 0, 10, 10)
	e.bp.Append(room)
	e.openProperties(room)

	e.dialogDelete()
	if e.dialog == nil || e.dialog.kind != dialogConfirm {
		t.Fatal("delete from the properties dialog must confirm first")
	}

	e.applyDialog()
	if len(e.bp.House) != 0 {
		t.Fatal("confirming must delete the room")
	}
	e.undo()
	if len(e.bp.House) != 1 || e.bp.House[0] != room {
		t.Error("undo must restore the deleted room")
	}
}

func TestCancelDialogDiscardsEdits(t *testing.T) {
	e := newTestEditor()
	room := blueprint.NewRoom("Kitchen", 0, 0, 10, 10)
	e.bp.Append(room)
	e.openProperties(room)

	setFields(e.dialog, "Pantry", "9", "9", "9", "9")
	e.cancelDialog()

	if room.Name != "Kitchen" || room.X != 0 {
		t.Errorf("cancel must leave the room untouched, got %+v", room.State())
	}
	if e.history.CanUndo() {
		t.Error("cancel must not record history")
	}
}

package editor

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/modelum/modelum/blueprint"
)

type dialogKind uint8

const (
	dialogRoomProps dialogKind = iota
	dialogObjectProps
	dialogRoomName
	dialogConfirm
)

// dialog is the single modal overlay. While one is active, canvas
// editing and shortcuts (except Escape) are suppressed, which preserves
// the blocking behavior of a modal dialog without blocking the frame
// loop.
type dialog struct {
	kind    dialogKind
	title   string
	message string // confirmation text
	errText string // validation error shown inline; dialog stays open

	target *blueprint.Shape // nil when adding a new room

	name   widget.Editor
	fieldX widget.Editor
	fieldY widget.Editor
	fieldW widget.Editor
	fieldH widget.Editor

	// normalized rectangle pending a name after a free-draw release
	drawX, drawY, drawW, drawH float64

	onConfirm func()

	applyButton  widget.Clickable
	cancelButton widget.Clickable
	deleteButton widget.Clickable
}

func newDialog(kind dialogKind, title string) *dialog {
	d := &dialog{kind: kind, title: title}
	for _, ed := range d.editors() {
		ed.SingleLine = true
	}
	return d
}

func (d *dialog) editors() []*widget.Editor {
	return []*widget.Editor{&d.name, &d.fieldX, &d.fieldY, &d.fieldW, &d.fieldH}
}

// openAddRoom shows the empty room properties dialog ("Add Room...").
func (e *Editor) openAddRoom() {
	if e.modal() {
		return
	}
	e.dialog = newDialog(dialogRoomProps, "Add New Room")
}

// openProperties shows the prefilled properties dialog for a shape.
func (e *Editor) openProperties(s *blueprint.Shape) {
	if s == nil {
		return
	}
	var d *dialog
	if s.Kind == blueprint.KindRoom {
		d = newDialog(dialogRoomProps, "Edit Room Properties")
	} else {
		d = newDialog(dialogObjectProps, "Edit Object Properties")
	}
	d.target = s
	d.name.SetText(s.Name)
	d.fieldX.SetText(formatFloat(s.X))
	d.fieldY.SetText(formatFloat(s.Y))
	d.fieldW.SetText(formatFloat(s.Width))
	d.fieldH.SetText(formatFloat(s.Height))
	e.dialog = d
}

// openRoomName prompts for the name of a freshly drawn room. The
// normalized rectangle rides along until the prompt resolves.
func (e *Editor) openRoomName(x, y, w, h float64) {
	d := newDialog(dialogRoomName, "Room Name")
	d.drawX, d.drawY, d.drawW, d.drawH = x, y, w, h
	e.dialog = d
}

func (e *Editor) openConfirm(title, message string, onConfirm func()) {
	d := newDialog(dialogConfirm, title)
	d.message = message
	d.onConfirm = onConfirm
	e.dialog = d
}

func (e *Editor) cancelDialog() {
	e.dialog = nil
}

// applyDialog resolves the active dialog's primary action. Validation
// failures keep the dialog open with an inline error.
func (e *Editor) applyDialog() {
	d := e.dialog
	if d == nil {
		return
	}

	switch d.kind {
	case dialogConfirm:
		e.dialog = nil
		if d.onConfirm != nil {
			d.onConfirm()
		}

	case dialogRoomName:
		name := strings.TrimSpace(d.name.Text())
		e.dialog = nil
		// An empty name discards the drawn rectangle.
		if name == "" {
			return
		}
		room := blueprint.NewRoom(name, d.drawX, d.drawY, d.drawW, d.drawH)
		e.bp.Append(room)
		e.commit(blueprint.Added(room))

	case dialogRoomProps, dialogObjectProps:
		st, err := d.parseState()
		if err != nil {
			d.errText = err.Error()
			return
		}
		if d.target == nil {
			room := blueprint.NewRoom(st.Name, st.X, st.Y, st.Width, st.Height)
			e.bp.Append(room)
			e.commit(blueprint.Added(room))
			e.dialog = nil
			return
		}
		old := d.target.State()
		e.dialog = nil
		if st != old {
			d.target.SetState(st)
			e.commit(blueprint.Edited(d.target, old, st))
		}
	}
}

// dialogDelete swaps the properties dialog for a deletion confirmation.
func (e *Editor) dialogDelete() {
	d := e.dialog
	if d == nil || d.target == nil {
		return
	}
	target := d.target
	e.openConfirm("Confirm Deletion",
		"Are you sure you want to delete this item?",
		func() { e.removeShape(target) })
}

func (d *dialog) parseState() (blueprint.State, error) {
	name := strings.TrimSpace(d.name.Text())
	if name == "" {
		return blueprint.State{}, errors.New("name is required")
	}

	labels := [4]string{"start x", "start y", "width", "height"}
	fields := [4]*widget.Editor{&d.fieldX, &d.fieldY, &d.fieldW, &d.fieldH}
	var vals [4]float64
	for i, ed := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(ed.Text()), 64)
		if err != nil {
			return blueprint.State{}, fmt.Errorf("%s must be a number", labels[i])
		}
		vals[i] = v
	}
	if vals[2] <= 0 || vals[3] <= 0 {
		return blueprint.State{}, errors.New("width and height must be positive")
	}
	return blueprint.State{Name: name, X: vals[0], Y: vals[1], Width: vals[2], Height: vals[3]}, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// layoutDialog renders the active dialog overlay.
func (e *Editor) layoutDialog(gtx layout.Context) layout.Dimensions {
	d := e.dialog
	if d == nil {
		return layout.Dimensions{}
	}

	// Handle buttons before drawing.
	if d.applyButton.Clicked(gtx) {
		e.applyDialog()
	}
	if d.cancelButton.Clicked(gtx) {
		e.cancelDialog()
	}
	if d.target != nil && d.deleteButton.Clicked(gtx) {
		e.dialogDelete()
	}
	if e.dialog == nil {
		return layout.Dimensions{}
	}
	d = e.dialog

	// Semi-transparent overlay
	defer clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops).Pop()
	paint.ColorOp{Color: color.NRGBA{R: 0, G: 0, B: 0, A: 200}}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)

	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		return layout.Background{}.Layout(gtx,
			func(gtx layout.Context) layout.Dimensions {
				defer clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Max}, 8).Push(gtx.Ops).Pop()
				paint.ColorOp{Color: color.NRGBA{R: 45, G: 45, B: 45, A: 255}}.Add(gtx.Ops)
				paint.PaintOp{}.Add(gtx.Ops)
				return layout.Dimensions{Size: gtx.Constraints.Max}
			},
			func(gtx layout.Context) layout.Dimensions {
				return layout.UniformInset(unit.Dp(24)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					gtx.Constraints.Max.X = gtx.Dp(unit.Dp(380))
					return layout.Flex{Axis: layout.Vertical}.Layout(gtx, e.dialogChildren(d)...)
				})
			},
		)
	})
}

func (e *Editor) dialogChildren(d *dialog) []layout.FlexChild {
	children := []layout.FlexChild{
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Bottom: unit.Dp(16)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				label := material.H6(e.theme, d.title)
				label.Color = color.NRGBA{R: 240, G: 240, B: 240, A: 255}
				return label.Layout(gtx)
			})
		}),
	}

	switch d.kind {
	case dialogConfirm:
		children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Bottom: unit.Dp(24)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				label := material.Body1(e.theme, d.message)
				label.Color = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
				return label.Layout(gtx)
			})
		}))

	case dialogRoomName:
		children = append(children, e.dialogField(&d.name, "Enter a name"))

	case dialogRoomProps, dialogObjectProps:
		nameLabel := "Room Name"
		if d.kind == dialogObjectProps {
			nameLabel = "Object Name"
		}
		children = append(children,
			e.dialogField(&d.name, nameLabel),
			e.dialogField(&d.fieldX, "Start X"),
			e.dialogField(&d.fieldY, "Start Y"),
			e.dialogField(&d.fieldW, "Width"),
			e.dialogField(&d.fieldH, "Height"),
		)
	}

	if d.errText != "" {
		children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return layout.Inset{Bottom: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				label := material.Body2(e.theme, d.errText)
				label.Color = color.NRGBA{R: 231, G: 76, B: 60, A: 255}
				return label.Layout(gtx)
			})
		}))
	}

	children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
		return e.dialogButtons(gtx, d)
	}))
	return children
}

func (e *Editor) dialogField(ed *widget.Editor, hint string) layout.FlexChild {
	return layout.Rigid(func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{Bottom: unit.Dp(12)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			field := material.Editor(e.theme, ed, hint)
			field.Color = color.NRGBA{R: 230, G: 230, B: 230, A: 255}
			field.HintColor = color.NRGBA{R: 140, G: 140, B: 140, A: 255}
			return field.Layout(gtx)
		})
	})
}

func (e *Editor) dialogButtons(gtx layout.Context, d *dialog) layout.Dimensions {
	applyText := "Add"
	switch {
	case d.kind == dialogConfirm:
		applyText = "Yes"
	case d.target != nil:
		applyText = "Apply Changes"
	}

	children := []layout.FlexChild{
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			btn := material.Button(e.theme, &d.applyButton, applyText)
			btn.Background = color.NRGBA{R: 24, G: 188, B: 156, A: 255}
			btn.Color = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			return layout.Inset{Right: unit.Dp(8)}.Layout(gtx, btn.Layout)
		}),
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			btn := material.Button(e.theme, &d.cancelButton, "Cancel")
			btn.Background = color.NRGBA{R: 70, G: 70, B: 70, A: 255}
			btn.Color = color.NRGBA{R: 230, G: 230, B: 230, A: 255}
			return btn.Layout(gtx)
		}),
	}
	if d.target != nil {
		children = append(children, layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			btn := material.Button(e.theme, &d.deleteButton, "Delete")
			btn.Background = color.NRGBA{R: 200, G: 80, B: 60, A: 255}
			btn.Color = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
			return layout.Inset{Left: unit.Dp(16)}.Layout(gtx, btn.Layout)
		}))
	}

	return layout.Flex{Axis: layout.Horizontal, Spacing: layout.SpaceEnd}.Layout(gtx, children...)
}

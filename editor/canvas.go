package editor

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"
	"time"

	"gioui.org/f32"
	"gioui.org/io/event"
	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget/material"
)

// Dark blueprint palette.
var (
	colBackground   = color.NRGBA{R: 43, G: 62, B: 80, A: 255}
	colGrid         = color.NRGBA{R: 78, G: 106, B: 133, A: 140}
	colText         = color.NRGBA{R: 234, G: 234, B: 234, A: 255}
	colRoomFace     = color.NRGBA{R: 52, G: 73, B: 94, A: 255}
	colRoomEdge     = color.NRGBA{R: 156, G: 194, B: 229, A: 255}
	colSelectedEdge = color.NRGBA{R: 24, G: 188, B: 156, A: 255}
	colObjFace      = color.NRGBA{R: 142, G: 68, B: 173, A: 255}
	colObjEdge      = color.NRGBA{R: 189, G: 147, B: 216, A: 255}
	colSelectedObj  = color.NRGBA{R: 243, G: 156, B: 18, A: 255}
	colDrawGhost    = color.NRGBA{R: 24, G: 188, B: 156, A: 102}
	colObjectGhost  = color.NRGBA{R: 243, G: 156, B: 18, A: 153}
)

const doubleClickWindow = 400 * time.Millisecond

// layoutCanvas renders the main canvas area where blueprint editing happens.
func (e *Editor) layoutCanvas(gtx layout.Context) layout.Dimensions {
	return layout.Background{}.Layout(gtx,
		func(gtx layout.Context) layout.Dimensions {
			defer clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops).Pop()
			paint.ColorOp{Color: colBackground}.Add(gtx.Ops)
			paint.PaintOp{}.Add(gtx.Ops)
			return layout.Dimensions{Size: gtx.Constraints.Max}
		},
		func(gtx layout.Context) layout.Dimensions {
			e.updateView(gtx)
			e.handleCanvasInput(gtx)

			e.drawGrid(gtx)
			e.drawShapes(gtx)
			e.drawGhost(gtx)
			return layout.Dimensions{Size: gtx.Constraints.Max}
		},
	)
}

// updateView tracks the canvas size and auto-fits the view bounds on the
// very first draw only; later draws preserve the user's pan and zoom.
func (e *Editor) updateView(gtx layout.Context) {
	e.view.width = float32(gtx.Constraints.Max.X)
	e.view.height = float32(gtx.Constraints.Max.Y)
	if e.view.initialized {
		return
	}

	if minX, minY, maxX, maxY, ok := e.bp.Bounds(); ok {
		xm := math.Max(5, (maxX-minX)*0.1)
		ym := math.Max(5, (maxY-minY)*0.1)
		e.view.fit(minX-xm, minY-ym, maxX+xm, maxY+ym)
	} else {
		e.view.fit(0, 0, 50, 50)
	}
	e.view.initialized = true
}

// handleCanvasInput processes mouse/pointer events for editing, panning
// and zooming. All editing input is suppressed while a dialog is open or
// while the secondary button pans the view.
func (e *Editor) handleCanvasInput(gtx layout.Context) {
	// Register for pointer input events
	area := clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops)
	event.Op(gtx.Ops, e)
	e.cursor.Add(gtx.Ops)
	area.Pop()

	for {
		ev, ok := gtx.Event(pointer.Filter{
			Target:  e,
			Kinds:   pointer.Press | pointer.Release | pointer.Cancel | pointer.Drag | pointer.Move | pointer.Scroll,
			ScrollY: pointer.ScrollRange{Min: -100, Max: 100},
		})
		if !ok {
			break
		}

		if pe, ok := ev.(pointer.Event); ok {
			e.canvasPointerEvent(pe)
		}
	}
}

// canvasPointerEvent dispatches one pointer event. Release and Cancel
// are handled regardless of position: a drag grabs the pointer, so its
// terminating event may arrive with a position outside the canvas, and
// dropping it would leave the drag state stuck.
func (e *Editor) canvasPointerEvent(pe pointer.Event) {
	if e.modal() {
		return
	}

	switch pe.Kind {
	case pointer.Release:
		if pe.Buttons&pointer.ButtonSecondary == 0 {
			e.isPanning = false
		}
		if pe.Buttons&pointer.ButtonPrimary == 0 {
			e.pointerUp()
		}
		return

	case pointer.Cancel:
		e.isPanning = false
		e.pointerCancel()
		return
	}

	// Position-based events outside canvas bounds are ignored
	if pe.Position.X < 0 || pe.Position.X > e.view.width || pe.Position.Y < 0 || pe.Position.Y > e.view.height {
		return
	}

	px, py := e.view.toPlane(pe.Position.X, pe.Position.Y)

	switch pe.Kind {
	case pointer.Press:
		// Pan with the secondary button; this suppresses editing
		// until release.
		if pe.Buttons == pointer.ButtonSecondary {
			e.isPanning = true
			e.lastMouseX = pe.Position.X
			e.lastMouseY = pe.Position.Y
			break
		}
		if pe.Buttons == pointer.ButtonPrimary {
			if e.isDoubleClick(pe.Position) {
				e.doubleClick(px, py)
			} else {
				e.pointerDown(px, py)
			}
		}

	case pointer.Drag:
		if e.isPanning {
			e.view.pan(pe.Position.X-e.lastMouseX, pe.Position.Y-e.lastMouseY)
			e.lastMouseX = pe.Position.X
			e.lastMouseY = pe.Position.Y
			break
		}
		if pe.Buttons == pointer.ButtonPrimary {
			e.pointerMove(px, py)
		}

	case pointer.Move:
		e.pointerMove(px, py)
		e.updateCursor(px, py)

	case pointer.Scroll:
		// Zoom about the pointer position with the mouse wheel.
		factor := 1.0 - float64(pe.Scroll.Y)*0.002
		if factor < 0.5 {
			factor = 0.5
		}
		if factor > 2 {
			factor = 2
		}
		e.view.zoomAt(pe.Position.X, pe.Position.Y, factor)
	}
}

// isDoubleClick reports whether a primary press closely follows the
// previous one at nearly the same position.
func (e *Editor) isDoubleClick(pos f32.Point) bool {
	now := time.Now()
	dbl := now.Sub(e.lastClick) < doubleClickWindow &&
		abs32(pos.X-e.lastClickX) < 4 && abs32(pos.Y-e.lastClickY) < 4
	e.lastClick = now
	e.lastClickX, e.lastClickY = pos.X, pos.Y
	return dbl
}

func abs32(v float32) float32 {
	if v < 0 {
		return -v
	}
	return v
}

// drawGrid draws plane grid lines at a spacing that keeps them readable
// at the current zoom.
func (e *Editor) drawGrid(gtx layout.Context) {
	defer clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops).Pop()

	step := 1.0
	for step*e.view.scale < 30 {
		step *= 5
	}

	minX, maxY := e.view.toPlane(0, 0)
	maxX, minY := e.view.toPlane(e.view.width, e.view.height)

	for x := math.Floor(minX/step) * step; x <= maxX; x += step {
		sx, _ := e.view.toScreen(x, 0)
		e.drawLine(gtx, sx, 0, sx, e.view.height, 1, colGrid)
	}
	for y := math.Floor(minY/step) * step; y <= maxY; y += step {
		_, sy := e.view.toScreen(0, y)
		e.drawLine(gtx, 0, sy, e.view.width, sy, 1, colGrid)
	}
}

// drawShapes renders rooms below furnishings, with selection-dependent
// outline emphasis, then the labels.
func (e *Editor) drawShapes(gtx layout.Context) {
	defer clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops).Pop()

	for _, r := range e.bp.House {
		w, h := math.Max(0.1, r.Width), math.Max(0.1, r.Height)
		rect := e.screenRect(r.X, r.Y, w, h)

		edge, width := colRoomEdge, float32(1.5)
		if r == e.selected {
			edge, width = colSelectedEdge, 2.5
		}
		e.fillRect(gtx, rect, colRoomFace)
		e.strokeRect(gtx, rect, width, edge)

		area := w * h
		name := strings.Join(wrapName(r.Name, w), "\n")
		label := fmt.Sprintf("%s\n(%.2f sqft)", name, area)
		e.drawLabel(gtx, rect, label, unit.Sp(12))
	}

	for _, o := range e.bp.Furnishings {
		w, h := math.Max(0.1, o.Width), math.Max(0.1, o.Height)
		rect := e.screenRect(o.X, o.Y, w, h)

		edge, width := colObjEdge, float32(1)
		if o == e.selected {
			edge, width = colSelectedObj, 2
		}
		e.fillRect(gtx, rect, colObjFace)
		e.strokeRect(gtx, rect, width, edge)
		e.drawLabel(gtx, rect, o.Name, unit.Sp(10))
	}
}

// drawGhost renders the in-progress rectangle, if any: teal while
// drawing a room, orange while previewing an object placement.
func (e *Editor) drawGhost(gtx layout.Context) {
	g := e.ghost
	if g == nil {
		return
	}
	defer clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops).Pop()

	x := math.Min(g.X, g.X+g.W)
	y := math.Min(g.Y, g.Y+g.H)
	rect := e.screenRect(x, y, math.Abs(g.W), math.Abs(g.H))

	col := colDrawGhost
	if e.pendingObject != nil {
		col = colObjectGhost
	}
	e.fillRect(gtx, rect, col)
}

// screenRect converts a plane rectangle (y up) to a screen rectangle
// (y down).
func (e *Editor) screenRect(x, y, w, h float64) image.Rectangle {
	x0, y0 := e.view.toScreen(x, y+h)
	x1, y1 := e.view.toScreen(x+w, y)
	return image.Rect(int(x0), int(y0), int(x1), int(y1))
}

func (e *Editor) fillRect(gtx layout.Context, r image.Rectangle, col color.NRGBA) {
	defer clip.Rect(r).Push(gtx.Ops).Pop()
	paint.ColorOp{Color: col}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
}

func (e *Editor) strokeRect(gtx layout.Context, r image.Rectangle, width float32, col color.NRGBA) {
	rr := clip.UniformRRect(r, 0)
	defer clip.Stroke{Path: rr.Path(gtx.Ops), Width: width}.Op().Push(gtx.Ops).Pop()
	paint.ColorOp{Color: col}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
}

// drawLine draws a line between two points with the given width.
func (e *Editor) drawLine(gtx layout.Context, x1, y1, x2, y2, width float32, col color.NRGBA) {
	var path clip.Path
	path.Begin(gtx.Ops)
	path.MoveTo(f32.Point{X: x1, Y: y1})
	path.LineTo(f32.Point{X: x2, Y: y2})

	spec := path.End()
	defer clip.Stroke{Path: spec, Width: width}.Op().Push(gtx.Ops).Pop()
	paint.ColorOp{Color: col}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)
}

// drawLabel centers text inside a screen rectangle, clipped to it.
func (e *Editor) drawLabel(gtx layout.Context, r image.Rectangle, txt string, size unit.Sp) {
	if r.Dx() < 8 || r.Dy() < 8 || txt == "" {
		return
	}
	defer clip.Rect(r).Push(gtx.Ops).Pop()
	trans := op.Offset(r.Min).Push(gtx.Ops)
	defer trans.Pop()

	cgtx := gtx
	cgtx.Constraints = layout.Exact(r.Size())
	layout.Center.Layout(cgtx, func(gtx layout.Context) layout.Dimensions {
		label := material.Label(e.theme, size, txt)
		label.Color = colText
		label.Alignment = text.Middle
		return label.Layout(gtx)
	})
}

// Package editor implements the interactive floor-plan editor: the
// direct-manipulation state machine (move, resize, draw, place), the
// canvas renderer, and the surrounding Gio UI.
package editor

import (
	"log"
	"time"

	"gioui.org/io/pointer"
	"gioui.org/layout"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"github.com/modelum/modelum/blueprint"
	"github.com/modelum/modelum/project"
)

// action is the current drag classification. Object placement is not a
// drag state: an armed placement token commits on pointer-down.
type action uint8

const (
	actionIdle action = iota
	actionDrawing
	actionMoving
	actionResizing
)

// ghostRect is the provisional rectangle shown during draw-new-room and
// object placement. X/Y anchor the pointer-down corner; W/H are signed
// extents and may be negative while dragging left or down.
type ghostRect struct {
	X, Y float64
	W, H float64
}

// Editor is the main floor-plan editor component that manages the UI
// state and interactions.
type Editor struct {
	theme    *material.Theme
	filePath string
	bp       *blueprint.Blueprint
	history  *blueprint.History

	templates []blueprint.ObjectTemplate
	nudge     float64

	// Model interaction state
	selected       *blueprint.Shape
	clipboard      *blueprint.State
	action         action
	startX, startY float64          // pointer-down plane coordinates
	original       *blueprint.State // snapshot taken at drag start
	activeHandle   blueprint.Handle
	ghost          *ghostRect
	pendingObject  *blueprint.ObjectTemplate // armed placement token
	drawMode       bool
	dirty          bool // true when there are unsaved changes

	// Canvas state
	view view

	// Mouse/pointer state for canvas interaction
	isPanning              bool    // true while the secondary button pans the view
	lastMouseX, lastMouseY float32 // last mouse position for pan deltas
	lastClick              time.Time
	lastClickX, lastClickY float32
	cursor                 pointer.Cursor

	// Dialog overlay; while set, all canvas editing input is ignored.
	dialog *dialog

	// UI state
	copyButton       widget.Clickable
	pasteButton      widget.Clickable
	drawButton       widget.Clickable
	addRoomButton    widget.Clickable
	generateButton   widget.Clickable
	addObjectButton  widget.Clickable
	clearButton      widget.Clickable
	saveButton       widget.Clickable
	undoButton       widget.Clickable
	redoButton       widget.Clickable
	templateList     widget.List
	templateButtons  []widget.Clickable
	selectedTemplate int

	saveIcon *widget.Icon
	undoIcon *widget.Icon
	redoIcon *widget.Icon

	// Close confirmation dialog
	showCloseDialog    bool             // true when showing the close confirmation dialog
	closeSaveButton    widget.Clickable // "Save" button in close dialog
	closeDiscardButton widget.Clickable // "Discard" button in close dialog
	shouldClose        bool             // true when window should actually close
}

// NewEditor creates a new floor-plan editor instance.
func NewEditor(theme *material.Theme, filePath string, bp *blueprint.Blueprint, cfg *project.Config) *Editor {
	saveIcon, err := widget.NewIcon(icons.ContentSave)
	if err != nil {
		log.Printf("Failed to load save icon: %v", err)
	}
	undoIcon, err := widget.NewIcon(icons.ContentUndo)
	if err != nil {
		log.Printf("Failed to load undo icon: %v", err)
	}
	redoIcon, err := widget.NewIcon(icons.ContentRedo)
	if err != nil {
		log.Printf("Failed to load redo icon: %v", err)
	}

	return &Editor{
		theme:     theme,
		filePath:  filePath,
		bp:        bp,
		history:   &blueprint.History{},
		templates: cfg.Templates,
		nudge:     cfg.Nudge,
		templateList: widget.List{
			List: layout.List{
				Axis: layout.Vertical,
			},
		},
		templateButtons: make([]widget.Clickable, len(cfg.Templates)),
		saveIcon:        saveIcon,
		undoIcon:        undoIcon,
		redoIcon:        redoIcon,
		cursor:          pointer.CursorDefault,
	}
}

// HasUnsavedChanges returns true if there are unsaved changes to the blueprint.
func (e *Editor) HasUnsavedChanges() bool {
	return e.dirty
}

// Save saves the blueprint to disk and clears the dirty flag.
func (e *Editor) Save() error {
	if err := e.bp.Save(e.filePath); err != nil {
		return err
	}
	e.dirty = false
	return nil
}

// RequestClose is called when the window close is requested.
// Returns true if the window should close, false otherwise.
func (e *Editor) RequestClose() bool {
	// If no unsaved changes, allow close immediately
	if !e.dirty {
		return true
	}

	// If we have unsaved changes and haven't shown the dialog yet
	if !e.showCloseDialog {
		e.showCloseDialog = true
		return false // Don't close yet, show dialog first
	}

	// Dialog is showing, return whether user chose to close
	return e.shouldClose
}

// ShouldClose returns true if the window should close.
func (e *Editor) ShouldClose() bool {
	return e.shouldClose
}

func (e *Editor) selectItem(s *blueprint.Shape) {
	e.selected = s
}

// commit records a finished mutation. Any commit discards pending redo
// entries and marks the blueprint dirty.
func (e *Editor) commit(entry blueprint.Entry) {
	e.history.Commit(entry)
	e.dirty = true
}

func (e *Editor) undo() {
	if e.history.Undo(e.bp) {
		e.dirty = true
	}
}

func (e *Editor) redo() {
	if e.history.Redo(e.bp) {
		e.dirty = true
	}
}

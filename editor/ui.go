package editor

import (
	"fmt"
	"image"
	"image/color"
	"log"
	"path/filepath"

	"gioui.org/io/event"
	"gioui.org/io/key"
	"gioui.org/layout"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"

	"github.com/modelum/modelum/blueprint"
)

// Layout renders the entire editor UI
func (e *Editor) Layout(gtx layout.Context) layout.Dimensions {
	// Register for global keyboard events
	event.Op(gtx.Ops, e)
	e.handleKeys(gtx)

	// Handle close dialog buttons
	if e.closeSaveButton.Clicked(gtx) {
		if err := e.Save(); err != nil {
			log.Printf("Failed to save blueprint: %v", err)
		} else {
			log.Printf("Blueprint saved to %s", e.filePath)
		}
		e.showCloseDialog = false
		e.shouldClose = true
	}
	if e.closeDiscardButton.Clicked(gtx) {
		e.showCloseDialog = false
		e.shouldClose = true
	}

	dims := layout.Flex{
		Axis: layout.Vertical,
	}.Layout(gtx,
		// Top bar
		layout.Rigid(func(gtx layout.Context) layout.Dimensions {
			return e.layoutTopBar(gtx)
		}),
		// Middle section (sidebar + canvas)
		layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{
				Axis: layout.Horizontal,
			}.Layout(gtx,
				// Sidebar
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return e.layoutSidebar(gtx)
				}),
				// Canvas
				layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
					return e.layoutCanvas(gtx)
				}),
			)
		}),
	)

	// Draw dialogs on top if needed
	if e.dialog != nil {
		e.layoutDialog(gtx)
	}
	if e.showCloseDialog {
		e.layoutCloseDialog(gtx)
	}

	return dims
}

// handleKeys drains keyboard events. Shortcuts are suppressed while a
// dialog is open; Escape always works and dismisses the dialog first.
func (e *Editor) handleKeys(gtx layout.Context) {
	for {
		ev, ok := gtx.Event(key.Filter{Name: key.NameEscape})
		if !ok {
			break
		}
		if kev, isKey := ev.(key.Event); isKey && kev.State == key.Press {
			switch {
			case e.dialog != nil:
				e.cancelDialog()
			case e.showCloseDialog:
				e.showCloseDialog = false
			default:
				e.cancel(false)
				e.selectItem(nil)
			}
		}
	}

	type binding struct {
		filter key.Filter
		run    func()
	}
	bindings := []binding{
		{key.Filter{Name: "Z", Required: key.ModShortcut}, e.undo},
		{key.Filter{Name: "Y", Required: key.ModShortcut}, e.redo},
		{key.Filter{Name: "C", Required: key.ModShortcut}, e.copyRoom},
		{key.Filter{Name: "V", Required: key.ModShortcut}, e.pasteRoom},
		{key.Filter{Name: "S", Required: key.ModShortcut}, func() {
			if err := e.Save(); err != nil {
				log.Printf("Failed to save blueprint: %v", err)
			}
		}},
		{key.Filter{Name: "W", Required: key.ModShortcut}, func() {
			if e.RequestClose() {
				e.shouldClose = true
			}
		}},
		{key.Filter{Name: key.NameReturn}, e.openAddRoom},
		{key.Filter{Name: key.NameDeleteForward}, e.deleteSelected},
		{key.Filter{Name: key.NameDeleteBackward}, e.deleteSelected},
		{key.Filter{Name: key.NameUpArrow}, func() { e.nudgeSelected(0, e.nudge) }},
		{key.Filter{Name: key.NameDownArrow}, func() { e.nudgeSelected(0, -e.nudge) }},
		{key.Filter{Name: key.NameLeftArrow}, func() { e.nudgeSelected(-e.nudge, 0) }},
		{key.Filter{Name: key.NameRightArrow}, func() { e.nudgeSelected(e.nudge, 0) }},
	}
	for _, b := range bindings {
		for {
			ev, ok := gtx.Event(b.filter)
			if !ok {
				break
			}
			kev, isKey := ev.(key.Event)
			if !isKey || kev.State != key.Press {
				continue
			}
			if e.modal() {
				continue
			}
			b.run()
		}
	}
}

// layoutTopBar renders the top toolbar with the blueprint name and the
// save, undo and redo buttons
func (e *Editor) layoutTopBar(gtx layout.Context) layout.Dimensions {
	gtx.Constraints.Min = gtx.Constraints.Max
	gtx.Constraints.Min.Y = gtx.Dp(unit.Dp(40))
	gtx.Constraints.Max.Y = gtx.Constraints.Min.Y

	return layout.Background{}.Layout(gtx,
		func(gtx layout.Context) layout.Dimensions {
			defer clip.Rect{Max: gtx.Constraints.Min}.Push(gtx.Ops).Pop()
			paint.ColorOp{Color: color.NRGBA{R: 40, G: 40, B: 40, A: 255}}.Add(gtx.Ops)
			paint.PaintOp{}.Add(gtx.Ops)
			return layout.Dimensions{Size: gtx.Constraints.Min}
		},
		func(gtx layout.Context) layout.Dimensions {
			return layout.Flex{
				Axis:      layout.Horizontal,
				Alignment: layout.Middle,
			}.Layout(gtx,
				// Blueprint name
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
						title := "Blueprint: " + filepath.Base(e.filePath)
						if e.dirty {
							title += " *" // Add asterisk for unsaved changes
						}
						label := material.Body1(e.theme, title)
						label.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
						return label.Layout(gtx)
					})
				}),
				// Spacer
				layout.Rigid(layout.Spacer{Width: unit.Dp(16)}.Layout),
				// Save button
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					if e.saveButton.Clicked(gtx) {
						if err := e.Save(); err != nil {
							log.Printf("Failed to save blueprint: %v", err)
						} else {
							log.Printf("Blueprint saved to %s", e.filePath)
						}
					}

					// Only show button if icon loaded successfully
					if e.saveIcon != nil {
						btn := material.IconButton(e.theme, &e.saveButton, e.saveIcon, "Save blueprint")
						if e.dirty {
							btn.Background = color.NRGBA{R: 200, G: 120, B: 60, A: 255} // Orange when dirty
						} else {
							btn.Background = color.NRGBA{R: 60, G: 120, B: 200, A: 255} // Blue when clean
						}
						btn.Color = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
						btn.Size = unit.Dp(20)
						return btn.Layout(gtx)
					}
					return layout.Dimensions{}
				}),
				// Spacer
				layout.Rigid(layout.Spacer{Width: unit.Dp(8)}.Layout),
				// Undo button
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					if e.undoButton.Clicked(gtx) {
						e.undo()
					}
					return e.layoutHistoryButton(gtx, &e.undoButton, e.undoIcon, "Undo", e.history.CanUndo())
				}),
				// Spacer
				layout.Rigid(layout.Spacer{Width: unit.Dp(4)}.Layout),
				// Redo button
				layout.Rigid(func(gtx layout.Context) layout.Dimensions {
					if e.redoButton.Clicked(gtx) {
						e.redo()
					}
					return e.layoutHistoryButton(gtx, &e.redoButton, e.redoIcon, "Redo", e.history.CanRedo())
				}),
			)
		},
	)
}

func (e *Editor) layoutHistoryButton(gtx layout.Context, click *widget.Clickable, icon *widget.Icon, desc string, enabled bool) layout.Dimensions {
	if icon == nil {
		return layout.Dimensions{}
	}
	if !enabled {
		gtx = gtx.Disabled()
	}
	btn := material.IconButton(e.theme, click, icon, desc)
	btn.Background = color.NRGBA{R: 70, G: 70, B: 70, A: 255}
	btn.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
	btn.Size = unit.Dp(20)
	return btn.Layout(gtx)
}

// layoutSidebar renders the left sidebar with editing actions, creative
// tools, the object template list and blueprint info
func (e *Editor) layoutSidebar(gtx layout.Context) layout.Dimensions {
	gtx.Constraints.Min.X = gtx.Dp(unit.Dp(220))
	gtx.Constraints.Max.X = gtx.Constraints.Min.X

	// Handle sidebar button clicks
	if e.copyButton.Clicked(gtx) && !e.modal() {
		e.copyRoom()
	}
	if e.pasteButton.Clicked(gtx) && !e.modal() {
		e.pasteRoom()
	}
	if e.drawButton.Clicked(gtx) && !e.modal() {
		e.toggleDrawMode()
	}
	if e.addRoomButton.Clicked(gtx) && !e.modal() {
		e.openAddRoom()
	}
	if e.generateButton.Clicked(gtx) && !e.modal() {
		e.generateHouse()
	}
	if e.addObjectButton.Clicked(gtx) && !e.modal() {
		e.armObject()
	}
	if e.clearButton.Clicked(gtx) && !e.modal() {
		e.clearAll()
	}

	return layout.Background{}.Layout(gtx,
		func(gtx layout.Context) layout.Dimensions {
			defer clip.Rect{Max: gtx.Constraints.Min}.Push(gtx.Ops).Pop()
			paint.ColorOp{Color: color.NRGBA{R: 50, G: 50, B: 50, A: 255}}.Add(gtx.Ops)
			paint.PaintOp{}.Add(gtx.Ops)
			return layout.Dimensions{Size: gtx.Constraints.Min}
		},
		func(gtx layout.Context) layout.Dimensions {
			return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
				return layout.Flex{
					Axis: layout.Vertical,
				}.Layout(gtx,
					e.sidebarHeader("Editing Actions"),
					e.sidebarButton(&e.copyButton, "Copy Room", e.selected != nil && e.selected.Kind == blueprint.KindRoom),
					e.sidebarButton(&e.pasteButton, "Paste Room", e.clipboard != nil),
					e.sidebarHeader("Creative Tools"),
					e.sidebarToggle(&e.drawButton, "Draw Room", e.drawMode),
					e.sidebarButton(&e.addRoomButton, "Add Room...", true),
					e.sidebarButton(&e.generateButton, "Generate House", true),
					e.sidebarHeader("Place Objects"),
					// Object template list
					layout.Flexed(1, func(gtx layout.Context) layout.Dimensions {
						return material.List(e.theme, &e.templateList).Layout(gtx, len(e.templates), func(gtx layout.Context, index int) layout.Dimensions {
							return layout.Inset{Bottom: unit.Dp(4)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
								if e.templateButtons[index].Clicked(gtx) {
									e.selectedTemplate = index
								}
								t := e.templates[index]
								name := fmt.Sprintf("%s (%gx%g)", t.Name, t.Width, t.Height)
								button := material.Button(e.theme, &e.templateButtons[index], name)
								if index == e.selectedTemplate {
									button.Background = color.NRGBA{R: 80, G: 140, B: 200, A: 255}
								} else {
									button.Background = color.NRGBA{R: 70, G: 70, B: 70, A: 255}
								}
								button.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
								return button.Layout(gtx)
							})
						})
					}),
					e.sidebarToggle(&e.addObjectButton, "Add Object", e.pendingObject != nil),
					e.sidebarHeader("Blueprint Info"),
					// Total area readout
					layout.Rigid(func(gtx layout.Context) layout.Dimensions {
						return layout.Inset{Bottom: unit.Dp(8)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
							label := material.Body2(e.theme, fmt.Sprintf("Total Area: %.2f sqft", e.bp.TotalArea()))
							label.Color = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
							return label.Layout(gtx)
						})
					}),
					e.sidebarButton(&e.clearButton, "Clear All", true),
				)
			})
		},
	)
}

func (e *Editor) sidebarHeader(title string) layout.FlexChild {
	return layout.Rigid(func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{Top: unit.Dp(8), Bottom: unit.Dp(4)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			label := material.Subtitle1(e.theme, title)
			label.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
			return label.Layout(gtx)
		})
	})
}

func (e *Editor) sidebarButton(click *widget.Clickable, text string, enabled bool) layout.FlexChild {
	return layout.Rigid(func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{Bottom: unit.Dp(4)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			if !enabled {
				gtx = gtx.Disabled()
			}
			button := material.Button(e.theme, click, text)
			button.Background = color.NRGBA{R: 70, G: 70, B: 70, A: 255}
			button.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
			return button.Layout(gtx)
		})
	})
}

// sidebarToggle renders a button that stays highlighted while its mode
// is active
func (e *Editor) sidebarToggle(click *widget.Clickable, text string, active bool) layout.FlexChild {
	return layout.Rigid(func(gtx layout.Context) layout.Dimensions {
		return layout.Inset{Bottom: unit.Dp(4)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
			button := material.Button(e.theme, click, text)
			if active {
				button.Background = color.NRGBA{R: 80, G: 140, B: 200, A: 255}
			} else {
				button.Background = color.NRGBA{R: 70, G: 70, B: 70, A: 255}
			}
			button.Color = color.NRGBA{R: 220, G: 220, B: 220, A: 255}
			return button.Layout(gtx)
		})
	})
}

// layoutCloseDialog renders the close confirmation dialog
func (e *Editor) layoutCloseDialog(gtx layout.Context) layout.Dimensions {
	// Semi-transparent overlay
	defer clip.Rect{Max: gtx.Constraints.Max}.Push(gtx.Ops).Pop()
	paint.ColorOp{Color: color.NRGBA{R: 0, G: 0, B: 0, A: 200}}.Add(gtx.Ops)
	paint.PaintOp{}.Add(gtx.Ops)

	// Center the dialog
	return layout.Center.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		// Dialog box
		return layout.Background{}.Layout(gtx,
			func(gtx layout.Context) layout.Dimensions {
				// Dark dialog background
				defer clip.UniformRRect(image.Rectangle{Max: gtx.Constraints.Max}, 8).Push(gtx.Ops).Pop()
				paint.ColorOp{Color: color.NRGBA{R: 45, G: 45, B: 45, A: 255}}.Add(gtx.Ops)
				paint.PaintOp{}.Add(gtx.Ops)
				return layout.Dimensions{Size: gtx.Constraints.Max}
			},
			func(gtx layout.Context) layout.Dimensions {
				return layout.UniformInset(unit.Dp(24)).Layout(gtx, func(gtx layout.Context) layout.Dimensions {
					return layout.Flex{
						Axis: layout.Vertical,
					}.Layout(gtx,
						// Title
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							return layout.Inset{Bottom: unit.Dp(16)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
								label := material.H6(e.theme, "Unsaved Changes")
								label.Color = color.NRGBA{R: 240, G: 240, B: 240, A: 255}
								return label.Layout(gtx)
							})
						}),
						// Message
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							return layout.Inset{Bottom: unit.Dp(24)}.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
								gtx.Constraints.Max.X = gtx.Dp(unit.Dp(400))
								label := material.Body1(e.theme, "Do you want to save your blueprint before closing?")
								label.Color = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
								return label.Layout(gtx)
							})
						}),
						// Buttons
						layout.Rigid(func(gtx layout.Context) layout.Dimensions {
							return layout.Flex{
								Axis:    layout.Horizontal,
								Spacing: layout.SpaceEnd,
							}.Layout(gtx,
								// Save button
								layout.Rigid(func(gtx layout.Context) layout.Dimensions {
									btn := material.Button(e.theme, &e.closeSaveButton, "Save")
									btn.Background = color.NRGBA{R: 60, G: 120, B: 200, A: 255}
									btn.Color = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
									return layout.Inset{Right: unit.Dp(8)}.Layout(gtx, btn.Layout)
								}),
								// Discard button
								layout.Rigid(func(gtx layout.Context) layout.Dimensions {
									btn := material.Button(e.theme, &e.closeDiscardButton, "Discard")
									btn.Background = color.NRGBA{R: 200, G: 80, B: 60, A: 255}
									btn.Color = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
									return btn.Layout(gtx)
								}),
							)
						}),
					)
				})
			},
		)
	})
}

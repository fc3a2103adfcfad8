package cmd

import (
	"log"
	"os"
	"path/filepath"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/op"
	"gioui.org/widget/material"
	"github.com/modelum/modelum/blueprint"
	"github.com/modelum/modelum/editor"
	"github.com/modelum/modelum/project"
	"github.com/spf13/cobra"
)

var editCmd = &cobra.Command{
	Use:   "edit {blueprint-name}",
	Short: "Edit the specified blueprint",
	Long:  `Creates a new blueprint file if it doesn't exist, then opens the visual editor for that blueprint.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return cmd.Help()
		}
		blueprintName := args[0]

		projectRoot, err := project.FindProjectRoot()
		if err != nil {
			return err
		}
		cfg, err := project.LoadConfig(projectRoot)
		if err != nil {
			return err
		}

		filePath := filepath.Join(projectRoot, cfg.BlueprintsDir, blueprintName+".yaml")
		bp := blueprint.New()
		if _, err := os.Stat(filePath); err == nil {
			log.Printf("loading blueprint %s", filePath)
			if err := bp.Load(filePath); err != nil {
				return err
			}
			log.Printf("loaded blueprint %s", filePath)
		}

		go func() {
			window := new(app.Window)
			window.Option(app.Title("Modelum - " + blueprintName))
			window.Perform(system.ActionMaximize)
			err := run(window, filePath, bp, cfg)
			if err != nil {
				log.Fatal(err)
			}
			os.Exit(0)
		}()
		app.Main()

		return nil
	},
}

func run(window *app.Window, filePath string, bp *blueprint.Blueprint, cfg *project.Config) error {
	theme := material.NewTheme()
	ed := editor.NewEditor(theme, filePath, bp, cfg)

	var ops op.Ops
	for {
		switch e := window.Event().(type) {
		case app.DestroyEvent:
			return e.Err
		case app.FrameEvent:
			// This graphics context is used for managing the rendering state.
			gtx := app.NewContext(&ops, e)

			// Layout the editor
			ed.Layout(gtx)

			// Close once the editor resolved its unsaved-changes dialog.
			if ed.ShouldClose() {
				window.Perform(system.ActionClose)
			}

			// Pass the drawing operations to the GPU.
			e.Frame(gtx.Ops)
		}
	}
}

func init() {
	rootCmd.AddCommand(editCmd)
}

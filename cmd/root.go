package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "modelum",
	Short: "Modelum - Floor plan blueprint editor",
	Long: `Modelum is a floor plan design tool. It manages blueprint files in a
project directory and opens a visual editor for drawing rooms, placing
furnishings and generating house layouts.`,
	SilenceUsage:      true,
	DisableAutoGenTag: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

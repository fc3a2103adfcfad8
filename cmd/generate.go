package cmd

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/modelum/modelum/blueprint"
	"github.com/modelum/modelum/project"
	"github.com/spf13/cobra"
)

var generateForce bool

var generateCmd = &cobra.Command{
	Use:   "generate {blueprint-name}",
	Short: "Generate a random house blueprint",
	Long:  `Generates a random four room house layout and writes it to a new blueprint file without opening the editor.`,
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
		if _, err := os.Stat(filePath); err == nil && !generateForce {
			return fmt.Errorf("%s already exists, use --force to overwrite", filePath)
		}

		bp := blueprint.New()
		for _, room := range blueprint.Generate() {
			bp.Append(room)
		}
		if err := bp.Save(filePath); err != nil {
			return err
		}
		log.Printf("generated %s (%d rooms, %.2f sqft)", filePath, len(bp.House), bp.TotalArea())
		return nil
	},
}

func init() {
	generateCmd.Flags().BoolVarP(&generateForce, "force", "f", false, "overwrite an existing blueprint")
	rootCmd.AddCommand(generateCmd)
}

package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/modelum/modelum/blueprint"
	"gopkg.in/yaml.v3"
)

const configFileName = "modelum.yaml"

// Config represents the project configuration from modelum.yaml.
// Every field is optional; Defaults fills in the gaps.
type Config struct {
	Name string `yaml:"name"`
	// BlueprintsDir is where blueprint files live, relative to the
	// project root.
	BlueprintsDir string `yaml:"blueprints_dir,omitempty"`
	// Nudge is the arrow-key movement increment in plane units.
	Nudge float64 `yaml:"nudge,omitempty"`
	// Templates replaces the built-in furnishing palette when set.
	Templates []blueprint.ObjectTemplate `yaml:"templates,omitempty"`
}

// Defaults returns the configuration used when no modelum.yaml exists.
func Defaults() *Config {
	return &Config{
		Name:          "modelum",
		BlueprintsDir: "blueprints",
		Nudge:         0.2,
		Templates:     blueprint.DefaultTemplates(),
	}
}

// FindProjectRoot walks up from the current working directory looking for modelum.yaml.
// Returns the directory containing modelum.yaml, or an error if not found.
func FindProjectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("getting current directory: %w", err)
	}

	dir := cwd
	for {
		// Check if modelum.yaml exists in this directory
		configPath := filepath.Join(dir, configFileName)
		if _, err := os.Stat(configPath); err == nil {
			return dir, nil
		}

		// Move up one directory
		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root without finding modelum.yaml
			return "", fmt.Errorf("%s not found in any parent directory of %s", configFileName, cwd)
		}
		dir = parent
	}
}

// LoadConfig loads and parses the modelum.yaml file from the given project root.
// Unset fields fall back to their defaults.
func LoadConfig(projectRoot string) (*Config, error) {
	configPath := filepath.Join(projectRoot, configFileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", configFileName, err)
	}

	config := Defaults()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", configFileName, err)
	}

	if config.BlueprintsDir == "" {
		config.BlueprintsDir = "blueprints"
	}
	if config.Nudge <= 0 {
		config.Nudge = 0.2
	}
	if len(config.Templates) == 0 {
		config.Templates = blueprint.DefaultTemplates()
	}

	return config, nil
}

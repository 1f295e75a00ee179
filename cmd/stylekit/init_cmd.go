package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .stylekit.yaml config file",
	Long:  `Create a .stylekit.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".stylekit.yaml"); err == nil && !force {
			return fmt.Errorf(".stylekit.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".stylekit.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Println("Created .stylekit.yaml")
		return nil
	},
}

const defaultConfig = `# stylekit configuration
# Docs: https://github.com/yacobolo/stylekit

verbose: false

# Build settings (also used by check and watch)
build:
  source: web/components
  output-dir: web/static/css
  include:
    - "**/*.style.yaml"
    - "**/*.style.yml"
    - "**/*.style.json"
  tag-prefix: ui
  bundle: ""               # e.g. components.css for a single file
  compact: false
  indent: ""               # pretty CSS indent unit, default two spaces
  no-prelude: false

# Check settings
check:
  strict: false            # fail on warnings too
  output-format: issues    # issues | summary | full | json
  print-lines: true
  print-linter-name: true
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}

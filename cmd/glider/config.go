package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/meteor-glider/internal/config"
)

var flagValidate string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check the game configuration",
	Long: `Print the built-in default configuration as YAML. Save it to
~/.glider/configs/glider.yaml or pass it with --config to customize play.

With --validate, load a config file and print the effective result
after defaults are filled in.

Examples:
  glider config > ~/.glider/configs/glider.yaml
  glider config --validate ./my-glider.yaml
  glider config --validate ./my-glider.yaml --difficulty hard`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagValidate, "validate", "", "Config file to load and check")
	configCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset to apply when validating")
}

func runConfig(_ *cobra.Command, _ []string) {
	if flagValidate == "" {
		os.Stdout.Write(config.GetDefaultYAML("glider"))
		return
	}

	cfg, err := config.LoadGlider(flagValidate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if preset := config.ParsePreset(flagDifficulty); preset != "" {
		config.ApplyGliderPreset(&cfg, preset)
	}

	out, err := yaml.Marshal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("# %s is valid\n", flagValidate)
	os.Stdout.Write(out)
}

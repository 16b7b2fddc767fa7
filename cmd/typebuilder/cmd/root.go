package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"go.dw1.io/typebuilder/internal/gen"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "typebuilder",
	Short: "Generate strongly typed number declarations",
	Long: `typebuilder generates Go declarations for number types and physical
dimensions described in a YAML file, and describes what a flag expression
grants.

Examples:
  typebuilder generate -f geometry.yaml -o geometry_gen.go
  typebuilder describe "DEFAULT_SETTINGS | ENABLE_FLOAT_MULT_DIV"
  typebuilder describe --json ENABLE_ALL`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			return nil
		}

		l, err := zap.NewDevelopment()
		if err != nil {
			return fmt.Errorf("create logger: %w", err)
		}
		gen.SetLogger(l)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log generator decisions to stderr")
}

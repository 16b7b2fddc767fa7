package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"go.dw1.io/typebuilder/internal/gen"
)

var (
	generateFile   string
	generateOutput string
	generateModule string
	generatePolicy string
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate Go source from a declaration file",
	Long: `Reads a YAML or TOML declaration and writes the generated Go source.
Files ending in .toml are read as TOML.

The declaration lists number types with their flags, optional policy and
representation types, and physical dimensions with their base unit
exponents:

  package: geometry
  types:
    - name: XCoord
      flags: DEFAULT_SETTINGS | ENABLE_NATIVE_TYPING
      representations: [int, float64]
  dimensions:
    - name: Speed
      exponents: {m: 1, s: -1}`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().StringVarP(&generateFile, "file", "f", "", "declaration file")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "output file (default: stdout)")
	generateCmd.Flags().StringVar(&generateModule, "module", "go.dw1.io/typebuilder", "import path of the typebuilder module")
	generateCmd.Flags().StringVar(&generatePolicy, "policy", "number.EmptyPolicy", "policy of types that declare none")
	_ = generateCmd.MarkFlagRequired("file")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	d, err := gen.Load(generateFile)
	if err != nil {
		return fmt.Errorf("load declaration: %w", err)
	}

	src, err := gen.New(
		gen.WithModule(generateModule),
		gen.WithDefaultPolicy(generatePolicy),
	).Generate(d)
	if err != nil {
		return fmt.Errorf("generate: %w", err)
	}

	if generateOutput == "" {
		_, err = cmd.OutOrStdout().Write(src)
		return err
	}

	if err := os.WriteFile(generateOutput, src, 0o644); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	return nil
}

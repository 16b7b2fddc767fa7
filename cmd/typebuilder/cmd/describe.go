package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"go.dw1.io/typebuilder/flags"
	"go.dw1.io/typebuilder/internal/report"
)

var (
	describeJSON    bool
	describeCompact bool
)

var describeCmd = &cobra.Command{
	Use:   "describe <flags>",
	Short: "Show the capabilities a flag expression grants",
	Long: `Parses a flag expression such as "DEFAULT_SETTINGS | ENABLE_MODULO" and
lists the capability markers a number type with these flags embeds.
Arguments are joined with "|", so the expression may also be given as
separate words.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)

	describeCmd.Flags().BoolVar(&describeJSON, "json", false, "print the report as JSON")
	describeCmd.Flags().BoolVar(&describeCompact, "compact", false, "print JSON on one line (implies --json)")
}

func runDescribe(cmd *cobra.Command, args []string) error {
	s, err := flags.Parse(strings.Join(args, "|"))
	if err != nil {
		return fmt.Errorf("parse flags: %w", err)
	}

	r := report.Describe(s)
	if describeJSON || describeCompact {
		return r.WriteJSON(cmd.OutOrStdout(), describeCompact)
	}

	return r.WriteText(cmd.OutOrStdout())
}

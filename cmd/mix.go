package cmd

import (
	"github.com/spf13/cobra"
)

var mixCmd = &cobra.Command{
	Use:   "mix",
	Short: "Geopolymer concrete mix proportioning and checks",
	Long: `Proportion and check geopolymer concrete mixes for one cubic metre
of concrete based on IS 17452:2020 provisions.

Subcommands:
  design  - Calculate material quantities for a target strength
  check   - Validate a design and report composition warnings
  batch   - Evaluate many designs from a YAML or XLSX file

All calculations use the absolute volume method with 2% entrapped air.`,
}

func init() {
	rootCmd.AddCommand(mixCmd)
}

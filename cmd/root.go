package cmd

import (
	"fmt"
	"os"

	"github.com/aman-choudhary9785/iscode/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "iscode",
	Short: "Geopolymer Concrete Mix Design Tool",
	Long: `iscode - Geopolymer Concrete Mix Designer

A CLI tool for the mix proportioning of geopolymer concrete
based on IS 17452:2020 (Indian Standard).

This tool helps concrete technologists perform:
  - Binder content selection from target strength
  - Alkaline activator sizing (sodium silicate and sodium hydroxide)
  - Aggregate proportioning by the absolute volume method
  - Activator composition checks
  - Batch evaluation of design files

All calculations follow IS 17452:2020 provisions.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   iscode v%-48s║\n", version.Version)
		fmt.Println("  ║   Geopolymer Concrete Mix Designer                        ║")
		fmt.Println("  ║   Aman Choudhary ©  2026                                  ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the mix proportioning of geopolymer concrete")
		fmt.Println("  based on IS 17452:2020 (Indian Standard).")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Binder content selection from target strength")
		fmt.Println("    • Alkaline activator split and water accounting")
		fmt.Println("    • Aggregate proportioning by absolute volume")
		fmt.Println("    • Batch evaluation from YAML and XLSX design files")
		fmt.Println("    • Mix design reports as text, JSON and PDF")
		fmt.Println()
		fmt.Println("  Use 'iscode --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}

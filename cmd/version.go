package cmd

import (
	"fmt"

	"github.com/aman-choudhary9785/iscode/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of iscode",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("iscode v%s\n", version.Version)
		fmt.Println("Geopolymer Concrete Mix Design Tool")
		fmt.Println("Based on IS 17452:2020 (Indian Standard)")
		if version.GitCommit != "unknown" {
			fmt.Printf("Commit: %s\n", version.GitCommit)
		}
		if version.BuildTime != "unknown" {
			fmt.Printf("Built:  %s\n", version.BuildTime)
		}
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

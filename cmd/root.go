package cmd

import (
	"fmt"

	dotenv "github.com/dsh2dsh/expx-dotenv"
	"github.com/spf13/cobra"
)

var rootCmd = cobra.Command{
	Use:   "tenkit",
	Short: "Download SEC EDGAR filings as PDF, translate and check documents",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return loadEnvs()
	},
}

func Execute(version string) {
	rootCmd.Version = version
	cobra.CheckErr(rootCmd.Execute())
}

func loadEnvs() error {
	if err := dotenv.New().WithDepth(1).Load(); err != nil {
		return fmt.Errorf("load tenkit envs: %w", err)
	}
	return nil
}

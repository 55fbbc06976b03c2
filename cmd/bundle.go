package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/tenkit/tenkit/internal/bundle"
)

var (
	bundleDir string
	bundleOut string

	bundleCmd = cobra.Command{
		Use:   "bundle",
		Short: "Archive downloaded filings into a single zip file",
		Run: func(cmd *cobra.Command, args []string) {
			count, err := bundle.Create(bundleDir, bundleOut)
			cobra.CheckErr(err)
			slog.Info("bundle completed", slog.String("archive", bundleOut),
				slog.Int("files", count))
		},
	}
)

func init() {
	rootCmd.AddCommand(&bundleCmd)
	bundleCmd.Flags().StringVarP(&bundleDir, "datadir", "d", "./",
		"archive files from this directory")
	bundleCmd.Flags().StringVarP(&bundleOut, "out", "o", "filings.zip",
		"write the archive here")
}

package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "xrplprep",
	Short: "Prepare unsigned XRPL payment transactions",
	Long: `xrplprep turns a high-level payment intent plus shaping instructions
(fee, sequence, ledger validity window) into a fully-populated unsigned
transaction ready for signing and submission.`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "path to a TOML config file")
}

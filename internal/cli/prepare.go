package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/LeJamon/xrplprep/internal/config"
	"github.com/LeJamon/xrplprep/internal/core/payment"
	"github.com/LeJamon/xrplprep/internal/core/prepare"
)

var (
	prepareAddress          string
	prepareIntentFile       string
	prepareInstructionsFile string
)

var prepareCmd = &cobra.Command{
	Use:   "prepare",
	Short: "Prepare an unsigned payment transaction from JSON inputs",
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()

		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}

		intentRaw, err := os.ReadFile(prepareIntentFile)
		if err != nil {
			return fmt.Errorf("read intent file: %w", err)
		}
		var intent payment.Intent
		if err := json.Unmarshal(intentRaw, &intent); err != nil {
			return fmt.Errorf("parse intent file: %w", err)
		}

		instructions := &prepare.Instructions{}
		if prepareInstructionsFile != "" {
			instrRaw, err := os.ReadFile(prepareInstructionsFile)
			if err != nil {
				return fmt.Errorf("read instructions file: %w", err)
			}
			if err := json.Unmarshal(instrRaw, instructions); err != nil {
				return fmt.Errorf("parse instructions file: %w", err)
			}
		}

		prepared, err := prepare.Prepare(prepareAddress, &intent, instructions, cfg)
		if err != nil {
			logger.Error("preparation failed", zap.String("address", prepareAddress), zap.Error(err))
			return err
		}

		logger.Info("prepared transaction",
			zap.String("address", prepareAddress),
			zap.String("fee", prepared.Instructions.Fee),
			zap.Uint32("sequence", prepared.Instructions.Sequence))

		out, err := json.MarshalIndent(prepared, "", "  ")
		if err != nil {
			return fmt.Errorf("serialize output: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

func init() {
	prepareCmd.Flags().StringVar(&prepareAddress, "address", "", "source account address")
	prepareCmd.Flags().StringVar(&prepareIntentFile, "intent", "", "path to payment intent JSON")
	prepareCmd.Flags().StringVar(&prepareInstructionsFile, "instructions", "", "path to shaping instructions JSON")
	_ = prepareCmd.MarkFlagRequired("address")
	_ = prepareCmd.MarkFlagRequired("intent")
	rootCmd.AddCommand(prepareCmd)
}

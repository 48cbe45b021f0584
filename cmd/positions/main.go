package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"liquidityCalc/internal/config"
	"liquidityCalc/internal/model"
	"liquidityCalc/internal/output"
	"liquidityCalc/internal/position"
)

func main() {
	root := &cobra.Command{
		Use:          "positions",
		Short:        "Report liquidity and token amounts for concentrated liquidity positions",
		SilenceUsage: true,
		RunE:         runPositions,
	}

	root.PersistentFlags().String("config", "", "config file path")
	root.Flags().String("format", "text", "output format (text, json)")
	root.Flags().Int32("decimals", 18, "token decimals for unit amounts")
	root.Flags().String("log-level", "info", "log level (debug, info, warn, error)")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runPositions(cmd *cobra.Command, _ []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(cfgFile, cmd.Flags())
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer logger.Sync()

	sink, err := output.NewSink(cfg.Format, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	var errs []error
	inputs := make([]position.Input, 0, len(cfg.Positions))
	for _, p := range cfg.Positions {
		in, err := p.Input(cfg.Decimals)
		if err != nil {
			logger.Warn("skip position", zap.String("name", p.Name), zap.Error(err))
			errs = append(errs, err)
			continue
		}
		inputs = append(inputs, in)
	}

	logger.Info("positions start",
		zap.Int("positions", len(inputs)),
		zap.String("format", cfg.Format),
		zap.Int32("decimals", cfg.Decimals),
	)

	reports, runErrs := position.NewCalculator(logger).Run(inputs)
	errs = append(errs, runErrs...)

	records := make([]model.PositionRecord, 0, len(reports))
	for _, report := range reports {
		records = append(records, report.Record(cfg.Decimals))
	}
	if err := sink.PutReports(records); err != nil {
		return fmt.Errorf("write reports: %w", err)
	}

	if len(errs) > 0 {
		return fmt.Errorf("%d of %d positions failed: %w", len(errs), len(cfg.Positions), errors.Join(errs...))
	}
	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevel()
	if err := cfg.Level.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	cfg.EncoderConfig.TimeKey = "ts"
	cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	return cfg.Build()
}

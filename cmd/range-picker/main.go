package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/username/range-picker/internal/config"
	"github.com/username/range-picker/internal/report"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"gopkg.in/natefinch/lumberjack.v2"
)

var (
	configPath string
	format     string
	cfg        *config.Config
	logger     = zap.NewNop()
	now        = time.Now
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "range-picker",
		Short:         "Weekday range picker",
		Long:          "Pick a date range on a month calendar and list the weekends it contains",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load(configPath)
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg.ExpandEnvVars()
			if format != "" {
				cfg.Output.Format = format
			}

			if cfg.Log.File != "" {
				logger = initFileLogger(cfg.Log.File, cfg.Log.Level)
			} else {
				logger, err = initLogger(cfg.Log.Level)
				if err != nil {
					return err
				}
			}
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Config file path (default: search ., $HOME/.range-picker, /etc/range-picker)")
	rootCmd.PersistentFlags().StringVarP(&format, "format", "f", "", "Output format: text or json (overrides output.format)")

	rootCmd.AddCommand(gridCmd())
	rootCmd.AddCommand(weekendsCmd())
	rootCmd.AddCommand(lastCmd())
	rootCmd.AddCommand(selectCmd())
	rootCmd.AddCommand(pickCmd())

	return rootCmd
}

func newWriter(cmd *cobra.Command) (*report.Writer, error) {
	w, err := report.NewWriter(cmd.OutOrStdout(), cfg.Output.Format)
	if err != nil {
		return nil, fmt.Errorf("failed to create writer: %w", err)
	}
	return w, nil
}

func parseLevel(level string) zapcore.Level {
	var zapLevel zapcore.Level
	if err := zapLevel.UnmarshalText([]byte(level)); err != nil {
		zapLevel = zapcore.WarnLevel
	}
	return zapLevel
}

// initLogger builds a console logger on stderr so command output stays clean
func initLogger(level string) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(parseLevel(level))
	config.EncoderConfig.TimeKey = "timestamp"
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	l, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return l, nil
}

func initFileLogger(logFile string, level string) *zap.Logger {
	// Setup lumberjack for log rotation
	logWriter := &lumberjack.Logger{
		Filename:   logFile,
		MaxSize:    10, // MB
		MaxBackups: 3,
		MaxAge:     28, // days
		Compress:   true,
	}

	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.TimeKey = "timestamp"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(logWriter),
		parseLevel(level),
	)

	return zap.New(core)
}

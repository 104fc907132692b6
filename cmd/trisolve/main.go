package main

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ib-77/trisolve/internal/config"
	"github.com/ib-77/trisolve/pkg/triangle"
)

// errReported marks failures that were already written to the output.
var errReported = errors.New("reported")

type options struct {
	configPath string
	format     string
	precision  int32
	verbose    bool
}

func newRootCmd(stdout io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:     "trisolve VALUE1 KIND1 VALUE2 KIND2",
		Short:   "Solve a right triangle from two known measurements",
		Long:    usage(),
		Example: examples,
		Args:    cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cmd, opts, args)
		},
		SilenceErrors: true,
	}
	cmd.SetOut(stdout)

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	flags.StringVarP(&opts.format, "format", "f", config.FormatText, "output format: text, json or yaml")
	flags.Int32VarP(&opts.precision, "precision", "p", -1, "decimal places in the output, -1 for full precision")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, opts options, args []string) error {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("format") {
		cfg.Output.Format = strings.ToLower(strings.TrimSpace(opts.format))
	}
	if cmd.Flags().Changed("precision") {
		cfg.Output.Precision = opts.precision
	}
	if err := cfg.Output.Validate(); err != nil {
		return err
	}

	logger, err := newLogger(cfg.Log, opts.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	reporters := triangle.Reporters{triangle.NewLogReporter(logger)}
	if cfg.Output.Format == config.FormatText {
		reporters = append(reporters, triangle.NewWriterReporter(cmd.OutOrStdout(), cfg.Output.Precision))
	}

	v1, v2 := parseValue(args[0]), parseValue(args[2])
	logger.Debug("solving",
		zap.String("value1", args[0]), zap.String("kind1", args[1]),
		zap.String("value2", args[2]), zap.String("kind2", args[3]))

	tri, solveErr := triangle.NewSolver(reporters).Triangle(cmd.Context(), v1, args[1], v2, args[3])

	if cfg.Output.Format != config.FormatText {
		if err := render(cmd.OutOrStdout(), cfg.Output, newView(tri, solveErr, cfg.Output.Precision)); err != nil {
			return err
		}
	}
	if solveErr != nil {
		return fmt.Errorf("%w: %w", errReported, solveErr)
	}
	return nil
}

// parseValue turns anything that is not a number into NaN, which the solver
// rejects as non-numeric input.
func parseValue(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return math.NaN()
	}
	return v
}

func newLogger(c config.LogConfig, verbose bool) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(c.Level)
	if err != nil {
		return nil, err
	}
	if verbose {
		level = zapcore.DebugLevel
	}

	zc := zap.NewProductionConfig()
	if c.Encoding == "console" {
		zc.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	zc.Encoding = c.Encoding
	zc.Level = zap.NewAtomicLevelAt(level)
	zc.OutputPaths = []string{"stderr"}
	return zc.Build()
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		if !errors.Is(err, errReported) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}

// Command bilinv classifies tensor factorizations of a fixed bilinear
// map into equivalence classes and reports how many are mutually
// inequivalent.
//
// The input is a JSON file holding a [K][R][3][S] numeric array:
// K factorizations, R rank-1 factors each, three roles (U,V,W), and
// flat row-major vectors of length S = N². Entries are expected to be
// exact small integers.
//
//	bilinv classify --input factorizations.json --workers 8 --verbose
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/bilinv/classify"
	"github.com/katalvlaran/bilinv/factor"
)

// Exit codes follow the usual Unix convention: load/validation failures
// are fatal, per-item computation failures are reported but keep exit 0
// (batch semantics: one broken factorization must not mask the rest).
const (
	exitOK       = 0
	exitErr      = 1
	exitCanceled = 130
)

var (
	inputPath string
	workers   int
	logEvery  int
	verbose   bool

	logger *zap.Logger
)

// rootCmd is the base command.
var rootCmd = &cobra.Command{
	Use:   "bilinv",
	Short: "bilinv - equivalence invariants for bilinear-map factorizations",
	Long: `bilinv computes the rank and Kronecker spectral invariants of
rank-R tensor factorizations and groups factorizations into
equivalence-class candidates under the (A,B,C) group action.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		config := zap.NewProductionConfig()
		if verbose {
			config = zap.NewDevelopmentConfig()
			config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = config.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}

		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// classifyCmd runs the batch classification.
var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a JSON batch of factorizations by invariant pair",
	RunE:  runClassify,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "development log encoder at debug level")

	classifyCmd.Flags().StringVarP(&inputPath, "input", "i", "", "path to the [K][R][3][S] JSON array (required)")
	classifyCmd.Flags().IntVarP(&workers, "workers", "w", 0, "worker pool size (0 = GOMAXPROCS)")
	classifyCmd.Flags().IntVar(&logEvery, "log-every", classify.DefaultLogEvery, "progress log cadence in items")
	_ = classifyCmd.MarkFlagRequired("input")

	rootCmd.AddCommand(classifyCmd)
}

// loadBatch decodes the JSON array into factorizations. Shape defects
// beyond JSON structure (ragged triples, non-square spans) surface later
// as per-item errors, keeping load tolerant and computation strict.
func loadBatch(path string) ([]factor.Factorization, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}

	var batch []factor.Factorization
	if err = json.Unmarshal(raw, &batch); err != nil {
		return nil, fmt.Errorf("decode input: %w", err)
	}

	return batch, nil
}

func runClassify(cmd *cobra.Command, args []string) error {
	batch, err := loadBatch(inputPath)
	if err != nil {
		return err
	}
	logger.Info("batch loaded",
		zap.String("input", inputPath),
		zap.Int("factorizations", len(batch)))

	opts := classify.DefaultOptions()
	opts.Workers = workers
	opts.LogEvery = logEvery
	opts.Logger = logger

	sum, err := classify.Classify(cmd.Context(), batch, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, key := range sum.ClassKeys() {
		fmt.Fprintf(out, "class %d (%d members): indices %v\n",
			i+1, len(sum.Classes[key]), sum.Classes[key])
	}
	fmt.Fprintf(out, "distinct classes: %d\n", sum.Distinct)
	if sum.Failed > 0 {
		fmt.Fprintf(out, "failed items: %d (see log)\n", sum.Failed)
	}

	return nil
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if ctx.Err() == context.Canceled {
			os.Exit(exitCanceled)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

// Command policyocr reads policy numbers drawn as 3x3 glyphs, validates their
// checksums and writes an annotated report.
//
// Usage:
//
//	policyocr scan batch.txt -o results.txt
//	policyocr scan scan.tiff --format html -o results.html
//	policyocr check 457508000 664371495
//	policyocr render 123456789
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tsawler/policyocr/config"
	"github.com/tsawler/policyocr/source"
)

// Exit codes.
const (
	exitOK     = 0
	exitFailed = 1
	exitSource = 2
)

// app carries state shared by all subcommands.
type app struct {
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:   "policyocr",
		Short: "Recognize and validate glyph-drawn policy numbers",
		Long: `policyocr converts policy numbers drawn with pipes and underscores
into digits, validates each number's modulus 11 checksum, and writes one
report line per entry:

  457508000        valid
  664371495 ERR    checksum failed
  86110??36 ILL    one or more digits illegible`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg

			level := cfg.Level()
			if a.verbose {
				level = zapcore.DebugLevel
			}
			a.logger = newLogger(cmd.ErrOrStderr(), level)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "path to a YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(newScanCmd(a), newCheckCmd(), newRenderCmd())
	return rootCmd
}

// newLogger builds a production JSON logger writing to w.
func newLogger(w io.Writer, level zapcore.Level) *zap.Logger {
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(w),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core)
}

// exitCode maps an error to the process exit status.
func exitCode(err error) int {
	if err == nil {
		return exitOK
	}
	var srcErr *source.Error
	if errors.As(err, &srcErr) {
		return exitSource
	}
	return exitFailed
}

func main() {
	err := newRootCmd().Execute()
	if err != nil {
		fmt.Fprintln(os.Stderr, "policyocr:", err)
	}
	os.Exit(exitCode(err))
}

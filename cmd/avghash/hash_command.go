package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"avghash/internal/avghash"
	"avghash/internal/batch"
	"avghash/internal/config"
	"avghash/internal/fileutil"
	"avghash/internal/inputs"
	"avghash/internal/logging"
	"avghash/internal/report"
)

// errFailedInputs is returned under --strict when at least one input failed.
var errFailedInputs = errors.New("one or more inputs failed")

type hashFlags struct {
	batchFiles []string
	width      int
	height     int
	filter     string
	workers    int
	format     string
	output     string
	progress   bool
	strict     bool
	autoOrient bool
}

func newHashCommand(ctx *commandContext) *cobra.Command {
	var flags hashFlags

	cmd := &cobra.Command{
		Use:   "hash [files...]",
		Short: "Print the average hash of each image",
		Long: `Hash every image named on the command line or listed in batch files.

Each input produces one result line holding either its hexadecimal hash or the
error that prevented hashing. A failing input never stops the others.
With no files and no --batch lists, paths are read from piped stdin.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			if err := applyHashFlags(cmd, cfg, &flags); err != nil {
				return err
			}
			return runHash(cmd, ctx, cfg, args, flags)
		},
	}

	cmd.Flags().StringArrayVarP(&flags.batchFiles, "batch", "b", nil, "File listing one image path per line (\"-\" for stdin, .gz/.zst/.lz4 accepted); repeatable")
	cmd.Flags().IntVar(&flags.width, "width", avghash.DefaultWidth, "Hash grid width")
	cmd.Flags().IntVar(&flags.height, "height", avghash.DefaultHeight, "Hash grid height")
	cmd.Flags().StringVar(&flags.filter, "filter", string(avghash.DefaultFilter), "Resampling filter ("+strings.Join(avghash.FilterNames(), ", ")+")")
	cmd.Flags().IntVarP(&flags.workers, "workers", "j", 0, "Parallel workers (0 = number of CPUs)")
	cmd.Flags().StringVarP(&flags.format, "format", "f", report.FormatText, "Output format ("+strings.Join(config.OutputFormats, ", ")+")")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "Append results to this file instead of stdout")
	cmd.Flags().BoolVar(&flags.progress, "progress", true, "Show a progress spinner when stderr is a terminal")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "Exit non-zero when any input fails")
	cmd.Flags().BoolVar(&flags.autoOrient, "auto-orient", false, "Apply EXIF orientation before hashing")

	return cmd
}

// applyHashFlags layers explicitly set flags over the loaded configuration.
func applyHashFlags(cmd *cobra.Command, cfg *config.Config, flags *hashFlags) error {
	changed := cmd.Flags().Changed
	if changed("width") {
		cfg.Hash.Width = flags.width
	}
	if changed("height") {
		cfg.Hash.Height = flags.height
	}
	if changed("filter") {
		filter, err := avghash.ParseFilter(flags.filter)
		if err != nil {
			return fmt.Errorf("--filter: %w", err)
		}
		cfg.Hash.Filter = string(filter)
	}
	if changed("auto-orient") {
		cfg.Hash.AutoOrient = flags.autoOrient
	}
	if changed("workers") {
		cfg.Workers.Count = flags.workers
	}
	if changed("format") {
		cfg.Output.Format = strings.ToLower(strings.TrimSpace(flags.format))
	}
	if changed("output") {
		path := strings.TrimSpace(flags.output)
		if path != "" && path != fileutil.Stdin {
			expanded, err := config.ExpandPath(path)
			if err != nil {
				return fmt.Errorf("--output: %w", err)
			}
			path = expanded
		}
		cfg.Output.Path = path
	}
	if changed("progress") {
		cfg.Output.Progress = flags.progress
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid options: %w", err)
	}
	return nil
}

func runHash(cmd *cobra.Command, ctx *commandContext, cfg *config.Config, args []string, flags hashFlags) error {
	stderr := cmd.ErrOrStderr()
	base, closeLog, err := ctx.newLogger(stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	runCtx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	// After the first signal, restore default handling so a second one kills
	// the process even if a read is still blocked.
	context.AfterFunc(runCtx, stop)
	runCtx = logging.WithRunID(runCtx, "")
	logger := logging.WithContext(runCtx, logging.NewComponentLogger(base, "cli"))

	batchFiles := flags.batchFiles
	if len(args) == 0 && len(batchFiles) == 0 {
		if report.IsTerminal(os.Stdin) {
			return errors.New("no input paths: pass files, use --batch, or pipe a list on stdin")
		}
		batchFiles = []string{fileutil.Stdin}
	}

	hasher, err := avghash.New(cfg.HashOptions())
	if err != nil {
		return err
	}
	runner, err := batch.NewRunner(hasher, cfg.Workers.Count, base)
	if err != nil {
		return err
	}

	out, err := report.OpenOutput(runCtx, cfg.Output.Path, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	defer out.Close()

	sink, err := report.NewSink(cfg.Output.Format, out)
	if err != nil {
		return err
	}
	progress := report.NewProgress(stderr, cfg.Output.Progress)

	logger.Debug("hash run starting",
		logging.Int("grid_width", cfg.Hash.Width),
		logging.Int("grid_height", cfg.Hash.Height),
		logging.String("filter", cfg.Hash.Filter),
		logging.Bool("auto_orient", cfg.Hash.AutoOrient),
		logging.Int("workers", runner.Workers()),
		logging.String("format", cfg.Output.Format),
		logging.Bool("progress", progress.Enabled()),
	)

	stats, runErr := runner.Run(runCtx, inputs.FromCommandLine(args, batchFiles), func(res batch.Result) error {
		progress.Increment()
		return sink.Write(res)
	})
	progress.Finish()

	closeErr := sink.Close()
	if err := out.Close(); err != nil && closeErr == nil {
		closeErr = err
	}

	logger.Info("hash run complete",
		logging.String("inputs", humanize.Comma(int64(stats.Total))),
		logging.String("hashed", humanize.Comma(int64(stats.Hashed))),
		logging.String("failed", humanize.Comma(int64(stats.Failed))),
		logging.Duration("elapsed", stats.Elapsed.Round(time.Millisecond)),
	)

	if runErr != nil {
		return runErr
	}
	if closeErr != nil {
		return fmt.Errorf("write results: %w", closeErr)
	}
	if flags.strict && stats.Failed > 0 {
		return fmt.Errorf("%w: %s of %s", errFailedInputs, humanize.Comma(int64(stats.Failed)), humanize.Comma(int64(stats.Total)))
	}
	return nil
}

package cli

import (
	"fmt"
	"strconv"
	"time"

	"github.com/mgpai22/subshift/internal/subtitle"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// everything a run needs, read once from the command line
type options struct {
	dir       string
	first     bool
	firstMin  bool
	seconds   int
	millis    int
	offset    time.Duration
	startLine int
	ordinals  []int
	noConfirm bool
}

func (o options) shiftConfig() subtitle.ShiftConfig {
	return subtitle.ShiftConfig{
		Offset:    o.offset,
		StartLine: o.startLine,
	}
}

// reads flags into options. Positional arguments are extra -n ordinals, so
// "-n 1 3" selects files 1 and 3.
func readOptions(flags *pflag.FlagSet, args []string) (options, error) {
	var opts options

	opts.dir, _ = flags.GetString("dir")
	opts.first, _ = flags.GetBool("first")
	opts.firstMin, _ = flags.GetBool("f-min")
	opts.seconds, _ = flags.GetInt("seconds")
	opts.millis, _ = flags.GetInt("millisec")
	opts.startLine, _ = flags.GetInt("line")
	opts.ordinals, _ = flags.GetIntSlice("file-number")
	opts.noConfirm, _ = flags.GetBool("no-confirm")

	offset, err := subtitle.NewOffset(opts.seconds, opts.millis)
	if err != nil {
		return opts, err
	}
	opts.offset = offset

	if opts.startLine < 0 {
		return opts, fmt.Errorf("line must not be negative, got %d", opts.startLine)
	}

	if len(args) > 0 && !flags.Changed("file-number") {
		return opts, fmt.Errorf("unexpected arguments %q: file numbers follow -n", args)
	}
	for _, arg := range args {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return opts, fmt.Errorf("invalid file number %q: %w", arg, err)
		}
		opts.ordinals = append(opts.ordinals, n)
	}

	return opts, nil
}

func runShift(cmd *cobra.Command, args []string) error {
	opts, err := readOptions(cmd.Flags(), args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	files, err := subtitle.Discover(opts.dir)
	if err != nil {
		return fmt.Errorf("failed to list subtitle files: %w", err)
	}
	selected, unmatched := subtitle.Select(files, opts.ordinals)
	for _, n := range unmatched {
		logger.Warnw("No subtitle file at position",
			"position", n,
			"files", len(files),
		)
	}

	logger.Debugw("Selected subtitle files",
		"dir", opts.dir,
		"found", len(files),
		"selected", len(selected),
	)

	if opts.first || opts.firstMin {
		return printFirstCueTimes(out, selected, opts.firstMin)
	}

	// any -s or -m asks, even when the two cancel out
	if (opts.seconds != 0 || opts.millis != 0) && !opts.noConfirm {
		ok, err := confirm(cmd.InOrStdin(), out)
		if err != nil {
			return fmt.Errorf("failed to read confirmation: %w", err)
		}
		if !ok {
			fmt.Fprintln(out, "Aborted, no files changed")
			return nil
		}
	}

	cfg := opts.shiftConfig()
	for _, path := range selected {
		logger.Infow("Shifting subtitle file",
			"path", path,
			"offset", cfg.Offset.String(),
			"start_line", cfg.StartLine,
		)

		result, err := subtitle.Rewrite(path, cfg)
		if err != nil {
			return fmt.Errorf("failed to shift %s: %w", path, err)
		}

		if !result.Changed {
			logger.Debugw("File unchanged, not rewritten", "path", path)
		}
		fmt.Fprintf(out, "%s: shifted %d cues\n", path, result.ShiftedCues)
	}

	return nil
}

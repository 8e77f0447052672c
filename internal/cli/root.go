package cli

import (
	"github.com/mgpai22/subshift/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose bool
	logger  = logging.Nop()
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subshift [flags]",
		Short: "Shift subtitle timings in batch",
		Long: `Subshift shifts the timings of every .srt and .ass subtitle file in a
directory by a fixed offset, or reports when each file's first line starts.

Files are numbered in directory listing order, counting only subtitle files.
Only the timestamps of cue lines are rewritten; everything else in a file is
left exactly as it was.

Examples:
  subshift --first
  subshift --f-min -n 1 3
  subshift -s 2 -m 500
  subshift -s -1 -l 120 -n 2 --no-confirm`,
		Args:         cobra.ArbitraryArgs,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger = logging.NewLogger(verbose)
		},
		RunE: runShift,
	}

	cmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	cmd.PersistentFlags().
		StringP("dir", "C", ".", "Directory to look for subtitle files in")

	cmd.Flags().
		BoolP("first", "f", false, "Print the time of the first line of each selected file in seconds")
	cmd.Flags().
		Bool("f-min", false, "Print the minimum first-line time among selected files (all files if none selected)")
	cmd.Flags().
		IntP("seconds", "s", 0, "Shift all lines by this many seconds (may be negative)")
	cmd.Flags().
		IntP("millisec", "m", 0, "Shift all lines by this many milliseconds (may be negative)")
	cmd.Flags().
		IntP("line", "l", 0, "Shift only lines from this line number on (first line is 1)")
	cmd.Flags().
		IntSliceP("file-number", "n", nil, "Ordinal numbers of the subtitle files to act on, counted among subtitle files only (first is 1)")
	cmd.Flags().
		BoolP("no-confirm", "c", false, "Proceed without confirmation")

	return cmd
}

func Execute() error {
	return newRootCmd().Execute()
}

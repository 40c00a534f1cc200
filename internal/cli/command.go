// Package cli wires up the iobench command line interface.
package cli

import (
	"fmt"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/idelchi/iobench/internal/integration"
)

// DefaultThreads is the default number of read workers for read-tree.
const DefaultThreads = 16

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Execute runs the CLI with the provided arguments.
func (c CLI) Execute() error {
	return c.newRootCommand().Execute()
}

func (c CLI) newRootCommand() *cobra.Command {
	var verbosity int

	root := &cobra.Command{
		Use:   "iobench",
		Short: "Benchmark filesystem read throughput",
		Long: heredoc.Doc(`
			iobench measures how fast a filesystem serves directory listings
			and file contents.

			Each benchmark first lists the files it will touch, then reads
			them with a fixed number of workers and reports the throughput
			of both phases separately.
		`),
		Version:       c.version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v debug, -vv trace)")

	root.AddCommand(
		newReadTreeCommand(&verbosity),
		newInitCommand(),
	)

	return root
}

func newReadTreeCommand(verbosity *int) *cobra.Command {
	var cfg settings

	cmd := &cobra.Command{
		Use:   "read-tree [paths...]",
		Short: "Read every file under the given paths and report throughput",
		Long: heredoc.Doc(`
			read-tree lists every file under the given paths, then reads each
			one to the end with a fixed pool of workers.

			Listing throughput is reported in files/s, reading throughput in
			bytes/s and files/s. Paths may also be given with --dir; flag and
			positional paths are combined. Without any path the current
			directory is used.
		`),
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.verbosity = *verbosity
			cfg.dirs = append(cfg.dirs, args...)

			return readTree(cmd.Context(), cfg)
		},
	}

	cmd.Flags().StringArrayVarP(&cfg.dirs, "dir", "d", nil, "Directory to benchmark (repeatable)")
	cmd.Flags().IntVarP(&cfg.threads, "threads", "j", DefaultThreads, "Number of read workers (0 or less means one per CPU)")
	cmd.Flags().StringVar(&cfg.bufferSize, "buffer-size", "64KiB", "Per-worker read buffer size (e.g. 128KiB, 1MB)")
	cmd.Flags().StringVarP(&cfg.output, "output", "o", "table", "Output format: json or table")

	return cmd
}

func newInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Print a shell wrapper that drops the page cache before each run",
		Long: heredoc.Doc(`
			init prints a small shell script that syncs, drops the kernel page
			cache and then execs read-tree, so repeated runs measure the disk
			rather than the cache.

			Usage:

				iobench init > cold-read && chmod +x cold-read
				sudo ./cold-read /data
		`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rendered, err := integration.Render()
			if err != nil {
				return fmt.Errorf("rendering integration script: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), rendered)

			return nil
		},
	}
}

// Command pagetree builds a page tree from the command line and prints it.
//
//	pagetree --rank 2 --insert 1,3,5,7,9,11,13 --delete 1 --search 7
//	pagetree --rank 3 --auto 40 --render --stats
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pagetree/logger"
)

var (
	Version = "dev"
	Commit  = "none"
)

func main() {
	var (
		cfg       config
		logLevel  string
		logFormat string
	)

	rootCmd := &cobra.Command{
		Use:   "pagetree",
		Short: "Build, query and print a page tree",
		Long: `pagetree applies the given operations to an empty tree in a fixed order
(auto inserts, inserts, deletes, searches, finds) and then prints the tree
one level per line, or hierarchically with --render.`,
		Version:       fmt.Sprintf("%s (%s)", Version, Commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := logger.New(logger.Config{Level: logLevel, Format: logFormat, OutputFile: "stderr"})
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			cfg.logger = logger.NewZap(log)
			return run(cfg, cmd.OutOrStdout())
		},
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	flags := rootCmd.Flags()
	flags.IntVar(&cfg.rank, "rank", 2, "Pages hold rank to 2*rank keys")
	flags.IntVar(&cfg.auto, "auto", 0, "Insert this many distinct random keys first")
	flags.Int64Var(&cfg.seed, "seed", 1, "Seed for --auto")
	flags.Int64SliceVar(&cfg.inserts, "insert", nil, "Keys to insert")
	flags.Int64SliceVar(&cfg.deletes, "delete", nil, "Keys to delete")
	flags.Int64SliceVar(&cfg.searches, "search", nil, "Keys to report as found or not")
	flags.Int64SliceVar(&cfg.finds, "find", nil, "Keys whose page and parent page to print")
	flags.BoolVar(&cfg.render, "render", false, "Print the tree hierarchically")
	flags.BoolVar(&cfg.stats, "stats", false, "Print tree counters in Prometheus text format")
	flags.StringVar(&logLevel, "log-level", "warn", "Minimum log level")
	flags.StringVar(&logFormat, "log-format", "console", "Log format, json or console")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "pagetree: %v\n", err)
		os.Exit(1)
	}
}

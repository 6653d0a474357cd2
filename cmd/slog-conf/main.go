// Command slog-conf inspects and exercises log sink configuration files.
package main

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	slogconf "github.com/qzed/slog-conf"
	_ "github.com/qzed/slog-conf/sinks"
)

func main() {
	root := &cobra.Command{
		Use:          "slog-conf",
		Short:        "Inspect and exercise log sink configurations",
		SilenceUsage: true,
	}
	root.AddCommand(tagsCmd(), checkCmd(), emitCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func tagsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tags",
		Short: "List the registered sink types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, tag := range slogconf.DefaultDecoders().Tags() {
				fmt.Fprintln(cmd.OutOrStdout(), tag)
			}
			return nil
		},
	}
}

func checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>",
		Short: "Validate a configuration file and build its sink",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := slogconf.Load(args[0])
			if err != nil {
				return err
			}
			drain, err := slogconf.Build(cfg)
			if err != nil {
				return err
			}
			if err := drain.Close(); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s)\n", args[0], cfg.Kind())
			return nil
		},
	}
}

func emitCmd() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "emit <file>",
		Short: "Build a sink and emit sample records through it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := slogconf.Load(args[0])
			if err != nil {
				return err
			}
			drain, err := slogconf.Build(cfg)
			if err != nil {
				return err
			}
			defer drain.Close()

			run := uuid.NewString()
			for i := 0; i < count; i++ {
				drain.Logger.Info().Str("run_id", run).Int("seq", i).Msg("sample record")
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 3, "number of records to emit")
	return cmd
}

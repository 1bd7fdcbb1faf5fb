package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/chorelabs/chore/internal/adapters/argv"
	"github.com/chorelabs/chore/internal/core/domain"
)

func (c *CLI) newRunCmd() *cobra.Command {
	var (
		direct      bool
		parallel    bool
		optionsFile string
	)

	cmd := &cobra.Command{
		Use:   "run <task> [key value]...",
		Short: "Resolve and run a task together with its dependency chain",
		Long: `Resolve and run a task together with its dependency chain.

Options follow the task name as key/value pairs with typed values
(true, false, null, numbers, @file.yaml references), or as a single
YAML file whose mapping becomes the whole options value.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			started := time.Now()

			if parallel {
				opts := domain.Options{}
				if optionsFile != "" {
					parsed, err := argv.ParseOptions([]string{optionsFile})
					if err != nil {
						return err
					}
					opts = parsed
				}
				results, err := c.app.RunAll(cmd.Context(), args, opts)
				if err != nil {
					return err
				}
				for i, result := range results {
					printResult(cmd, args[i]+": ", result)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "done in %s\n", time.Since(started).Round(time.Millisecond))
				return nil
			}

			opts, err := argv.ParseOptions(args[1:])
			if err != nil {
				return err
			}

			result, err := c.app.Run(cmd.Context(), args[0], opts, direct)
			if err != nil {
				return err
			}

			printResult(cmd, "", result)
			fmt.Fprintf(cmd.OutOrStdout(), "done in %s\n", time.Since(started).Round(time.Millisecond))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&direct, "direct", "x", false, "run only the task itself, skipping its declared dependencies")
	cmd.Flags().BoolVarP(&parallel, "parallel", "p", false, "treat every argument as a task name and resolve them concurrently")
	cmd.Flags().StringVar(&optionsFile, "options", "", "YAML file providing the options mapping (used with --parallel)")

	return cmd
}

func printResult(cmd *cobra.Command, prefix string, result any) {
	switch v := result.(type) {
	case nil:
	case string:
		if v != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s\n", prefix, v)
		}
	default:
		fmt.Fprintf(cmd.OutOrStdout(), "%s%v\n", prefix, v)
	}
}

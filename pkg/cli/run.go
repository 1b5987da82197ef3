package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/m-mizutani/alertsnap/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func runCommand(stdout io.Writer) *cli.Command {
	var (
		opts       exportOptions
		reportPath string
	)

	return &cli.Command{
		Name:      "run",
		Usage:     "Export alerts and then write the summary report",
		ArgsUsage: "[ORG]",
		Flags:     append(opts.Flags(), reportFlag(&reportPath)),
		Action: func(ctx context.Context, c *cli.Command) error {
			snapshot, err := runExport(ctx, c.Args(), &opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Exported %d alerts.\n", snapshot.Count)

			logging.From(ctx).Info("Summarizing exported snapshot")
			if err := runSummarize(ctx, &opts.publisher, opts.snapshotPath, reportPath); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Wrote %s\n", reportPath)
			return nil
		},
	}
}

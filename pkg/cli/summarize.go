package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/m-mizutani/alertsnap/pkg/cli/config"
	"github.com/m-mizutani/alertsnap/pkg/domain/model"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

func summarizeCommand(stdout io.Writer) *cli.Command {
	var (
		publisher    config.Publisher
		snapshotPath string
		reportPath   string
	)

	return &cli.Command{
		Name:    "summarize",
		Aliases: []string{"sum"},
		Usage:   "Write a Markdown summary of the alert snapshot",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "snapshot",
				Aliases:     []string{"s"},
				Usage:       "Path of the alert snapshot JSON file",
				Sources:     cli.EnvVars("ALERTSNAP_SNAPSHOT"),
				Destination: &snapshotPath,
				Value:       model.DefaultSnapshotPath,
			},
			reportFlag(&reportPath),
		}, publisher.Flags()),
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := runSummarize(ctx, &publisher, snapshotPath, reportPath); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Wrote %s\n", reportPath)
			return nil
		},
	}
}

func reportFlag(dst *string) cli.Flag {
	return &cli.StringFlag{
		Name:        "report",
		Aliases:     []string{"r"},
		Usage:       "Path of the Markdown summary report",
		Sources:     cli.EnvVars("ALERTSNAP_REPORT"),
		Destination: dst,
		Value:       model.DefaultReportPath,
	}
}

func runSummarize(ctx context.Context, publisher *config.Publisher, snapshotPath, reportPath string) error {
	uc, closer, err := newUseCase(ctx, nil, publisher)
	if err != nil {
		return err
	}
	defer closer()

	_, err = uc.SummarizeAlerts(ctx, &model.SummarizeAlertsInput{
		SnapshotPath: snapshotPath,
		ReportPath:   reportPath,
	})
	return err
}

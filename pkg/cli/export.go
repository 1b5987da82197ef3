package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/m-mizutani/alertsnap/pkg/cli/config"
	"github.com/m-mizutani/alertsnap/pkg/domain/model"
	"github.com/m-mizutani/alertsnap/pkg/utils/logging"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

type exportOptions struct {
	github       config.GitHub
	publisher    config.Publisher
	snapshotPath string
	delay        time.Duration
}

func (x *exportOptions) Flags() []cli.Flag {
	return slice.Flatten([]cli.Flag{
		&cli.StringFlag{
			Name:        "snapshot",
			Aliases:     []string{"s"},
			Usage:       "Path of the alert snapshot JSON file",
			Sources:     cli.EnvVars("ALERTSNAP_SNAPSHOT"),
			Destination: &x.snapshotPath,
			Value:       model.DefaultSnapshotPath,
		},
		&cli.DurationFlag{
			Name:        "delay",
			Usage:       "Pause between alert requests of two repositories",
			Sources:     cli.EnvVars("ALERTSNAP_DELAY"),
			Destination: &x.delay,
			Value:       model.DefaultDelay,
		},
	}, x.github.Flags(), x.publisher.Flags())
}

func exportCommand(stdout io.Writer) *cli.Command {
	var opts exportOptions

	return &cli.Command{
		Name:      "export",
		Aliases:   []string{"ex"},
		Usage:     "Export open code scanning alerts of all repositories in an organization",
		ArgsUsage: "[ORG]",
		Flags:     opts.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			snapshot, err := runExport(ctx, c.Args(), &opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Exported %d alerts.\n", snapshot.Count)
			return nil
		},
	}
}

func runExport(ctx context.Context, args cli.Args, opts *exportOptions) (*model.Snapshot, error) {
	org, err := opts.github.Org(args)
	if err != nil {
		return nil, err
	}

	logging.From(ctx).Debug("Export options",
		slog.Any("github", opts.github),
		slog.String("snapshot", opts.snapshotPath),
		slog.Duration("delay", opts.delay),
	)

	uc, closer, err := newUseCase(ctx, &opts.github, &opts.publisher)
	if err != nil {
		return nil, err
	}
	defer closer()

	return uc.ExportAlerts(ctx, &model.ExportAlertsInput{
		Org:          org,
		SnapshotPath: opts.snapshotPath,
		Delay:        opts.delay,
	})
}

package cli

import (
	"context"
	"io"
	"log/slog"
	"os"

	"github.com/m-mizutani/alertsnap/pkg/cli/config"
	"github.com/m-mizutani/alertsnap/pkg/utils/errutil"
	"github.com/m-mizutani/alertsnap/pkg/utils/logging"
	"github.com/m-mizutani/gots/slice"
	"github.com/urfave/cli/v3"
)

// ConfigureLogging is exported for testing purposes
var ConfigureLogging = logging.Configure

type CLI struct {
	stdout io.Writer
}

type Option func(*CLI)

// WithStdout sets where command results such as "Exported 3 alerts." go.
func WithStdout(w io.Writer) Option {
	return func(x *CLI) {
		x.stdout = w
	}
}

func New(options ...Option) *CLI {
	x := &CLI{
		stdout: os.Stdout,
	}
	for _, opt := range options {
		opt(x)
	}
	return x
}

func (x *CLI) Run(argv []string) error {
	var (
		logLevel  string
		logFormat string
		logOutput string
		sentryCfg config.Sentry
	)

	ctx := context.Background()

	app := &cli.Command{
		Name:  "alertsnap",
		Usage: "Export open code scanning alerts of a GitHub organization and summarize them",
		Flags: slice.Flatten([]cli.Flag{
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "Log level [debug|info|warn|error]",
				Aliases:     []string{"l"},
				Sources:     cli.EnvVars("ALERTSNAP_LOG_LEVEL"),
				Destination: &logLevel,
				Value:       "info",
			},
			&cli.StringFlag{
				Name:        "log-format",
				Usage:       "Log format [text|json]",
				Aliases:     []string{"f"},
				Sources:     cli.EnvVars("ALERTSNAP_LOG_FORMAT"),
				Destination: &logFormat,
				Value:       "text",
			},
			&cli.StringFlag{
				Name:        "log-output",
				Usage:       "Log output [-|stdout|stderr|<file>]",
				Aliases:     []string{"o"},
				Sources:     cli.EnvVars("ALERTSNAP_LOG_OUTPUT"),
				Destination: &logOutput,
				Value:       "stderr",
			},
		}, sentryCfg.Flags()),
		Commands: []*cli.Command{
			exportCommand(x.stdout),
			summarizeCommand(x.stdout),
			runCommand(x.stdout),
		},
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			if err := ConfigureLogging(logFormat, logLevel, logOutput); err != nil {
				return ctx, err
			}

			runID, ctx := logging.CtxRunID(ctx)
			ctx = logging.With(ctx, logging.Default().With(slog.Any("run_id", runID)))

			if err := sentryCfg.Configure(ctx); err != nil {
				return ctx, err
			}
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			sentryCfg.Flush()
			return nil
		},
	}

	if err := app.Run(ctx, argv); err != nil {
		errutil.HandleError(ctx, "fatal error", err)
		sentryCfg.Flush()
		return err
	}

	return nil
}

package config

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/alertsnap/pkg/infra/gcs"
	"github.com/urfave/cli/v3"
)

// Publisher configures the optional upload of artifacts to Cloud Storage.
type Publisher struct {
	bucket string
	prefix string
}

func (x *Publisher) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "gcs-bucket",
			Usage:       "Cloud Storage bucket to upload artifacts to (disabled if empty)",
			Category:    "Cloud Storage",
			Destination: &x.bucket,
			Sources:     cli.EnvVars("ALERTSNAP_GCS_BUCKET"),
		},
		&cli.StringFlag{
			Name:        "gcs-prefix",
			Usage:       "Object name prefix, e.g. 'code-scanning/'",
			Category:    "Cloud Storage",
			Destination: &x.prefix,
			Sources:     cli.EnvVars("ALERTSNAP_GCS_PREFIX"),
		},
	}
}

func (x *Publisher) Enabled() bool {
	return x.bucket != ""
}

// New returns nil without error when no bucket is configured.
func (x *Publisher) New(ctx context.Context) (*gcs.Client, error) {
	if !x.Enabled() {
		return nil, nil
	}
	return gcs.New(ctx, x.bucket, x.prefix)
}

func (x Publisher) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("bucket", x.bucket),
		slog.String("prefix", x.prefix),
	)
}

package gcs

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/m-mizutani/alertsnap/pkg/domain/interfaces"
	"github.com/m-mizutani/alertsnap/pkg/domain/types"
	"github.com/m-mizutani/alertsnap/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/option"
)

// Client publishes artifacts as objects of one Cloud Storage bucket.
type Client struct {
	client *storage.Client
	bucket string
	prefix string
}

var _ interfaces.Publisher = (*Client)(nil)

// New creates a publisher writing to gs://bucket/prefix<name>. prefix is
// used as given, so "reports/" and "nightly-" are both valid.
func New(ctx context.Context, bucket, prefix string, options ...option.ClientOption) (*Client, error) {
	if bucket == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "bucket name is empty")
	}

	client, err := storage.NewClient(ctx, options...)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create Cloud Storage client", goerr.V("bucket", bucket))
	}

	return &Client{
		client: client,
		bucket: bucket,
		prefix: prefix,
	}, nil
}

func (x *Client) Close() error {
	return x.client.Close()
}

func (x *Client) Publish(ctx context.Context, name string, data []byte) error {
	objName := x.prefix + name

	w := x.client.Bucket(x.bucket).Object(objName).NewWriter(ctx)
	w.ContentType = contentType(name)

	if _, err := w.Write(data); err != nil {
		_ = w.Close()
		return goerr.Wrap(err, "failed to write object", goerr.V("bucket", x.bucket), goerr.V("object", objName))
	}
	if err := w.Close(); err != nil {
		return goerr.Wrap(err, "failed to upload object", goerr.V("bucket", x.bucket), goerr.V("object", objName))
	}

	logging.From(ctx).Info("Published artifact",
		slog.String("bucket", x.bucket),
		slog.String("object", objName),
		slog.Int("size", len(data)),
	)
	return nil
}

func contentType(name string) string {
	switch strings.ToLower(path.Ext(name)) {
	case ".json":
		return "application/json"
	case ".md":
		return "text/markdown; charset=utf-8"
	default:
		return "application/octet-stream"
	}
}

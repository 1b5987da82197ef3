package usecase

import (
	"context"
	"log/slog"
	"path"
	"path/filepath"

	"github.com/m-mizutani/alertsnap/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// saveArtifact stores data at key and, when a publisher is configured,
// uploads the same bytes under the base name of key.
func (x *UseCase) saveArtifact(ctx context.Context, key string, data []byte) error {
	if err := x.clients.Storage().Put(ctx, key, data); err != nil {
		return goerr.Wrap(err, "failed to save artifact", goerr.V("key", key))
	}
	logging.From(ctx).Info("Saved artifact",
		slog.String("key", key),
		slog.Int("size", len(data)),
	)

	if pub := x.clients.Publisher(); pub != nil {
		name := path.Base(filepath.ToSlash(key))
		if err := pub.Publish(ctx, name, data); err != nil {
			return goerr.Wrap(err, "failed to publish artifact", goerr.V("name", name))
		}
	}

	return nil
}

package usecase

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"

	"github.com/m-mizutani/alertsnap/pkg/domain/model"
	"github.com/m-mizutani/alertsnap/pkg/domain/types"
	"github.com/m-mizutani/alertsnap/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

// LoadSnapshot decodes a snapshot from r and validates it.
func LoadSnapshot(ctx context.Context, r io.Reader) (*model.Snapshot, error) {
	var snapshot model.Snapshot
	if err := json.NewDecoder(r).Decode(&snapshot); err != nil {
		return nil, goerr.Wrap(types.ErrInvalidSnapshot, "failed to decode snapshot", goerr.V("error", err.Error()))
	}

	if err := snapshot.Validate(); err != nil {
		return nil, err
	}

	return &snapshot, nil
}

func (x *UseCase) loadSnapshot(ctx context.Context, key string) (*model.Snapshot, error) {
	raw, err := x.clients.Storage().Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, goerr.Wrap(types.ErrSnapshotNotFound, "snapshot not found, run `alertsnap export` first",
				goerr.V("path", key),
			)
		}
		return nil, goerr.Wrap(err, "failed to read snapshot", goerr.V("path", key))
	}

	snapshot, err := LoadSnapshot(ctx, bytes.NewReader(raw))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to load snapshot", goerr.V("path", key))
	}
	return snapshot, nil
}

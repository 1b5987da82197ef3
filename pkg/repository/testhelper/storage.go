package testhelper

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/m-mizutani/alertsnap/pkg/domain/interfaces"
	"github.com/m-mizutani/alertsnap/pkg/repository"
	"github.com/m-mizutani/gt"
)

// TestAll runs the conformance suite every interfaces.Storage implementation
// must pass.
func TestAll(t *testing.T, storage interfaces.Storage) {
	t.Run("PutAndGet", func(t *testing.T) {
		TestPutAndGet(t, storage)
	})
	t.Run("Overwrite", func(t *testing.T) {
		TestOverwrite(t, storage)
	})
	t.Run("NotFound", func(t *testing.T) {
		TestNotFound(t, storage)
	})
	t.Run("NestedKey", func(t *testing.T) {
		TestNestedKey(t, storage)
	})
	t.Run("EmptyData", func(t *testing.T) {
		TestEmptyData(t, storage)
	})
}

func uniqueKey(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, uuid.New().String()[:8])
}

func TestPutAndGet(t *testing.T, storage interfaces.Storage) {
	ctx := context.Background()
	key := uniqueKey("alerts") + ".json"
	data := []byte(`{"org":"acme","count":0,"alerts":[]}`)

	gt.NoError(t, storage.Put(ctx, key, data))

	got := gt.R1(storage.Get(ctx, key)).NoError(t)
	gt.V(t, got).Equal(data)
}

func TestOverwrite(t *testing.T, storage interfaces.Storage) {
	ctx := context.Background()
	key := uniqueKey("summary") + ".md"

	gt.NoError(t, storage.Put(ctx, key, []byte("# first run with a longer body\n")))
	gt.NoError(t, storage.Put(ctx, key, []byte("# second\n")))

	got := gt.R1(storage.Get(ctx, key)).NoError(t)
	gt.V(t, string(got)).Equal("# second\n")
}

func TestNotFound(t *testing.T, storage interfaces.Storage) {
	ctx := context.Background()

	_, err := storage.Get(ctx, uniqueKey("missing"))
	gt.Error(t, err)
	gt.True(t, errors.Is(err, repository.ErrNotFound))
}

func TestNestedKey(t *testing.T, storage interfaces.Storage) {
	ctx := context.Background()
	key := uniqueKey("dashboard") + "/data/alerts.json"

	gt.NoError(t, storage.Put(ctx, key, []byte("[]")))
	got := gt.R1(storage.Get(ctx, key)).NoError(t)
	gt.V(t, string(got)).Equal("[]")
}

func TestEmptyData(t *testing.T, storage interfaces.Storage) {
	ctx := context.Background()
	key := uniqueKey("empty")

	gt.NoError(t, storage.Put(ctx, key, nil))
	got := gt.R1(storage.Get(ctx, key)).NoError(t)
	gt.V(t, len(got)).Equal(0)
}

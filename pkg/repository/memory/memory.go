package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/m-mizutani/alertsnap/pkg/domain/interfaces"
	"github.com/m-mizutani/alertsnap/pkg/repository"
	"github.com/m-mizutani/goerr/v2"
)

// Storage keeps artifacts in memory. It is used by tests and dry runs.
type Storage struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

var _ interfaces.Storage = (*Storage)(nil)

func New() *Storage {
	return &Storage{
		objects: make(map[string][]byte),
	}
}

func (x *Storage) Put(ctx context.Context, key string, data []byte) error {
	if key == "" {
		return goerr.Wrap(repository.ErrInvalidKey, "key is empty")
	}

	x.mu.Lock()
	defer x.mu.Unlock()
	x.objects[key] = slices.Clone(data)
	return nil
}

func (x *Storage) Get(ctx context.Context, key string) ([]byte, error) {
	x.mu.RLock()
	defer x.mu.RUnlock()

	data, ok := x.objects[key]
	if !ok {
		return nil, goerr.Wrap(repository.ErrNotFound, "artifact not found", goerr.V("key", key))
	}
	return slices.Clone(data), nil
}

// Keys returns stored keys in sorted order.
func (x *Storage) Keys() []string {
	x.mu.RLock()
	defer x.mu.RUnlock()

	keys := make([]string, 0, len(x.objects))
	for k := range x.objects {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

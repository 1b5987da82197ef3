package interfaces

import "context"

//go:generate moq -out ../mock/storage_mock.go -pkg mock . Storage

// Storage keeps artifacts such as the alert snapshot and the summary report.
// Put replaces any previous content of key as a whole. Get returns an error
// wrapping repository.ErrNotFound when key does not exist.
type Storage interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
}

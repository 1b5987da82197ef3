package interfaces

//go:generate moq -out ../mock/infra.go -pkg mock . GitHub Publisher

import (
	"context"
	"iter"

	"github.com/m-mizutani/alertsnap/pkg/domain/model"
	"github.com/m-mizutani/alertsnap/pkg/domain/types"
)

// GitHub lists organization data through the REST API. Both methods return
// lazy sequences: requests are issued while the caller iterates, and the
// sequence ends after yielding the first error.
type GitHub interface {
	ListOrgRepos(ctx context.Context, org types.OrgName) iter.Seq2[*model.Repository, error]
	ListOpenAlerts(ctx context.Context, repo *model.Repository) iter.Seq2[*model.Alert, error]
}

// Publisher uploads a finished artifact to a remote location such as a
// Cloud Storage bucket.
type Publisher interface {
	Publish(ctx context.Context, name string, data []byte) error
}

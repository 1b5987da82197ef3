package interfaces

import (
	"context"

	"github.com/m-mizutani/alertsnap/pkg/domain/model"
)

type UseCase interface {
	ExportAlerts(ctx context.Context, input *model.ExportAlertsInput) (*model.Snapshot, error)
	SummarizeAlerts(ctx context.Context, input *model.SummarizeAlertsInput) (*model.Summary, error)
}

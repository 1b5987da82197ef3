package usecase_test

import (
	"context"
	"iter"
	"testing"
	"time"

	"github.com/m-mizutani/alertsnap/pkg/domain/model"
	"github.com/m-mizutani/alertsnap/pkg/infra"
	"github.com/m-mizutani/alertsnap/pkg/usecase"
	"github.com/m-mizutani/alertsnap/pkg/utils/logging"
	"github.com/m-mizutani/gt"
)

func TestNew(t *testing.T) {
	uc := usecase.New(infra.New())
	_ = uc.ExportAlerts
	_ = uc.SummarizeAlerts
}

var fixedNow = time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)

func withFixedTime(ctx context.Context) context.Context {
	return logging.CtxWithTime(ctx, func() time.Time { return fixedNow })
}

// seqOf yields items and then, if err is not nil, the error.
func seqOf[T any](items []T, err error) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for _, item := range items {
			if !yield(item, nil) {
				return
			}
		}
		if err != nil {
			var zero T
			yield(zero, err)
		}
	}
}

func newAlert(t *testing.T, data string) *model.Alert {
	t.Helper()
	return gt.R1(model.NewAlert([]byte(data))).NoError(t)
}

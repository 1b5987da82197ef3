package usecase_test

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/m-mizutani/alertsnap/pkg/domain/mock"
	"github.com/m-mizutani/alertsnap/pkg/domain/model"
	"github.com/m-mizutani/alertsnap/pkg/domain/types"
	"github.com/m-mizutani/alertsnap/pkg/infra"
	"github.com/m-mizutani/alertsnap/pkg/repository/memory"
	"github.com/m-mizutani/alertsnap/pkg/usecase"
	"github.com/m-mizutani/gt"
)

const sampleSnapshot = `{
  "org": "acme",
  "generated_at": "2024-03-01T10:30:00Z",
  "count": 3,
  "alerts": [
    {"_repo": "a", "rule": {"severity": "high"}, "tool": {"name": "CodeQL"}},
    {"_repo": "a", "rule": {"severity": "high"}, "tool": {"name": "CodeQL"}},
    {"_repo": "b", "tool": {"name": "CodeQL"}}
  ]
}`

const sampleReport = `# Code Scanning Summary: acme

- Generated at: 2024-03-01T10:30:00Z
- Total open alerts: 3

## By Severity

- **high**: 2
- **unknown**: 1

## By Repository (top 20)

- a: 2
- b: 1

## By Tool

- CodeQL: 3
`

func summarizeInput() *model.SummarizeAlertsInput {
	return &model.SummarizeAlertsInput{
		SnapshotPath: model.DefaultSnapshotPath,
		ReportPath:   model.DefaultReportPath,
	}
}

func TestSummarizeAlerts(t *testing.T) {
	ctx := context.Background()
	storage := memory.New()
	gt.NoError(t, storage.Put(ctx, model.DefaultSnapshotPath, []byte(sampleSnapshot)))
	uc := usecase.New(infra.New(infra.WithStorage(storage)))

	summary, err := uc.SummarizeAlerts(ctx, summarizeInput())
	gt.NoError(t, err)
	gt.V(t, summary.Total).Equal(3)
	gt.V(t, summary.BySeverity).Equal([]model.Count{{Key: "high", Count: 2}, {Key: "unknown", Count: 1}})

	report := gt.R1(storage.Get(ctx, model.DefaultReportPath)).NoError(t)
	gt.V(t, string(report)).Equal(sampleReport)

	t.Run("second run produces identical bytes", func(t *testing.T) {
		_, err := uc.SummarizeAlerts(ctx, summarizeInput())
		gt.NoError(t, err)
		again := gt.R1(storage.Get(ctx, model.DefaultReportPath)).NoError(t)
		gt.V(t, again).Equal(report)
	})
}

func TestSummarizeAlertsMissingSnapshot(t *testing.T) {
	ctx := context.Background()
	storage := memory.New()
	uc := usecase.New(infra.New(infra.WithStorage(storage)))

	_, err := uc.SummarizeAlerts(ctx, summarizeInput())
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrSnapshotNotFound))
	gt.S(t, err.Error()).Contains("alertsnap export")
	gt.V(t, len(storage.Keys())).Equal(0)
}

func TestSummarizeAlertsInvalidSnapshot(t *testing.T) {
	testCases := map[string]string{
		"broken JSON":    `{"org": "acme", "count": `,
		"count mismatch": `{"org": "acme", "generated_at": "2024-03-01T10:30:00Z", "count": 5, "alerts": []}`,
		"not an object":  `[]`,
	}

	for title, data := range testCases {
		t.Run(title, func(t *testing.T) {
			ctx := context.Background()
			storage := memory.New()
			gt.NoError(t, storage.Put(ctx, model.DefaultSnapshotPath, []byte(data)))
			uc := usecase.New(infra.New(infra.WithStorage(storage)))

			_, err := uc.SummarizeAlerts(ctx, summarizeInput())
			gt.Error(t, err)
			gt.True(t, errors.Is(err, types.ErrInvalidSnapshot))

			_, err = storage.Get(ctx, model.DefaultReportPath)
			gt.Error(t, err)
		})
	}
}

func TestSummarizeAlertsStorageError(t *testing.T) {
	errDisk := errors.New("disk failure")
	storage := &mock.StorageMock{
		GetFunc: func(ctx context.Context, key string) ([]byte, error) {
			return nil, errDisk
		},
	}
	uc := usecase.New(infra.New(infra.WithStorage(storage)))

	_, err := uc.SummarizeAlerts(context.Background(), summarizeInput())
	gt.Error(t, err)
	gt.True(t, errors.Is(err, errDisk))
	gt.False(t, errors.Is(err, types.ErrSnapshotNotFound))
	gt.V(t, len(storage.PutCalls())).Equal(0)
}

func TestSummarizeAlertsPublishesReport(t *testing.T) {
	ctx := context.Background()
	storage := memory.New()
	gt.NoError(t, storage.Put(ctx, "out/alerts.json", []byte(sampleSnapshot)))
	pub := &mock.PublisherMock{
		PublishFunc: func(ctx context.Context, name string, data []byte) error { return nil },
	}
	uc := usecase.New(infra.New(infra.WithStorage(storage), infra.WithPublisher(pub)))

	_, err := uc.SummarizeAlerts(ctx, &model.SummarizeAlertsInput{
		SnapshotPath: "out/alerts.json",
		ReportPath:   "out/code_scanning_summary.md",
	})
	gt.NoError(t, err)

	calls := pub.PublishCalls()
	gt.V(t, len(calls)).Equal(1)
	gt.V(t, calls[0].Name).Equal("code_scanning_summary.md")
	gt.V(t, string(calls[0].Data)).Equal(sampleReport)
}

func TestRenderSummary(t *testing.T) {
	t.Run("empty groupings", func(t *testing.T) {
		report := gt.R1(usecase.RenderSummary(&model.Summary{
			Org:         "acme",
			GeneratedAt: "2024-03-01T10:30:00Z",
		})).NoError(t)

		gt.S(t, string(report)).Contains("- Total open alerts: 0\n")
		gt.V(t, strings.Count(string(report), "- none\n")).Equal(3)
		gt.True(t, strings.HasSuffix(string(report), "## By Tool\n\n- none\n"))
	})

	t.Run("repository section is truncated", func(t *testing.T) {
		var alerts []*model.Alert
		for i := range 25 {
			alert := newAlert(t, `{"rule":{"severity":"note"}}`)
			alert.SetRepo(fmt.Sprintf("acme/repo-%02d", i))
			alerts = append(alerts, alert)
		}
		summary := model.Summarize(model.NewSnapshot("acme", fixedNow, alerts))
		report := string(gt.R1(usecase.RenderSummary(summary)).NoError(t))

		gt.S(t, report).Contains("- acme/repo-19: 1\n")
		gt.False(t, strings.Contains(report, "acme/repo-20"))
		gt.S(t, report).Contains("- **note**: 25\n")
	})
}

func TestExportThenSummarize(t *testing.T) {
	ctx := withFixedTime(context.Background())
	mockGH := newExportMock(t,
		[]*model.Repository{
			{Name: "a", FullName: "a"},
			{Name: "old", FullName: "old", Archived: true},
			{Name: "b", FullName: "b"},
		},
		map[string][]string{
			"a":   {`{"rule":{"severity":"high"},"tool":{"name":"CodeQL"}}`, `{"rule":{"severity":"high"},"tool":{"name":"CodeQL"}}`},
			"old": {`{"rule":{"severity":"critical"},"tool":{"name":"CodeQL"}}`},
			"b":   {`{"rule":{"severity":null},"tool":{"name":"CodeQL"}}`},
		},
	)
	storage := memory.New()
	uc := usecase.New(infra.New(infra.WithGitHub(mockGH), infra.WithStorage(storage)))

	_, err := uc.ExportAlerts(ctx, &model.ExportAlertsInput{Org: "acme", SnapshotPath: model.DefaultSnapshotPath})
	gt.NoError(t, err)
	_, err = uc.SummarizeAlerts(ctx, summarizeInput())
	gt.NoError(t, err)

	report := gt.R1(storage.Get(ctx, model.DefaultReportPath)).NoError(t)
	gt.V(t, string(report)).Equal(sampleReport)
}

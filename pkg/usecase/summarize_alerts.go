package usecase

import (
	"bytes"
	"context"
	_ "embed"
	"log/slog"
	"text/template"

	"github.com/m-mizutani/alertsnap/pkg/domain/model"
	"github.com/m-mizutani/alertsnap/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

//go:embed templates/summary.md.tmpl
var summaryTemplateText string

var summaryTemplate = template.Must(template.New("summary").Parse(summaryTemplateText))

// SummarizeAlerts reads the snapshot written by ExportAlerts and writes the
// Markdown summary report. The report depends only on the snapshot, so
// running it twice on the same snapshot produces identical bytes.
func (x *UseCase) SummarizeAlerts(ctx context.Context, input *model.SummarizeAlertsInput) (*model.Summary, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	snapshot, err := x.loadSnapshot(ctx, input.SnapshotPath)
	if err != nil {
		return nil, err
	}

	summary := model.Summarize(snapshot)

	report, err := RenderSummary(summary)
	if err != nil {
		return nil, err
	}
	if err := x.saveArtifact(ctx, input.ReportPath, report); err != nil {
		return nil, err
	}

	logging.From(ctx).Info("Wrote summary report",
		slog.Any("org", summary.Org),
		slog.Int("total", summary.Total),
		slog.String("path", input.ReportPath),
	)

	return summary, nil
}

// RenderSummary renders summary as Markdown.
func RenderSummary(summary *model.Summary) ([]byte, error) {
	view := struct {
		*model.Summary
		TopRepositories int
	}{
		Summary:         summary,
		TopRepositories: model.TopRepositories,
	}

	var buf bytes.Buffer
	if err := summaryTemplate.Execute(&buf, view); err != nil {
		return nil, goerr.Wrap(err, "failed to render summary")
	}
	return buf.Bytes(), nil
}

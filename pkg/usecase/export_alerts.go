package usecase

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/m-mizutani/alertsnap/pkg/domain/model"
	"github.com/m-mizutani/alertsnap/pkg/domain/types"
	"github.com/m-mizutani/alertsnap/pkg/utils/logging"
	"github.com/m-mizutani/goerr/v2"
)

// ExportAlerts collects open code scanning alerts of every non-archived
// repository of the organization and writes them as one snapshot. The
// snapshot is written only after all repositories have been fetched; any
// failure aborts the run and leaves a previous snapshot untouched.
func (x *UseCase) ExportAlerts(ctx context.Context, input *model.ExportAlertsInput) (*model.Snapshot, error) {
	logger := logging.From(ctx)

	if err := input.Validate(); err != nil {
		return nil, err
	}
	if x.clients.GitHub() == nil {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub client is required for export")
	}

	logger.Info("Starting alert export", slog.Any("org", input.Org))

	var repos []*model.Repository
	for repo, err := range x.clients.GitHub().ListOrgRepos(ctx, input.Org) {
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list organization repositories",
				goerr.V("org", input.Org),
			)
		}
		repos = append(repos, repo)
	}

	logger.Info("Retrieved repositories from GitHub API",
		slog.Any("org", input.Org),
		slog.Int("total_repos", len(repos)),
	)

	alerts := []*model.Alert{}
	var fetched, skipped int

	for i, repo := range repos {
		if repo.Archived {
			logger.Debug("Skipping archived repository", slog.String("repo", repo.FullName))
			skipped++
			continue
		}

		if fetched > 0 {
			if err := sleep(ctx, input.Delay); err != nil {
				return nil, goerr.Wrap(err, "export interrupted", goerr.V("repo", repo.FullName))
			}
		}
		fetched++

		logger.Info("Fetching open alerts",
			slog.Int("progress", i+1),
			slog.Int("total", len(repos)),
			slog.String("repo", repo.FullName),
		)

		var n int
		for alert, err := range x.clients.GitHub().ListOpenAlerts(ctx, repo) {
			if err != nil {
				return nil, goerr.Wrap(err, "failed to list open alerts",
					goerr.V("repo", repo.FullName),
				)
			}
			alert.SetRepo(repo.FullName)
			alerts = append(alerts, alert)
			n++
		}

		logger.Debug("Fetched open alerts",
			slog.String("repo", repo.FullName),
			slog.Int("alerts", n),
		)
	}

	snapshot := model.NewSnapshot(input.Org, logging.CtxTime(ctx), alerts)

	raw, err := encodeSnapshot(snapshot)
	if err != nil {
		return nil, err
	}
	if err := x.saveArtifact(ctx, input.SnapshotPath, raw); err != nil {
		return nil, err
	}

	logger.Info("Completed alert export",
		slog.Any("org", input.Org),
		slog.Int("scanned_repos", fetched),
		slog.Int("skipped_repos", skipped),
		slog.Int("alerts", snapshot.Count),
		slog.String("path", input.SnapshotPath),
	)

	return snapshot, nil
}

func encodeSnapshot(snapshot *model.Snapshot) ([]byte, error) {
	raw, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to encode snapshot")
	}
	return append(raw, '\n'), nil
}

// sleep pauses for d or until ctx is done.
func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

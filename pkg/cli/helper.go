package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/alertsnap/pkg/cli/config"
	"github.com/m-mizutani/alertsnap/pkg/infra"
	"github.com/m-mizutani/alertsnap/pkg/usecase"
	"github.com/m-mizutani/alertsnap/pkg/utils/logging"
	"github.com/m-mizutani/alertsnap/pkg/utils/safe"
)

// newUseCase wires the clients a command needs. githubCfg may be nil for
// commands that never call the GitHub API. The returned function releases
// the clients and must be called when the command is done.
func newUseCase(ctx context.Context, githubCfg *config.GitHub, publisherCfg *config.Publisher) (*usecase.UseCase, func(), error) {
	var options []infra.Option
	closer := func() {}

	if githubCfg != nil {
		client, err := githubCfg.New()
		if err != nil {
			return nil, nil, err
		}
		options = append(options, infra.WithGitHub(client))
	}

	publisher, err := publisherCfg.New(ctx)
	if err != nil {
		return nil, nil, err
	}
	if publisher != nil {
		options = append(options, infra.WithPublisher(publisher))
		closer = func() { safe.Close(publisher) }
	}

	logging.From(ctx).Debug("Configured clients",
		slog.Bool("github", githubCfg != nil),
		slog.Any("publisher", publisherCfg),
	)

	return usecase.New(infra.New(options...)), closer, nil
}

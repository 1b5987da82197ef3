package config

import (
	"log/slog"
	"os"
	"time"

	"github.com/m-mizutani/alertsnap/pkg/domain/types"
	"github.com/m-mizutani/alertsnap/pkg/infra/gh"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// TokenEnvVars are read in order; the first non-empty value is used. There
// is no token flag.
var TokenEnvVars = []string{"GH_TOKEN", "GITHUB_TOKEN"}

type GitHub struct {
	org     string
	apiURL  string
	timeout time.Duration
}

func (x *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "org",
			Usage:       "GitHub organization (the first argument takes precedence)",
			Category:    "GitHub",
			Destination: &x.org,
			Sources:     cli.EnvVars("GH_ORG"),
		},
		&cli.StringFlag{
			Name:        "api-url",
			Usage:       "GitHub REST API base URL",
			Category:    "GitHub",
			Destination: &x.apiURL,
			Sources:     cli.EnvVars("ALERTSNAP_API_URL"),
			Value:       gh.DefaultBaseURL,
		},
		&cli.DurationFlag{
			Name:        "timeout",
			Usage:       "Timeout of each GitHub API request",
			Category:    "GitHub",
			Destination: &x.timeout,
			Sources:     cli.EnvVars("ALERTSNAP_TIMEOUT"),
			Value:       gh.DefaultTimeout,
		},
	}
}

// Org returns the organization given as first positional argument, falling
// back to --org / GH_ORG.
func (x *GitHub) Org(args cli.Args) (types.OrgName, error) {
	org := x.org
	if args.Present() {
		org = args.First()
	}
	if org == "" {
		return "", goerr.Wrap(types.ErrInvalidOption, "organization is required: set GH_ORG, use --org or pass it as an argument")
	}
	return types.OrgName(org), nil
}

// New creates a GitHub client with the token found in the environment.
func (x *GitHub) New() (*gh.Client, error) {
	token := LookupToken()
	if token == "" {
		return nil, goerr.Wrap(types.ErrInvalidOption, "GitHub token is required: set GH_TOKEN or GITHUB_TOKEN",
			goerr.V("env", TokenEnvVars),
		)
	}

	return gh.New(token,
		gh.WithBaseURL(x.apiURL),
		gh.WithTimeout(x.timeout),
	)
}

func LookupToken() types.GitHubToken {
	for _, key := range TokenEnvVars {
		if v := os.Getenv(key); v != "" {
			return types.GitHubToken(v)
		}
	}
	return ""
}

func (x GitHub) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("org", x.org),
		slog.String("apiURL", x.apiURL),
		slog.Duration("timeout", x.timeout),
		slog.Int("token.len", len(LookupToken())),
	)
}

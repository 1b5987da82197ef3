package types

import (
	"log/slog"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
)

type (
	// GitHubToken is a personal access token or an Actions token. It must never be printed.
	GitHubToken string

	// OrgName is a GitHub organization login such as "acme".
	OrgName string

	// RunID identifies one invocation of the CLI in logs.
	RunID string
)

func (x GitHubToken) LogValue() slog.Value {
	return slog.StringValue("***********")
}

func (x GitHubToken) String() string {
	return "***********"
}

func (x OrgName) String() string { return string(x) }

func (x OrgName) Validate() error {
	if x == "" {
		return goerr.Wrap(ErrInvalidOption, "organization is empty")
	}
	return nil
}

func NewRunID() RunID {
	return RunID(uuid.NewString())
}

func (x RunID) String() string { return string(x) }

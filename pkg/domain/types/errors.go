package types

import "github.com/m-mizutani/goerr/v2"

var (
	// ErrInvalidOption is returned when a CLI option or usecase input is missing or malformed.
	ErrInvalidOption = goerr.New("invalid option")

	// ErrInvalidGitHubData is returned when a listing item lacks fields required by the pipeline.
	ErrInvalidGitHubData = goerr.New("invalid GitHub data")

	ErrSnapshotNotFound = goerr.New("snapshot not found")
	ErrInvalidSnapshot  = goerr.New("invalid snapshot")
)

package types_test

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/m-mizutani/alertsnap/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestGitHubTokenIsMasked(t *testing.T) {
	token := types.GitHubToken("ghp_abcdefghijklmnop")

	gt.V(t, token.String()).NotEqual("ghp_abcdefghijklmnop")
	gt.V(t, fmt.Sprintf("%v", token)).NotEqual("ghp_abcdefghijklmnop")

	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, nil))
	logger.Info("test", slog.Any("token", token))
	gt.False(t, bytes.Contains(buf.Bytes(), []byte("ghp_abcdefghijklmnop")))
}

func TestOrgNameValidate(t *testing.T) {
	gt.NoError(t, types.OrgName("acme").Validate())

	err := types.OrgName("").Validate()
	gt.Error(t, err)
	gt.True(t, errors.Is(err, types.ErrInvalidOption))
}

func TestNewRunID(t *testing.T) {
	a := types.NewRunID()
	b := types.NewRunID()
	gt.V(t, a).NotEqual(b)
	gt.V(t, len(a.String())).Equal(36)
}

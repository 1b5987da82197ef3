package testutil_test

import (
	"testing"

	"github.com/m-mizutani/alertsnap/pkg/utils/testutil"
	"github.com/m-mizutani/gt"
)

func TestGetEnvOrSkip(t *testing.T) {
	t.Setenv("TEST_ALERTSNAP_BUCKET", "artifacts")
	gt.V(t, testutil.GetEnvOrSkip(t, "TEST_ALERTSNAP_BUCKET")).Equal("artifacts")
}

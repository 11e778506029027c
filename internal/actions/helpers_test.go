package actions_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"

	"gitpush.dev/gitpush/internal/output"
	"gitpush.dev/gitpush/internal/runtime"
	"gitpush.dev/gitpush/testhelpers"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

var fixedNow = time.Date(2024, time.March, 5, 14, 7, 9, 0, time.Local)

// newTestContext returns a context around client whose console output is captured
func newTestContext(t *testing.T, client *testhelpers.FakeClient) (*runtime.Context, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	splog, err := output.NewSplogWithOptions(output.SplogOptions{Writer: &buf})
	require.NoError(t, err)

	ctx := runtime.NewContextWithSplog(context.Background(), client, splog, nil)
	ctx.Clock = func() time.Time { return fixedNow }
	return ctx, &buf
}

package main_test

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/fwojciec/linkx"
	main "github.com/fwojciec/linkx/cmd/linkx"
	"github.com/fwojciec/linkx/mock"
	"github.com/fwojciec/linkx/view"
	"github.com/stretchr/testify/require"
)

// testDeps bundles Dependencies with the buffers and host mocks behind them.
type testDeps struct {
	*main.Dependencies
	stdout    *bytes.Buffer
	stderr    *bytes.Buffer
	clipboard *mock.Clipboard
	browser   *mock.Browser
	copied    []string
	opened    []string
}

func newTestDeps(t *testing.T, extract func(ctx context.Context, url string) ([]linkx.ExtractedLink, error)) *testDeps {
	t.Helper()

	td := &testDeps{
		stdout: &bytes.Buffer{},
		stderr: &bytes.Buffer{},
	}
	td.clipboard = &mock.Clipboard{
		WriteTextFn: func(text string) error {
			td.copied = append(td.copied, text)
			return nil
		},
	}
	td.browser = &mock.Browser{
		OpenFn: func(url string) error {
			td.opened = append(td.opened, url)
			return nil
		},
	}

	extractor := &mock.Extractor{ExtractFn: extract}
	td.Dependencies = &main.Dependencies{
		Ctx:       context.Background(),
		Stdout:    td.stdout,
		Stderr:    td.stderr,
		Logger:    slog.New(slog.DiscardHandler),
		Extractor: extractor,
		View:      view.New(extractor, td.clipboard, td.browser),
	}
	return td
}

func links(finals ...string) []linkx.ExtractedLink {
	out := make([]linkx.ExtractedLink, len(finals))
	for i, f := range finals {
		out[i] = linkx.ExtractedLink{Initial: f, Final: f}
	}
	return out
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

package main

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/bizgen/internal/config"
	"github.com/sells-group/bizgen/internal/model"
)

// captureStdout runs fn with os.Stdout redirected and returns what it wrote.
func captureStdout(t *testing.T, fn func() error) []byte {
	t.Helper()

	r, w, err := os.Pipe()
	require.NoError(t, err)

	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	require.NoError(t, fn())
	require.NoError(t, w.Close())

	out, err := io.ReadAll(r)
	require.NoError(t, err)
	return out
}

func TestRunsFiltersByStatus(t *testing.T) {
	cfg = &config.Config{
		Store: config.StoreConfig{Path: filepath.Join(t.TempDir(), "runs.db")},
	}

	ctx := context.Background()
	st, err := initStore(ctx)
	require.NoError(t, err)

	completed, err := st.CreateRun(ctx, model.RunKindGenerate, 42)
	require.NoError(t, err)
	require.NoError(t, st.CompleteRun(ctx, completed.ID, model.BatchStats{Total: 3}, "out.csv", "out.json"))

	failed, err := st.CreateRun(ctx, model.RunKindScrape, 0)
	require.NoError(t, err)
	require.NoError(t, st.FailRun(ctx, failed.ID, eris.New("quota exceeded")))
	require.NoError(t, st.Close())

	runsStatus = "failed"
	runsLimit = 20
	t.Cleanup(func() { runsStatus = ""; runsKind = "" })

	runsCmd.SetContext(context.Background())
	out := captureStdout(t, func() error {
		return runsCmd.RunE(runsCmd, nil)
	})

	var runs []model.Run
	require.NoError(t, json.Unmarshal(out, &runs))
	require.Len(t, runs, 1)
	assert.Equal(t, failed.ID, runs[0].ID)
	assert.Equal(t, model.RunStatusFailed, runs[0].Status)
}

func TestRunsShowsOneByID(t *testing.T) {
	cfg = &config.Config{
		Store: config.StoreConfig{Path: filepath.Join(t.TempDir(), "runs.db")},
	}

	ctx := context.Background()
	st, err := initStore(ctx)
	require.NoError(t, err)

	created, err := st.CreateRun(ctx, model.RunKindLLM, 0)
	require.NoError(t, err)
	require.NoError(t, st.Close())

	runsCmd.SetContext(context.Background())
	out := captureStdout(t, func() error {
		return runsCmd.RunE(runsCmd, []string{created.ID})
	})

	var run model.Run
	require.NoError(t, json.Unmarshal(out, &run))
	assert.Equal(t, created.ID, run.ID)
	assert.Equal(t, model.RunKindLLM, run.Kind)
	assert.Equal(t, model.RunStatusRunning, run.Status)
}

func TestRunsUnknownIDFails(t *testing.T) {
	cfg = &config.Config{
		Store: config.StoreConfig{Path: filepath.Join(t.TempDir(), "runs.db")},
	}

	runsCmd.SetContext(context.Background())
	err := runsCmd.RunE(runsCmd, []string{"no-such-run"})
	require.Error(t, err)
}

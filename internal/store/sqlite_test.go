package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rotisserie/eris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sells-group/bizgen/internal/model"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	st, err := NewSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.Migrate(context.Background()))
	return st
}

func TestCreateAndGetRun(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	created, err := st.CreateRun(ctx, model.RunKindGenerate, 1234)
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, model.RunStatusRunning, created.Status)

	got, err := st.GetRun(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, model.RunKindGenerate, got.Kind)
	assert.Equal(t, uint64(1234), got.Seed)
	assert.Nil(t, got.Stats)
}

func TestCompleteRun(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, model.RunKindGenerate, 7)
	require.NoError(t, err)

	stats := model.BatchStats{
		Total:      8,
		ByCategory: map[string]int{"Food": 5, "Salon": 3},
		WithEmail:  8, WithPhone: 8, WithWebsite: 8,
		AverageRating: 4.1,
	}
	require.NoError(t, st.CompleteRun(ctx, run.ID, stats, "out.csv", "out.json"))

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusComplete, got.Status)
	assert.Equal(t, "out.csv", got.OutputCSV)
	assert.Equal(t, "out.json", got.OutputJSON)
	require.NotNil(t, got.Stats)
	assert.Equal(t, stats, *got.Stats)
}

func TestFailRun(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	run, err := st.CreateRun(ctx, model.RunKindScrape, 0)
	require.NoError(t, err)

	require.NoError(t, st.FailRun(ctx, run.ID, eris.New("disk full")))

	got, err := st.GetRun(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, model.RunStatusFailed, got.Status)
	assert.Equal(t, "disk full", got.Error)
}

func TestUpdateMissingRun(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	err := st.CompleteRun(ctx, "missing", model.BatchStats{}, "", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, err = st.GetRun(ctx, "missing")
	require.Error(t, err)
}

func TestListRuns(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	gen, err := st.CreateRun(ctx, model.RunKindGenerate, 1)
	require.NoError(t, err)
	_, err = st.CreateRun(ctx, model.RunKindScrape, 0)
	require.NoError(t, err)
	require.NoError(t, st.CompleteRun(ctx, gen.ID, model.BatchStats{Total: 1, ByCategory: map[string]int{"Food": 1}}, "a.csv", ""))

	all, err := st.ListRuns(ctx, RunFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 2)

	generates, err := st.ListRuns(ctx, RunFilter{Kind: model.RunKindGenerate})
	require.NoError(t, err)
	require.Len(t, generates, 1)
	assert.Equal(t, gen.ID, generates[0].ID)

	complete, err := st.ListRuns(ctx, RunFilter{Status: model.RunStatusComplete})
	require.NoError(t, err)
	require.Len(t, complete, 1)

	limited, err := st.ListRuns(ctx, RunFilter{Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

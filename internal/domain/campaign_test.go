package domain_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"gooze.dev/pkg/tokfuzz/internal/adapter"
	controllermocks "gooze.dev/pkg/tokfuzz/internal/controller/mocks"
	"gooze.dev/pkg/tokfuzz/internal/domain"
	m "gooze.dev/pkg/tokfuzz/internal/model"
)

// campaignRecorder collects what a campaign hands to the UI.
type campaignRecorder struct {
	mu      sync.Mutex
	info    m.CampaignInfo
	reports []m.Report
	summary m.Summary
}

func (r *campaignRecorder) byIteration() []m.Report {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := append([]m.Report(nil), r.reports...)
	sort.Slice(out, func(i, j int) bool { return out[i].Iteration < out[j].Iteration })

	return out
}

func newCampaignUI(t *testing.T, iterations int) (*controllermocks.MockUI, *campaignRecorder) {
	t.Helper()

	rec := &campaignRecorder{}
	ui := controllermocks.NewMockUI(t)

	ui.EXPECT().Start(mock.Anything, mock.Anything).Return(nil).Once()
	ui.EXPECT().DisplayCampaignInfo(mock.Anything, mock.Anything).
		Run(func(_ context.Context, info m.CampaignInfo) { rec.info = info }).
		Return().Once()
	ui.EXPECT().DisplayCompletedIteration(mock.Anything, mock.Anything).
		Run(func(_ context.Context, report m.Report) {
			rec.mu.Lock()
			rec.reports = append(rec.reports, report)
			rec.mu.Unlock()
		}).
		Return().Times(iterations)
	ui.EXPECT().DisplaySummary(mock.Anything, mock.Anything).
		Run(func(_ context.Context, summary m.Summary) { rec.summary = summary }).
		Return().Once()
	ui.EXPECT().Wait(mock.Anything).Return().Once()
	ui.EXPECT().Close(mock.Anything).Return().Once()

	return ui, rec
}

func newCorpus(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	writeFile(t, filepath.Join(root, "a.c"), "int main(void) { return f(1, 2); }\n")
	writeFile(t, filepath.Join(root, "b.c"), "if (x > 0) { y = \"s\"; } else { y = a[i]; }\n")
	writeFile(t, filepath.Join(root, "c.json"), "{\"k\": [1, 2, {\"n\": null}]}\n")

	return root
}

func runCampaign(t *testing.T, args domain.MutateArgs) *campaignRecorder {
	t.Helper()

	ui, rec := newCampaignUI(t, args.Iterations)
	wf := domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), newDialects(t), ui)

	require.NoError(t, wf.Mutate(context.Background(), args))

	return rec
}

func TestWorkflow_Mutate(t *testing.T) {
	corpus := newCorpus(t)
	output := filepath.Join(t.TempDir(), "out")

	rec := runCampaign(t, domain.MutateArgs{
		Corpus:     m.Path(corpus),
		Output:     m.Path(output),
		Iterations: 40,
		Stack:      3,
		Threads:    4,
		Seed:       7,
	})

	assert.Equal(t, uint64(7), rec.info.Seed)
	assert.Equal(t, 3, rec.info.Corpus)
	assert.Len(t, rec.info.Mutators, 11)
	assert.NotEmpty(t, rec.info.RunID)

	reports := rec.byIteration()
	require.Len(t, reports, 40)

	applied := 0

	for i, report := range reports {
		assert.Equal(t, i, report.Iteration)
		assert.GreaterOrEqual(t, len(report.Applied), 1)
		assert.LessOrEqual(t, len(report.Applied), 3)
		assert.Empty(t, report.Err)

		applied += len(report.Applied)

		if report.Output == "" {
			assert.False(t, report.Mutated())
			continue
		}

		data, err := os.ReadFile(filepath.Join(output, report.Output))
		require.NoError(t, err)
		assert.Len(t, data, report.Bytes)
	}

	summary := rec.summary
	assert.Equal(t, 40, summary.Iterations)
	assert.Zero(t, summary.Errors)
	assert.Zero(t, summary.Reinserted)
	assert.LessOrEqual(t, summary.Unique, summary.Mutated)
	assert.True(t, strings.HasPrefix(string(summary.Reports), filepath.Join(output, domain.ReportsDir)))

	counted := 0
	for _, stat := range summary.Mutators {
		counted += stat.Mutated + stat.Skipped
	}

	assert.Equal(t, applied, counted)
}

func TestWorkflow_Mutate_Deterministic(t *testing.T) {
	corpus := newCorpus(t)

	run := func(threads int) []m.Report {
		rec := runCampaign(t, domain.MutateArgs{
			Corpus:     m.Path(corpus),
			Output:     m.Path(filepath.Join(t.TempDir(), "out")),
			Iterations: 25,
			Threads:    threads,
			Seed:       99,
		})

		return rec.byIteration()
	}

	serial, parallel := run(1), run(4)
	require.Len(t, parallel, len(serial))

	for i := range serial {
		assert.Equal(t, serial[i].EntryID, parallel[i].EntryID, "iteration %d", i)
		assert.Equal(t, serial[i].Applied, parallel[i].Applied, "iteration %d", i)
		assert.Equal(t, serial[i].Output, parallel[i].Output, "iteration %d", i)
	}
}

func TestWorkflow_Mutate_SelectedMutatorsAndDiff(t *testing.T) {
	corpus := newCorpus(t)

	rec := runCampaign(t, domain.MutateArgs{
		Corpus:     m.Path(corpus),
		Output:     m.Path(filepath.Join(t.TempDir(), "out")),
		Iterations: 10,
		Stack:      1,
		Seed:       3,
		ShowDiff:   true,
		Mutators:   []string{"delete", "TokenDeleteMutator"},
	})

	assert.Equal(t, []string{"TokenDeleteMutator"}, rec.info.Mutators)

	for _, report := range rec.byIteration() {
		require.Len(t, report.Applied, 1)
		assert.Equal(t, "TokenDeleteMutator", report.Applied[0].Mutator)
		assert.True(t, report.Applied[0].Mutated)
		assert.True(t, strings.HasPrefix(report.Diff, "--- "), report.Diff)
	}
}

func TestWorkflow_Mutate_Reinsert(t *testing.T) {
	corpus := newCorpus(t)

	rec := runCampaign(t, domain.MutateArgs{
		Corpus:     m.Path(corpus),
		Output:     m.Path(filepath.Join(t.TempDir(), "out")),
		Iterations: 15,
		Threads:    2,
		Seed:       11,
		Reinsert:   true,
	})

	files, err := adapter.NewLocalSourceFSAdapter().ListFiles(context.Background(), m.Path(corpus))
	require.NoError(t, err)
	assert.Len(t, files, 3+rec.summary.Reinserted)

	for _, report := range rec.byIteration() {
		if !report.Reinserted {
			continue
		}

		_, err := os.Stat(filepath.Join(corpus, adapter.TokenCacheDir, report.Output+".mp"))
		assert.NoError(t, err)
	}
}

func readReports(t *testing.T, path string) []m.Report {
	t.Helper()

	file, err := os.Open(path)
	require.NoError(t, err)

	defer file.Close()

	var reports []m.Report

	dec := msgpack.NewDecoder(file)

	for {
		var report m.Report

		err := dec.Decode(&report)
		if errors.Is(err, io.EOF) {
			return reports
		}

		require.NoError(t, err)

		reports = append(reports, report)
	}
}

func TestWorkflow_Mutate_ReportsKept(t *testing.T) {
	corpus := newCorpus(t)
	output := filepath.Join(t.TempDir(), "out")
	args := domain.MutateArgs{
		Corpus:     m.Path(corpus),
		Output:     m.Path(output),
		Iterations: 6,
		Seed:       5,
	}

	first := runCampaign(t, args)
	second := runCampaign(t, args)

	assert.NotEqual(t, first.summary.Reports, second.summary.Reports)

	spills, err := os.ReadDir(filepath.Join(output, domain.ReportsDir))
	require.NoError(t, err)
	assert.Len(t, spills, 2)

	for _, rec := range []*campaignRecorder{first, second} {
		reports := readReports(t, string(rec.summary.Reports))
		require.Len(t, reports, 6)

		sort.Slice(reports, func(i, j int) bool { return reports[i].Iteration < reports[j].Iteration })
		assert.Equal(t, rec.byIteration(), reports)
	}
}

func TestWorkflow_Mutate_Errors(t *testing.T) {
	tests := []struct {
		name    string
		corpus  func(t *testing.T) string
		args    domain.MutateArgs
		wantErr error
	}{
		{
			name:    "empty corpus",
			corpus:  func(t *testing.T) string { return t.TempDir() },
			args:    domain.MutateArgs{Iterations: 1},
			wantErr: adapter.ErrEmptyCorpus,
		},
		{
			name:    "unknown mutator",
			corpus:  newCorpus,
			args:    domain.MutateArgs{Iterations: 1, Mutators: []string{"Havoc"}},
			wantErr: domain.ErrUnknownMutator,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := controllermocks.NewMockUI(t)
			wf := domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), newDialects(t), ui)

			args := tt.args
			args.Corpus = m.Path(tt.corpus(t))
			args.Output = m.Path(filepath.Join(t.TempDir(), "out"))

			assert.ErrorIs(t, wf.Mutate(context.Background(), args), tt.wantErr)
		})
	}
}

func TestWorkflow_Mutate_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ui := controllermocks.NewMockUI(t)
	wf := domain.NewWorkflow(adapter.NewLocalSourceFSAdapter(), newDialects(t), ui)

	err := wf.Mutate(ctx, domain.MutateArgs{
		Corpus:     m.Path(newCorpus(t)),
		Output:     m.Path(filepath.Join(t.TempDir(), "out")),
		Iterations: 5,
	})
	assert.ErrorIs(t, err, context.Canceled)
}

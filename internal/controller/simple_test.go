package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/tokfuzz/internal/model"
)

func newTestSimpleUI() (*SimpleUI, *bytes.Buffer) {
	out := &bytes.Buffer{}
	cmd := &cobra.Command{}
	cmd.SetOut(out)

	return NewSimpleUI(cmd), out
}

func TestSimpleUI_DisplayTokens(t *testing.T) {
	ui, out := newTestSimpleUI()

	rows := []m.TokenRow{
		{Index: 0, Kind: "ident", Text: "f"},
		{Index: 1, Kind: "open", Text: "(", Pair: ")"},
		{Index: 2, Kind: "string", Text: "a\nb", Depth: 1},
		{Index: 3, Kind: "close", Text: ")"},
	}
	stats := m.LexStats{Tokens: 4, Openers: 1, Lossless: true, Stable: true, Name: "c-like"}

	require.NoError(t, ui.DisplayTokens(context.Background(), "a.c", rows, stats))

	output := out.String()
	assert.Contains(t, output, "a.c (c-like)")
	assert.Contains(t, output, `a\nb`)
	assert.Contains(t, output, "tokens: 4  openers: 1  unclosed: 0")
	assert.Contains(t, output, "lossless:")
}

func TestSimpleUI_DisplayCorpus(t *testing.T) {
	ui, out := newTestSimpleUI()

	entries := []m.Entry{
		{ID: 0, Path: "corpus/a.c", Name: "0123456789abcdef", Bytes: 10, Tokens: 4, Openers: 1},
		{ID: 1, Path: "corpus/b.c", Name: "fedcba9876543210", Bytes: 3, Tokens: 2, Cached: true},
	}

	require.NoError(t, ui.DisplayCorpus(context.Background(), entries))

	output := out.String()
	assert.Contains(t, output, "corpus/a.c")
	assert.Contains(t, output, "01234567")
	assert.NotContains(t, output, "0123456789abcdef")
	assert.Contains(t, strings.ToLower(output), "total entries 2")
}

func TestSimpleUI_CampaignOutput(t *testing.T) {
	ctx := context.Background()
	ui, out := newTestSimpleUI()

	require.NoError(t, ui.Start(ctx, WithCampaignMode(2)))

	ui.DisplayCampaignInfo(ctx, m.CampaignInfo{
		RunID: "run-1", Iterations: 2, Corpus: 3, Threads: 2, Seed: 9,
		Mutators: []string{"TokenInsertMutator", "TokenDeleteMutator"},
	})
	ui.DisplayCompletedIteration(ctx, m.Report{
		Iteration: 0,
		Source:    "corpus/a.c",
		Applied: []m.Application{
			{Mutator: "TokenInsertMutator", Mutated: true},
			{Mutator: "TokenDeleteRegionMutator"},
		},
		Output: "0123456789abcdef",
		Diff:   "--- a\n+++ b\n",
	})
	ui.DisplaySummary(ctx, m.Summary{
		Iterations: 2,
		Mutated:    1,
		Unique:     1,
		Mutators:   []m.MutatorStats{{Name: "TokenInsertMutator", Mutated: 1}},
		Reports:    "out/spill.mp",
	})
	ui.Wait(ctx)
	ui.Close(ctx)

	output := out.String()
	assert.Contains(t, output, "Campaign run-1: 2 iteration(s) over 3 entries with 2 worker(s), seed 9")
	assert.Contains(t, output, "Insert DeleteRegion-")
	assert.Contains(t, output, "01234567")
	assert.Contains(t, output, "+++ b")
	assert.Contains(t, output, "Iterations: 2 | Mutated: 1 | Unique: 1 | Reinserted: 0 | Errors: 0")
	assert.Contains(t, output, "Reports: out/spill.mp")
}

func TestSimpleUI_CancelledContext(t *testing.T) {
	ui, out := newTestSimpleUI()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, ui.Start(ctx), context.Canceled)
	assert.ErrorIs(t, ui.DisplayCorpus(ctx, nil), context.Canceled)

	ui.DisplayCampaignInfo(ctx, m.CampaignInfo{RunID: "x"})
	assert.Empty(t, out.String())
}

func TestSimpleUI_DisplayCompletedIteration_Concurrent(t *testing.T) {
	ctx := context.Background()
	ui, out := newTestSimpleUI()

	const workers, perWorker = 8, 25

	var wg sync.WaitGroup

	for w := range workers {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for j := range perWorker {
				i := w*perWorker + j
				ui.DisplayCompletedIteration(ctx, m.Report{
					Iteration: i,
					Source:    "corpus/a.c",
					Applied:   []m.Application{{Mutator: "TokenDeleteMutator", Mutated: true}},
					Output:    fmt.Sprintf("%016x", i),
					Diff:      fmt.Sprintf("--- a/%d\n+++ b/%d", i, i),
				})
			}
		}()
	}

	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	require.Len(t, lines, workers*perWorker*3)

	for k := 0; k < len(lines); k += 3 {
		var i int

		_, err := fmt.Sscanf(lines[k], "#%d ", &i)
		require.NoError(t, err, lines[k])
		assert.Equal(t, fmt.Sprintf("--- a/%d", i), lines[k+1])
		assert.Equal(t, fmt.Sprintf("+++ b/%d", i), lines[k+2])
	}
}

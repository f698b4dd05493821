package controller

import (
	"bytes"
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "gooze.dev/pkg/tokfuzz/internal/model"
)

func TestCampaignModel_Update(t *testing.T) {
	var model tea.Model = newCampaignModel(0, 100)

	model, _ = model.Update(infoMsg(m.CampaignInfo{RunID: "run-7", Iterations: 4}))
	model, _ = model.Update(iterationMsg(m.Report{Iteration: 0, Output: "abcdef0123456789"}))
	model, _ = model.Update(iterationMsg(m.Report{Iteration: 1, Err: "boom"}))

	cm := model.(campaignModel)
	assert.Equal(t, 4, cm.total)
	assert.Equal(t, 2, cm.done)
	assert.Equal(t, 1, cm.mutated)
	assert.Equal(t, 1, cm.errors)
	assert.InDelta(t, 0.5, cm.ratio(), 1e-9)

	view := cm.View()
	assert.Contains(t, view, "run-7")
	assert.Contains(t, view, "2/4")
	assert.Contains(t, view, "abcdef01")
	assert.Contains(t, view, "error: boom")
}

func TestCampaignModel_KeepsRecentReports(t *testing.T) {
	var model tea.Model = newCampaignModel(100, 80)

	for i := range recentReports + 5 {
		model, _ = model.Update(iterationMsg(m.Report{Iteration: i}))
	}

	cm := model.(campaignModel)
	require.Len(t, cm.recent, recentReports)
	assert.Contains(t, cm.recent[0], "#5 ")
}

func TestCampaignModel_SummaryAndQuit(t *testing.T) {
	var model tea.Model = newCampaignModel(1, 80)

	model, _ = model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model, _ = model.Update(summaryMsg(m.Summary{
		Unique:   3,
		Mutators: []m.MutatorStats{{Name: "TokenSpliceRegionMutator", Mutated: 2, Skipped: 1}},
	}))

	view := model.View()
	assert.Contains(t, view, "TokenSpliceRegionMutator")
	assert.Contains(t, view, "unique 3")
	assert.Contains(t, view, "q: quit")

	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	require.NotNil(t, cmd)
	assert.True(t, model.(campaignModel).quitting)
}

func TestCampaignModel_RatioWithoutTotal(t *testing.T) {
	assert.Zero(t, newCampaignModel(0, 80).ratio())
}

func TestTUI_DisplayTokens(t *testing.T) {
	out := &bytes.Buffer{}
	ui := NewTUI(out)

	rows := []m.TokenRow{
		{Index: 0, Kind: "open", Text: "{", Pair: "}"},
		{Index: 1, Kind: "ident", Text: "x", Depth: 1},
		{Index: 2, Kind: "close", Text: "}"},
	}

	err := ui.DisplayTokens(context.Background(), "a.json", rows, m.LexStats{Tokens: 3, Openers: 1, Name: "json"})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "a.json (json)")
	assert.Contains(t, out.String(), "tokens")
}

func TestTUI_DisplayCorpus(t *testing.T) {
	out := &bytes.Buffer{}
	ui := NewTUI(out)

	err := ui.DisplayCorpus(context.Background(), []m.Entry{{ID: 0, Path: "corpus/x", Name: "00112233445566778"}})
	require.NoError(t, err)

	assert.Contains(t, out.String(), "corpus: 1 entries")
	assert.Contains(t, out.String(), "corpus/x")
}

func TestTUI_InspectModeHasNoProgram(t *testing.T) {
	ctx := context.Background()
	ui := NewTUI(&bytes.Buffer{})

	require.NoError(t, ui.Start(ctx, WithInspectMode()))
	ui.DisplaySummary(ctx, m.Summary{})
	ui.Wait(ctx)
	ui.Close(ctx)
}

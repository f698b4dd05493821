package controller

import (
	"bytes"
	"os"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestNewUI(t *testing.T) {
	cmd := &cobra.Command{}
	cmd.SetOut(&bytes.Buffer{})

	assert.IsType(t, &SimpleUI{}, NewUI(cmd, false))
	assert.IsType(t, &TUI{}, NewUI(cmd, true))
}

func TestIsTTY(t *testing.T) {
	assert.False(t, IsTTY(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "out")
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	assert.False(t, IsTTY(f))
}

func TestStartOptions(t *testing.T) {
	cfg := newStartConfig([]StartOption{WithCampaignMode(12)})
	assert.Equal(t, ModeCampaign, cfg.mode)
	assert.Equal(t, 12, cfg.total)

	cfg = newStartConfig([]StartOption{WithCampaignMode(3), WithInspectMode()})
	assert.Equal(t, ModeInspect, cfg.mode)
}

package controller

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	m "gooze.dev/pkg/tokfuzz/internal/model"
)

const (
	defaultWidth  = 80
	recentReports = 8
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	headerStyle = lipgloss.NewStyle().Bold(true).Underline(true)

	kindStyles = map[string]lipgloss.Style{
		"keyword": lipgloss.NewStyle().Foreground(lipgloss.Color("205")),
		"ident":   lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		"number":  lipgloss.NewStyle().Foreground(lipgloss.Color("141")),
		"string":  lipgloss.NewStyle().Foreground(lipgloss.Color("114")),
		"open":    lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		"close":   lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Bold(true),
		"comment": dimStyle,
		"space":   dimStyle,
	}
)

// TUI implements UI with Bubble Tea. Campaigns get a live progress view;
// inspection output is rendered once with lipgloss styles.
type TUI struct {
	output io.Writer

	mu      sync.Mutex
	program *tea.Program
	done    chan struct{}
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

func (t *TUI) width() int {
	if f, ok := t.output.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			return w
		}
	}

	return defaultWidth
}

// Start launches the campaign view when started in campaign mode.
func (t *TUI) Start(ctx context.Context, options ...StartOption) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	cfg := newStartConfig(options)
	if cfg.mode != ModeCampaign {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	model := newCampaignModel(cfg.total, t.width())
	t.program = tea.NewProgram(model, tea.WithOutput(t.output), tea.WithContext(ctx))
	t.done = make(chan struct{})

	go func(p *tea.Program, done chan struct{}) {
		defer close(done)

		_, _ = p.Run()
	}(t.program, t.done)

	return nil
}

// Close stops the campaign view if it is still running.
func (t *TUI) Close(_ context.Context) {
	t.mu.Lock()
	program, done := t.program, t.done
	t.program = nil
	t.mu.Unlock()

	if program == nil {
		return
	}

	program.Quit()
	<-done
}

// Wait blocks until the user quits the campaign view.
func (t *TUI) Wait(ctx context.Context) {
	t.mu.Lock()
	done := t.done
	t.mu.Unlock()

	if done == nil {
		return
	}

	select {
	case <-done:
	case <-ctx.Done():
	}
}

func (t *TUI) send(msg tea.Msg) {
	t.mu.Lock()
	program := t.program
	t.mu.Unlock()

	if program != nil {
		program.Send(msg)
	}
}

// DisplayTokens renders the token listing with one colour per kind.
func (t *TUI) DisplayTokens(ctx context.Context, path m.Path, rows []m.TokenRow, stats m.LexStats) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	width := t.width()

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s (%s)", path, stats.Name)) + "\n\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%6s  %-8s  %s", "#", "kind", "text")) + "\n")

	for _, row := range rows {
		text := formatTokenText(row.Text)
		if row.Pair != "" {
			text += labelStyle.Render(" -> " + formatTokenText(row.Pair))
		}

		indent := strings.Repeat("  ", row.Depth)
		line := fmt.Sprintf("%6d  %-8s  %s", row.Index, row.Kind, indent+text)

		style, ok := kindStyles[row.Kind]
		if !ok {
			style = lipgloss.NewStyle()
		}

		b.WriteString(style.Render(runewidth.Truncate(line, width-1, "…")) + "\n")
	}

	fmt.Fprintf(&b, "\n%s %d  %s %d  %s %d\n",
		labelStyle.Render("tokens"), stats.Tokens,
		labelStyle.Render("openers"), stats.Openers,
		labelStyle.Render("unclosed"), stats.Unclosed)
	fmt.Fprintf(&b, "%s %s  %s %s\n",
		labelStyle.Render("lossless"), renderCheck(stats.Lossless),
		labelStyle.Render("stable"), renderCheck(stats.Stable))

	_, err := fmt.Fprint(t.output, b.String())

	return err
}

// DisplayCorpus renders the corpus listing.
func (t *TUI) DisplayCorpus(ctx context.Context, entries []m.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	width := t.width()

	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("corpus: %d entries", len(entries))) + "\n\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("%4s  %-8s  %7s  %7s  %7s  %s", "id", "name", "bytes", "tokens", "openers", "path")) + "\n")

	for _, e := range entries {
		line := fmt.Sprintf("%4d  %-8s  %7d  %7d  %7d  %s", e.ID, shortName(e.Name), e.Bytes, e.Tokens, e.Openers, e.Path)
		if e.Cached {
			line += dimStyle.Render(" (cached)")
		}

		b.WriteString(runewidth.Truncate(line, width-1, "…") + "\n")
	}

	_, err := fmt.Fprint(t.output, b.String())

	return err
}

// DisplayCampaignInfo forwards the campaign parameters to the live view.
func (t *TUI) DisplayCampaignInfo(_ context.Context, info m.CampaignInfo) {
	t.send(infoMsg(info))
}

// DisplayCompletedIteration forwards one iteration to the live view.
func (t *TUI) DisplayCompletedIteration(_ context.Context, report m.Report) {
	t.send(iterationMsg(report))
}

// DisplaySummary forwards the final summary to the live view.
func (t *TUI) DisplaySummary(_ context.Context, summary m.Summary) {
	t.send(summaryMsg(summary))
}

func renderCheck(ok bool) string {
	if ok {
		return okStyle.Render(yesNo(ok))
	}

	return errStyle.Render(yesNo(ok))
}

type (
	infoMsg      m.CampaignInfo
	iterationMsg m.Report
	summaryMsg   m.Summary
)

// campaignModel is the Bubble Tea model following a running campaign.
type campaignModel struct {
	info     m.CampaignInfo
	total    int
	done     int
	mutated  int
	errors   int
	recent   []string
	summary  *m.Summary
	progress progress.Model
	width    int
	quitting bool
}

func newCampaignModel(total, width int) campaignModel {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = min(max(width-4, 10), defaultWidth)

	return campaignModel{
		total:    total,
		progress: bar,
		width:    width,
	}
}

func (cm campaignModel) Init() tea.Cmd {
	return nil
}

func (cm campaignModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		cm.width = msg.Width
		cm.progress.Width = min(max(msg.Width-4, 10), defaultWidth)

		return cm, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			cm.quitting = true
			return cm, tea.Quit
		}

		return cm, nil

	case infoMsg:
		cm.info = m.CampaignInfo(msg)
		if cm.total == 0 {
			cm.total = cm.info.Iterations
		}

		return cm, nil

	case iterationMsg:
		report := m.Report(msg)
		cm.done++

		if report.Output != "" {
			cm.mutated++
		}

		if report.Err != "" {
			cm.errors++
		}

		cm.recent = append(cm.recent, formatIteration(report))
		if len(cm.recent) > recentReports {
			cm.recent = cm.recent[len(cm.recent)-recentReports:]
		}

		return cm, nil

	case summaryMsg:
		summary := m.Summary(msg)
		cm.summary = &summary

		return cm, nil
	}

	return cm, nil
}

func (cm campaignModel) ratio() float64 {
	if cm.total <= 0 {
		return 0
	}

	return min(float64(cm.done)/float64(cm.total), 1)
}

func (cm campaignModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("tokfuzz campaign"))

	if cm.info.RunID != "" {
		b.WriteString(labelStyle.Render("  " + cm.info.RunID))
	}

	b.WriteString("\n\n")
	b.WriteString(cm.progress.ViewAs(cm.ratio()) + "\n")
	fmt.Fprintf(&b, "%s %d/%d  %s %d  %s %d\n\n",
		labelStyle.Render("done"), cm.done, cm.total,
		labelStyle.Render("mutated"), cm.mutated,
		labelStyle.Render("errors"), cm.errors)

	lineWidth := max(cm.width-2, 20)

	for _, line := range cm.recent {
		b.WriteString(runewidth.Truncate(line, lineWidth, "…") + "\n")
	}

	if cm.summary != nil {
		b.WriteString("\n" + titleStyle.Render("summary") + "\n")

		for _, stat := range cm.summary.Mutators {
			fmt.Fprintf(&b, "  %-34s %6d mutated %6d skipped\n", stat.Name, stat.Mutated, stat.Skipped)
		}

		fmt.Fprintf(&b, "\n  unique %d  reinserted %d  errors %d\n",
			cm.summary.Unique, cm.summary.Reinserted, cm.summary.Errors)
		b.WriteString(helpStyle.Render("\n  q: quit") + "\n")
	}

	return b.String()
}

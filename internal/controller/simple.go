package controller

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "gooze.dev/pkg/tokfuzz/internal/model"
)

var (
	okColor   = color.New(color.FgGreen)
	failColor = color.New(color.FgRed, color.Bold)
	dimColor  = color.New(color.Faint)
)

// SimpleUI implements UI using cobra Command's output. It is safe for
// concurrent use; each Display call reaches the writer as a single write.
type SimpleUI struct {
	mu  sync.Mutex
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// Start initializes the UI.
func (s *SimpleUI) Start(ctx context.Context, _ ...StartOption) error {
	return ctx.Err()
}

// Close finalizes the UI.
func (s *SimpleUI) Close(_ context.Context) {}

// Wait returns immediately; SimpleUI prints and continues.
func (s *SimpleUI) Wait(_ context.Context) {}

// DisplayTokens prints a token table followed by the lexing checks.
func (s *SimpleUI) DisplayTokens(ctx context.Context, path m.Path, rows []m.TokenRow, stats m.LexStats) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("%s (%s)\n\n%s\n", path, stats.Name, renderTokenTable(rows))
	s.printf("tokens: %d  openers: %d  unclosed: %d\n", stats.Tokens, stats.Openers, stats.Unclosed)
	s.printf("lossless: %s  stable: %s\n", s.check(stats.Lossless), s.check(stats.Stable))

	return nil
}

func renderTokenTable(rows []m.TokenRow) string {
	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"#", "Kind", "Text", "Closer", "Depth"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT,
	})

	for _, row := range rows {
		table.Append([]string{
			fmt.Sprintf("%d", row.Index),
			row.Kind,
			formatTokenText(row.Text),
			formatTokenText(row.Pair),
			fmt.Sprintf("%d", row.Depth),
		})
	}

	table.Render()

	return buf.String()
}

// DisplayCorpus prints one row per corpus entry.
func (s *SimpleUI) DisplayCorpus(ctx context.Context, entries []m.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"ID", "Path", "Bytes", "Tokens", "Openers", "Name", "Cached"})
	table.SetBorder(false)
	table.SetCenterSeparator("")

	totalTokens := 0

	for _, e := range entries {
		table.Append([]string{
			fmt.Sprintf("%d", e.ID),
			string(e.Path),
			fmt.Sprintf("%d", e.Bytes),
			fmt.Sprintf("%d", e.Tokens),
			fmt.Sprintf("%d", e.Openers),
			shortName(e.Name),
			yesNo(e.Cached),
		})

		totalTokens += e.Tokens
	}

	table.SetFooter([]string{"", fmt.Sprintf("Total Entries %d", len(entries)), "", fmt.Sprintf("%d", totalTokens), "", "", ""})
	table.Render()

	s.printf("\n%s", buf.String())

	return nil
}

// DisplayCampaignInfo prints the campaign parameters.
func (s *SimpleUI) DisplayCampaignInfo(ctx context.Context, info m.CampaignInfo) {
	if ctx.Err() != nil {
		return
	}

	s.printf("Campaign %s: %d iteration(s) over %d entries with %d worker(s), seed %d\n",
		info.RunID, info.Iterations, info.Corpus, info.Threads, info.Seed)
	s.printf("Mutators: %s\n", strings.Join(info.Mutators, ", "))
}

// DisplayCompletedIteration prints one line per iteration and its diff when
// one was recorded.
func (s *SimpleUI) DisplayCompletedIteration(ctx context.Context, report m.Report) {
	if ctx.Err() != nil {
		return
	}

	line := formatIteration(report)

	switch {
	case report.Err != "":
		line = failColor.Sprint(line)
	case report.Output == "":
		line = dimColor.Sprint(line)
	}

	var b strings.Builder

	b.WriteString(line)
	b.WriteByte('\n')

	if report.Diff != "" {
		b.WriteString(report.Diff)
		b.WriteByte('\n')
	}

	s.printf("%s", b.String())
}

// DisplaySummary prints per-operator counts and the campaign totals.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) {
	if ctx.Err() != nil {
		return
	}

	var buf bytes.Buffer

	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Mutator", "Mutated", "Skipped"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT})

	for _, stat := range summary.Mutators {
		table.Append([]string{stat.Name, fmt.Sprintf("%d", stat.Mutated), fmt.Sprintf("%d", stat.Skipped)})
	}

	table.Render()

	s.printf("\n%s\n", buf.String())
	s.printf("Iterations: %d | Mutated: %d | Unique: %d | Reinserted: %d | Errors: %d\n",
		summary.Iterations, summary.Mutated, summary.Unique, summary.Reinserted, summary.Errors)

	if summary.Reports != "" {
		s.printf("Reports: %s\n", summary.Reports)
	}
}

func (s *SimpleUI) check(ok bool) string {
	if ok {
		return okColor.Sprint(yesNo(ok))
	}

	return failColor.Sprint(yesNo(ok))
}

func (s *SimpleUI) printf(format string, args ...any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

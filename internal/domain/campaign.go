package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"fortio.org/safecast"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"gooze.dev/pkg/tokfuzz/internal/adapter"
	"gooze.dev/pkg/tokfuzz/internal/controller"
	m "gooze.dev/pkg/tokfuzz/internal/model"
	pkg "gooze.dev/pkg/tokfuzz/pkg"
	"gooze.dev/pkg/tokfuzz/pkg/lexers"
	"gooze.dev/pkg/tokfuzz/pkg/mutagens"
	"gooze.dev/pkg/tokfuzz/pkg/rands"
	"gooze.dev/pkg/tokfuzz/pkg/token"
)

// ErrUnknownMutator is returned when a requested operator name matches no
// mutator.
var ErrUnknownMutator = errors.New("unknown mutator")

// Campaign defaults applied to zero-valued MutateArgs fields.
const (
	DefaultStack   = 4
	DefaultMaxSize = 4096
)

// ReportsDir is the directory below the output directory holding the report
// spills. Every campaign adds its own spill file there; earlier ones are kept
// as the record of past runs.
const ReportsDir = ".reports"

// MutateArgs contains the arguments for a mutation campaign.
type MutateArgs struct {
	Corpus     m.Path
	Dialect    m.Path
	Output     m.Path
	Iterations int
	// Stack bounds the operators applied per iteration to [1, Stack].
	Stack   int
	Threads int
	// Seed of 0 picks a seed from the clock; the seed used is displayed.
	Seed    uint64
	MaxSize int
	// Reinsert adds every mutated testcase back into the corpus.
	Reinsert bool
	ShowDiff bool
	// Mutators restricts the operator set; empty enables all of them.
	Mutators []string
}

func (a MutateArgs) normalized() MutateArgs {
	if a.Stack <= 0 {
		a.Stack = DefaultStack
	}

	if a.Threads <= 0 {
		a.Threads = 1
	}

	if a.MaxSize <= 0 {
		a.MaxSize = DefaultMaxSize
	}

	if a.Seed == 0 {
		a.Seed = clockSeed()
	}

	return a
}

func clockSeed() uint64 {
	seed, err := safecast.Conv[uint64](time.Now().UnixNano())
	if err != nil || seed == 0 {
		return 1
	}

	return seed
}

// Mutate runs a campaign: independent iterations, each stacking randomly
// chosen operators on a randomly chosen corpus entry.
func (w *workflow) Mutate(ctx context.Context, args MutateArgs) error {
	args = args.normalized()

	lexer, err := w.loadLexer(ctx, args.Dialect)
	if err != nil {
		return err
	}

	mutators, err := selectMutators(mutagens.All[lexers.Token](lexer), args.Mutators)
	if err != nil {
		return err
	}

	store, err := w.loadCorpus(ctx, args.Corpus, lexer)
	if err != nil {
		return err
	}

	if store.Count() == 0 {
		slog.Error("Corpus has no entries", "root", args.Corpus)
		return fmt.Errorf("%w: %s", adapter.ErrEmptyCorpus, args.Corpus)
	}

	if err := w.MkdirAll(ctx, args.Output); err != nil {
		slog.Error("Failed to create output directory", "path", args.Output, "error", err)
		return fmt.Errorf("create output directory: %w", err)
	}

	reports, err := pkg.NewFileSpill[m.Report](string(w.JoinPath(ctx, string(args.Output), ReportsDir)))
	if err != nil {
		return fmt.Errorf("create report spill: %w", err)
	}
	defer closeReports(reports)

	names := mutagens.Names(mutators)
	info := m.CampaignInfo{
		RunID:      uuid.NewString(),
		Iterations: args.Iterations,
		Threads:    args.Threads,
		Seed:       args.Seed,
		Stack:      args.Stack,
		MaxSize:    args.MaxSize,
		Corpus:     store.Count(),
		Mutators:   names,
		Output:     args.Output,
	}

	slog.Info("Starting campaign", "run", info.RunID, "iterations", info.Iterations, "seed", info.Seed, "corpus", info.Corpus)

	if err := w.Start(ctx, controller.WithCampaignMode(args.Iterations)); err != nil {
		slog.Error("Failed to start UI", "error", err)
		return err
	}
	defer w.Close(ctx)

	w.DisplayCampaignInfo(ctx, info)

	c := &campaign{
		fs:       w.SourceFSAdapter,
		store:    store,
		mutators: mutators,
		args:     args,
	}

	if err := w.runIterations(ctx, c, reports); err != nil {
		slog.Error("Campaign aborted", "run", info.RunID, "error", err)
		return fmt.Errorf("mutate: %w", err)
	}

	summary, err := summaryFromReports(reports, names)
	if err != nil {
		return fmt.Errorf("summarise reports: %w", err)
	}

	if err := reports.Close(); err != nil {
		return fmt.Errorf("close report spill: %w", err)
	}

	slog.Info("Campaign finished", "run", info.RunID, "mutated", summary.Mutated, "unique", summary.Unique,
		"errors", summary.Errors, "reports", summary.Reports)

	w.DisplaySummary(ctx, summary)
	w.Wait(ctx)

	return nil
}

func (w *workflow) runIterations(ctx context.Context, c *campaign, reports pkg.FileSpill[m.Report]) error {
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(c.args.Threads)

	for i := range c.args.Iterations {
		if groupCtx.Err() != nil {
			break
		}

		group.Go(func() error {
			report, err := c.iterate(groupCtx, i)
			if err != nil {
				return err
			}

			if err := reports.Append(report); err != nil {
				return fmt.Errorf("record iteration %d: %w", i, err)
			}

			w.DisplayCompletedIteration(groupCtx, report)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}

// closeReports closes the spill on early returns. Close is idempotent, so it
// is a no-op after a successful run.
func closeReports(reports pkg.FileSpill[m.Report]) {
	if err := reports.Close(); err != nil {
		slog.Error("Failed to close report spill", "path", reports.Path(), "error", err)
	}
}

// selectMutators returns the operators named in names, in the order given.
// A name matches either the full operator name or its short form without
// the Token prefix and Mutator suffix, case-insensitively.
func selectMutators(all []mutagens.Mutator[lexers.Token], names []string) ([]mutagens.Mutator[lexers.Token], error) {
	if len(names) == 0 {
		return all, nil
	}

	selected := make([]mutagens.Mutator[lexers.Token], 0, len(names))
	seen := make(map[string]bool, len(names))

	for _, name := range names {
		mutator, ok := findMutator(all, name)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownMutator, name)
		}

		if seen[mutator.Name()] {
			continue
		}

		seen[mutator.Name()] = true
		selected = append(selected, mutator)
	}

	return selected, nil
}

func findMutator(all []mutagens.Mutator[lexers.Token], name string) (mutagens.Mutator[lexers.Token], bool) {
	name = strings.TrimSpace(name)

	for _, mutator := range all {
		full := mutator.Name()
		short := strings.TrimPrefix(strings.TrimSuffix(full, "Mutator"), "Token")

		if strings.EqualFold(name, full) || strings.EqualFold(name, short) {
			return mutator, true
		}
	}

	return nil, false
}

// campaign holds what every iteration shares.
type campaign struct {
	fs       adapter.SourceFSAdapter
	store    *adapter.CorpusStore[lexers.Token]
	mutators []mutagens.Mutator[lexers.Token]
	args     MutateArgs
}

// iterate runs one iteration. The random stream is derived from the seed and
// the iteration number alone; without reinsertion an iteration replays
// identically whatever the worker count. Returned errors abort the campaign,
// output failures are recorded in the report instead.
func (c *campaign) iterate(ctx context.Context, i int) (m.Report, error) {
	if err := ctx.Err(); err != nil {
		return m.Report{}, err
	}

	stream, err := safecast.Conv[uint64](i)
	if err != nil {
		return m.Report{}, fmt.Errorf("iteration %d: %w", i, err)
	}

	r := rands.NewStd(c.args.Seed, stream)

	id, ok := mutagens.RandomCorpusID(c.store, r, 0, false)
	if !ok {
		return m.Report{}, adapter.ErrEmptyCorpus
	}

	in, source, err := c.store.Snapshot(id)
	if err != nil {
		return m.Report{}, fmt.Errorf("iteration %d: %w", i, err)
	}

	original := in.Bytes()
	state := &campaignState{rand: r, corpus: c.store, maxSize: c.args.MaxSize, current: id}
	report := m.Report{Iteration: i, EntryID: int(id), Source: source}

	stackBound, err := safecast.Conv[uint64](c.args.Stack)
	if err != nil {
		return m.Report{}, fmt.Errorf("iteration %d: %w", i, err)
	}

	depth := 1 + r.Below(stackBound)

	for range depth {
		mutator, ok := rands.Choose(r, c.mutators)
		if !ok {
			break
		}

		result, err := mutator.Mutate(state, in)
		if err != nil {
			return report, fmt.Errorf("iteration %d: %s: %w", i, mutator.Name(), err)
		}

		report.Applied = append(report.Applied, m.Application{
			Mutator: mutator.Name(),
			Mutated: result == mutagens.Mutated,
		})
	}

	report.Tokens = in.Len()

	if !report.Mutated() {
		return report, nil
	}

	c.emit(ctx, &report, original, token.Lower(in))

	return report, nil
}

// emit writes the lowered testcase and, when enabled, its diff and corpus
// reinsertion.
func (c *campaign) emit(ctx context.Context, report *m.Report, original []byte, lowered token.Lowered[lexers.Token]) {
	raw := lowered.Raw.Bytes()
	report.Bytes = len(raw)
	report.Output = lowered.Post.Name()

	target := c.fs.JoinPath(ctx, string(c.args.Output), report.Output)

	if c.args.ShowDiff {
		diff, err := unifiedDiff(original, raw, string(report.Source), string(target))
		if err != nil {
			slog.Warn("Failed to build diff", "iteration", report.Iteration, "error", err)
		}

		report.Diff = diff
	}

	if err := c.fs.WriteFile(ctx, target, raw); err != nil {
		slog.Error("Failed to write testcase", "path", target, "error", err)
		report.Err = err.Error()

		return
	}

	if !c.args.Reinsert {
		return
	}

	_, added, err := c.store.Add(ctx, report.Output, lowered.Post)
	if err != nil {
		slog.Error("Failed to reinsert testcase", "name", report.Output, "error", err)
		report.Err = err.Error()

		return
	}

	report.Reinserted = added
}

// campaignState is the mutagens.State of one iteration.
type campaignState struct {
	rand    rands.Rand
	corpus  mutagens.Corpus[lexers.Token]
	maxSize int
	current mutagens.CorpusID
}

func (s *campaignState) Rand() rands.Rand { return s.rand }

func (s *campaignState) Corpus() mutagens.Corpus[lexers.Token] { return s.corpus }

func (s *campaignState) MaxSize() int { return s.maxSize }

func (s *campaignState) CurrentID() (mutagens.CorpusID, bool) { return s.current, true }

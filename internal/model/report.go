package model

// Application records one operator applied during an iteration.
type Application struct {
	Mutator string `msgpack:"mutator"`
	Mutated bool   `msgpack:"mutated"`
}

// Report is the outcome of one campaign iteration.
type Report struct {
	Iteration int           `msgpack:"iteration"`
	EntryID   int           `msgpack:"entry"`
	Source    Path          `msgpack:"source"`
	Applied   []Application `msgpack:"applied"`
	// Output is the name of the written testcase; empty when nothing mutated.
	Output     string `msgpack:"output,omitempty"`
	Tokens     int    `msgpack:"tokens"`
	Bytes      int    `msgpack:"bytes"`
	Reinserted bool   `msgpack:"reinserted,omitempty"`
	Diff       string `msgpack:"diff,omitempty"`
	Err        string `msgpack:"err,omitempty"`
}

// Mutated reports whether any operator changed the input.
func (r Report) Mutated() bool {
	for _, a := range r.Applied {
		if a.Mutated {
			return true
		}
	}

	return false
}

// MutatorStats counts outcomes for one operator.
type MutatorStats struct {
	Name    string
	Mutated int
	Skipped int
}

// Summary aggregates a campaign.
type Summary struct {
	Iterations int
	Mutated    int
	Unique     int
	Reinserted int
	Errors     int
	Mutators   []MutatorStats
	Reports    Path
}

// CampaignInfo describes a campaign before it starts.
type CampaignInfo struct {
	RunID      string
	Iterations int
	Threads    int
	Seed       uint64
	Stack      int
	MaxSize    int
	Corpus     int
	Mutators   []string
	Output     Path
}

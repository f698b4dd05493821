package domain

import (
	m "gooze.dev/pkg/tokfuzz/internal/model"
	pkg "gooze.dev/pkg/tokfuzz/pkg"
)

// summaryFromReports aggregates the spilled reports. Operator rows follow
// names; operators that never ran keep zero counts.
func summaryFromReports(reports pkg.FileSpill[m.Report], names []string) (m.Summary, error) {
	stats := make([]m.MutatorStats, len(names))
	index := make(map[string]int, len(names))

	for i, name := range names {
		stats[i].Name = name
		index[name] = i
	}

	summary := m.Summary{Reports: m.Path(reports.Path())}
	outputs := make(map[string]struct{})

	err := reports.Range(func(_ uint64, report m.Report) error {
		summary.Iterations++

		for _, applied := range report.Applied {
			i, ok := index[applied.Mutator]
			if !ok {
				i = len(stats)
				index[applied.Mutator] = i
				stats = append(stats, m.MutatorStats{Name: applied.Mutator})
			}

			if applied.Mutated {
				stats[i].Mutated++
			} else {
				stats[i].Skipped++
			}
		}

		if report.Output != "" {
			summary.Mutated++
			outputs[report.Output] = struct{}{}
		}

		if report.Reinserted {
			summary.Reinserted++
		}

		if report.Err != "" {
			summary.Errors++
		}

		return nil
	})
	if err != nil {
		return m.Summary{}, err
	}

	summary.Unique = len(outputs)
	summary.Mutators = stats

	return summary, nil
}

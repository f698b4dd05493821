package controller

import (
	"fmt"
	"strings"

	m "gooze.dev/pkg/tokfuzz/internal/model"
)

const shortNameLen = 8

func shortName(name string) string {
	if len(name) <= shortNameLen {
		return name
	}

	return name[:shortNameLen]
}

// formatApplied renders the operator stack, marking skipped operators
// with a trailing "-".
func formatApplied(applied []m.Application) string {
	parts := make([]string, 0, len(applied))

	for _, a := range applied {
		name := strings.TrimPrefix(strings.TrimSuffix(a.Mutator, "Mutator"), "Token")
		if !a.Mutated {
			name += "-"
		}

		parts = append(parts, name)
	}

	return strings.Join(parts, " ")
}

func formatIteration(report m.Report) string {
	outcome := "unchanged"

	switch {
	case report.Err != "":
		outcome = "error: " + report.Err
	case report.Output != "":
		outcome = shortName(report.Output)
		if report.Reinserted {
			outcome += " (new)"
		}
	}

	return fmt.Sprintf("#%d %s [%s] -> %s", report.Iteration, report.Source, formatApplied(report.Applied), outcome)
}

func formatTokenText(text string) string {
	quoted := fmt.Sprintf("%q", text)
	return quoted[1 : len(quoted)-1]
}

func yesNo(v bool) string {
	if v {
		return "yes"
	}

	return "no"
}

package domain

import (
	"github.com/pmezard/go-difflib/difflib"
)

// unifiedDiff renders the line diff between the source entry and the
// mutated testcase.
func unifiedDiff(before, after []byte, from, to string) (string, error) {
	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(string(before)),
		B:        difflib.SplitLines(string(after)),
		FromFile: from,
		ToFile:   to,
		Context:  3,
	})
}

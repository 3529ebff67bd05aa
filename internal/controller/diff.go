package controller

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"
)

const diffContextLines = 3

// UnifiedDiff renders a unified diff of before against after. Identical
// inputs produce an empty string.
func UnifiedDiff(name, before, after string) (string, error) {
	name = strings.TrimPrefix(name, "/")

	return difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + name,
		ToFile:   "b/" + name,
		Context:  diffContextLines,
	})
}

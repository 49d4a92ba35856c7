// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package selection turns a ranked list of text units into keyphrase
// candidates or a word-budgeted summary.
package selection

import (
	"strings"

	"github.com/pdiddy/textrank/pkg/types"
)

// TopFraction returns the first ⌊N/3⌋+1 entries of ranked, capped at N.
func TopFraction(ranked []string) []string {
	n := len(ranked)
	k := min(n/3+1, n)
	return append([]string(nil), ranked[:k]...)
}

// WordBudget joins ranked sentences in rank order and keeps the first
// budget whitespace-separated tokens. A non-positive budget uses
// types.DefaultSummaryWords.
func WordBudget(ranked []string, budget int) string {
	if budget <= 0 {
		budget = types.DefaultSummaryWords
	}
	words := strings.Fields(strings.Join(ranked, " "))
	if len(words) > budget {
		words = words[:budget]
	}
	return strings.Join(words, " ")
}

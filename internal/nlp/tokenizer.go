// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package nlp

import "regexp"

// WordTokenizer splits text into words and single punctuation marks.
// Words may contain inner apostrophes, hyphens, and periods ("don't",
// "state-of-the-art", "U.S").
type WordTokenizer struct {
	pattern *regexp.Regexp
}

// NewWordTokenizer returns a ready WordTokenizer.
func NewWordTokenizer() *WordTokenizer {
	return &WordTokenizer{
		pattern: regexp.MustCompile(`[\p{L}\p{N}]+(?:['’\-.][\p{L}\p{N}]+)*|[^\p{L}\p{N}\s]`),
	}
}

// Tokenize implements Tokenizer.
func (t *WordTokenizer) Tokenize(text string) []string {
	return t.pattern.FindAllString(text, -1)
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package phrase reassembles top-ranked words into multi-word keyphrases
// using their adjacency in the original token stream.
package phrase

// Assemble merges adjacent top-ranked words of tokens into two-word
// phrases. A pair is merged when both words are top-ranked and neither has
// already been absorbed into an earlier phrase; absorbed words are dealt
// with and never emitted alone. Every other top-ranked word present in
// tokens is emitted standalone. The result is a set in order of first
// emission.
func Assemble(tokens []string, top []string) []string {
	topSet := NewOrderedSet(top...)
	n := len(tokens)

	dealt := make(map[string]bool)
	pairAt := make([]bool, n)
	for i := 0; i+1 < n; i++ {
		a, b := tokens[i], tokens[i+1]
		if !topSet.Has(a) || !topSet.Has(b) || dealt[a] || dealt[b] {
			continue
		}
		pairAt[i] = true
		dealt[a] = true
		dealt[b] = true
	}

	out := NewOrderedSet()
	for i, w := range tokens {
		if pairAt[i] {
			out.Add(w + " " + tokens[i+1])
			continue
		}
		if topSet.Has(w) && !dealt[w] {
			out.Add(w)
		}
	}
	return out.Items()
}

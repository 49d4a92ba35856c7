// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package distance computes edit distances between text units.
package distance

// Levenshtein returns the minimum number of single-rune insertions,
// deletions, or substitutions that turn a into b. It keeps a single row
// sized to the shorter string.
func Levenshtein(a, b string) int {
	short, long := []rune(a), []rune(b)
	if len(short) > len(long) {
		short, long = long, short
	}

	row := make([]int, len(short)+1)
	for i := range row {
		row[i] = i
	}

	next := make([]int, len(short)+1)
	for j, lr := range long {
		next[0] = j + 1
		for i, sr := range short {
			if sr == lr {
				next[i+1] = row[i]
				continue
			}
			next[i+1] = 1 + min(row[i], row[i+1], next[i])
		}
		row, next = next, row
	}

	return row[len(short)]
}

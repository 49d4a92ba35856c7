// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package nlp

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// abbreviations never end a sentence when followed by a period.
var abbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"sr": true, "jr": true, "st": true, "vs": true, "etc": true,
	"e.g": true, "i.e": true, "inc": true, "ltd": true, "co": true,
	"no": true, "fig": true, "approx": true, "dept": true, "est": true,
	"a.m": true, "p.m": true, "u.s": true,
}

// PunctSplitter ends a sentence at '.', '!' or '?' (plus any closing quotes
// or brackets) followed by whitespace or the end of the text. Known
// abbreviations and single-letter initials do not end a sentence.
// Unterminated trailing text forms a final sentence.
type PunctSplitter struct{}

// NewPunctSplitter returns a PunctSplitter.
func NewPunctSplitter() *PunctSplitter {
	return &PunctSplitter{}
}

// Split implements SentenceSplitter.
func (PunctSplitter) Split(text string) []string {
	var (
		sentences []string
		start     int
	)

	emit := func(end int) {
		if s := strings.TrimSpace(text[start:end]); s != "" {
			sentences = append(sentences, s)
		}
		start = end
	}

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		if !isTerminator(r) {
			i += size
			continue
		}

		end := i + size
		for end < len(text) {
			next, n := utf8.DecodeRuneInString(text[end:])
			if !isTerminator(next) && !isCloser(next) {
				break
			}
			end += n
		}

		boundary := end == len(text)
		if !boundary {
			next, _ := utf8.DecodeRuneInString(text[end:])
			boundary = unicode.IsSpace(next)
		}
		if boundary && r == '.' && isAbbreviation(text[start:i]) {
			boundary = false
		}
		if boundary {
			emit(end)
		}
		i = end
	}
	emit(len(text))

	return sentences
}

func isTerminator(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

func isCloser(r rune) bool {
	switch r {
	case '"', '\'', ')', ']', '”', '’', '»':
		return true
	}
	return false
}

// isAbbreviation reports whether the last word of prefix is a known
// abbreviation or a single-letter initial.
func isAbbreviation(prefix string) bool {
	fields := strings.Fields(prefix)
	if len(fields) == 0 {
		return false
	}
	word := strings.TrimLeft(fields[len(fields)-1], `"'([“‘`)
	if utf8.RuneCountInString(word) == 1 {
		r, _ := utf8.DecodeRuneInString(word)
		return unicode.IsUpper(r)
	}
	return abbreviations[strings.ToLower(word)]
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package nlp

import "github.com/kljensen/snowball"

// Stemmer reduces words to their Snowball stem.
type Stemmer struct {
	// Language is a Snowball language name (default "english").
	Language string
}

// NewStemmer returns an English Stemmer.
func NewStemmer() *Stemmer {
	return &Stemmer{Language: "english"}
}

// Stem returns the stem of word, or word itself when stemming fails.
func (s *Stemmer) Stem(word string) string {
	lang := s.Language
	if lang == "" {
		lang = "english"
	}
	stemmed, err := snowball.Stem(word, lang, true)
	if err != nil || stemmed == "" {
		return word
	}
	return stemmed
}

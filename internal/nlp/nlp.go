// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package nlp defines the tokenization, tagging, and sentence-splitting
// collaborators used by the extractor, together with lightweight default
// implementations and the candidate filters applied before ranking.
package nlp

import (
	"slices"
	"strings"
)

// Tokenizer splits text into word and punctuation tokens in original order.
type Tokenizer interface {
	Tokenize(text string) []string
}

// Tagger assigns a part-of-speech tag to every token.
type Tagger interface {
	Tag(tokens []string) []Tagged
}

// SentenceSplitter splits text into sentences in original order.
type SentenceSplitter interface {
	Split(text string) []string
}

// Tagged is a token with its Penn Treebank style tag.
type Tagged struct {
	Token string `json:"token" yaml:"token"`
	Tag   string `json:"tag" yaml:"tag"`
}

// Tokens returns the token of every tagged pair.
func Tokens(tagged []Tagged) []string {
	out := make([]string, len(tagged))
	for i, t := range tagged {
		out[i] = t.Token
	}
	return out
}

// FilterTags keeps the pairs whose tag is in tags.
func FilterTags(tagged []Tagged, tags []string) []Tagged {
	out := make([]Tagged, 0, len(tagged))
	for _, t := range tagged {
		if slices.Contains(tags, t.Tag) {
			out = append(out, t)
		}
	}
	return out
}

// Normalize removes periods from every token.
func Normalize(tagged []Tagged) []Tagged {
	out := make([]Tagged, len(tagged))
	for i, t := range tagged {
		out[i] = Tagged{Token: strings.ReplaceAll(t.Token, ".", ""), Tag: t.Tag}
	}
	return out
}

// Unique returns words with duplicates and empty strings removed, keeping
// the first occurrence of each.
func Unique(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if w == "" {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Document is the extraction result for a single article.
type Document struct {
	// ID identifies the article, usually its file name.
	ID string `json:"id" yaml:"id"`

	// Keyphrases holds single words and two-word phrases in emission order.
	Keyphrases []string `json:"keyphrases" yaml:"keyphrases"`

	// Summary is the rank-ordered extractive summary.
	Summary string `json:"summary" yaml:"summary"`

	// WordCandidates is the number of unique candidate words ranked.
	WordCandidates int `json:"word_candidates" yaml:"word_candidates"`

	// SentenceCandidates is the number of unique sentences ranked.
	SentenceCandidates int `json:"sentence_candidates" yaml:"sentence_candidates"`

	// Converged is false when either ranking ran to its iteration cap.
	Converged bool `json:"converged" yaml:"converged"`
}

// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package nlp

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// closedClass maps function words to their most frequent tag.
var closedClass = map[string]string{
	"the": "DT", "a": "DT", "an": "DT", "this": "DT", "that": "DT",
	"these": "DT", "those": "DT", "each": "DT", "every": "DT", "some": "DT",
	"any": "DT", "no": "DT", "all": "DT", "both": "DT", "another": "DT",

	"of": "IN", "in": "IN", "on": "IN", "at": "IN", "by": "IN", "for": "IN",
	"with": "IN", "from": "IN", "into": "IN", "over": "IN", "under": "IN",
	"about": "IN", "after": "IN", "before": "IN", "between": "IN",
	"through": "IN", "during": "IN", "without": "IN", "within": "IN",
	"against": "IN", "among": "IN", "as": "IN", "than": "IN", "like": "IN",
	"if": "IN", "because": "IN", "while": "IN", "although": "IN",
	"since": "IN", "until": "IN", "upon": "IN", "whether": "IN",

	"and": "CC", "or": "CC", "but": "CC", "nor": "CC", "yet": "CC", "so": "CC",

	"i": "PRP", "you": "PRP", "he": "PRP", "she": "PRP", "it": "PRP",
	"we": "PRP", "they": "PRP", "me": "PRP", "him": "PRP", "us": "PRP",
	"them": "PRP", "itself": "PRP", "themselves": "PRP",
	"my": "PRP$", "your": "PRP$", "his": "PRP$", "her": "PRP$",
	"its": "PRP$", "our": "PRP$", "their": "PRP$",

	"can": "MD", "could": "MD", "may": "MD", "might": "MD", "must": "MD",
	"shall": "MD", "should": "MD", "will": "MD", "would": "MD",

	"to": "TO", "there": "EX",

	"be": "VB", "is": "VBZ", "has": "VBZ", "does": "VBZ",
	"are": "VBP", "am": "VBP", "have": "VBP", "do": "VBP",
	"was": "VBD", "were": "VBD", "had": "VBD", "did": "VBD", "been": "VBN",

	"which": "WDT", "who": "WP", "whom": "WP", "what": "WP", "whose": "WP$",
	"when": "WRB", "where": "WRB", "why": "WRB", "how": "WRB",

	"not": "RB", "n't": "RB", "very": "RB", "also": "RB", "just": "RB",
	"only": "RB", "even": "RB", "still": "RB", "already": "RB",
	"never": "RB", "always": "RB", "often": "RB", "too": "RB",
	"again": "RB", "then": "RB", "now": "RB", "here": "RB",
	"more": "JJR", "less": "JJR", "most": "JJS", "least": "JJS",
}

// adjectiveSuffixes mark likely adjectives.
var adjectiveSuffixes = []string{"ous", "ful", "ive", "able", "ible", "less", "ish", "ary", "ical", "ic", "al"}

// HeuristicTagger assigns tags from a closed-class lexicon and suffix
// rules. It recognizes nouns (NN, NNS, NNP), adjectives (JJ), and enough
// function words to keep them out of the candidate set.
type HeuristicTagger struct{}

// NewHeuristicTagger returns a HeuristicTagger.
func NewHeuristicTagger() *HeuristicTagger {
	return &HeuristicTagger{}
}

// Tag implements Tagger.
func (HeuristicTagger) Tag(tokens []string) []Tagged {
	out := make([]Tagged, len(tokens))
	initial := true
	for i, tok := range tokens {
		out[i] = Tagged{Token: tok, Tag: tagToken(tok, initial)}
		initial = out[i].Tag == "."
	}
	return out
}

func tagToken(tok string, sentenceInitial bool) string {
	if tok == "" {
		return "SYM"
	}
	if tag, ok := punctuationTag(tok); ok {
		return tag
	}
	if isNumber(tok) {
		return "CD"
	}

	lower := strings.ToLower(tok)
	if tag, ok := closedClass[lower]; ok {
		return tag
	}

	first, _ := utf8.DecodeRuneInString(tok)
	if unicode.IsUpper(first) && !sentenceInitial {
		return "NNP"
	}

	n := utf8.RuneCountInString(lower)
	switch {
	case n > 4 && strings.HasSuffix(lower, "ly"):
		return "RB"
	case n > 5 && strings.HasSuffix(lower, "ing"):
		return "VBG"
	case n > 4 && strings.HasSuffix(lower, "ed"):
		return "VBD"
	}
	for _, suf := range adjectiveSuffixes {
		if n > len(suf)+2 && strings.HasSuffix(lower, suf) {
			return "JJ"
		}
	}
	if n > 3 && strings.HasSuffix(lower, "s") &&
		!strings.HasSuffix(lower, "ss") && !strings.HasSuffix(lower, "us") && !strings.HasSuffix(lower, "is") {
		return "NNS"
	}
	return "NN"
}

func punctuationTag(tok string) (string, bool) {
	for _, r := range tok {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return "", false
		}
	}
	switch tok {
	case ".", "!", "?":
		return ".", true
	case ",":
		return ",", true
	case ":", ";", "-", "--":
		return ":", true
	case "(", "[", "{":
		return "(", true
	case ")", "]", "}":
		return ")", true
	}
	return "SYM", true
}

func isNumber(tok string) bool {
	digits := 0
	for _, r := range tok {
		switch {
		case unicode.IsDigit(r):
			digits++
		case r == '.' || r == ',' || r == '-':
		default:
			return false
		}
	}
	return digits > 0
}

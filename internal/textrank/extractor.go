// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package textrank extracts keyphrases and extractive summaries from text
// by ranking words and sentences with weighted PageRank over complete
// edit-distance graphs.
package textrank

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/pdiddy/textrank/internal/graph"
	"github.com/pdiddy/textrank/internal/nlp"
	"github.com/pdiddy/textrank/internal/phrase"
	"github.com/pdiddy/textrank/internal/rank"
	"github.com/pdiddy/textrank/internal/selection"
	"github.com/pdiddy/textrank/pkg/types"
)

// Deps are the collaborators injected into an Extractor. Nil fields get
// the nlp package defaults.
type Deps struct {
	Tokenizer nlp.Tokenizer
	Tagger    nlp.Tagger
	Splitter  nlp.SentenceSplitter
	Logger    logrus.FieldLogger
}

// Extractor runs the keyphrase and summary pipelines. It holds no mutable
// state and is safe for concurrent use when its collaborators are.
type Extractor struct {
	cfg       types.TextRankConfig
	tokenizer nlp.Tokenizer
	tagger    nlp.Tagger
	splitter  nlp.SentenceSplitter
	stemmer   *nlp.Stemmer
	weight    graph.WeightFunc
	log       logrus.FieldLogger
}

// New returns an Extractor for cfg. Zero config fields take defaults.
func New(cfg types.TextRankConfig, deps Deps) *Extractor {
	cfg = cfg.WithDefaults()
	e := &Extractor{
		cfg:       cfg,
		tokenizer: deps.Tokenizer,
		tagger:    deps.Tagger,
		splitter:  deps.Splitter,
		weight:    graph.WeightFor(cfg.WeightMode),
		log:       deps.Logger,
	}
	if e.tokenizer == nil {
		e.tokenizer = nlp.NewWordTokenizer()
	}
	if e.tagger == nil {
		e.tagger = nlp.NewHeuristicTagger()
	}
	if e.splitter == nil {
		e.splitter = nlp.NewPunctSplitter()
	}
	if e.log == nil {
		e.log = logrus.StandardLogger()
	}
	if cfg.Stem {
		e.stemmer = nlp.NewStemmer()
	}
	return e
}

// Config returns the effective configuration.
func (e *Extractor) Config() types.TextRankConfig {
	return e.cfg
}

// ExtractKeyphrases returns the top third of the candidate words, with
// adjacent top words merged into two-word phrases.
func (e *Extractor) ExtractKeyphrases(text string) []string {
	phrases, _ := e.keyphrases(text)
	return phrases
}

// ExtractSentences returns a summary of at most SummaryWords words built
// from the sentences in descending rank order.
func (e *Extractor) ExtractSentences(text string) string {
	summary, _ := e.sentences(text)
	return summary
}

// Extract runs both pipelines and records ranking diagnostics.
func (e *Extractor) Extract(id, text string) types.Document {
	phrases, kw := e.keyphrases(text)
	summary, st := e.sentences(text)
	return types.Document{
		ID:                 id,
		Keyphrases:         phrases,
		Summary:            summary,
		WordCandidates:     len(kw.Scores),
		SentenceCandidates: len(st.Scores),
		Converged:          kw.Converged && st.Converged,
	}
}

func (e *Extractor) keyphrases(text string) ([]string, rank.Result) {
	tokens := e.tokenizer.Tokenize(text)
	tagged := nlp.Normalize(nlp.FilterTags(e.tagger.Tag(tokens), e.cfg.Tags))
	words := nlp.Tokens(tagged)

	if e.stemmer != nil {
		words, tokens = e.conflate(words, tokens)
	}

	g := graph.Build(nlp.Unique(words), e.weight)
	res := rank.PageRank(g, rank.OptionsFromConfig(e.cfg, e.log.WithField("units", "words")))
	top := selection.TopFraction(res.Order())

	e.log.WithFields(logrus.Fields{
		"tokens":     len(tokens),
		"candidates": g.Len(),
		"top":        len(top),
		"iterations": res.Iterations,
	}).Debug("ranked keyphrase candidates")

	return phrase.Assemble(tokens, top), res
}

func (e *Extractor) sentences(text string) (string, rank.Result) {
	g := graph.Build(e.splitter.Split(strings.TrimSpace(text)), e.weight)
	res := rank.PageRank(g, rank.OptionsFromConfig(e.cfg, e.log.WithField("units", "sentences")))

	e.log.WithFields(logrus.Fields{
		"sentences":  g.Len(),
		"iterations": res.Iterations,
	}).Debug("ranked sentences")

	return selection.WordBudget(res.Order(), e.cfg.SummaryWords), res
}

// conflate maps every candidate word and every token whose stem matches a
// candidate stem onto the first surface form seen for that stem, so
// inflected variants rank as one node and still merge into phrases.
func (e *Extractor) conflate(words, tokens []string) ([]string, []string) {
	surface := make(map[string]string, len(words))
	out := make([]string, len(words))
	for i, w := range words {
		st := e.stemmer.Stem(w)
		if _, ok := surface[st]; !ok {
			surface[st] = w
		}
		out[i] = surface[st]
	}

	mapped := make([]string, len(tokens))
	for i, tok := range tokens {
		mapped[i] = tok
		norm := strings.ReplaceAll(tok, ".", "")
		if norm == "" {
			continue
		}
		if rep, ok := surface[e.stemmer.Stem(norm)]; ok {
			mapped[i] = rep
		}
	}
	return out, mapped
}

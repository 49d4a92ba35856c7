// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package textrank

import (
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/textrank/internal/logging"
	"github.com/pdiddy/textrank/internal/nlp"
	"github.com/pdiddy/textrank/pkg/types"
)

// fieldsTokenizer splits on whitespace only.
type fieldsTokenizer struct{}

func (fieldsTokenizer) Tokenize(text string) []string { return strings.Fields(text) }

// mapTagger tags listed tokens and defaults everything else to NN.
type mapTagger map[string]string

func (m mapTagger) Tag(tokens []string) []nlp.Tagged {
	out := make([]nlp.Tagged, len(tokens))
	for i, tok := range tokens {
		tag, ok := m[tok]
		if !ok {
			tag = "NN"
		}
		out[i] = nlp.Tagged{Token: tok, Tag: tag}
	}
	return out
}

func fakeDeps(tags mapTagger) Deps {
	return Deps{
		Tokenizer: fieldsTokenizer{},
		Tagger:    tags,
		Logger:    logging.Discard(),
	}
}

const dinoText = `She may look like easy pickings for an Early Cretaceous predator, but this iguanodon isnt going down without a fight. ` +
	`As a pair of bloodthirsty Utahraptors rush in for the kill, this 16-foot foliage destroyer simply whips out her stiletto thumb spikes. ` +
	`The first attacker springs through the air, talons eager for blood. And so iguanodon obliges it. ` +
	`But the other Utahraptor has already pounced as well. She feels its talons sink into her back, severing veins and seeking organs. ` +
	`She tries to shake the predator free, but it holds fast. The talons sink deeper with a flash of red-hot pain. ` +
	`She drives both thumbs back into the attackers eye sockets, gouging forth blood and jelly. ` +
	`It's easy to construct such cinematic dino melees, especially when confronted with a spike-thumbed dino like those of the Iguanodon genus. ` +
	`But no matter how much we want those thumbs to be certified murder weapons, we still dont know exactly what they were for.`

func TestExtractKeyphrases_Empty(t *testing.T) {
	e := New(types.TextRankConfig{}, Deps{Logger: logging.Discard()})

	got := e.ExtractKeyphrases("")
	assert.NotNil(t, got)
	assert.Empty(t, got)
	assert.Equal(t, "", e.ExtractSentences(""))
	assert.Equal(t, "", e.ExtractSentences("   \n "))
}

func TestExtractKeyphrases_SingleCandidate(t *testing.T) {
	e := New(types.TextRankConfig{}, fakeDeps(mapTagger{"the": "DT"}))
	assert.Equal(t, []string{"predator"}, e.ExtractKeyphrases("the predator"))
}

func TestExtractKeyphrases_MergesAdjacentTopWords(t *testing.T) {
	// Candidates ab, xyz, abc: xyz ranks first, ab and abc tie and ab wins
	// on insertion order. The top ⌊3/3⌋+1 = 2 words are adjacent.
	e := New(types.TextRankConfig{}, fakeDeps(nil))
	assert.Equal(t, []string{"ab xyz"}, e.ExtractKeyphrases("ab xyz abc"))
}

func TestExtractKeyphrases_TagFilter(t *testing.T) {
	tags := mapTagger{"is": "VBZ", "fun": "VBG", "very": "RB"}
	e := New(types.TextRankConfig{}, fakeDeps(tags))

	got := e.ExtractKeyphrases("data science is very fun")
	for _, p := range got {
		for _, w := range strings.Fields(p) {
			assert.Contains(t, []string{"data", "science"}, w)
		}
	}
}

func TestExtractKeyphrases_Dino(t *testing.T) {
	e := New(types.TextRankConfig{}, Deps{Logger: logging.Discard()})

	got := e.ExtractKeyphrases(dinoText)
	require.NotEmpty(t, got)

	seen := map[string]bool{}
	for _, p := range got {
		assert.False(t, seen[p], "duplicate keyphrase %q", p)
		seen[p] = true
		assert.LessOrEqual(t, len(strings.Fields(p)), 2)
	}

	assert.Equal(t, got, e.ExtractKeyphrases(dinoText), "extraction must be deterministic")
}

func TestExtractKeyphrases_Stemming(t *testing.T) {
	tags := mapTagger{"and": "CC"}
	plain := New(types.TextRankConfig{}, fakeDeps(tags))
	stemmed := New(types.TextRankConfig{Stem: true}, fakeDeps(tags))

	text := "talon and talons and claw and claws"
	assert.Len(t, plain.Extract("x", text).Keyphrases, 2)

	doc := stemmed.Extract("x", text)
	assert.Equal(t, 2, doc.WordCandidates)
	for _, p := range doc.Keyphrases {
		assert.NotContains(t, []string{"talons", "claws"}, p)
	}
}

func TestExtractSentences_WeightModes(t *testing.T) {
	text := "The cat sat on the mat. The cat sat on the hat. " +
		"Quantum chromodynamics describes strong interactions between quarks and gluons."

	dist := New(types.TextRankConfig{WeightMode: types.WeightDistance}, Deps{Logger: logging.Discard()})
	assert.True(t, strings.HasPrefix(dist.ExtractSentences(text), "Quantum chromodynamics"))

	sim := New(types.TextRankConfig{WeightMode: types.WeightSimilarity}, Deps{Logger: logging.Discard()})
	got := sim.ExtractSentences(text)
	assert.True(t, strings.HasPrefix(got, "The cat sat on the"))
	assert.True(t, strings.HasSuffix(got, "quarks and gluons."))
}

func TestExtractSentences_WordBudget(t *testing.T) {
	e := New(types.TextRankConfig{}, Deps{Logger: logging.Discard()})
	assert.LessOrEqual(t, len(strings.Fields(e.ExtractSentences(dinoText))), 101)

	short := New(types.TextRankConfig{SummaryWords: 12}, Deps{Logger: logging.Discard()})
	assert.Len(t, strings.Fields(short.ExtractSentences(dinoText)), 12)
}

func TestExtract(t *testing.T) {
	e := New(types.TextRankConfig{}, Deps{Logger: logging.Discard()})
	doc := e.Extract("dino.txt", dinoText)

	assert.Equal(t, "dino.txt", doc.ID)
	assert.NotEmpty(t, doc.Keyphrases)
	assert.NotEmpty(t, doc.Summary)
	assert.Greater(t, doc.WordCandidates, 10)
	assert.Equal(t, 11, doc.SentenceCandidates)
	assert.True(t, doc.Converged)
}

func TestExtract_Concurrent(t *testing.T) {
	e := New(types.TextRankConfig{}, Deps{Logger: logging.Discard()})
	want := e.Extract("dino", dinoText)

	var wg sync.WaitGroup
	results := make([]types.Document, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i] = e.Extract("dino", dinoText)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestNew_Defaults(t *testing.T) {
	e := New(types.TextRankConfig{}, Deps{})
	assert.Equal(t, types.DefaultTextRankConfig(), e.Config())
}

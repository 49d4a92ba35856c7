// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// WeightMode selects how edge weights are derived from edit distance.
type WeightMode string

const (
	// WeightDistance uses the raw edit distance as the edge weight.
	WeightDistance WeightMode = "distance"

	// WeightSimilarity uses 1/(1+distance), so lexically close units
	// share heavier edges.
	WeightSimilarity WeightMode = "similarity"
)

// Valid reports whether m names a known weight mode.
func (m WeightMode) Valid() bool {
	return m == WeightDistance || m == WeightSimilarity
}

const (
	DefaultDamping       = 0.85
	DefaultTolerance     = 1e-4
	DefaultMaxIterations = 100
	DefaultSummaryWords  = 101
	DefaultWorkers       = 4
)

// DefaultTags are the part-of-speech tags kept as keyphrase candidates.
var DefaultTags = []string{"NN", "JJ", "NNP"}

// TextRankConfig holds settings for graph ranking and selection.
type TextRankConfig struct {
	// Damping is the PageRank damping factor (default 0.85).
	Damping float64 `json:"damping" yaml:"damping"`

	// Tolerance is the total absolute score change below which the power
	// iteration stops (default 1e-4).
	Tolerance float64 `json:"tolerance" yaml:"tolerance"`

	// MaxIterations caps the power iteration (default 100).
	MaxIterations int `json:"max_iterations" yaml:"max_iterations"`

	// WeightMode selects distance or similarity edge weights (default distance).
	WeightMode WeightMode `json:"weight_mode" yaml:"weight_mode"`

	// SummaryWords is the summary length in whitespace tokens (default 101).
	SummaryWords int `json:"summary_words" yaml:"summary_words"`

	// Tags lists the POS tags kept as keyphrase candidates (default NN, JJ, NNP).
	Tags []string `json:"tags" yaml:"tags"`

	// Stem enables Snowball stemming of candidate words.
	Stem bool `json:"stem" yaml:"stem"`
}

// DefaultTextRankConfig returns the configuration used when nothing is set.
func DefaultTextRankConfig() TextRankConfig {
	return TextRankConfig{
		Damping:       DefaultDamping,
		Tolerance:     DefaultTolerance,
		MaxIterations: DefaultMaxIterations,
		WeightMode:    WeightDistance,
		SummaryWords:  DefaultSummaryWords,
		Tags:          append([]string(nil), DefaultTags...),
	}
}

// WithDefaults returns a copy of c with zero or invalid fields replaced by
// their defaults.
func (c TextRankConfig) WithDefaults() TextRankConfig {
	if c.Damping <= 0 || c.Damping > 1 {
		c.Damping = DefaultDamping
	}
	if c.Tolerance <= 0 {
		c.Tolerance = DefaultTolerance
	}
	if c.MaxIterations <= 0 {
		c.MaxIterations = DefaultMaxIterations
	}
	if !c.WeightMode.Valid() {
		c.WeightMode = WeightDistance
	}
	if c.SummaryWords <= 0 {
		c.SummaryWords = DefaultSummaryWords
	}
	if len(c.Tags) == 0 {
		c.Tags = append([]string(nil), DefaultTags...)
	}
	return c
}

// BatchConfig holds settings for processing a directory of articles.
type BatchConfig struct {
	// ArticlesDir holds one plain-text article per file.
	ArticlesDir string `json:"articles_dir" yaml:"articles_dir"`

	// KeywordsDir receives one newline-delimited keyphrase file per article.
	KeywordsDir string `json:"keywords_dir" yaml:"keywords_dir"`

	// SummariesDir receives one summary file per article.
	SummariesDir string `json:"summaries_dir" yaml:"summaries_dir"`

	// Workers bounds the number of articles processed at once (default 4).
	Workers int `json:"workers" yaml:"workers"`

	// Force regenerates outputs that already exist.
	Force bool `json:"force" yaml:"force"`
}

// StoreConfig holds settings for the result store.
type StoreConfig struct {
	// Dir contains textrank.db and export files.
	Dir string `json:"dir" yaml:"dir"`
}

// Config groups every section of textrank.yaml.
type Config struct {
	TextRank TextRankConfig `json:"textrank" yaml:"textrank"`
	Batch    BatchConfig    `json:"batch" yaml:"batch"`
	Store    StoreConfig    `json:"store" yaml:"store"`
}

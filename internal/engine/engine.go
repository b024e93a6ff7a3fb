// Package engine runs the keyword lifecycle pipeline: ingest raw text, score and
// price keywords, place them into campaigns and export campaign names.
package engine

import (
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/Veraticus/keyword-lifecycle/internal/model"
	"github.com/Veraticus/keyword-lifecycle/internal/naming"
	"github.com/Veraticus/keyword-lifecycle/internal/normalize"
	"github.com/Veraticus/keyword-lifecycle/internal/recommend"
	"github.com/Veraticus/keyword-lifecycle/internal/scoring"
)

// keywordNamespace seeds the name-based UUIDs given to ingested keywords.
var keywordNamespace = uuid.MustParse("6f1c2d8e-4b7a-5e39-9c0d-3a5f8e2b1c47")

// Engine composes the normalization, naming, scoring and recommendation steps.
// It holds configuration only; every call works on its own inputs.
type Engine struct {
	logger      *slog.Logger
	advisor     *scoring.Advisor
	recommender *recommend.Recommender
	validator   *naming.Validator
	config      Config
}

// Config holds configuration options for the engine.
type Config struct {
	Settings             model.BrandSettings
	DedupThreshold       float64
	AllowCeilingOverride bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		Settings:       model.DefaultBrandSettings(),
		DedupThreshold: normalize.DefaultThreshold,
	}
}

// New creates a new engine with the default configuration.
func New(logger *slog.Logger) *Engine {
	return NewWithConfig(DefaultConfig(), logger)
}

// NewWithConfig creates a new engine with custom configuration.
func NewWithConfig(config Config, logger *slog.Logger, opts ...naming.Option) *Engine {
	if logger == nil {
		logger = slog.Default()
	}
	if config.DedupThreshold <= 0 {
		config.DedupThreshold = normalize.DefaultThreshold
	}

	return &Engine{
		logger: logger,
		advisor: scoring.NewAdvisor(
			scoring.WithLogger(logger),
			scoring.WithCeilingOverride(config.AllowCeilingOverride),
		),
		recommender: recommend.NewRecommender(config.Settings, logger),
		validator:   naming.NewValidator(opts...),
		config:      config,
	}
}

// KeywordID derives a stable identifier for the keyword at position index of
// a batch imported from source.
func KeywordID(source string, index int, text string) string {
	return uuid.NewSHA1(keywordNamespace, []byte(fmt.Sprintf("%s\x00%d\x00%s", source, index, text))).String()
}

// IngestResult is the outcome of turning a raw text block into keywords.
type IngestResult struct {
	Keywords   []model.Keyword           `json:"keywords"`
	Duplicates []model.DuplicateRelation `json:"duplicates"`
	Errors     []string                  `json:"errors,omitempty"`
	Parsed     int                       `json:"parsed"`
}

// Ingest parses, validates and cleans a raw keyword block, then reports
// duplicates among the resulting keywords. A batch that fails validation
// yields its errors and no keywords.
func (e *Engine) Ingest(raw, source string) IngestResult {
	values := normalize.ParseKeywordInput(raw)
	result := IngestResult{
		Parsed:     len(values),
		Keywords:   []model.Keyword{},
		Duplicates: []model.DuplicateRelation{},
	}

	if errs := normalize.ValidateKeywordInput(values); len(errs) > 0 {
		result.Errors = errs
		e.logger.Info("Keyword batch rejected", "source", source, "parsed", len(values), "errors", len(errs))
		return result
	}

	for i, text := range normalize.CleanKeywords(values) {
		k := normalize.NewKeyword(KeywordID(source, i, text), text)
		k.Source = source
		result.Keywords = append(result.Keywords, k)
	}

	result.Duplicates = normalize.FindDuplicates(result.Keywords, e.config.DedupThreshold)

	e.logger.Info("Ingested keywords",
		"source", source,
		"parsed", result.Parsed,
		"keywords", len(result.Keywords),
		"duplicates", len(result.Duplicates))

	return result
}

// Package dataset reads and writes the YAML and JSON files the CLI works on:
// keyword lists, search-term performance, campaign structures and campaign names.
package dataset

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Veraticus/keyword-lifecycle/internal/common"
	"github.com/Veraticus/keyword-lifecycle/internal/config"
	"github.com/Veraticus/keyword-lifecycle/internal/model"
	"github.com/Veraticus/keyword-lifecycle/internal/normalize"
)

// PerformanceRecord ties search-term metrics to the keyword text they were reported for.
type PerformanceRecord struct {
	Keyword                  string `json:"keyword" yaml:"keyword"`
	model.PerformanceMetrics `yaml:",inline"`
}

// Dataset is the union of everything a dataset file may hold. Every section is optional.
type Dataset struct {
	Brand       string                   `json:"brand,omitempty" yaml:"brand,omitempty"`
	Source      string                   `json:"source,omitempty" yaml:"source,omitempty"`
	Keywords    []model.Keyword          `json:"keywords,omitempty" yaml:"keywords,omitempty"`
	Performance []PerformanceRecord      `json:"performance,omitempty" yaml:"performance,omitempty"`
	Campaigns   []model.Campaign         `json:"campaigns,omitempty" yaml:"campaigns,omitempty"`
	Names       []model.NamingComponents `json:"names,omitempty" yaml:"names,omitempty"`
}

// Load reads a dataset from a .yaml, .yml or .json file.
func Load(path string) (*Dataset, error) {
	path = config.ExpandPath(path)

	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml", ".json":
	default:
		return nil, fmt.Errorf("%w: %s", common.ErrUnknownFormat, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	ds, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return ds, nil
}

// Decode parses a dataset document. JSON is accepted as a subset of YAML.
// Unknown fields are rejected, keywords are normalized and metrics validated.
func Decode(r io.Reader) (*Dataset, error) {
	ds := &Dataset{}

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(ds); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", common.ErrInvalidInput, err)
	}

	for i := range ds.Keywords {
		k := ds.Keywords[i]
		if k.Source == "" {
			k.Source = ds.Source
		}
		ds.Keywords[i] = normalize.Refresh(k)
	}

	for i, p := range ds.Performance {
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("%w: performance %d (%q): %w", common.ErrInvalidInput, i+1, p.Keyword, err)
		}
	}

	return ds, nil
}

// PerformanceMap indexes performance by normalized keyword text. When a
// keyword is reported more than once the metrics are summed.
func (d *Dataset) PerformanceMap() map[string]model.PerformanceMetrics {
	out := make(map[string]model.PerformanceMetrics, len(d.Performance))
	for _, p := range d.Performance {
		key := normalize.Normalize(p.Keyword)
		if key == "" {
			continue
		}
		sum := out[key]
		sum.Impressions += p.Impressions
		sum.Clicks += p.Clicks
		sum.Orders += p.Orders
		sum.Spend += p.Spend
		sum.Sales += p.Sales
		out[key] = sum
	}
	return out
}

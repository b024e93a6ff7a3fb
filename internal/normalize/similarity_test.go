package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSimilarity(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		want float64
	}{
		{name: "identical", a: "yoga mat", b: "yoga mat", want: 1.0},
		{name: "case insensitive", a: "Yoga Mat", b: "yoga mat", want: 1.0},
		{name: "punctuation ignored", a: "yoga-mat!", b: "yoga-mat", want: 1.0},
		{name: "both empty", a: "", b: "", want: 1.0},
		{name: "one empty", a: "mat", b: "", want: 0.0},
		{name: "one edit", a: "bottle", b: "bottles", want: 1.0 - 1.0/7.0},
		{name: "completely different", a: "abc", b: "xyz", want: 0.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Similarity(tt.a, tt.b), 1e-9)
		})
	}
}

func TestSimilarity_Symmetric(t *testing.T) {
	pairs := [][2]string{
		{"wireless headphones", "wireless headphone"},
		{"kitten", "sitting"},
		{"running shoes", "shoes running"},
		{"a", "abcdef"},
	}

	for _, p := range pairs {
		assert.Equal(t, Similarity(p[0], p[1]), Similarity(p[1], p[0]), "%q vs %q", p[0], p[1])
	}
}

func TestSimilarity_SelfIsOne(t *testing.T) {
	for _, s := range []string{"a", "yoga mat", "anti-slip 3mm mat"} {
		assert.Equal(t, 1.0, Similarity(s, s))
	}
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 3, levenshteinDistance([]rune("kitten"), []rune("sitting")))
	assert.Equal(t, 0, levenshteinDistance([]rune("same"), []rune("same")))
	assert.Equal(t, 4, levenshteinDistance([]rune(""), []rune("four")))
	assert.Equal(t, 4, levenshteinDistance([]rune("four"), []rune("")))
}

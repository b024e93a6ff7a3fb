package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "empty", input: "", want: ""},
		{name: "lowercases and trims", input: "  Wireless Headphones  ", want: "wireless headphones"},
		{name: "strips punctuation", input: "kids' shoes!!", want: "kids shoes"},
		{name: "keeps hyphens", input: "Anti-Slip Mat", want: "anti-slip mat"},
		{name: "collapses whitespace", input: "yoga   mat\t\tthick\nextra", want: "yoga mat thick extra"},
		{name: "full width folds to ascii", input: "ＡＢＣ 123", want: "abc 123"},
		{name: "drops non latin letters", input: "café crème", want: "caf crme"},
		{name: "only punctuation", input: "!!!", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"Wireless Headphones",
		"  --weird   input--  ",
		"Ｆｕｌｌ　Ｗｉｄｔｈ",
		"İstanbul Çay",
		"a b c",
		"MiXeD 123 !@# $%^",
	}

	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "input %q", in)
	}
}

func TestStem(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"bottles", "bottle"},
		{"headphones", "headphone"},
		{"gas", "gas"},
		{"glass", "glass"},
		{"quickly", "quick"},
		{"running", "runn"},
		{"padded", "padd"},
		{"bus", "bus"},
		{"shoe", "shoe"},
		// ly, ing and ed are stripped however short the remainder
		{"only", "on"},
		{"fly", "f"},
		{"bed", "b"},
		{"used", "us"},
		{"sing", "s"},
		{"ly", ""},
	}

	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			assert.Equal(t, tt.want, Stem(tt.token))
		})
	}
}

func TestStemPhrase(t *testing.T) {
	assert.Equal(t, "wireless headphone", StemPhrase("Wireless Headphones"))
	assert.Equal(t, "water bottle", StemPhrase("water bottles"))
	assert.Equal(t, "", StemPhrase("   "))
}

func TestNewKeyword(t *testing.T) {
	k := NewKeyword("k1", "  Steel Water Bottles ")
	assert.Equal(t, "k1", k.ID)
	assert.Equal(t, "  Steel Water Bottles ", k.Text)
	assert.Equal(t, "steel water bottles", k.Normalized)
	assert.Equal(t, "steel water bottle", k.Stem)

	changed := SetText(k, "Glass Jars")
	assert.Equal(t, "glass jars", changed.Normalized)
	assert.Equal(t, "glass jar", changed.Stem)
	assert.Equal(t, "steel water bottles", k.Normalized, "original is untouched")
}

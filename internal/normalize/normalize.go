// Package normalize canonicalizes keyword text and finds duplicate keywords.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/Veraticus/keyword-lifecycle/internal/model"
)

// Normalize lowercases text, folds compatibility characters, strips everything
// outside [a-z0-9 -] and collapses whitespace. It never fails and is idempotent.
func Normalize(text string) string {
	if text == "" {
		return ""
	}

	// Full-width and other compatibility forms fold to their ASCII equivalents
	text = norm.NFKC.String(text)
	text = strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == ' ':
			b.WriteRune(r)
		case unicode.IsSpace(r):
			b.WriteRune(' ')
		}
	}

	return strings.Join(strings.Fields(b.String()), " ")
}

// Stem strips one inflectional suffix from a single token.
// Rules are checked in order: "ly", "ing", "ed", then "s". The first suffix
// present decides the outcome; later rules are never consulted. Only the "s"
// rule has a guard: it skips "ss" endings and tokens of three bytes or fewer.
func Stem(token string) string {
	switch {
	case strings.HasSuffix(token, "ly"):
		return strings.TrimSuffix(token, "ly")
	case strings.HasSuffix(token, "ing"):
		return strings.TrimSuffix(token, "ing")
	case strings.HasSuffix(token, "ed"):
		return strings.TrimSuffix(token, "ed")
	case strings.HasSuffix(token, "s"):
		if strings.HasSuffix(token, "ss") || len(token) <= 3 {
			return token
		}
		return token[:len(token)-1]
	default:
		return token
	}
}

// StemPhrase normalizes text and stems each of its words.
func StemPhrase(text string) string {
	words := strings.Fields(Normalize(text))
	for i, w := range words {
		words[i] = Stem(w)
	}
	return strings.Join(words, " ")
}

// NewKeyword builds a keyword with its normalized and stemmed forms filled in.
func NewKeyword(id, text string) model.Keyword {
	return Refresh(model.Keyword{ID: id, Text: text})
}

// Refresh returns a copy of k with Normalized and Stem recomputed from Text.
func Refresh(k model.Keyword) model.Keyword {
	k.Normalized = Normalize(k.Text)
	k.Stem = StemPhrase(k.Normalized)
	return k
}

// SetText returns a copy of k carrying new text and freshly derived forms.
func SetText(k model.Keyword, text string) model.Keyword {
	k.Text = text
	return Refresh(k)
}

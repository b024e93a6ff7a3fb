package normalize

import (
	"strconv"

	"github.com/Veraticus/keyword-lifecycle/internal/model"
)

// DefaultThreshold is the stemmed similarity at which two keywords count as variants.
const DefaultThreshold = 0.9

// FindDuplicates compares every unordered pair of keywords and reports the duplicates.
// Identical normalized forms are exact duplicates; otherwise stemmed forms scoring at
// least threshold are variants. Pairs from two different sources are reported as
// cross-source. Normalized and stemmed forms are rederived from Text when it is
// set. Keywords whose normalized form is empty are ignored.
func FindDuplicates(keywords []model.Keyword, threshold float64) []model.DuplicateRelation {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	prepared := make([]model.Keyword, len(keywords))
	for i, k := range keywords {
		switch {
		case k.Text != "":
			k = Refresh(k)
		case k.Stem == "":
			k.Stem = StemPhrase(k.Normalized)
		}
		prepared[i] = k
	}

	relations := []model.DuplicateRelation{}
	for i := 0; i < len(prepared); i++ {
		a := prepared[i]
		if a.Normalized == "" {
			continue
		}
		for j := i + 1; j < len(prepared); j++ {
			b := prepared[j]
			if b.Normalized == "" {
				continue
			}

			rel, ok := compare(a, b, threshold)
			if ok {
				relations = append(relations, rel)
			}
		}
	}

	return relations
}

// FindDuplicateTexts runs FindDuplicates over plain strings, using each
// string's position in texts as its keyword ID.
func FindDuplicateTexts(texts []string, threshold float64) []model.DuplicateRelation {
	keywords := make([]model.Keyword, len(texts))
	for i, t := range texts {
		keywords[i] = NewKeyword(strconv.Itoa(i), t)
	}
	return FindDuplicates(keywords, threshold)
}

func compare(a, b model.Keyword, threshold float64) (model.DuplicateRelation, bool) {
	rel := model.DuplicateRelation{First: a.ID, Second: b.ID}

	if a.Normalized == b.Normalized {
		rel.MatchType = model.DuplicateExact
		rel.Similarity = 1.0
	} else {
		sim := Similarity(a.Stem, b.Stem)
		if sim < threshold {
			return rel, false
		}
		rel.MatchType = model.DuplicateVariant
		rel.Similarity = sim
	}

	if a.Source != "" && b.Source != "" && a.Source != b.Source {
		rel.MatchType = model.DuplicateCrossSource
	}

	return rel, true
}

// GroupDuplicates clusters keyword IDs connected by any relation.
// Groups are ordered by their first member's appearance in relations.
func GroupDuplicates(relations []model.DuplicateRelation) [][]string {
	parent := make(map[string]string)
	var order []string

	var find func(string) string
	find = func(id string) string {
		if _, ok := parent[id]; !ok {
			parent[id] = id
			order = append(order, id)
		}
		if parent[id] != id {
			parent[id] = find(parent[id])
		}
		return parent[id]
	}

	for _, rel := range relations {
		ra, rb := find(rel.First), find(rel.Second)
		if ra != rb {
			parent[rb] = ra
		}
	}

	index := make(map[string]int)
	var groups [][]string
	for _, id := range order {
		root := find(id)
		i, ok := index[root]
		if !ok {
			i = len(groups)
			index[root] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], id)
	}

	return groups
}

// Deduplicate keeps the first keyword of each duplicate cluster, preserving input order.
func Deduplicate(keywords []model.Keyword, threshold float64) []model.Keyword {
	relations := FindDuplicates(keywords, threshold)

	drop := make(map[string]bool)
	for _, group := range GroupDuplicates(relations) {
		for _, id := range group[1:] {
			drop[id] = true
		}
	}

	kept := make([]model.Keyword, 0, len(keywords))
	for _, k := range keywords {
		if !drop[k.ID] {
			kept = append(kept, k)
		}
	}
	return kept
}

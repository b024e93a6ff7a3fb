package normalize

import (
	"encoding/csv"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Input limits for a single keyword batch.
const (
	MaxKeywords      = 1000
	MaxKeywordLength = 200
)

var (
	allowedKeywordRe = regexp.MustCompile(`^[A-Za-z0-9 -]*$`)
	headerRe         = regexp.MustCompile(`(?i)^(keywords?|key ?phrases?|search ?terms?|customer search terms?|terms?|quer(y|ies)|phrases?|targeting)$`)
)

// ParseKeywordInput splits a pasted or uploaded block into keyword strings.
// Lines are split on newlines; if any line contains a comma the block is read
// as CSV and only the first column is kept. A header row is skipped when its
// first value looks like a column name. Blank lines are dropped.
func ParseKeywordInput(raw string) []string {
	raw = strings.ReplaceAll(raw, "\r\n", "\n")
	raw = strings.ReplaceAll(raw, "\r", "\n")

	var values []string
	if strings.Contains(raw, ",") {
		values = firstColumn(raw)
	} else {
		values = strings.Split(raw, "\n")
	}

	result := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		result = append(result, v)
	}

	if len(result) > 0 && isHeader(result[0]) {
		result = result[1:]
	}

	return result
}

// firstColumn reads raw as CSV and returns the first field of every record.
// Malformed CSV falls back to cutting each line at its first comma.
func firstColumn(raw string) []string {
	r := csv.NewReader(strings.NewReader(raw))
	r.FieldsPerRecord = -1
	r.LazyQuotes = true
	r.TrimLeadingSpace = true

	var values []string
	for {
		record, err := r.Read()
		if err == io.EOF {
			return values
		}
		if err != nil {
			break
		}
		if len(record) > 0 {
			values = append(values, record[0])
		}
	}

	values = values[:0]
	for _, line := range strings.Split(raw, "\n") {
		first, _, _ := strings.Cut(line, ",")
		values = append(values, strings.Trim(strings.TrimSpace(first), `"`))
	}
	return values
}

func isHeader(first string) bool {
	if _, err := strconv.ParseFloat(first, 64); err == nil {
		return false
	}
	return headerRe.MatchString(strings.TrimSpace(first))
}

// ValidateKeywordInput checks a batch against the input limits and returns one
// message per problem. An empty result means the batch is acceptable.
func ValidateKeywordInput(keywords []string) []string {
	var errs []string

	nonBlank := 0
	for _, k := range keywords {
		if strings.TrimSpace(k) != "" {
			nonBlank++
		}
	}
	if nonBlank == 0 {
		return []string{"no keywords provided"}
	}

	if len(keywords) > MaxKeywords {
		errs = append(errs, fmt.Sprintf("too many keywords: %d (maximum %d)", len(keywords), MaxKeywords))
	}

	for i, k := range keywords {
		if n := utf8.RuneCountInString(k); n > MaxKeywordLength {
			errs = append(errs, fmt.Sprintf("keyword %d exceeds %d characters (%d)", i+1, MaxKeywordLength, n))
		}
		if !allowedKeywordRe.MatchString(k) {
			errs = append(errs, fmt.Sprintf("keyword %d contains invalid characters: %q", i+1, k))
		}
	}

	return errs
}

// CleanKeywords trims each keyword, drops empties and removes exact duplicates,
// keeping the first occurrence.
func CleanKeywords(keywords []string) []string {
	seen := make(map[string]bool, len(keywords))
	cleaned := make([]string, 0, len(keywords))

	for _, k := range keywords {
		k = strings.TrimSpace(k)
		if k == "" || seen[k] {
			continue
		}
		seen[k] = true
		cleaned = append(cleaned, k)
	}

	return cleaned
}

// Package keywords ranks single-document keywords by term frequency.
// Tokens are lowercased, non-alphabetic tokens and English stopwords are
// discarded, the most frequent terms win. No corpus-wide IDF is involved
// since every invocation scores exactly one document.
package keywords

import (
	"bytes"
	_ "embed"
	"sort"
	"strings"
	"unicode"
)

//go:embed stopwords.txt
var stopwordsRaw []byte

// English stopword set (populated in init, read-only after)
var stopwords map[string]struct{}

func init() {
	lines := bytes.Split(stopwordsRaw, []byte("\n"))
	stopwords = make(map[string]struct{}, len(lines))
	for _, line := range lines {
		word := string(bytes.TrimSpace(line))
		if word == "" {
			continue
		}
		stopwords[word] = struct{}{}
	}
}

// Extractor produces ranked keyword lists from plain text
type Extractor struct {
	maxKeywords int
}

// NewExtractor creates an extractor capped at maxKeywords terms per document
func NewExtractor(maxKeywords int) *Extractor {
	if maxKeywords <= 0 {
		maxKeywords = 10
	}
	return &Extractor{maxKeywords: maxKeywords}
}

// Extract returns up to maxKeywords keywords ranked by term frequency,
// ties broken by first occurrence in the text. Empty or unusable content
// yields an empty list, never an error.
func (e *Extractor) Extract(text string) []string {
	tokens := tokenize(strings.ToLower(text))

	counts := make(map[string]int, len(tokens))
	firstSeen := make(map[string]int, len(tokens))
	for i, token := range tokens {
		if _, stop := stopwords[token]; stop {
			continue
		}
		if _, seen := counts[token]; !seen {
			firstSeen[token] = i
		}
		counts[token]++
	}

	ranked := make([]string, 0, len(counts))
	for token := range counts {
		ranked = append(ranked, token)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if counts[ranked[i]] != counts[ranked[j]] {
			return counts[ranked[i]] > counts[ranked[j]]
		}
		return firstSeen[ranked[i]] < firstSeen[ranked[j]]
	})

	if len(ranked) > e.maxKeywords {
		ranked = ranked[:e.maxKeywords]
	}
	return ranked
}

// tokenize splits text into alphanumeric runs and keeps purely alphabetic
// tokens only
func tokenize(text string) []string {
	fields := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	tokens := fields[:0]
	for _, f := range fields {
		if isAlphabetic(f) {
			tokens = append(tokens, f)
		}
	}
	return tokens
}

func isAlphabetic(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return len(s) > 0
}

// Package extractor normalizes raw text and derives the candidate sentences
// and key terms the synthesizers work from.
package extractor

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// minSentenceLen is the trimmed length a fragment must exceed to count as a
// sentence; minTermLen is the length a word must exceed to count as a key term.
const (
	minSentenceLen = 10
	minTermLen     = 4
	maxKeyTerms    = 10
)

// nonWord matches every rune that survives neither tokenization nor sentence
// splitting. The period is deliberately excluded: it must outlive punctuation
// stripping so sentence boundaries still exist when the text is split on it.
var nonWord = regexp.MustCompile(`[^\p{L}\p{N}_\s.]+`)

var stopWords = map[string]struct{}{
	"the": {}, "a": {}, "an": {}, "and": {}, "or": {}, "but": {}, "in": {},
	"on": {}, "at": {}, "to": {}, "for": {}, "of": {}, "with": {}, "by": {},
	"is": {}, "are": {}, "was": {}, "were": {}, "be": {}, "been": {},
	"being": {}, "have": {}, "has": {}, "had": {}, "do": {}, "does": {},
	"did": {}, "will": {}, "would": {}, "could": {}, "should": {}, "may": {},
	"might": {}, "must": {}, "can": {}, "this": {}, "that": {}, "these": {},
	"those": {},
}

// Extract normalizes text and returns its qualifying sentences (original
// order) and up to 10 distinct key terms (first-occurrence order). A blank
// input yields two empty slices; Extract never fails.
func Extract(text string) (sentences []string, keyTerms []string) {
	normalized := nonWord.ReplaceAllString(strings.ToLower(text), "")

	for _, fragment := range strings.Split(normalized, ".") {
		fragment = strings.TrimSpace(fragment)
		if utf8.RuneCountInString(fragment) > minSentenceLen {
			sentences = append(sentences, fragment)
		}
	}

	seen := make(map[string]struct{})
	words := strings.Fields(strings.ReplaceAll(normalized, ".", " "))
	for _, word := range words {
		if utf8.RuneCountInString(word) <= minTermLen {
			continue
		}
		if _, stop := stopWords[word]; stop {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		keyTerms = append(keyTerms, word)
		if len(keyTerms) == maxKeyTerms {
			break
		}
	}

	return sentences, keyTerms
}

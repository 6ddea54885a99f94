package resumefields

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	EducationKeywords  = []string{"degree", "university", "college", "school", "bachelor", "master", "phd"}
	ExperienceKeywords = []string{"experience", "work", "employment", "job", "position"}
)

// SentenceSplitter segments text into sentences.
type SentenceSplitter interface {
	Split(text string) []string
}

// SplitterFunc adapts a function to SentenceSplitter.
type SplitterFunc func(text string) []string

func (f SplitterFunc) Split(text string) []string { return f(text) }

// SplitSentences cuts at newlines and after '.', '!' or '?' when the mark is
// followed by whitespace or the end of the text, so "jane.doe@example.com"
// and "Node.js" stay whole. Segments are returned untrimmed and in order.
func SplitSentences(text string) []string {
	var sentences []string
	start := 0
	cut := func(end int) {
		if end > start {
			sentences = append(sentences, text[start:end])
		}
	}
	for i, r := range text {
		switch r {
		case '\n':
			cut(i)
			start = i + 1
		case '.', '!', '?':
			next, _ := utf8.DecodeRuneInString(text[i+1:])
			if i+1 == len(text) || unicode.IsSpace(next) {
				cut(i + 1)
				start = i + 1
			}
		}
	}
	if start < len(text) {
		sentences = append(sentences, text[start:])
	}
	return sentences
}

// matchSentences keeps, in order, the trimmed sentences containing at least
// one keyword. Sentences that are not verbatim substrings of text are dropped.
func matchSentences(text string, sentences []string, keywords []string) []string {
	matched := []string{}
	for _, s := range sentences {
		s = strings.TrimSpace(s)
		if s == "" || !strings.Contains(text, s) {
			continue
		}
		lower := strings.ToLower(s)
		for _, kw := range keywords {
			if strings.Contains(lower, kw) {
				matched = append(matched, s)
				break
			}
		}
	}
	return matched
}

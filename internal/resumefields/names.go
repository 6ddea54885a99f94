package resumefields

import (
	"strings"
	"unicode"
)

// PersonFinder returns the first person name mentioned in text. It stands in
// for a named-entity recogniser; results must be substrings of text.
type PersonFinder interface {
	FirstPerson(text string) (string, bool)
}

// PersonFinderFunc adapts a function to PersonFinder.
type PersonFinderFunc func(text string) (string, bool)

func (f PersonFinderFunc) FirstPerson(text string) (string, bool) { return f(text) }

// headingWords never appear in a name line.
var headingWords = map[string]bool{
	"resume": true, "curriculum": true, "vitae": true, "cv": true, "summary": true,
	"profile": true, "objective": true, "education": true, "experience": true,
	"skills": true, "contact": true, "projects": true, "references": true,
	"certifications": true, "work": true, "employment": true, "university": true,
	"college": true, "school": true,
	// job titles used as headlines
	"engineer": true, "developer": true, "manager": true, "senior": true, "junior": true,
	"lead": true, "principal": true, "staff": true, "architect": true, "analyst": true,
	"consultant": true, "designer": true, "scientist": true, "specialist": true,
	"director": true, "administrator": true, "intern": true, "officer": true,
}

// HeadlineNameFinder picks the first of the leading lines that reads like a
// name: two to four capitalised words made of letters, hyphens, apostrophes
// and periods.
type HeadlineNameFinder struct {
	// MaxLines bounds how far into the document to look. Zero means 10.
	MaxLines int
}

func (f HeadlineNameFinder) FirstPerson(text string) (string, bool) {
	maxLines := f.MaxLines
	if maxLines <= 0 {
		maxLines = 10
	}

	seen := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if seen++; seen > maxLines {
			break
		}
		if looksLikeName(line) {
			return line, true
		}
	}
	return "", false
}

func looksLikeName(line string) bool {
	words := strings.Fields(line)
	if len(words) < 2 || len(words) > 4 {
		return false
	}
	for _, w := range words {
		if headingWords[strings.ToLower(strings.Trim(w, ".:,"))] {
			return false
		}
		first := []rune(w)[0]
		if !unicode.IsUpper(first) {
			return false
		}
		for _, r := range w {
			if !unicode.IsLetter(r) && r != '-' && r != '\'' && r != '.' {
				return false
			}
		}
	}
	return true
}

// Package resumefields pulls contact details, skills and education and
// experience sentences out of a resume's plain text.
package resumefields

import (
	"fmt"
	"strings"
)

// NotFound marks a scalar field with no match.
const NotFound = "not found"

// ExtractedFields is the structured view of a resume. Education and
// Experience hold verbatim sentences from the source text.
type ExtractedFields struct {
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Phone      string   `json:"phone"`
	Skills     []string `json:"skills"`
	Education  []string `json:"education"`
	Experience []string `json:"experience"`
}

func (f ExtractedFields) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Name: %s\n", f.Name)
	fmt.Fprintf(&sb, "Email: %s\n", f.Email)
	fmt.Fprintf(&sb, "Phone: %s\n", f.Phone)
	fmt.Fprintf(&sb, "Skills: %s\n", joinOrNone(f.Skills, ", "))
	writeList(&sb, "Education", f.Education)
	writeList(&sb, "Experience", f.Experience)
	return sb.String()
}

func joinOrNone(items []string, sep string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, sep)
}

func writeList(sb *strings.Builder, label string, items []string) {
	if len(items) == 0 {
		fmt.Fprintf(sb, "%s: none\n", label)
		return
	}
	fmt.Fprintf(sb, "%s:\n", label)
	for _, item := range items {
		fmt.Fprintf(sb, "  - %s\n", item)
	}
}

// Parser is safe for concurrent use; it holds only read-only tables.
type Parser struct {
	skills   *skillMatcher
	persons  PersonFinder
	splitter SentenceSplitter
}

type Option func(*Parser)

// WithVocabulary replaces the skills vocabulary.
func WithVocabulary(v Vocabulary) Option {
	return func(p *Parser) {
		p.skills = newSkillMatcher(v)
	}
}

func WithPersonFinder(f PersonFinder) Option {
	return func(p *Parser) {
		p.persons = f
	}
}

func WithSentenceSplitter(s SentenceSplitter) Option {
	return func(p *Parser) {
		p.splitter = s
	}
}

func NewParser(opts ...Option) *Parser {
	p := &Parser{
		persons:  HeadlineNameFinder{},
		splitter: SplitterFunc(SplitSentences),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.skills == nil {
		p.skills = newSkillMatcher(DefaultSkills)
	}
	return p
}

// Parse never fails: fields without a match hold NotFound or an empty slice.
func (p *Parser) Parse(text string) ExtractedFields {
	fields := ExtractedFields{
		Name:   NotFound,
		Email:  firstEmail(text),
		Phone:  firstPhone(text),
		Skills: p.skills.match(text),
	}
	if name, ok := p.persons.FirstPerson(text); ok && strings.TrimSpace(name) != "" {
		fields.Name = strings.TrimSpace(name)
	}

	sentences := p.splitter.Split(text)
	fields.Education = matchSentences(text, sentences, EducationKeywords)
	fields.Experience = matchSentences(text, sentences, ExperienceKeywords)
	return fields
}

var defaultParser = NewParser()

// Parse runs the default parser.
func Parse(text string) ExtractedFields {
	return defaultParser.Parse(text)
}

package resumefields

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"
)

// Vocabulary is the controlled list of skill terms recognised by the parser.
type Vocabulary []string

// DefaultSkills is the built-in vocabulary. Ambiguous English words ("Go",
// "Swift", "Word", "Excel", "Express") are spelled in their unambiguous form.
var DefaultSkills = Vocabulary{
	// languages
	"Python", "Java", "JavaScript", "TypeScript", "Golang", "C++", "C#", "Ruby", "PHP",
	"Kotlin", "Scala", "Rust", "SQL", "HTML", "CSS", "Bash",
	// web frameworks
	"React", "Angular", "Vue.js", "Node.js", "Express.js", "Django", "Flask", "FastAPI",
	"Spring Boot", "Ruby on Rails", "ASP.NET", "Next.js",
	// databases
	"MySQL", "PostgreSQL", "MongoDB", "Redis", "SQLite", "Oracle", "Elasticsearch", "Cassandra",
	// cloud and devops
	"AWS", "Azure", "GCP", "Docker", "Kubernetes", "Terraform", "Ansible", "Jenkins",
	"Git", "GitHub Actions", "CI/CD", "Linux",
	// data science
	"Machine Learning", "Deep Learning", "Data Analysis", "NLP", "TensorFlow", "PyTorch",
	"Pandas", "NumPy", "Scikit-learn", "Tableau", "Power BI",
	// office
	"Microsoft Excel", "PowerPoint", "Microsoft Word", "Microsoft Office",
}

type vocabularyFile struct {
	Skills []string `yaml:"skills"`
}

// LoadVocabulary reads a YAML file of the form
//
//	skills:
//	  - Python
//	  - Machine Learning
func LoadVocabulary(path string) (Vocabulary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read vocabulary file: %w", err)
	}
	var file vocabularyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse vocabulary file %s: %w", path, err)
	}

	vocab := make(Vocabulary, 0, len(file.Skills))
	for _, s := range file.Skills {
		if s = strings.TrimSpace(s); s != "" {
			vocab = append(vocab, s)
		}
	}
	if len(vocab) == 0 {
		return nil, fmt.Errorf("vocabulary file %s has no skills", path)
	}
	return vocab, nil
}

type skillPattern struct {
	term string
	re   *regexp.Regexp
}

// skillMatcher holds one compiled pattern per vocabulary term. RE2 has no
// lookaround, so the boundaries consume a non-word character or anchor; that
// is enough because each term is tested independently.
type skillMatcher struct {
	patterns []skillPattern
}

func newSkillMatcher(vocab Vocabulary) *skillMatcher {
	m := &skillMatcher{}
	seen := make(map[string]bool, len(vocab))
	for _, term := range vocab {
		key := strings.ToLower(strings.TrimSpace(term))
		if key == "" || seen[key] {
			continue
		}
		seen[key] = true
		m.patterns = append(m.patterns, skillPattern{term: term, re: compileTerm(term)})
	}
	return m
}

func compileTerm(term string) *regexp.Regexp {
	words := strings.Fields(term)
	for i, w := range words {
		words[i] = regexp.QuoteMeta(w)
	}
	body := strings.Join(words, `\s+`)
	return regexp.MustCompile(`(?i)(?:^|[^\pL\pN_])` + body + `(?:$|[^\pL\pN_+#])`)
}

func (m *skillMatcher) match(text string) []string {
	skills := []string{}
	for _, p := range m.patterns {
		if p.re.MatchString(text) {
			skills = append(skills, p.term)
		}
	}
	return skills
}

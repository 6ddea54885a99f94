package resumefields

import "regexp"

var (
	emailPattern = regexp.MustCompile(`[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}`)

	// optional +CC, then 3-3-4 digits. Separators may be '-', '.' or
	// whitespace and the area code may be parenthesised: (555) 123-4567.
	// The number must not start inside a longer run of digits.
	phonePattern = regexp.MustCompile(`(?:^|[^\d+])((?:\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4})`)
)

func firstEmail(text string) string {
	if m := emailPattern.FindString(text); m != "" {
		return m
	}
	return NotFound
}

func firstPhone(text string) string {
	if m := phonePattern.FindStringSubmatch(text); m != nil {
		return m[1]
	}
	return NotFound
}

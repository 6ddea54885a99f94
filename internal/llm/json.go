package llm

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrNoJSON = errors.New("no JSON object in model response")

// CleanJSON strips markdown fences and any prose around the outermost JSON
// object, keeping everything from the first '{' to the last '}'. Input
// without braces is returned trimmed and unfenced.
func CleanJSON(input string) string {
	clean := strings.TrimSpace(input)

	if strings.HasPrefix(clean, "```json") {
		clean = strings.TrimPrefix(clean, "```json")
	} else if strings.HasPrefix(clean, "```") {
		clean = strings.TrimPrefix(clean, "```")
	}
	clean = strings.TrimLeft(clean, "\r\n")
	clean = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(clean), "```"))

	start := strings.Index(clean, "{")
	end := strings.LastIndex(clean, "}")
	if start >= 0 && end > start {
		clean = clean[start : end+1]
	}
	return clean
}

// DecodeJSON cleans a model response and unmarshals it into v.
func DecodeJSON(response string, v any) error {
	if strings.TrimSpace(response) == "" {
		return ErrEmptyResponse
	}
	cleaned := CleanJSON(response)
	if !strings.HasPrefix(cleaned, "{") {
		return ErrNoJSON
	}
	if err := json.Unmarshal([]byte(cleaned), v); err != nil {
		return fmt.Errorf("json unmarshal error: %w", err)
	}
	return nil
}

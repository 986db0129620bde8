// Package langdetect infers the language of fenced code blocks that carry
// no info string, so the HTML renderer can still emit a language-X class.
// It combines go-enry with a few fast pattern checks for the languages that
// dominate Markdown documents.
package langdetect

import (
	"bytes"
	"strings"

	"github.com/go-enry/go-enry/v2"
)

// Language tags for common detected languages, as used in fence info strings.
const (
	langGo         = "go"
	langPython     = "python"
	langJSON       = "json"
	langYAML       = "yaml"
	langHTML       = "html"
	langSQL        = "sql"
	langDockerfile = "dockerfile"
	langBash       = "bash"
)

// classifierCandidates are offered to the enry classifier when no pattern
// matches.
//
//nolint:gochecknoglobals // Read-only lookup table.
var classifierCandidates = []string{
	"Go", "Python", "Shell", "JavaScript", "TypeScript",
	"Ruby", "Rust", "Java", "C", "C++", "SQL", "JSON",
	"YAML", "HTML", "CSS", "Dockerfile",
}

// Detector guesses fence language tags for code content.
// The zero value is ready to use.
type Detector struct{}

// New returns a Detector.
func New() *Detector {
	return &Detector{}
}

// Detect returns the detected language tag for code content, or the empty
// string when nothing can be said with confidence. An empty result leaves
// the rendered code block without a language class.
func (d *Detector) Detect(content []byte) string {
	if len(bytes.TrimSpace(content)) == 0 {
		return ""
	}

	// Shebangs are the most reliable signal.
	if lang, safe := enry.GetLanguageByShebang(content); safe {
		return normalize(lang)
	}

	if lang := detectByPattern(content); lang != "" {
		return lang
	}

	if lang, safe := enry.GetLanguageByClassifier(content, classifierCandidates); safe && lang != "" {
		return normalize(lang)
	}

	return ""
}

// detectByPattern checks for highly indicative language-specific patterns
// before falling back to the statistical classifier.
func detectByPattern(content []byte) string {
	trimmed := bytes.TrimSpace(content)
	text := string(content)

	switch {
	case bytes.HasPrefix(trimmed, []byte("package ")):
		return langGo
	case strings.Contains(text, "def ") && strings.Contains(text, "):"):
		return langPython
	case strings.Contains(text, "__name__") || strings.Contains(text, "__main__"):
		return langPython
	case looksLikeHTML(trimmed):
		return langHTML
	case looksLikeJSON(trimmed):
		return langJSON
	case bytes.HasPrefix(trimmed, []byte("FROM ")) && bytes.Contains(content, []byte("RUN ")):
		return langDockerfile
	case looksLikeSQL(text):
		return langSQL
	case looksLikeYAML(content):
		return langYAML
	}

	return ""
}

func looksLikeHTML(trimmed []byte) bool {
	lower := bytes.ToLower(trimmed)
	return bytes.Contains(lower, []byte("<!doctype html")) ||
		bytes.Contains(lower, []byte("<html")) ||
		bytes.Contains(lower, []byte("<body>"))
}

func looksLikeJSON(trimmed []byte) bool {
	return (bytes.HasPrefix(trimmed, []byte("{")) || bytes.HasPrefix(trimmed, []byte("["))) &&
		bytes.Contains(trimmed, []byte(`"`))
}

func looksLikeSQL(text string) bool {
	upper := strings.TrimSpace(strings.ToUpper(text))
	for _, prefix := range []string{"SELECT ", "INSERT ", "UPDATE ", "DELETE ", "CREATE TABLE"} {
		if strings.HasPrefix(upper, prefix) {
			return true
		}
	}
	return false
}

// looksLikeYAML counts simple `key: value` lines; two or more is enough.
func looksLikeYAML(content []byte) bool {
	keyCount := 0
	for _, line := range bytes.Split(content, []byte("\n")) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 || line[0] == '#' {
			continue
		}
		if bytes.Contains(line, []byte(": ")) && !bytes.ContainsAny(line, "({\"") {
			keyCount++
		}
	}
	return keyCount >= 2
}

// normalize converts enry language names to fence tags.
func normalize(lang string) string {
	if lang == "Shell" {
		return langBash
	}
	return strings.ToLower(lang)
}

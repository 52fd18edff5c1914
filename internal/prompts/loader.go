// Package prompts embeds the announcement-analysis prompt templates. The
// templates live in analysis.json and are compiled into the binary so the
// analyzer's vocabulary can be audited without reading Go code.
package prompts

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
)

//go:embed analysis.json
var analysisJSON []byte

var (
	loadOnce  sync.Once
	templates map[string]string
	loadErr   error
)

func load() (map[string]string, error) {
	loadOnce.Do(func() {
		if err := json.Unmarshal(analysisJSON, &templates); err != nil {
			loadErr = fmt.Errorf("failed to parse analysis templates: %w", err)
		}
	})
	return templates, loadErr
}

// Get returns the analysis template for a key.
func Get(key string) (string, error) {
	tmpl, err := load()
	if err != nil {
		return "", err
	}
	prompt, ok := tmpl[key]
	if !ok {
		return "", fmt.Errorf("analysis template %q not found", key)
	}
	return prompt, nil
}

// MustGet returns the template for a key, panicking when it is missing. The
// analysis keys are fixed at compile time, so a miss is a programming error.
func MustGet(key string) string {
	prompt, err := Get(key)
	if err != nil {
		panic(fmt.Sprintf("failed to load prompt: %v", err))
	}
	return prompt
}

// Keys returns every template key.
func Keys() ([]string, error) {
	tmpl, err := load()
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(tmpl))
	for key := range tmpl {
		keys = append(keys, key)
	}
	return keys, nil
}

// Format replaces {{.Key}} placeholders in a template with values from data.
// Placeholders without a value are left in place.
func Format(template string, data map[string]string) string {
	result := template
	for key, value := range data {
		result = strings.ReplaceAll(result, fmt.Sprintf("{{.%s}}", key), value)
	}
	return result
}

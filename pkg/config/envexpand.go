package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv expands environment references in YAML content using Go
// template syntax ({{.VAR_NAME}}). Template syntax is used instead of
// $VAR so literal dollar signs in tokens and regex patterns survive
// untouched. Missing variables expand to the empty string; validation
// catches required fields that end up empty.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("relay").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		// Content without template syntax passes through unchanged.
		return data
	}

	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, env); err != nil {
		return data
	}
	return buf.Bytes()
}

package config

import (
	"bytes"
	"os"
	"strings"
	"text/template"
)

// ExpandEnv expands environment variables in YAML content using Go templates.
// Uses {{.VAR_NAME}} syntax to avoid collision with $ in literal values
// (message templates, passwords, cron expressions).
//
// Examples:
//   - {{.PROVIDER_API_KEY}} → value of PROVIDER_API_KEY
//   - {{.REDIS_HOST}}:{{.REDIS_PORT}} → host:port with both expanded
//
// Missing variables expand to empty string; validation catches required
// fields that end up empty. Content without template syntax passes through
// untouched, including on template errors.
func ExpandEnv(data []byte) []byte {
	tmpl, err := template.New("config").Option("missingkey=zero").Parse(string(data))
	if err != nil {
		return data
	}

	envMap := make(map[string]string)
	for _, env := range os.Environ() {
		if idx := strings.IndexByte(env, '='); idx > 0 {
			envMap[env[:idx]] = env[idx+1:]
		}
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, envMap); err != nil {
		return data
	}
	return buf.Bytes()
}

package template

import (
	"fmt"
	"strings"

	"github.com/aalvaropc/pomyaml/internal/domain"
)

// RenderString replaces {{name}} placeholders with vars values. A variable
// that is missing or empty is an error, so a rendered file name never has a
// hole in it.
func RenderString(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", &domain.Error{
				Kind: domain.KindInvalidConfig,
				Msg:  fmt.Sprintf("unclosed template expression in %q", input),
			}
		}

		key := strings.TrimSpace(rest[:end])
		if key == "" {
			return "", &domain.Error{
				Kind: domain.KindInvalidConfig,
				Msg:  fmt.Sprintf("empty template expression in %q", input),
			}
		}

		value := vars[key]
		if value == "" {
			return "", &domain.Error{
				Kind:  domain.KindMissingVar,
				Msg:   fmt.Sprintf("missing variable %q", key),
				Cause: domain.ErrMissingVar,
			}
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

// ModelVars exposes the effective coordinates of m as template variables.
func ModelVars(m *domain.Model) map[string]string {
	if m == nil {
		return map[string]string{}
	}
	g, a, v := m.Coordinates()
	vars := map[string]string{
		"groupId":    g,
		"artifactId": a,
		"version":    v,
	}
	if m.Packaging != "" {
		vars["packaging"] = m.Packaging
	} else {
		vars["packaging"] = "jar"
	}
	return vars
}

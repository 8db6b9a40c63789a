package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/aalvaropc/pomyaml/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// userMessage turns an error into a one-line status for the footer.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {
		case domain.KindNotFound:
			if strings.HasPrefix(oe.Op, "pomxml") {
				return "Project model not found" + at(oe.Path)
			}
			if strings.HasPrefix(oe.Op, "projectfinder.findroot") {
				return "Project not found"
			}
			return "Not found"

		case domain.KindInvalidModel:
			if line := extractLine(err.Error()); line != "" {
				return "Invalid project model" + at(oe.Path) + " line " + line
			}
			if field := extractField(err.Error()); field != "" {
				return "Invalid project model: " + field
			}
			return "Invalid project model" + at(oe.Path)

		case domain.KindInvalidConfig:
			if errors.Is(err, domain.ErrMissingVar) {
				return missingVar(err)
			}
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}
			if line := extractLine(err.Error()); line != "" {
				return "Invalid YAML at " + base + " line " + line
			}
			if looksLikeYAMLProblem(err.Error()) {
				return "Invalid YAML at " + base
			}
			return "Invalid config"

		case domain.KindMissingVar:
			return missingVar(err)

		default:
			return "Unexpected error (see logs)"
		}
	}

	if domain.IsKind(err, domain.KindMissingVar) {
		return missingVar(err)
	}
	if looksLikeYAMLProblem(err.Error()) {
		if line := extractLine(err.Error()); line != "" {
			return "Invalid YAML line " + line
		}
		return "Invalid YAML"
	}
	return "Unexpected error (see logs)"
}

func at(path string) string {
	if strings.TrimSpace(path) == "" {
		return ""
	}
	return " at " + filepath.Base(path)
}

func missingVar(err error) string {
	if v := extractQuoted(err.Error(), "missing variable "); v != "" {
		return "Missing variable " + v
	}
	return "Missing variable"
}

func looksLikeYAMLProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "did not find expected") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}

// extractField pulls the dotted field name out of "field a.b[0].c: ..." messages.
func extractField(s string) string {
	i := strings.Index(s, "field ")
	if i < 0 {
		return ""
	}
	rest := s[i+len("field "):]
	if j := strings.IndexByte(rest, ':'); j > 0 {
		return rest[:j]
	}
	return ""
}

func extractQuoted(s, prefix string) string {
	i := strings.LastIndex(strings.ToLower(s), prefix)
	if i < 0 {
		return ""
	}
	part := strings.TrimSpace(s[i+len(prefix):])
	fields := strings.Fields(part)
	if len(fields) == 0 {
		return ""
	}
	return strings.Trim(fields[0], " .,:;\"'")
}

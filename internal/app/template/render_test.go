package template

import (
	"errors"
	"testing"

	"github.com/aalvaropc/pomyaml/internal/domain"
)

func TestRenderStringSingleVar(t *testing.T) {
	out, err := RenderString("{{artifactId}}.yml", map[string]string{"artifactId": "demo"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "demo.yml" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestRenderStringMultipleVars(t *testing.T) {
	out, err := RenderString("{{ groupId }}/{{artifactId}}-{{version}}.yml", map[string]string{
		"groupId":    "org.example",
		"artifactId": "demo",
		"version":    "1.0.0",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "org.example/demo-1.0.0.yml" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestRenderStringWithoutPlaceholders(t *testing.T) {
	out, err := RenderString("pom.yml", nil)
	if err != nil || out != "pom.yml" {
		t.Fatalf("expected literal passthrough, got %q %v", out, err)
	}
}

func TestRenderStringErrors(t *testing.T) {
	cases := []struct {
		in   string
		vars map[string]string
		kind domain.ErrorKind
	}{
		{"{{name}}.yml", map[string]string{}, domain.KindMissingVar},
		{"{{version}}.yml", map[string]string{"version": ""}, domain.KindMissingVar},
		{"{{name.yml", map[string]string{"name": "x"}, domain.KindInvalidConfig},
		{"{{ }}.yml", nil, domain.KindInvalidConfig},
	}
	for _, c := range cases {
		_, err := RenderString(c.in, c.vars)
		if !domain.IsKind(err, c.kind) {
			t.Errorf("%q: expected %s, got %v", c.in, c.kind, err)
		}
	}

	_, err := RenderString("{{name}}", nil)
	if !errors.Is(err, domain.ErrMissingVar) {
		t.Fatalf("expected ErrMissingVar in chain, got %v", err)
	}
}

func TestModelVarsInheritsFromParent(t *testing.T) {
	m := &domain.Model{
		ArtifactID: "demo",
		Parent:     &domain.Parent{GroupID: "org.example", Version: "2.0.0"},
	}
	vars := ModelVars(m)
	if vars["groupId"] != "org.example" || vars["artifactId"] != "demo" || vars["version"] != "2.0.0" {
		t.Fatalf("unexpected vars %v", vars)
	}
	if vars["packaging"] != "jar" {
		t.Fatalf("expected default packaging, got %q", vars["packaging"])
	}
}

package tui

import (
	"errors"
	"fmt"
	"testing"

	"github.com/aalvaropc/pomyaml/internal/domain"
)

func TestUserMessage(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{
			"missing pom",
			&domain.OpError{Op: "pomxml.load_model", Kind: domain.KindNotFound, Path: "/p/pom.xml", Err: errors.New("no such file")},
			"Project model not found at pom.xml",
		},
		{
			"no project",
			&domain.OpError{Op: "projectfinder.findroot", Kind: domain.KindNotFound, Err: domain.ErrNotFound},
			"Project not found",
		},
		{
			"xml syntax",
			&domain.OpError{Op: "pomxml.parse", Kind: domain.KindInvalidModel, Path: "/p/pom.xml", Err: errors.New("XML syntax error on line 7: unexpected EOF")},
			"Invalid project model at pom.xml line 7",
		},
		{
			"bad field",
			&domain.OpError{Op: "pomxml.map", Kind: domain.KindInvalidModel, Path: "/p/pom.xml", Err: fmt.Errorf("field dependencies[0].optional: expected true or false: %w", domain.ErrInvalidModel)},
			"Invalid project model: dependencies[0].optional",
		},
		{
			"bad config yaml",
			&domain.OpError{Op: "projectfinder.loadconfig", Kind: domain.KindInvalidConfig, Path: "/p/.pomyaml.yaml", Err: errors.New("yaml: line 3: did not find expected key")},
			"Invalid YAML at .pomyaml.yaml line 3",
		},
		{
			"missing output variable",
			&domain.OpError{Op: "usecase.output_name", Kind: domain.KindInvalidConfig, Err: &domain.Error{Kind: domain.KindMissingVar, Msg: `missing variable "version"`, Cause: domain.ErrMissingVar}},
			"Missing variable version",
		},
		{
			"bare domain error",
			&domain.Error{Kind: domain.KindMissingVar, Msg: `missing variable "groupId"`},
			"Missing variable groupId",
		},
		{"unknown", errors.New("boom"), "Unexpected error (see logs)"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := userMessage(c.err); got != c.want {
				t.Fatalf("userMessage() = %q, want %q", got, c.want)
			}
		})
	}
}

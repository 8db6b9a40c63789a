package represent

import (
	"errors"
	"strings"
	"testing"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/aalvaropc/pomyaml/internal/domain"
)

func TestRepresentOrdersProjectFields(t *testing.T) {
	r := New(fakeEnumerator{}, DefaultPolicy())
	root := obj(KindProject,
		scalar("description", "demo"),
		scalar("groupId", "org.example"),
		scalar("modelVersion", "4.0.0"),
	)

	out, err := r.Marshal(root, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := "modelVersion: 4.0.0\ngroupId: org.example\ndescription: demo\n"
	if string(out) != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, out)
	}
}

func TestRepresentDependencyDefaults(t *testing.T) {
	r := New(fakeEnumerator{}, nil)

	plain := obj(KindDependency,
		scalar("artifactId", "lib"),
		scalar("type", "jar"),
		scalar("optional", false),
	)
	n, err := r.Represent(plain)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := keys(t, n); !equalStrings(got, []string{"artifactId"}) {
		t.Fatalf("expected defaults omitted, got %v", got)
	}

	explicit := obj(KindDependency,
		scalar("artifactId", "lib"),
		scalar("type", "war"),
		scalar("optional", true),
	)
	n, err = r.Represent(explicit)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := keys(t, n); !equalStrings(got, []string{"artifactId", "type", "optional"}) {
		t.Fatalf("expected explicit values kept, got %v", got)
	}
	opt := lookup(t, n, "optional")
	if opt.Tag != "!!str" || opt.Value != "true" {
		t.Fatalf("expected optional as text true, got tag=%s value=%s", opt.Tag, opt.Value)
	}
	if typ := lookup(t, n, "type"); typ.Value != "war" {
		t.Fatalf("expected type war, got %s", typ.Value)
	}
}

func TestRepresentCoercedScalarsLookLikeStrings(t *testing.T) {
	r := New(fakeEnumerator{}, nil)
	when := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	n, err := r.Represent(obj(KindGeneric,
		scalar("flag", true),
		scalar("count", 42),
		scalar("when", when),
		scalar("label", "plain"),
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := map[string]string{
		"flag":  "true",
		"count": "42",
		"when":  "2024-01-02T03:04:05Z",
		"label": "plain",
	}
	for k, v := range want {
		got := lookup(t, n, k)
		if got.Kind != yaml.ScalarNode || got.Tag != "!!str" || got.Value != v {
			t.Errorf("%s: expected !!str %q, got kind=%v tag=%s value=%q", k, v, got.Kind, got.Tag, got.Value)
		}
	}

	out, err := r.Marshal(obj(KindGeneric, scalar("flag", true), scalar("count", 42)), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "flag: \"true\"\ncount: \"42\"\n" {
		t.Fatalf("expected quoted text scalars, got:\n%s", out)
	}
}

func TestRepresentWithoutCoercionKeepsNativeScalars(t *testing.T) {
	r := New(fakeEnumerator{}, NewPolicy(WithCoercion()))
	n, err := r.Represent(obj(KindGeneric, scalar("flag", true), scalar("count", 42)))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := lookup(t, n, "flag"); got.Tag != "!!bool" {
		t.Fatalf("expected native bool, got %s", got.Tag)
	}
	if got := lookup(t, n, "count"); got.Tag != "!!int" {
		t.Fatalf("expected native int, got %s", got.Tag)
	}
}

func TestRepresentFlattensConfigurationTrees(t *testing.T) {
	r := New(fakeEnumerator{}, nil)
	tree := domain.NewConfig("configuration").Add(
		domain.Leaf("A", "1"),
		domain.NewConfig("B").Add(domain.Leaf("C", "x")),
	)
	out, err := r.Marshal(obj(KindGeneric,
		Field{Name: "configuration", Value: tree, Declared: FieldTree},
	), 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "configuration:\n  A: \"1\"\n  B:\n    C: x\n"
	if string(out) != want {
		t.Fatalf("expected:\n%s\ngot:\n%s", want, out)
	}
}

func TestRepresentOmitsEmptyConfiguration(t *testing.T) {
	r := New(fakeEnumerator{}, nil)
	n, err := r.Represent(obj(KindGeneric,
		scalar("artifactId", "plugin"),
		Field{Name: "configuration", Value: domain.NewConfig("configuration"), Declared: FieldTree},
		Field{Name: "missing", Value: (*domain.ConfigNode)(nil), Declared: FieldTree},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := keys(t, n); !equalStrings(got, []string{"artifactId"}) {
		t.Fatalf("expected empty configuration omitted, got %v", got)
	}
}

func TestRepresentKeepsNestedEmptyMappingInsideTree(t *testing.T) {
	r := New(fakeEnumerator{}, nil)
	tree := domain.NewConfig("configuration").Add(domain.NewConfig("skip"))
	n, err := r.Represent(obj(KindGeneric, Field{Name: "configuration", Value: tree, Declared: FieldTree}))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg := lookup(t, n, "configuration")
	skip := lookup(t, cfg, "skip")
	if skip.Kind != yaml.MappingNode || len(skip.Content) != 0 {
		t.Fatalf("expected empty mapping entry inside tree, got %+v", skip)
	}
}

func TestRepresentCollections(t *testing.T) {
	r := New(fakeEnumerator{}, nil)
	n, err := r.Represent(obj(KindGeneric,
		Field{Name: "empty", Value: []string{}, Declared: FieldSequence},
		Field{Name: "goals", Value: []string{"compile", "test"}, Declared: FieldSequence},
		Field{Name: "props", Value: map[string]int{"b": 2, "a": 1}, Declared: FieldMapping},
		Field{Name: "none", Value: map[string]string{}, Declared: FieldMapping},
	))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := keys(t, n); !equalStrings(got, []string{"goals", "props"}) {
		t.Fatalf("expected empty collections omitted, got %v", got)
	}

	goals := lookup(t, n, "goals")
	if goals.Kind != yaml.SequenceNode || len(goals.Content) != 2 || goals.Content[1].Value != "test" {
		t.Fatalf("expected sequence [compile test], got %+v", goals)
	}
	props := lookup(t, n, "props")
	if got := keys(t, props); !equalStrings(got, []string{"a", "b"}) {
		t.Fatalf("expected sorted map keys, got %v", got)
	}
	if v := lookup(t, props, "a"); v.Tag != "!!str" || v.Value != "1" {
		t.Fatalf("expected coerced map value, got %+v", v)
	}
}

func TestRepresentNestedObjectsUseTheirOwnKind(t *testing.T) {
	r := New(fakeEnumerator{}, nil)
	dep := obj(KindDependency, scalar("type", "jar"), scalar("artifactId", "lib"))
	dev := obj(KindContributor, scalar("email", "e@x"), scalar("name", "Ann"))
	root := obj(KindProject,
		Field{Name: "dependencies", Value: []*fakeObject{dep}, Declared: FieldSequence},
		Field{Name: "developers", Value: []*fakeObject{dev}, Declared: FieldSequence},
		scalar("groupId", "g"),
	)

	n, err := r.Represent(root)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := keys(t, n); !equalStrings(got, []string{"groupId", "developers", "dependencies"}) {
		t.Fatalf("expected project order, got %v", got)
	}

	deps := lookup(t, n, "dependencies")
	if got := keys(t, deps.Content[0]); !equalStrings(got, []string{"artifactId"}) {
		t.Fatalf("expected dependency rules on nested object, got %v", got)
	}
	devs := lookup(t, n, "developers")
	if got := keys(t, devs.Content[0]); !equalStrings(got, []string{"name", "email"}) {
		t.Fatalf("expected contributor order on nested object, got %v", got)
	}
}

func TestRepresentEnumerationFailureNamesKind(t *testing.T) {
	r := New(fakeEnumerator{}, nil)
	cause := errors.New("boom")
	bad := &fakeObject{kind: KindDependency, err: cause}
	root := obj(KindProject,
		scalar("groupId", "g"),
		Field{Name: "dependencies", Value: []*fakeObject{bad}, Declared: FieldSequence},
	)

	n, err := r.Represent(root)
	if err == nil {
		t.Fatalf("expected error")
	}
	if n != nil {
		t.Fatalf("expected no partial tree")
	}
	if !errors.Is(err, cause) {
		t.Fatalf("expected cause to be wrapped, got %v", err)
	}
	if !domain.IsKind(err, domain.KindInvalidModel) {
		t.Fatalf("expected invalid model kind, got %v", err)
	}
	if !strings.Contains(err.Error(), string(KindDependency)) {
		t.Fatalf("expected object kind in error, got %v", err)
	}
}

func TestRepresentDoesNotMutateInput(t *testing.T) {
	r := New(fakeEnumerator{}, nil)
	fields := []Field{scalar("version", "1"), scalar("groupId", "g")}
	root := &fakeObject{kind: KindProject, fields: fields}

	if _, err := r.Represent(root); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fields[0].Name != "version" {
		t.Fatalf("expected field slice untouched")
	}
}

func TestEncodeIndent(t *testing.T) {
	r := New(fakeEnumerator{}, nil)
	m := NewMapping()
	m.Set("k", "v")
	root := obj(KindGeneric, Field{Name: "outer", Value: m, Declared: FieldMapping})

	out, err := r.Marshal(root, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "outer:\n    k: v\n" {
		t.Fatalf("expected 4-space indent, got:\n%s", out)
	}

	out, err = r.Marshal(root, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != "outer:\n  k: v\n" {
		t.Fatalf("expected default indent, got:\n%s", out)
	}
}

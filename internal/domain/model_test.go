package domain

import "testing"

func TestCoordinatesInheritFromParent(t *testing.T) {
	m := Model{
		ArtifactID: "child",
		Parent: &Parent{
			GroupID:    "org.example",
			ArtifactID: "parent",
			Version:    "1.2.0",
		},
	}

	g, a, v := m.Coordinates()
	if g != "org.example" || a != "child" || v != "1.2.0" {
		t.Fatalf("expected inherited coordinates, got %s:%s:%s", g, a, v)
	}
}

func TestCoordinatesPreferDeclared(t *testing.T) {
	m := Model{
		GroupID:    "org.own",
		ArtifactID: "child",
		Version:    "2.0.0",
		Parent:     &Parent{GroupID: "org.example", Version: "1.2.0"},
	}

	g, _, v := m.Coordinates()
	if g != "org.own" || v != "2.0.0" {
		t.Fatalf("expected declared coordinates to win, got %s %s", g, v)
	}
}

func TestConfigNodeHelpers(t *testing.T) {
	root := NewConfig("configuration").Add(
		Leaf("source", "17"),
		NewConfig("compilerArgs").Add(Leaf("arg", "-Xlint")),
	)

	if got := root.Child("source"); got == nil || got.Value == nil || *got.Value != "17" {
		t.Fatalf("expected source leaf, got %+v", got)
	}
	if root.Child("missing") != nil {
		t.Fatalf("expected nil for missing child")
	}
	var nilNode *ConfigNode
	if nilNode.Child("x") != nil {
		t.Fatalf("expected nil receiver to be safe")
	}
	if len(root.Child("compilerArgs").Children) != 1 {
		t.Fatalf("expected nested child")
	}
}

package geom4d

import (
	"errors"
	"testing"
)

func twoVertexShape(edges ...[2]int) Shape {
	return Shape{
		Vertices: []Point4{{-1, 0, 0, 0}, {1, 0, 0, 0}},
		Edges:    edges,
	}
}

func TestValidate_OK(t *testing.T) {
	if err := twoVertexShape([2]int{0, 1}).Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := (Shape{}).Validate(); err != nil {
		t.Fatalf("empty shape should validate: %v", err)
	}
}

func TestValidate_IndexOutOfRange(t *testing.T) {
	for _, edges := range [][2]int{{0, 2}, {-1, 1}, {5, 0}} {
		err := twoVertexShape(edges).Validate()
		var te *TopologyError
		if !errors.As(err, &te) {
			t.Fatalf("edge %v: expected TopologyError, got %v", edges, err)
		}
		if te.Reason != "vertex index out of range" {
			t.Fatalf("edge %v: wrong reason %q", edges, te.Reason)
		}
	}
}

func TestValidate_SelfLoop(t *testing.T) {
	err := twoVertexShape([2]int{1, 1}).Validate()
	var te *TopologyError
	if !errors.As(err, &te) || te.Reason != "self-loop" {
		t.Fatalf("expected self-loop TopologyError, got %v", err)
	}
}

func TestValidate_DuplicateEdge(t *testing.T) {
	// The reverse orientation counts as a duplicate too.
	err := twoVertexShape([2]int{0, 1}, [2]int{1, 0}).Validate()
	var te *TopologyError
	if !errors.As(err, &te) || te.Reason != "duplicate edge" {
		t.Fatalf("expected duplicate-edge TopologyError, got %v", err)
	}
	if te.Edge != 1 {
		t.Fatalf("wrong edge index: %d", te.Edge)
	}
}

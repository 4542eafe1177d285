package geom4d

import (
	"errors"
	"math"
	"strings"
	"testing"
)

func TestProject_Origin(t *testing.T) {
	p, err := Project(Point4{}, 5.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// factor = 5/(5-0) = 1
	if p != (Point3{}) {
		t.Fatalf("origin projected to %+v, want (0,0,0)", p)
	}
}

func TestProject_Perspective(t *testing.T) {
	p, err := Project(Point4{1, 1, 1, 4}, 5.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// factor = 5/(5-4) = 5
	if math.Abs(p.X-5) > 1e-12 || math.Abs(p.Y-5) > 1e-12 || math.Abs(p.Z-5) > 1e-12 {
		t.Fatalf("projected to %+v, want (5,5,5)", p)
	}
}

func TestProject_Singular(t *testing.T) {
	_, err := Project(Point4{1, 2, 3, 5}, 5.0)
	if !errors.Is(err, ErrSingularProjection) {
		t.Fatalf("expected ErrSingularProjection, got %v", err)
	}
}

func TestProjectShape_OffsetsByPosition(t *testing.T) {
	s := Shape{
		Vertices: []Point4{{1, 1, 1, 0}},
		Position: Point4{0, 0, 0, 4},
	}
	pts, err := ProjectShape(s, 5.0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// The vertex sits at w=4 after the offset, so factor = 5.
	if math.Abs(pts[0].X-5) > 1e-12 || math.Abs(pts[0].Y-5) > 1e-12 || math.Abs(pts[0].Z-5) > 1e-12 {
		t.Fatalf("projected to %+v, want (5,5,5)", pts[0])
	}
}

func TestProjectShape_ReportsVertexIndex(t *testing.T) {
	s := Shape{Vertices: []Point4{{0, 0, 0, 0}, {0, 0, 0, 5}}}
	_, err := ProjectShape(s, 5.0)
	if !errors.Is(err, ErrSingularProjection) {
		t.Fatalf("expected ErrSingularProjection, got %v", err)
	}
	if !strings.Contains(err.Error(), "vertex 1") {
		t.Fatalf("error does not name the vertex: %v", err)
	}
}

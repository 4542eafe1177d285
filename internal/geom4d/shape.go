package geom4d

import "math/bits"

// Shape is a 4D wireframe: indexed vertices, undirected edges between
// them, and a position offset for the whole shape.
type Shape struct {
	Vertices []Point4 `json:"vertices"`
	Edges    [][2]int `json:"edges"`
	Position Point4   `json:"position"`
}

// Tesseract counts: 2^4 corners, each joined to one neighbor per axis.
const (
	TesseractVertices = 16
	TesseractEdges    = 32
)

// Tesseract builds the 4D hypercube of the given half-extent, centered at
// the origin. Vertex i has coordinate +size on every axis whose bit is set
// in i (bit 0 → X … bit 3 → W) and -size otherwise; two vertices are
// joined iff their indices differ in exactly one bit. A size ≤ 0 is
// accepted and yields a mirrored or degenerate cube with the same topology.
func Tesseract(size Real) Shape {
	vertices := make([]Point4, 0, TesseractVertices)
	for i := 0; i < TesseractVertices; i++ {
		coord := func(bit uint) Real {
			if i&(1<<bit) != 0 {
				return size
			}
			return -size
		}
		vertices = append(vertices, Point4{coord(0), coord(1), coord(2), coord(3)})
	}

	edges := make([][2]int, 0, TesseractEdges)
	for i := 0; i < TesseractVertices; i++ {
		for j := i + 1; j < TesseractVertices; j++ {
			if bits.OnesCount(uint(i^j)) == 1 {
				edges = append(edges, [2]int{i, j})
			}
		}
	}

	return Shape{Vertices: vertices, Edges: edges}
}

// Validate checks the edge list against the vertex count: indices must be
// in range, edges must not be self-loops, and no pair may appear twice in
// either orientation. Violations are reported as *TopologyError.
func (s Shape) Validate() error {
	seen := make(map[[2]int]struct{}, len(s.Edges))
	for n, e := range s.Edges {
		i, j := e[0], e[1]
		if i < 0 || i >= len(s.Vertices) || j < 0 || j >= len(s.Vertices) {
			return &TopologyError{Edge: n, Pair: e, Reason: "vertex index out of range"}
		}
		if i == j {
			return &TopologyError{Edge: n, Pair: e, Reason: "self-loop"}
		}
		key := [2]int{i, j}
		if j < i {
			key = [2]int{j, i}
		}
		if _, dup := seen[key]; dup {
			return &TopologyError{Edge: n, Pair: e, Reason: "duplicate edge"}
		}
		seen[key] = struct{}{}
	}
	return nil
}

package geom4d

// Transform is a rigid 4D transformation: six plane-rotation angles plus a
// translation. The zero value is the identity.
type Transform struct {
	Rotation    Rot4
	Translation Vector4
}

// Apply returns a new shape with vertices rotated about the origin by the
// composed plane rotations, edges copied unchanged, and the translation
// added to the position. The input shape is never modified or aliased.
func (t Transform) Apply(s Shape) Shape {
	out := Shape{
		Vertices: make([]Point4, len(s.Vertices)),
		Edges:    make([][2]int, len(s.Edges)),
		Position: s.Position.Add(t.Translation),
	}
	copy(out.Edges, s.Edges)

	if t.Rotation.IsZero() {
		copy(out.Vertices, s.Vertices)
		return out
	}
	R := t.Rotation.Matrix()
	for i, v := range s.Vertices {
		out.Vertices[i] = R.MulPoint(v)
	}
	return out
}

package geom4d

// Real is the scalar type used across the kernel.
type Real = float64

// Point4 represents a position in 4-dimensional space.
type Point4 struct {
	X Real `json:"x"`
	Y Real `json:"y"`
	Z Real `json:"z"`
	W Real `json:"w"`
}

// Add lets you translate a Point4 by a Vector4.
func (p Point4) Add(v Vector4) Point4 {
	return Point4{p.X + v.X, p.Y + v.Y, p.Z + v.Z, p.W + v.W}
}

// Sub returns the displacement from q to p.
func (p Point4) Sub(q Point4) Vector4 {
	return Vector4{p.X - q.X, p.Y - q.Y, p.Z - q.Z, p.W - q.W}
}

// Point3 is a 4D point after perspective projection to 3D.
type Point3 struct {
	X Real `json:"x"`
	Y Real `json:"y"`
	Z Real `json:"z"`
}

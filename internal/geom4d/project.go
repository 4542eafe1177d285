package geom4d

import "fmt"

// DefaultViewerDistance is the projection distance used when a caller does
// not supply one.
const DefaultViewerDistance = 5.0

// Project maps a 4D point to 3D by perspective projection along W:
// factor = distance / (distance - w). The projection is singular when the
// point lies on the viewer hyperplane (w == distance); that case returns
// ErrSingularProjection rather than propagating infinities.
func Project(p Point4, distance Real) (Point3, error) {
	den := distance - p.W
	if den == 0 {
		return Point3{}, ErrSingularProjection
	}
	factor := distance / den
	return Point3{p.X * factor, p.Y * factor, p.Z * factor}, nil
}

// ProjectShape projects every vertex of the shape, offset by its position,
// with the same viewer distance.
func ProjectShape(s Shape, distance Real) ([]Point3, error) {
	offset := s.Position.Sub(Point4{})
	out := make([]Point3, len(s.Vertices))
	for i, v := range s.Vertices {
		p, err := Project(v.Add(offset), distance)
		if err != nil {
			return nil, fmt.Errorf("vertex %d: %w", i, err)
		}
		out[i] = p
	}
	return out, nil
}

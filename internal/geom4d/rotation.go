package geom4d

import (
	"fmt"
	"math"
)

// Angles in radians for rotations in coordinate planes.
type Rot4 struct {
	XY, XZ, XW, YZ, YW, ZW Real
}

// IsZero reports whether every angle is zero.
func (r Rot4) IsZero() bool { return r == Rot4{} }

// Plane identifies one of the six independent rotation planes in 4D.
type Plane int

const (
	PlaneXY Plane = iota
	PlaneXZ
	PlaneXW
	PlaneYZ
	PlaneYW
	PlaneZW
)

var planeNames = [...]string{"xy", "xz", "xw", "yz", "yw", "zw"}

func (p Plane) String() string {
	if p < PlaneXY || p > PlaneZW {
		return fmt.Sprintf("Plane(%d)", int(p))
	}
	return planeNames[p]
}

// The two axis indices (0..3 for X..W) each plane's rotation block occupies.
var planeAxes = [...][2]int{
	PlaneXY: {0, 1},
	PlaneXZ: {0, 2},
	PlaneXW: {0, 3},
	PlaneYZ: {1, 2},
	PlaneYW: {1, 3},
	PlaneZW: {2, 3},
}

// Rotation returns the identity matrix with the standard 2D rotation block
// [[cos,-sin],[sin,cos]] placed at the rows/columns of the plane's two axes.
func Rotation(plane Plane, angle Real) Mat4 {
	if plane < PlaneXY || plane > PlaneZW {
		panic(fmt.Sprintf("geom4d: invalid rotation plane %d", int(plane)))
	}
	c, s := math.Cos(angle), math.Sin(angle)
	i, j := planeAxes[plane][0], planeAxes[plane][1]
	M := I4()
	M.M[i][i], M.M[i][j] = c, -s
	M.M[j][i], M.M[j][j] = s, c
	return M
}

// Matrix composes the six plane rotations into a single matrix.
// XY is applied first, ZW last.
func (r Rot4) Matrix() Mat4 {
	R := I4()
	R = Rotation(PlaneXY, r.XY).Mul(R)
	R = Rotation(PlaneXZ, r.XZ).Mul(R)
	R = Rotation(PlaneXW, r.XW).Mul(R)
	R = Rotation(PlaneYZ, r.YZ).Mul(R)
	R = Rotation(PlaneYW, r.YW).Mul(R)
	R = Rotation(PlaneZW, r.ZW).Mul(R)
	return R
}

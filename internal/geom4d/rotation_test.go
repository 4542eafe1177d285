package geom4d

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRotation_ZeroAngleIsIdentity(t *testing.T) {
	for p := PlaneXY; p <= PlaneZW; p++ {
		if diff := cmp.Diff(I4(), Rotation(p, 0)); diff != "" {
			t.Fatalf("plane %s at angle 0 is not identity:\n%s", p, diff)
		}
	}
}

func TestRotation_XYQuarterTurn(t *testing.T) {
	R := Rotation(PlaneXY, math.Pi/2)
	o := R.MulVec(Vector4{1, 0, 0, 0})
	// 90° in XY: (1,0,0,0) -> (0,1,0,0)
	if math.Abs(o.X) > 1e-12 || math.Abs(o.Y-1) > 1e-12 || o.Z != 0 || o.W != 0 {
		t.Fatalf("rotXY failed: %+v", o)
	}
	if math.Abs(o.Len()-1) > 1e-12 {
		t.Fatalf("rotXY broke length: %.12g", o.Len())
	}
}

func TestRotation_LeavesOtherAxesAlone(t *testing.T) {
	// A plane rotation must fix the two axes it does not involve.
	basis := [4]Vector4{{X: 1}, {Y: 1}, {Z: 1}, {W: 1}}
	for p := PlaneXY; p <= PlaneZW; p++ {
		R := Rotation(p, math.Pi/3)
		involved := map[int]bool{planeAxes[p][0]: true, planeAxes[p][1]: true}
		for axis, v := range basis {
			if involved[axis] {
				continue
			}
			if o := R.MulVec(v); o != v {
				t.Fatalf("plane %s moved axis %d: %+v", p, axis, o)
			}
		}
	}
}

func TestRot4Matrix_IsOrthonormal(t *testing.T) {
	R := Rot4{
		XY: math.Pi / 6,
		XZ: math.Pi / 7,
		XW: math.Pi / 5,
		YZ: math.Pi / 8,
		YW: math.Pi / 9,
		ZW: math.Pi / 10,
	}.Matrix()

	// Check R^T R ~ I
	P := R.Transpose().Mul(R)
	I := I4()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			if diff := math.Abs(P.M[r][c] - I.M[r][c]); diff > 1e-12 {
				t.Fatalf("R^T R != I at (%d,%d): %.3g", r, c, diff)
			}
		}
	}
}

func TestRot4Matrix_ZeroIsIdentity(t *testing.T) {
	if diff := cmp.Diff(I4(), Rot4{}.Matrix()); diff != "" {
		t.Fatalf("zero Rot4 is not identity:\n%s", diff)
	}
}

func TestPlane_String(t *testing.T) {
	if PlaneXW.String() != "xw" || PlaneZW.String() != "zw" {
		t.Fatalf("plane names wrong: %s %s", PlaneXW, PlaneZW)
	}
}

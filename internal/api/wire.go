package api

import "github.com/ObywatelTB/cztery-de/internal/geom4d"

// transformPayload mirrors the wire schema for transforms. Every field is
// optional and defaults to zero, so the zero payload is the identity.
type transformPayload struct {
	RotationXY  float64        `json:"rotation_xy"`
	RotationXZ  float64        `json:"rotation_xz"`
	RotationXW  float64        `json:"rotation_xw"`
	RotationYZ  float64        `json:"rotation_yz"`
	RotationYW  float64        `json:"rotation_yw"`
	RotationZW  float64        `json:"rotation_zw"`
	Translation geom4d.Vector4 `json:"translation"`
}

func (p transformPayload) domain() geom4d.Transform {
	return geom4d.Transform{
		Rotation: geom4d.Rot4{
			XY: p.RotationXY,
			XZ: p.RotationXZ,
			XW: p.RotationXW,
			YZ: p.RotationYZ,
			YW: p.RotationYW,
			ZW: p.RotationZW,
		},
		Translation: p.Translation,
	}
}

type transformRequest struct {
	Shape     geom4d.Shape     `json:"shape"`
	Transform transformPayload `json:"transform"`
}

type projectRequest struct {
	Shape geom4d.Shape `json:"shape"`
	// ViewerDistance defaults to the configured distance when zero.
	ViewerDistance float64 `json:"viewer_distance"`
}

type projectResponse struct {
	Points []geom4d.Point3 `json:"points"`
}

type errorBody struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorResponse struct {
	Err errorBody `json:"error"`
}

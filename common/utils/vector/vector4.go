package vector

import (
	"bytes"
	"fmt"
	"math"

	"github.com/Photon1c/ForagingTheoryv2/common/utils/number"
)

// Vector4 is a 4-component coordinate; w is the extra "depth" dimension
// of the hyperspace mode. It only ever reaches the rest of the system
// through Project3D.
type Vector4 struct {
	x float64
	y float64
	z float64
	w float64
}

func MakeVector4(x float64, y float64, z float64, w float64) Vector4 {
	return Vector4{x, y, z, w}
}

func (v Vector4) Get() (float64, float64, float64, float64) {
	return v.x, v.y, v.z, v.w
}

func (v Vector4) GetW() float64 {
	return v.w
}

func (v Vector4) MarshalJSON() ([]byte, error) {
	propfmt := "%.4f"
	buffer := bytes.NewBufferString("[")
	buffer.WriteString(fmt.Sprintf(propfmt, v.x))
	buffer.WriteString(",")
	buffer.WriteString(fmt.Sprintf(propfmt, v.y))
	buffer.WriteString(",")
	buffer.WriteString(fmt.Sprintf(propfmt, v.z))
	buffer.WriteString(",")
	buffer.WriteString(fmt.Sprintf(propfmt, v.w))
	buffer.WriteString("]")
	return buffer.Bytes(), nil
}

func (a Vector4) Add(b Vector4) Vector4 {
	a.x += b.x
	a.y += b.y
	a.z += b.z
	a.w += b.w
	return a
}

func (a Vector4) Sub(b Vector4) Vector4 {
	a.x -= b.x
	a.y -= b.y
	a.z -= b.z
	a.w -= b.w
	return a
}

func (a Vector4) MultScalar(f float64) Vector4 {
	a.x *= f
	a.y *= f
	a.z *= f
	a.w *= f
	return a
}

func (a Vector4) Mag() float64 {
	return math.Sqrt(a.x*a.x + a.y*a.y + a.z*a.z + a.w*a.w)
}

func (a Vector4) IsNull() bool {
	return isZero(a.x) && isZero(a.y) && isZero(a.z) && isZero(a.w)
}

func (a Vector4) String() string {
	return "<Vector4(" + number.FloatToStr(a.x, 5) + ", " + number.FloatToStr(a.y, 5) + ", " + number.FloatToStr(a.z, 5) + ", " + number.FloatToStr(a.w, 5) + ")>"
}

// Project3D maps the coordinate into render space with a perspective
// divide along w: scale = focal / (focal + w). A w approaching -focal
// would blow the division up; the guard falls back to the unscaled
// (x, y, z) instead. For w = 0 the result is exactly (x, y, z).
func (a Vector4) Project3D(focal float64) Vector3 {
	denom := focal + a.w
	if number.IsZero(denom) {
		return MakeVector3(a.x, a.y, a.z)
	}

	scale := focal / denom
	return MakeVector3(a.x*scale, a.y*scale, a.z*scale)
}

package vector

import (
	"bytes"
	"fmt"
	"math"

	"github.com/Photon1c/ForagingTheoryv2/common/utils/number"
)

// Quaternion describes an agent facing direction. Agents never pitch or
// roll, so every quaternion in the system is a pure yaw about the
// vertical axis; the full form is kept so the renderer can consume it
// without conversion.
type Quaternion struct {
	x float64
	y float64
	z float64
	w float64
}

func MakeQuaternionIdentity() Quaternion {
	return Quaternion{0, 0, 0, 1}
}

// MakeQuaternionFromYaw builds a rotation of the given angle about the
// vertical axis.
func MakeQuaternionFromYaw(radians float64) Quaternion {
	half := radians / 2.0
	return Quaternion{
		x: 0,
		y: math.Sin(half),
		z: 0,
		w: math.Cos(half),
	}
}

// MakeQuaternionLookAtFlat yields the orientation facing the horizontal
// component of direction; the vertical component is ignored so the look
// target always sits at the agent's own height.
func MakeQuaternionLookAtFlat(direction Vector3) Quaternion {
	dx := direction.GetX()
	dz := direction.GetZ()

	if isZero(dx) && isZero(dz) {
		return MakeQuaternionIdentity()
	}

	// forward is +z
	return MakeQuaternionFromYaw(math.Atan2(dx, dz))
}

func (q Quaternion) Get() (float64, float64, float64, float64) {
	return q.x, q.y, q.z, q.w
}

func (q Quaternion) MarshalJSON() ([]byte, error) {
	propfmt := "%.4f"
	buffer := bytes.NewBufferString("[")
	buffer.WriteString(fmt.Sprintf(propfmt, q.x))
	buffer.WriteString(",")
	buffer.WriteString(fmt.Sprintf(propfmt, q.y))
	buffer.WriteString(",")
	buffer.WriteString(fmt.Sprintf(propfmt, q.z))
	buffer.WriteString(",")
	buffer.WriteString(fmt.Sprintf(propfmt, q.w))
	buffer.WriteString("]")
	return buffer.Bytes(), nil
}

func (q Quaternion) Dot(b Quaternion) float64 {
	return q.x*b.x + q.y*b.y + q.z*b.z + q.w*b.w
}

func (q Quaternion) Normalize() Quaternion {
	mag := math.Sqrt(q.Dot(q))
	if number.IsZero(mag) {
		return MakeQuaternionIdentity()
	}

	q.x /= mag
	q.y /= mag
	q.z /= mag
	q.w /= mag
	return q
}

// Yaw extracts the rotation angle about the vertical axis.
func (q Quaternion) Yaw() float64 {
	return 2.0 * math.Atan2(q.y, q.w)
}

func (q Quaternion) Equals(b Quaternion) bool {
	// q and -q encode the same rotation
	return number.IsZero(math.Abs(q.Dot(b)) - 1.0)
}

// Slerp interpolates a fraction t of the way toward target along the
// shortest arc. t is clamped to [0, 1].
func (q Quaternion) Slerp(target Quaternion, t float64) Quaternion {
	t = number.ClampFloat(t, 0, 1)

	cosHalfTheta := q.Dot(target)

	// take the short way around
	if cosHalfTheta < 0 {
		target = Quaternion{-target.x, -target.y, -target.z, -target.w}
		cosHalfTheta = -cosHalfTheta
	}

	if cosHalfTheta >= 1.0-number.Epsilon {
		// orientations are as good as equal; linear blend avoids a
		// zero sinHalfTheta below
		return Quaternion{
			x: q.x + (target.x-q.x)*t,
			y: q.y + (target.y-q.y)*t,
			z: q.z + (target.z-q.z)*t,
			w: q.w + (target.w-q.w)*t,
		}.Normalize()
	}

	halfTheta := math.Acos(cosHalfTheta)
	sinHalfTheta := math.Sqrt(1.0 - cosHalfTheta*cosHalfTheta)

	ratioA := math.Sin((1-t)*halfTheta) / sinHalfTheta
	ratioB := math.Sin(t*halfTheta) / sinHalfTheta

	return Quaternion{
		x: q.x*ratioA + target.x*ratioB,
		y: q.y*ratioA + target.y*ratioB,
		z: q.z*ratioA + target.z*ratioB,
		w: q.w*ratioA + target.w*ratioB,
	}.Normalize()
}

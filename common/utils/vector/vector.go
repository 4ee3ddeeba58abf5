// Package vector provides the value-semantics linear algebra used by the
// simulation core: Vector3 for world positions and velocities, Vector4 for
// hyperspace food placement, and a flat-orientation Quaternion.
package vector

import "github.com/Photon1c/ForagingTheoryv2/common/utils/number"

func isZero(f float64) bool {
	return number.IsZero(f)
}

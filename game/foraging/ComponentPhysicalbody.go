package foraging

import (
	"github.com/Photon1c/ForagingTheoryv2/common/utils/vector"
)

func (game *ForagingGame) CastPhysicalBody(data interface{}) *PhysicalBody {
	return data.(*PhysicalBody)
}

// PhysicalBody is pure data; there is no physics solver behind it. The
// step systems are the only writers.
type PhysicalBody struct {
	position    vector.Vector3
	velocity    vector.Vector3
	orientation vector.Quaternion
	radius      float64

	// vertical motion is governed by the jump ballistics, never by
	// the target-seeking velocity
	jumping          bool
	verticalVelocity float64
}

func (p PhysicalBody) GetPosition() vector.Vector3 {
	return p.position
}

func (p *PhysicalBody) SetPosition(v vector.Vector3) *PhysicalBody {
	p.position = v
	return p
}

func (p PhysicalBody) GetVelocity() vector.Vector3 {
	return p.velocity
}

func (p *PhysicalBody) SetVelocity(v vector.Vector3) *PhysicalBody {
	p.velocity = v
	return p
}

func (p PhysicalBody) GetOrientation() vector.Quaternion {
	return p.orientation
}

func (p *PhysicalBody) SetOrientation(q vector.Quaternion) *PhysicalBody {
	p.orientation = q
	return p
}

func (p PhysicalBody) GetRadius() float64 {
	return p.radius
}

func (p PhysicalBody) IsJumping() bool {
	return p.jumping
}

func (p *PhysicalBody) SetJumping(jumping bool) *PhysicalBody {
	p.jumping = jumping
	return p
}

func (p PhysicalBody) GetVerticalVelocity() float64 {
	return p.verticalVelocity
}

func (p *PhysicalBody) SetVerticalVelocity(v float64) *PhysicalBody {
	p.verticalVelocity = v
	return p
}

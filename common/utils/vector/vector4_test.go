package vector

import (
	"math"
	"testing"
)

func TestProject3DWithZeroDepthIsIdentity(t *testing.T) {
	v := MakeVector4(1.5, 0.75, -3.25, 0)

	got := v.Project3D(5)
	want := MakeVector3(1.5, 0.75, -3.25)

	if !got.Equals(want) {
		t.Fatalf("projection of w=0 changed the coordinate: got %s, want %s", got, want)
	}
}

func TestProject3DScalesByFocalOverDenominator(t *testing.T) {
	v := MakeVector4(10, 10, 10, 5)

	// scale = 5 / (5 + 5) = 0.5
	got := v.Project3D(5)
	want := MakeVector3(5, 5, 5)

	if !got.Equals(want) {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestProject3DDegenerateDenominatorFallsBackUnscaled(t *testing.T) {
	v := MakeVector4(2, 4, 6, -5)

	got := v.Project3D(5)
	want := MakeVector3(2, 4, 6)

	if !got.Equals(want) {
		t.Fatalf("degenerate denominator must return the unscaled coordinate: got %s, want %s", got, want)
	}
}

func TestProject3DNegativeDepthMagnifies(t *testing.T) {
	v := MakeVector4(4, 0, 0, -2.5)

	// scale = 5 / 2.5 = 2
	got := v.Project3D(5)

	if gx, _, _ := got.Get(); math.Abs(gx-8) > 1e-9 {
		t.Fatalf("expected x=8 after magnification, got %f", gx)
	}
}

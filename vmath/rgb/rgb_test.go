package rgb

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestAlgebra(t *testing.T) {
	got := AddCC(MulCS(T{1, 2, 3}, 2), T{1, 1, 1})
	if diff := cmp.Diff(got, T{3, 5, 7}); diff != "" {
		t.Errorf("Bad color algebra; diff (-got +want)\n%s", diff)
	}
}

func TestLerp(t *testing.T) {
	got := Lerp(T{0, 0, 0}, T{1, 2, 4}, 0.5)
	if diff := cmp.Diff(got, T{0.5, 1, 2}, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Bad midpoint; diff (-got +want)\n%s", diff)
	}
}

func TestCircularLerpWrapsAround(t *testing.T) {
	ramp := []T{{1, 0, 0}, {0, 1, 0}}

	// Halfway past the last entry blends back toward the first.
	got := CircularLerp(ramp, 1.5)
	want := T{0.5, 0.5, 0}
	if diff := cmp.Diff(got, want, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Bad wrap; diff (-got +want)\n%s", diff)
	}

	// A full cycle lands back on the same color.
	if diff := cmp.Diff(CircularLerp(ramp, 2), CircularLerp(ramp, 0), cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Period mismatch; diff\n%s", diff)
	}
}

func TestCircularLerpNegative(t *testing.T) {
	ramp := []T{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

	// Slightly negative positions (smooth escape times can dip below zero)
	// index from the end of the ramp instead of panicking.
	got := CircularLerp(ramp, -0.5)
	want := Lerp(T{0, 0, 1}, T{1, 0, 0}, 0.5)
	if diff := cmp.Diff(got, want, cmpopts.EquateApprox(0, 1e-12)); diff != "" {
		t.Errorf("Bad negative lookup; diff (-got +want)\n%s", diff)
	}
}

func TestGammaEncodeClamps(t *testing.T) {
	r, g, b := (T{-1, 0, 2}).GammaEncode()
	if r != 0 || g != 0 || b != 255 {
		t.Errorf("Bad clamping: got (%d, %d, %d), want (0, 0, 255)", r, g, b)
	}

	r, g, b = (T{1, 1, 1}).GammaEncode()
	if r != 255 || g != 255 || b != 255 {
		t.Errorf("White should quantize to (255, 255, 255), got (%d, %d, %d)", r, g, b)
	}
}

func TestGammaRoundTrip(t *testing.T) {
	got := GammaDecode((T{0.5, 0.25, 0.75}).GammaEncode())
	want := T{0.5, 0.25, 0.75}
	if diff := cmp.Diff(got, want, cmpopts.EquateApprox(0, 0.01)); diff != "" {
		t.Errorf("Round trip drifted; diff (-got +want)\n%s", diff)
	}
}

package money

import "testing"

func TestZeroIsZero(t *testing.T) {
	if !Zero.IsZero() {
		t.Fatalf("Zero.IsZero() = false")
	}
}

func TestIsNegative(t *testing.T) {
	if IsNegative(New(0)) {
		t.Errorf("IsNegative(0) = true, want false")
	}
	if IsNegative(New(1.5)) {
		t.Errorf("IsNegative(1.5) = true, want false")
	}
	if !IsNegative(New(-0.01)) {
		t.Errorf("IsNegative(-0.01) = false, want true")
	}
}

func TestFormatFixed(t *testing.T) {
	cases := map[float64]string{
		1.5:    "1.5000",
		0:      "0.0000",
		2.0001: "2.0001",
	}
	for in, want := range cases {
		if got := FormatFixed(New(in)); got != want {
			t.Errorf("FormatFixed(%v) = %q, want %q", in, got, want)
		}
	}
}

func TestSafeMaxHeadroom(t *testing.T) {
	if !SafeMax.GreaterThan(Zero) {
		t.Fatalf("SafeMax must be positive")
	}
	// Adding a cent of headroom should still be comparable without panic.
	sum := SafeMax.Add(New(0.01))
	if !sum.GreaterThan(SafeMax) {
		t.Errorf("SafeMax + 0.01 did not increase")
	}
}

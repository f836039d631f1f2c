package primecount

import (
	"math/rand"
	"testing"

	"github.com/pmath/primecount/imath"
)

// The tuning factors size y and z; they must never change the result.

func TestAlphaYTuningInvariance(t *testing.T) {
	defer SetAlphaY(0)
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 20; i++ {
		x := rng.Int63n(900) + 100
		want, err := PiCache(x)
		if err != nil {
			t.Fatal(err)
		}
		maxAlpha := imath.Iroot(6, x)
		for alphaY := int64(1); alphaY <= maxAlpha; alphaY++ {
			SetAlphaY(float64(alphaY))
			got, err := PiGourdon64(x, 2)
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Fatalf("pi_gourdon_64(%d) = %d with alpha_y = %d, want %d",
					x, got, alphaY, want)
			}
		}
	}
}

func TestAlphaYTuningInvarianceMedium(t *testing.T) {
	defer SetAlphaY(0)
	rng := rand.New(rand.NewSource(11))

	for i := 0; i < 5; i++ {
		x := rng.Int63n(999000) + 1000
		want, err := PiMeissel(x, 2)
		if err != nil {
			t.Fatal(err)
		}
		maxAlpha := imath.Iroot(6, x)
		for alphaY := int64(1); alphaY <= maxAlpha; alphaY++ {
			SetAlphaY(float64(alphaY))
			got, err := PiGourdon64(x, 2)
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Fatalf("pi_gourdon_64(%d) = %d with alpha_y = %d, want %d",
					x, got, alphaY, want)
			}
		}
	}
}

func TestAlphaZTuningInvariance(t *testing.T) {
	defer SetAlphaZ(0)
	for _, x := range []int64{1000, 54321, 1000000} {
		want, err := PiCache(x)
		if err != nil {
			t.Fatal(err)
		}
		for _, alphaZ := range []float64{1, 1.5, 3, 10, 100} {
			SetAlphaZ(alphaZ)
			got, err := PiGourdon64(x, 2)
			if err != nil {
				t.Fatal(err)
			}
			if got != want {
				t.Fatalf("pi_gourdon_64(%d) = %d with alpha_z = %v, want %d",
					x, got, alphaZ, want)
			}
		}
	}
}

func TestAlphaLmoInvariance(t *testing.T) {
	defer SetAlpha(0)
	for _, alpha := range []float64{1, 2, 5, 50, 300} {
		SetAlpha(alpha)
		got, err := PiLmo(100000, 2)
		if err != nil {
			t.Fatal(err)
		}
		if got != 9592 {
			t.Fatalf("pi_lmo(10^5) = %d with alpha = %v, want 9592", got, alpha)
		}
	}
}

func TestGetAlphaEnvelope(t *testing.T) {
	for _, x := range []int64{10, 1000, 1 << 40, 1 << 62} {
		a := getAlpha(x, 1e15, 2, 300)
		if a < 2 || a > 300 {
			t.Fatalf("alpha(%d) = %v outside [2, 300]", x, a)
		}
	}
	// Monotone growth in x.
	small := getAlpha(1<<30, 1e15, 2, 300)
	large := getAlpha(1<<62, 1e15, 2, 300)
	if large < small {
		t.Fatalf("alpha not monotone: %v then %v", small, large)
	}
}

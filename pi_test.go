package primecount

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/pmath/primecount/imath"
)

func TestPiSmallExhaustive(t *testing.T) {
	// Every algorithm must agree with the lookup table on every small x.
	for x := int64(0); x <= 1500; x++ {
		want, err := PiCache(x)
		assert.NoError(t, err)

		got, err := PiLegendre(x)
		assert.NoError(t, err)
		assert.Equal(t, want, got, "pi_legendre(%d)", x)

		got, err = PiMeissel(x, 2)
		assert.NoError(t, err)
		assert.Equal(t, want, got, "pi_meissel(%d)", x)

		got, err = PiLehmer(x)
		assert.NoError(t, err)
		assert.Equal(t, want, got, "pi_lehmer(%d)", x)

		got, err = PiLmoSimple(x)
		assert.NoError(t, err)
		assert.Equal(t, want, got, "pi_lmo_simple(%d)", x)

		got, err = PiLmo(x, 2)
		assert.NoError(t, err)
		assert.Equal(t, want, got, "pi_lmo(%d)", x)

		got, err = PiGourdon64(x, 2)
		assert.NoError(t, err)
		assert.Equal(t, want, got, "pi_gourdon_64(%d)", x)
	}
}

func TestPiRandomCrossCheck(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 40; i++ {
		x := rng.Int63n(100000) + 2
		want, err := PiCache(x)
		assert.NoError(t, err)

		for name, fn := range map[string]func() (int64, error){
			"pi_legendre":   func() (int64, error) { return PiLegendre(x) },
			"pi_meissel":    func() (int64, error) { return PiMeissel(x, 3) },
			"pi_lehmer":     func() (int64, error) { return PiLehmer(x) },
			"pi_lmo_simple": func() (int64, error) { return PiLmoSimple(x) },
			"pi_lmo":        func() (int64, error) { return PiLmo(x, 3) },
			"pi_gourdon":    func() (int64, error) { return PiGourdon64(x, 3) },
		} {
			got, err := fn()
			assert.NoError(t, err, name)
			assert.Equal(t, want, got, "%s(%d)", name, x)
		}
	}
}

func TestPiKnownValues(t *testing.T) {
	cases := []struct {
		x    int64
		want int64
	}{
		{10, 4},
		{100, 25},
		{1000, 168},
		{10000, 1229},
		{100000, 9592},
		{1000000, 78498},
		{10000000, 664579},
	}
	for _, tc := range cases {
		got, err := PiLmo(tc.x, 4)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, got, "pi_lmo(%d)", tc.x)

		got, err = PiGourdon64(tc.x, 4)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, got, "pi_gourdon_64(%d)", tc.x)

		got, err = Pi(tc.x)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, got, "pi(%d)", tc.x)
	}
}

func TestPiInvalidArgument(t *testing.T) {
	_, err := Pi(-1)
	assert.Error(t, err)
	_, err = PiLmo(-5, 2)
	assert.Error(t, err)
	_, err = PiGourdon64(-1, 2)
	assert.Error(t, err)
	_, err = PiCache(-1)
	assert.Error(t, err)
	_, err = NthPrime(0)
	assert.Error(t, err)
	_, err = Phi(-1, 0)
	assert.Error(t, err)
	_, err = Phi(10, -1)
	assert.Error(t, err)
}

func TestPi128(t *testing.T) {
	got, err := Pi128(imath.Int128FromInt64(1000000))
	assert.NoError(t, err)
	assert.Equal(t, 0, got.CmpInt64(78498))

	// Negative input.
	_, err = Pi128(imath.Int128FromInt64(-1))
	assert.Error(t, err)

	// Out of the supported range.
	_, err = PiGourdon128(imath.Int128{Hi: 1 << 40, Lo: 0}, 2)
	assert.Error(t, err)
}

func TestPiGourdon128MatchesPiGourdon64(t *testing.T) {
	for _, x := range []int64{100, 10000, 1000000} {
		want, err := PiGourdon64(x, 2)
		assert.NoError(t, err)
		got, err := PiGourdon128(imath.Int128FromInt64(x), 2)
		assert.NoError(t, err)
		assert.Equal(t, 0, got.CmpInt64(want), "x=%d", x)
	}
}

func TestPiParallelDeterminism(t *testing.T) {
	// Fixed thread count: bit-identical results across runs.
	a, err := PiLmo(10000000, 4)
	assert.NoError(t, err)
	b, err := PiLmo(10000000, 4)
	assert.NoError(t, err)
	assert.Equal(t, a, b)

	// Integer addition is associative: the total is identical across
	// worker counts too.
	c, err := PiLmo(10000000, 1)
	assert.NoError(t, err)
	assert.Equal(t, a, c)

	d1, err := PiGourdon64(10000000, 4)
	assert.NoError(t, err)
	d2, err := PiGourdon64(10000000, 2)
	assert.NoError(t, err)
	assert.Equal(t, d1, d2)
	assert.Equal(t, a, d1)
}

func TestCountPrimes(t *testing.T) {
	assert.Equal(t, int64(0), CountPrimes(1))
	assert.Equal(t, int64(1), CountPrimes(2))
	assert.Equal(t, int64(25), CountPrimes(100))
	assert.Equal(t, int64(9592), CountPrimes(100000))
}

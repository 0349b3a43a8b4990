package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	cases := map[float64]float64{
		0:        0,
		1.004:    1,
		1.005001: 1.01,
		-2.3451:  -2.35,
		156.2499: 156.25,
		0.625:    0.62,
		0.375:    0.38,
	}
	for in, want := range cases {
		assert.Equal(t, want, Round2(in), "Round2(%v)", in)
	}
}

func TestRound2_LargeAndNonFinite(t *testing.T) {
	assert.Equal(t, 1e307, Round2(1e307))
	assert.Equal(t, math.MaxFloat64, Round2(math.MaxFloat64))
	assert.True(t, math.IsInf(Round2(math.Inf(1)), 1))
	assert.True(t, math.IsNaN(Round2(math.NaN())))
}

func TestDecimal2(t *testing.T) {
	assert.Equal(t, "707.11", Decimal2(707.1067811865476))
	assert.Equal(t, "10.00", Decimal2(10))
	assert.Equal(t, "0.62", Decimal2(0.625))
	assert.Equal(t, "1.67", Decimal2(5.0/3))
}

func TestCurrency_GroupsThousands(t *testing.T) {
	assert.Equal(t, "Rp 25,000.00", Currency("Rp", 25000))
	assert.Equal(t, "Rp 1,234,567.89", Currency(" Rp ", 1234567.891))
	assert.Equal(t, "999.50", Currency("", 999.5))
}

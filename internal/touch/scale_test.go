package touch

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScale_Midpoint(t *testing.T) {
	// 2048 out of 0..4095 lands at half of a 480-wide screen, within
	// integer truncation.
	got := Scale(2048, 0, 4095, 480)
	assert.InDelta(t, 240, got, 1)
}

func TestScale_Endpoints(t *testing.T) {
	assert.Equal(t, 0, Scale(0, 0, 4095, 480))
	assert.Equal(t, 480, Scale(4095, 0, 4095, 480))
}

func TestScale_NonZeroMinimum(t *testing.T) {
	assert.Equal(t, 0, Scale(100, 100, 1100, 800))
	assert.Equal(t, 400, Scale(600, 100, 1100, 800))
	assert.Equal(t, 800, Scale(1100, 100, 1100, 800))
}

func TestScale_DegenerateRangeReturnsZero(t *testing.T) {
	for _, raw := range []int32{-100, 0, 1, 4095} {
		assert.Equal(t, 0, Scale(raw, 0, 0, 480), "raw=%d", raw)
		assert.Equal(t, 0, Scale(raw, 7, 7, 800), "raw=%d", raw)
	}
}

func TestScale_LargeValuesDoNotOverflow(t *testing.T) {
	got := Scale(2147483647, 0, 2147483647, 480)
	assert.Equal(t, 480, got)
}

func TestScaleFixed(t *testing.T) {
	assert.Equal(t, 240, ScaleFixed(2048, 480))
	assert.Equal(t, 400, ScaleFixed(2048, 800))
	assert.Equal(t, 0, ScaleFixed(0, 480))
	// 4095 is the last raw value inside the 12-bit range.
	assert.Equal(t, 479, ScaleFixed(4095, 480))
}

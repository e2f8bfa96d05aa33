package takeoff

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculate(t *testing.T) {
	t.Run("zero inputs yield a zero record", func(t *testing.T) {
		v := Calculate(0, 0, 0, 0)

		assert.Equal(t, Volumes{}, v)
	})

	t.Run("worked example", func(t *testing.T) {
		v := Calculate(50, 32, 50, 200)

		assert.Equal(t, 0.62, v.SidewalkCY)
		assert.Equal(t, 0.59, v.ApronCY)
		assert.Equal(t, 0.46, v.CurbCY)
		assert.Equal(t, 3.70, v.DrivewayCY)
		assert.Equal(t, 282.00, v.TotalSF)
		// total is the rounded sum of the unrounded category volumes:
		// 0.61667 + 0.59259 + 0.46296 + 3.70370 = 5.37593
		assert.Equal(t, 5.38, v.TotalCY)
	})

	t.Run("fields follow the documented formulas", func(t *testing.T) {
		const a, b, c, d = 123.4, 56.7, 89.0, 12.3

		v := Calculate(a, b, c, d)

		assert.InDelta(t, a*0.333/27, v.SidewalkCY, 0.005)
		assert.InDelta(t, b*0.5/27, v.ApronCY, 0.005)
		assert.InDelta(t, c*0.5*0.5/27, v.CurbCY, 0.005)
		assert.InDelta(t, d*0.5/27, v.DrivewayCY, 0.005)
		assert.Equal(t, math.Round((a+b+d)*100)/100, v.TotalSF)
	})

	t.Run("outputs are non-negative for non-negative inputs", func(t *testing.T) {
		for _, in := range [][4]float64{
			{0, 0, 0, 0},
			{0.01, 0, 0, 0},
			{1000, 2000, 3000, 4000},
			{1e6, 0, 1e6, 0},
		} {
			v := Calculate(in[0], in[1], in[2], in[3])
			assert.GreaterOrEqual(t, v.SidewalkCY, 0.0)
			assert.GreaterOrEqual(t, v.ApronCY, 0.0)
			assert.GreaterOrEqual(t, v.CurbCY, 0.0)
			assert.GreaterOrEqual(t, v.DrivewayCY, 0.0)
			assert.GreaterOrEqual(t, v.TotalSF, 0.0)
			assert.GreaterOrEqual(t, v.TotalCY, 0.0)
		}
	})

	t.Run("identical inputs yield identical outputs", func(t *testing.T) {
		first := Calculate(50, 32, 50, 200)
		second := Calculate(50, 32, 50, 200)

		assert.Equal(t, first, second)
	})
}

func TestExtractThenCalculate(t *testing.T) {
	text := "123 MAIN STREET BLOCK 45 LOT 12 10x5 SIDEWALK APRON 8x4 CURB 50 DRIVEWAY 20x10"

	m := Extract(text)
	v := Calculate(m.SidewalkSF, m.ApronSF, m.CurbLF, m.DrivewaySF)

	assert.Equal(t, 0.62, v.SidewalkCY)
	assert.Equal(t, 0.59, v.ApronCY)
	assert.Equal(t, 0.46, v.CurbCY)
	assert.Equal(t, 3.70, v.DrivewayCY)
	assert.Equal(t, 282.00, v.TotalSF)
	assert.Equal(t, 5.38, v.TotalCY)
}

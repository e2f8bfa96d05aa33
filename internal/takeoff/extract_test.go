package takeoff

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	t.Run("extracts all fields from a typical plot plan", func(t *testing.T) {
		text := `SITE PLAN
123 MAIN STREET
BLOCK 45 LOT 12
PROPOSED 10x5 SIDEWALK
APRON 8x4
CURB 50
DRIVEWAY 20x10`

		m := Extract(text)

		assert.Equal(t, "123 MAIN STREET", m.Address)
		assert.Equal(t, "45", m.Block)
		assert.Equal(t, "12", m.Lot)
		assert.Equal(t, 50.0, m.SidewalkSF)
		assert.Equal(t, 32.0, m.ApronSF)
		assert.Equal(t, 50.0, m.CurbLF)
		assert.Equal(t, 200.0, m.DrivewaySF)
	})

	t.Run("returns zero values when no labels are present", func(t *testing.T) {
		m := Extract("general notes: grading and drainage to remain unchanged")

		assert.Equal(t, Measurement{}, m)
	})

	t.Run("matches lowercase labels via the uppercased copy", func(t *testing.T) {
		text := "block 7 lot 3.5 apron 10 x 4.5 d-curb 22.5 driveway 12x8 and a 4x50 walk"

		m := Extract(text)

		assert.Equal(t, "7", m.Block)
		assert.Equal(t, "3.5", m.Lot)
		assert.Equal(t, 45.0, m.ApronSF)
		assert.Equal(t, 22.5, m.CurbLF)
		assert.Equal(t, 96.0, m.DrivewaySF)
		assert.Equal(t, 200.0, m.SidewalkSF)
	})

	t.Run("address match is case-preserving", func(t *testing.T) {
		// lowercase street names are not recognized, by design
		m := Extract("456 oak avenue, block 1")
		assert.Equal(t, "", m.Address)
		assert.Equal(t, "1", m.Block)

		m = Extract("456 OAK AVENUE")
		assert.Equal(t, "456 OAK AVENUE", m.Address)
	})

	t.Run("handles decimal dimensions and the multiplication sign", func(t *testing.T) {
		m := Extract("6.5×10 SIDEWALK, APRON 8×4")

		assert.Equal(t, 65.0, m.SidewalkSF)
		assert.Equal(t, 32.0, m.ApronSF)
	})

	t.Run("WALK alone labels a sidewalk dimension pair", func(t *testing.T) {
		m := Extract("NEW 4x25 WALK ALONG FRONTAGE")

		assert.Equal(t, 100.0, m.SidewalkSF)
	})

	t.Run("first occurrence wins, later ones are never summed", func(t *testing.T) {
		text := `5x5 SIDEWALK
100x100 SIDEWALK
APRON 2x3
APRON 50x50
CURB 10
CURB 900`

		m := Extract(text)

		assert.Equal(t, 25.0, m.SidewalkSF)
		assert.Equal(t, 6.0, m.ApronSF)
		assert.Equal(t, 10.0, m.CurbLF)
	})

	t.Run("curb captures a single length, not a dimension pair", func(t *testing.T) {
		m := Extract("D-CURB: 37.5 LF")

		assert.Equal(t, 37.5, m.CurbLF)
		assert.Equal(t, 0.0, m.SidewalkSF)
	})

	t.Run("block and lot are kept as verbatim text", func(t *testing.T) {
		m := Extract("BLOCK 1203.01 LOT 4")

		assert.Equal(t, "1203.01", m.Block)
		assert.Equal(t, "4", m.Lot)
	})
}

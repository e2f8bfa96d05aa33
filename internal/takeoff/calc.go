package takeoff

import (
	"math"

	"github.com/plotplan/takeoff-tracker/constants"
)

// Calculate converts the four raw quantities into concrete volumes using the
// nominal depth coefficients from the constants package. Inputs are square
// feet (curb: linear feet); outputs are cubic yards. Totals are computed from
// unrounded intermediates; rounding to 2 decimals happens once per field at
// return.
func Calculate(sidewalkSF, apronSF, curbLF, drivewaySF float64) Volumes {
	sidewalkCY := sidewalkSF * constants.SidewalkDepthFt / constants.CubicFeetPerCubicYard
	apronCY := apronSF * constants.ApronDepthFt / constants.CubicFeetPerCubicYard
	curbCY := curbLF * constants.CurbWidthFt * constants.CurbDepthFt / constants.CubicFeetPerCubicYard
	drivewayCY := drivewaySF * constants.DrivewayDepthFt / constants.CubicFeetPerCubicYard

	return Volumes{
		SidewalkCY: round2(sidewalkCY),
		ApronCY:    round2(apronCY),
		CurbCY:     round2(curbCY),
		DrivewayCY: round2(drivewayCY),
		TotalSF:    round2(sidewalkSF + apronSF + drivewaySF),
		TotalCY:    round2(sidewalkCY + apronCY + curbCY + drivewayCY),
	}
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

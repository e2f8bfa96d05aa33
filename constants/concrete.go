package constants

// Nominal depths for poured concrete, in feet. Stable values: the volume
// formulas and every saved total_cy depend on these exact coefficients.
const (
	// SidewalkDepthFt is the 4-inch nominal slab depth.
	SidewalkDepthFt = 0.333
	// ApronDepthFt is the 6-inch nominal depth.
	ApronDepthFt = 0.5
	// DrivewayDepthFt is the 6-inch nominal depth.
	DrivewayDepthFt = 0.5
	// CurbDepthFt and CurbWidthFt model curb as a 6"x6" cross-section strip.
	CurbDepthFt = 0.5
	CurbWidthFt = 0.5
)

// CubicFeetPerCubicYard converts cubic feet to cubic yards.
const CubicFeetPerCubicYard = 27.0

// Package takeoff extracts concrete quantities from plot-plan text and
// converts them into poured volumes. Both operations are pure: Extract never
// fails on well-formed text (unmatched labels yield zero values) and
// Calculate is a total function of its four inputs.
package takeoff

// Measurement holds the quantities read off a single plot plan.
// Block and lot are identifiers, kept verbatim as text.
type Measurement struct {
	Address    string  `json:"address"`
	Block      string  `json:"block"`
	Lot        string  `json:"lot"`
	SidewalkSF float64 `json:"sidewalk_sf"`
	ApronSF    float64 `json:"apron_sf"`
	CurbLF     float64 `json:"curb_lf"`
	DrivewaySF float64 `json:"driveway_sf"`
}

// Volumes holds per-category and aggregate concrete volumes in cubic yards,
// each rounded to 2 decimal places. TotalSF excludes curb, which is linear.
type Volumes struct {
	SidewalkCY float64 `json:"sidewalk_cy"`
	ApronCY    float64 `json:"apron_cy"`
	CurbCY     float64 `json:"curb_cy"`
	DrivewayCY float64 `json:"driveway_cy"`
	TotalSF    float64 `json:"total_sf"`
	TotalCY    float64 `json:"total_cy"`
}

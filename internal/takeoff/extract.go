package takeoff

import (
	"regexp"
	"strconv"
	"strings"
)

// Extraction patterns. The address search runs against the original text so
// the captured address keeps its casing; every other search runs against an
// uppercased copy, so the literals only need to be written once.
var (
	reAddress  = regexp.MustCompile(`(\d+\s+[A-Z]+\s+(?:AVENUE|AVE|STREET|ST|ROAD|RD|DRIVE|DR))`)
	reBlock    = regexp.MustCompile(`BLOCK\s*(\d+(?:\.\d+)?)`)
	reLot      = regexp.MustCompile(`LOT\s*(\d+(?:\.\d+)?)`)
	reSidewalk = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*[xX×]\s*(\d+(?:\.\d+)?)\s*(?:SIDEWALK|WALK)`)
	reApron    = regexp.MustCompile(`(?:APRON)[^0-9]*(\d+(?:\.\d+)?)\s*[xX×]\s*(\d+(?:\.\d+)?)`)
	reCurb     = regexp.MustCompile(`(?:CURB|D-CURB)[^0-9]*(\d+(?:\.\d+)?)`)
	reDriveway = regexp.MustCompile(`(?:DRIVEWAY)[^0-9]*(\d+(?:\.\d+)?)\s*[xX×]\s*(\d+(?:\.\d+)?)`)
)

// Extract scans decoded plot-plan text for the labeled quantities and returns
// a Measurement. Every rule takes the first match scanning top to bottom;
// repeated occurrences of the same label are ignored, never summed. A label
// with no match leaves its field at the zero value.
func Extract(text string) Measurement {
	var m Measurement
	upper := strings.ToUpper(text)

	if match := reAddress.FindStringSubmatch(text); match != nil {
		m.Address = match[1]
	}
	if match := reBlock.FindStringSubmatch(upper); match != nil {
		m.Block = match[1]
	}
	if match := reLot.FindStringSubmatch(upper); match != nil {
		m.Lot = match[1]
	}
	if match := reSidewalk.FindStringSubmatch(upper); match != nil {
		m.SidewalkSF = parseDim(match[1]) * parseDim(match[2])
	}
	if match := reApron.FindStringSubmatch(upper); match != nil {
		m.ApronSF = parseDim(match[1]) * parseDim(match[2])
	}
	if match := reCurb.FindStringSubmatch(upper); match != nil {
		m.CurbLF = parseDim(match[1])
	}
	if match := reDriveway.FindStringSubmatch(upper); match != nil {
		m.DrivewaySF = parseDim(match[1]) * parseDim(match[2])
	}

	return m
}

// parseDim parses a captured dimension. The character class of the patterns
// guarantees a well-formed float, so the error is structurally impossible.
func parseDim(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

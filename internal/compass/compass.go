// Package compass converts between compass bearings in degrees and the 16
// cardinal/intercardinal sectors used by directional preferences. All degree
// handling lives here; the rest of the codebase deals in sectors or raw
// angular distances only.
package compass

import (
	"math"
	"strings"
)

// Sector is one of the 16 compass sectors, or Unknown when no bearing is
// available. Unknown must be treated as "no directional signal" by consumers,
// never as a mismatch.
type Sector string

const (
	SectorUnknown Sector = ""
	SectorN       Sector = "N"
	SectorNNE     Sector = "NNE"
	SectorNE      Sector = "NE"
	SectorENE     Sector = "ENE"
	SectorE       Sector = "E"
	SectorESE     Sector = "ESE"
	SectorSE      Sector = "SE"
	SectorSSE     Sector = "SSE"
	SectorS       Sector = "S"
	SectorSSW     Sector = "SSW"
	SectorSW      Sector = "SW"
	SectorWSW     Sector = "WSW"
	SectorW       Sector = "W"
	SectorWNW     Sector = "WNW"
	SectorNW      Sector = "NW"
	SectorNNW     Sector = "NNW"
)

// sectors in clockwise order starting at north; each spans 22.5 degrees.
var sectors = [16]Sector{
	SectorN, SectorNNE, SectorNE, SectorENE,
	SectorE, SectorESE, SectorSE, SectorSSE,
	SectorS, SectorSSW, SectorSW, SectorWSW,
	SectorW, SectorWNW, SectorNW, SectorNNW,
}

const sectorWidth = 360.0 / 16

// FromDegrees maps a bearing to its sector. Values outside [0,360) are
// normalized first, so -45 and 315 both map to NW. A nil input yields
// SectorUnknown.
func FromDegrees(degrees *float64) Sector {
	if degrees == nil {
		return SectorUnknown
	}
	d := Normalize(*degrees)
	// Shift by half a sector so that N covers [348.75, 360) and [0, 11.25).
	idx := int(math.Floor((d+sectorWidth/2)/sectorWidth)) % 16
	return sectors[idx]
}

// Degrees returns the center bearing of a sector, or -1 for SectorUnknown.
func (s Sector) Degrees() float64 {
	for i, sec := range sectors {
		if sec == s {
			return float64(i) * sectorWidth
		}
	}
	return -1
}

// ParseSector parses a sector name such as "S" or "ssw". Unrecognized input
// yields SectorUnknown.
func ParseSector(raw string) Sector {
	name := strings.ToUpper(strings.TrimSpace(raw))
	for _, sec := range sectors {
		if string(sec) == name {
			return sec
		}
	}
	return SectorUnknown
}

// ParseSectorList parses a comma-separated list of sector names, dropping
// anything unrecognized. This is the storage format for directional
// preferences.
func ParseSectorList(raw string) []Sector {
	var out []Sector
	for _, part := range strings.Split(raw, ",") {
		if sec := ParseSector(part); sec != SectorUnknown {
			out = append(out, sec)
		}
	}
	return out
}

// FormatSectorList renders sectors back to the comma-separated storage format.
func FormatSectorList(secs []Sector) string {
	parts := make([]string, 0, len(secs))
	for _, sec := range secs {
		if sec != SectorUnknown {
			parts = append(parts, string(sec))
		}
	}
	return strings.Join(parts, ",")
}

// Normalize maps an arbitrary bearing into [0,360).
func Normalize(degrees float64) float64 {
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}
	return d
}

// AngularDistance returns the minimal circular distance between two bearings,
// in [0,180] degrees.
func AngularDistance(a, b float64) float64 {
	d := math.Abs(Normalize(a) - Normalize(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

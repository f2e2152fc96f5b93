package css

import (
	"github.com/npillmayer/tyse/core/dimen"
)

// Points per unit for absolute units. CSS fixes 1in = 96px = 72pt.
var ptPerUnit = map[Unit]float64{
	PX: 0.75,
	PT: 1,
	PC: 12,
	IN: 72,
	CM: 72 / 2.54,
	MM: 72 / 25.4,
}

// ToPt converts a length to points. Font-relative units are resolved
// against fontSize (in points); 1ex is taken as half an em. The unitless
// number 0 is a valid length. Returns false for everything else.
func (v Value) ToPt(fontSize float64) (float64, bool) {
	switch v.kind {
	case NumberKind:
		if v.num == 0 {
			return 0, true
		}
		return 0, false
	case DimensionKind:
		switch v.unit {
		case EM:
			return v.num * fontSize, true
		case EX:
			return v.num * fontSize / 2, true
		}
		if f, ok := ptPerUnit[v.unit]; ok {
			return v.num * f, true
		}
	}
	return 0, false
}

// ToDU converts a length to design units of the typesetting core.
func (v Value) ToDU(fontSize float64) (dimen.DU, bool) {
	pt, ok := v.ToPt(fontSize)
	if !ok {
		return 0, false
	}
	return PtToDU(pt), true
}

// PtToDU converts points to scaled design units.
func PtToDU(pt float64) dimen.DU {
	return dimen.DU(pt * float64(dimen.PT))
}

// DUToPt converts scaled design units to points.
func DUToPt(d dimen.DU) float64 {
	return float64(d) / float64(dimen.PT)
}

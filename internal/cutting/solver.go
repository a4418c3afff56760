package cutting

import "math"

// Spindle is the outcome of the speed step: derate first, machine limit second.
type Spindle struct {
	Raw         float64
	Factor      float64
	Final       float64
	Capped      bool
	RequestedVc float64
	ActualVc    float64
}

// SpindleSpeed computes n = Vc*1000/(pi*D), multiplies it by derate and then
// clamps it to maxRPM when maxRPM > 0. When the clamp binds, ActualVc is the
// cutting speed achieved at maxRPM. A derate <= 0 counts as no derating.
func SpindleSpeed(vc, diameter, derate, maxRPM float64) Spindle {
	if !(derate > 0) {
		derate = 1.0
	}

	raw := (vc * 1000) / (math.Pi * diameter)
	s := Spindle{
		Raw:         raw,
		Factor:      derate,
		Final:       raw * derate,
		RequestedVc: vc,
		ActualVc:    vc,
	}

	if maxRPM > 0 && s.Final > maxRPM {
		s.Final = maxRPM
		s.Capped = true
		s.ActualVc = (maxRPM * math.Pi * diameter) / 1000
	}
	return s
}

// FeedRate returns Vf = round(n * fz * z) in mm/min.
func FeedRate(n, fz float64, teeth int) int {
	return int(math.Round(n * fz * float64(teeth)))
}

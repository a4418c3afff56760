package cutting

import (
	"fmt"
	"math"
)

const degToRad = math.Pi / 180

// EffectiveDiameter returns the working diameter of an angled tool at axial
// depth ap. angle is the included angle in degrees, in (0, 90]. At exactly 90
// degrees the tool is treated as square: D_eff = tip + 2*ap.
func EffectiveDiameter(tipDiameter, angleDeg, axialDepth float64) (float64, error) {
	if err := mustBePositive("tip_diameter", tipDiameter); err != nil {
		return 0, err
	}
	if !(angleDeg > 0 && angleDeg <= 90) {
		return 0, &InputError{Field: "angle", Reason: "must be in (0, 90] degrees"}
	}
	if math.IsNaN(axialDepth) || axialDepth < 0 {
		return 0, &InputError{Field: "ap", Reason: "must not be negative"}
	}

	if angleDeg == 90 {
		return tipDiameter + 2*axialDepth, nil
	}
	return tipDiameter + axialDepth*math.Tan(angleDeg*degToRad), nil
}

// DepthReduction configures the depth-of-cut feed reduction.
type DepthReduction struct {
	Threshold    float64
	Rate         float64
	MaxReduction float64
}

// DefaultDepthReduction reduces feed by 5% per mm beyond 1 mm, at most 20%.
var DefaultDepthReduction = DepthReduction{Threshold: 1.0, Rate: 0.05, MaxReduction: 0.20}

// Factor returns 1 - min(rate*max(0, ap-threshold), maxReduction).
func (r DepthReduction) Factor(axialDepth float64) float64 {
	if axialDepth <= r.Threshold {
		return 1.0
	}
	reduction := math.Min(r.Rate*(axialDepth-r.Threshold), r.MaxReduction)
	return 1.0 - reduction
}

// DepthReductionFactor applies DefaultDepthReduction.
func DepthReductionFactor(axialDepth float64) float64 {
	return DefaultDepthReduction.Factor(axialDepth)
}

// LeadAngleThinning corrects fz for a known lead angle kappa (degrees):
// fz = fz_base / sin(kappa). kappa must be in (0, 90].
func LeadAngleThinning(baseFeed, kappaDeg float64) (float64, error) {
	if !(kappaDeg > 0 && kappaDeg <= 90) {
		return 0, &InputError{Field: "kappa", Reason: "must be in (0, 90] degrees"}
	}
	return baseFeed / math.Sin(kappaDeg*degToRad), nil
}

// RoundInsertThinning corrects fz for a round insert of radius R at axial
// depth ap. Thinning only applies while ap <= R.
func RoundInsertThinning(baseFeed, radius, axialDepth float64) (float64, []Warning) {
	if !(radius > 0) || !(axialDepth > 0) {
		return baseFeed, []Warning{{
			Code:    WarnRadiusMissing,
			Message: "insert radius and ap are required for chip thinning; base feed used",
		}}
	}
	if axialDepth > radius {
		return baseFeed, []Warning{{
			Code:    WarnAxialBeyondRadius,
			Message: "ap > R: no chip thinning, consider a lower ap",
		}}
	}

	ratio := axialDepth / radius
	sinKappa := math.Sqrt(ratio * (2 - ratio))

	var ws []Warning
	if ratio > 0.5 {
		ws = append(ws, Warning{
			Code:    WarnRadiusRatio,
			Message: "ap > 50% of R: reduced chip thinning efficiency (recommended ap 0.4-0.5 x R)",
		})
	}
	return baseFeed / sinKappa, ws
}

// radialGate disables radial chip thinning above half-diameter engagement.
func radialGate(aePercent float64) []Warning {
	if aePercent > 50 {
		return []Warning{{
			Code:    WarnRadialEngagement,
			Message: fmt.Sprintf("stepover ae %.4g%% > 50%%: chip thinning correction disabled", aePercent),
		}}
	}
	return nil
}

// minRadialEngagement guards sqrt(D/ae) against a zero stepover.
const minRadialEngagement = 1e-6

// RadialThinning applies the classic chip thinning approximation
// fz = fz_base * sqrt(D/ae) for a stepover given in percent of D.
func RadialThinning(baseFeed, diameter, aePercent float64) (float64, []Warning) {
	if ws := radialGate(aePercent); ws != nil {
		return baseFeed, ws
	}

	aeRaw := diameter * aePercent / 100
	if !(aeRaw > 0 && aeRaw < diameter) {
		return baseFeed, nil
	}
	ae := math.Max(aeRaw, minRadialEngagement)
	return baseFeed * math.Sqrt(diameter/ae), nil
}

// CornerRadiusThinning is the radial model for a cutting edge with corner
// radius R. When the geometric denominator is not positive the feed is
// doubled as a conservative fallback. A non-positive stepover or diameter
// leaves the feed unchanged.
func CornerRadiusThinning(baseFeed, diameter, aePercent, cornerRadius float64) (float64, []Warning) {
	if ws := radialGate(aePercent); ws != nil {
		return baseFeed, ws
	}
	if !(aePercent > 0) || !(diameter > 0) {
		return baseFeed, nil
	}

	aeMM := diameter * aePercent / 100
	ratio := aePercent / 100

	numerator := math.Sqrt(aeMM * (diameter - aeMM))
	denominator := diameter/2 + cornerRadius*(ratio-1)
	if denominator <= 0 || numerator <= 0 {
		return baseFeed * 2, []Warning{{
			Code:    WarnCornerRadius,
			Message: "corner radius too large for this engagement: fallback feed 2 x fz used",
		}}
	}
	return baseFeed / (numerator / denominator), nil
}

// OverhangRPMFactor derates spindle speed for slender tools. Up to L/D = 3
// there is no derating; beyond that the factor decays with (3/ratio)^1.5 and
// is clamped to [0.2, 1.0].
func OverhangRPMFactor(overhang, diameter float64) float64 {
	if !(overhang > 0) || !(diameter > 0) {
		return 1.0
	}
	ratio := overhang / diameter
	if ratio <= 3 {
		return 1.0
	}
	factor := math.Pow(1/ratio, 1.5) * math.Pow(3, 1.5)
	return clamp(factor, 0.2, 1.0)
}

// AxialDepthThresholdRatio is the share of D beyond which AxialDepthFactor
// starts to reduce feed.
const AxialDepthThresholdRatio = 0.15

// AxialDepthFactor reduces fz once ap exceeds 0.15*D:
// clamp(1/(1+0.5*(ap/threshold-1)), 0.3, 1.0).
func AxialDepthFactor(axialDepth, diameter float64) float64 {
	threshold := diameter * AxialDepthThresholdRatio
	if !(axialDepth > 0) || !(threshold > 0) || axialDepth <= threshold {
		return 1.0
	}
	f := 1.0 / (1.0 + 0.5*(axialDepth/threshold-1))
	return clamp(f, 0.3, 1.0)
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

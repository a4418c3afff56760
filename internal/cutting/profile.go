package cutting

import (
	"fmt"
	"math"
)

// Params is the per-call parameter set handed to a Profile. Diameter is the
// working diameter: the nominal tool diameter or an EffectiveDiameter result.
type Params struct {
	Diameter      float64
	CuttingSpeed  float64
	BaseFeed      float64
	Teeth         int
	MaxRPM        float64
	AxialDepth    float64
	RadialPercent float64
	Overhang      float64
	LeadAngle     float64
	CornerRadius  float64
}

// Correction adjusts the feed per tooth. Corrections run in the order a
// Profile lists them, each receiving the output of the previous one.
type Correction struct {
	Name  string
	Apply func(p Params, fz float64) (float64, []Warning, error)
}

// Adjustment records the factor a correction applied (out/in).
type Adjustment struct {
	Name   string  `json:"name"`
	Factor float64 `json:"factor"`
}

// Profile binds a correction chain, an optional spindle derating rule and an
// optional production multiplier. Profiles are values; Solve has no side
// effects.
type Profile struct {
	Name        string
	Corrections []Correction

	// Derate returns a spindle speed factor applied before the machine cap.
	Derate func(p Params) float64

	// ProductionFactor > 0 adds a production feed: corrected fz * factor.
	ProductionFactor float64
}

// Solve validates p, runs the correction chain and the speed/feed solver.
func (pr Profile) Solve(p Params) (Result, error) {
	err := RequirePositive(
		Field{Name: "diameter", Value: p.Diameter},
		Field{Name: "vc", Value: p.CuttingSpeed},
		Field{Name: "fz", Value: p.BaseFeed},
	)
	if err != nil {
		return Result{}, err
	}
	if p.Teeth <= 0 {
		return Result{}, &InputError{Field: "z", Reason: "must be greater than zero"}
	}
	if math.IsNaN(p.MaxRPM) || p.MaxRPM < 0 {
		return Result{}, &InputError{Field: "max_rpm", Reason: "must not be negative"}
	}

	res := Result{
		EffectiveDiameter: p.Diameter,
		Teeth:             p.Teeth,
		BaseFeed:          p.BaseFeed,
		Warnings:          []Warning{},
	}

	fz := p.BaseFeed
	for _, c := range pr.Corrections {
		out, ws, err := c.Apply(p, fz)
		if err != nil {
			return Result{}, fmt.Errorf("%s: %w", c.Name, err)
		}
		res.Adjustments = append(res.Adjustments, Adjustment{Name: c.Name, Factor: out / fz})
		res.Warnings = append(res.Warnings, ws...)
		fz = out
	}
	res.CorrectedFeed = fz

	derate := 1.0
	if pr.Derate != nil {
		derate = pr.Derate(p)
	}

	sp := SpindleSpeed(p.CuttingSpeed, p.Diameter, derate, p.MaxRPM)
	res.SpindleSpeedRaw = sp.Raw
	res.RPMFactor = sp.Factor
	res.SpindleSpeed = sp.Final
	res.Capped = sp.Capped
	res.RequestedVc = sp.RequestedVc
	res.ActualVc = sp.ActualVc
	if sp.Capped {
		res.Warnings = append(res.Warnings, Warning{
			Code:    WarnSpindleCapped,
			Message: fmt.Sprintf("spindle speed capped at %.0f rpm: actual Vc %.1f m/min", sp.Final, sp.ActualVc),
		})
	}

	res.FeedRate = FeedRate(sp.Final, fz, p.Teeth)
	if pr.ProductionFactor > 0 {
		res.ProductionFeed = fz * pr.ProductionFactor
		res.ProductionFeedRate = FeedRate(sp.Final, res.ProductionFeed, p.Teeth)
	}

	return res, nil
}

// DepthReductionCorrection multiplies fz by r.Factor(ap).
func DepthReductionCorrection(r DepthReduction) Correction {
	return Correction{
		Name: "depth_reduction",
		Apply: func(p Params, fz float64) (float64, []Warning, error) {
			return fz * r.Factor(p.AxialDepth), nil, nil
		},
	}
}

// LeadAngleCorrection divides fz by sin(kappa).
func LeadAngleCorrection() Correction {
	return Correction{
		Name: "lead_angle_thinning",
		Apply: func(p Params, fz float64) (float64, []Warning, error) {
			out, err := LeadAngleThinning(fz, p.LeadAngle)
			return out, nil, err
		},
	}
}

// RoundInsertCorrection applies RoundInsertThinning with the corner radius
// as insert radius.
func RoundInsertCorrection() Correction {
	return Correction{
		Name: "round_insert_thinning",
		Apply: func(p Params, fz float64) (float64, []Warning, error) {
			out, ws := RoundInsertThinning(fz, p.CornerRadius, p.AxialDepth)
			return out, ws, nil
		},
	}
}

// RadialCorrection applies RadialThinning. The stepover percent is required.
func RadialCorrection() Correction {
	return Correction{
		Name: "radial_thinning",
		Apply: func(p Params, fz float64) (float64, []Warning, error) {
			if err := mustBePositive("ae_percent", p.RadialPercent); err != nil {
				return 0, nil, err
			}
			out, ws := RadialThinning(fz, p.Diameter, p.RadialPercent)
			return out, ws, nil
		},
	}
}

// minCornerRadiusEngagement is the stepover percent at or below which the
// corner radius model is skipped.
const minCornerRadiusEngagement = 0.1

// CornerRadiusCorrection applies CornerRadiusThinning for stepovers between
// 0.1% and 100% of D; outside that band fz passes through unchanged.
func CornerRadiusCorrection() Correction {
	return Correction{
		Name: "corner_radius_thinning",
		Apply: func(p Params, fz float64) (float64, []Warning, error) {
			if err := mustBePositive("ae_percent", p.RadialPercent); err != nil {
				return 0, nil, err
			}
			if p.RadialPercent <= minCornerRadiusEngagement || p.RadialPercent >= 100 {
				return fz, nil, nil
			}
			out, ws := CornerRadiusThinning(fz, p.Diameter, p.RadialPercent, p.CornerRadius)
			return out, ws, nil
		},
	}
}

// AxialDepthCorrection multiplies fz by AxialDepthFactor(ap, D).
func AxialDepthCorrection() Correction {
	return Correction{
		Name: "axial_depth",
		Apply: func(p Params, fz float64) (float64, []Warning, error) {
			return fz * AxialDepthFactor(p.AxialDepth, p.Diameter), nil, nil
		},
	}
}

// OverhangDerate is a Profile.Derate using the L/D rule.
func OverhangDerate(p Params) float64 {
	return OverhangRPMFactor(p.Overhang, p.Diameter)
}

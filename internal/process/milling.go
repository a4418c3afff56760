package process

import (
	"fmt"
	"math"

	"cutdata/internal/cutting"
	"cutdata/internal/tooldata"
)

// MillingInput is a trochoidal milling request. Nil pointers take the
// catalog default for the material and diameter.
type MillingInput struct {
	Material      string   `json:"material"`
	Diameter      float64  `json:"diameter_mm"`
	CuttingSpeed  *float64 `json:"vc_m_min,omitempty"`
	FeedPerTooth  *float64 `json:"fz_mm,omitempty"`
	Teeth         *int     `json:"z,omitempty"`
	RadialPercent *float64 `json:"ae_percent,omitempty"`
	RampAngle     *float64 `json:"ramp_angle_deg,omitempty"`
	MaxRPM        *float64 `json:"max_rpm,omitempty"`
}

func (MillingInput) Kind() Kind { return Milling }

// MillingDetails are the finishing, ramping and toolpath outputs.
type MillingDetails struct {
	RadialPercent     float64 `json:"ae_percent"`
	RadialEngagement  float64 `json:"ae_mm"`
	MinToolpathRadius float64 `json:"min_toolpath_radius_mm"`

	FinishFeed     float64 `json:"finish_fz_mm"`
	FinishFeedRate int     `json:"finish_feed_rate_mm_min"`

	RampAngle    float64 `json:"ramp_angle_deg"`
	RampFactor   float64 `json:"ramp_factor"`
	RampFeedRate int     `json:"ramp_feed_rate_mm_min"`
}

// finishFeedPerMM is the finishing fz per mm of tool diameter.
const finishFeedPerMM = 0.005

// RampFactor is the feed divisor for helical ramping at angle degrees.
// Each degree above the material default adds 0.15; the result is kept
// within [1.3, 3.5].
func RampFactor(r tooldata.Ramp, angle float64) float64 {
	f := r.BaseFactor + (angle-r.DefaultAngle)*0.15
	return math.Max(1.3, math.Min(3.5, f))
}

var millingProfile = cutting.Profile{
	Name:        string(Milling),
	Corrections: []cutting.Correction{cutting.RadialCorrection()},
}

// Milling computes roughing, finishing and ramping data for trochoidal
// milling.
func (c *Calculator) Milling(in MillingInput) (Output, error) {
	m, err := tooldata.Milling.Get(in.Material)
	if err != nil {
		return Output{}, err
	}
	defaults := tooldata.MillingExtras[m.Key]
	if err := requireDiameter(in.Diameter); err != nil {
		return Output{}, err
	}

	vc, err := positive("vc", in.CuttingSpeed, m.CuttingSpeed)
	if err != nil {
		return Output{}, err
	}
	var fz float64
	if in.FeedPerTooth == nil {
		if fz, err = m.Feed.Lookup(in.Diameter); err != nil {
			return Output{}, err
		}
	} else if fz, err = positive("fz", in.FeedPerTooth, 0); err != nil {
		return Output{}, err
	}
	z, err := teeth(in.Teeth, m.Teeth)
	if err != nil {
		return Output{}, err
	}
	ae, err := positive("ae_percent", in.RadialPercent, defaults.RadialPercent)
	if err != nil {
		return Output{}, err
	}
	maxRPM, err := c.maxRPM(in.MaxRPM)
	if err != nil {
		return Output{}, err
	}

	res, err := millingProfile.Solve(cutting.Params{
		Diameter:      in.Diameter,
		CuttingSpeed:  vc,
		BaseFeed:      fz,
		Teeth:         z,
		MaxRPM:        maxRPM,
		RadialPercent: ae,
	})
	if err != nil {
		return Output{}, err
	}

	ramp := defaults.Ramp
	angle := ramp.DefaultAngle
	if in.RampAngle != nil {
		if a := *in.RampAngle; a >= ramp.MinAngle && a <= ramp.MaxAngle {
			angle = a
		} else {
			res.Warnings = append(res.Warnings, cutting.Warning{
				Code: cutting.WarnRampAngleRange,
				Message: fmt.Sprintf("ramp angle %.4g° outside %.4g–%.4g° for %s: %.4g° used",
					a, ramp.MinAngle, ramp.MaxAngle, m.Name, ramp.DefaultAngle),
			})
		}
	}
	rampFactor := RampFactor(ramp, angle)

	finish := finishFeedPerMM * in.Diameter * defaults.FinishFactor

	return Output{
		Process:      Milling,
		Material:     m.Key,
		MaterialName: m.Name,
		Result:       res,
		Milling: &MillingDetails{
			RadialPercent:     ae,
			RadialEngagement:  in.Diameter * ae / 100,
			MinToolpathRadius: in.Diameter * ae / 200,
			FinishFeed:        finish,
			FinishFeedRate:    cutting.FeedRate(res.SpindleSpeed, finish, z),
			RampAngle:         angle,
			RampFactor:        rampFactor,
			RampFeedRate:      int(math.Round(float64(res.FeedRate) / rampFactor)),
		},
	}, nil
}

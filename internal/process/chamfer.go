package process

import (
	"cutdata/internal/cutting"
	"cutdata/internal/tooldata"
)

// DefaultChamferAngle is used when a chamfer request has no angle.
const DefaultChamferAngle = 45.0

// ChamferInput is a chamfer milling request. The feed table and the spindle
// speed both use the effective diameter at depth ap.
type ChamferInput struct {
	Material     string   `json:"material"`
	TipDiameter  float64  `json:"tip_diameter_mm"`
	Angle        *float64 `json:"angle_deg,omitempty"`
	AxialDepth   float64  `json:"ap_mm"`
	CuttingSpeed *float64 `json:"vc_m_min,omitempty"`
	FeedPerTooth *float64 `json:"fz_mm,omitempty"`
	Teeth        *int     `json:"z,omitempty"`
	MaxRPM       *float64 `json:"max_rpm,omitempty"`
}

func (ChamferInput) Kind() Kind { return Chamfer }

func (c *Calculator) chamferProfile() cutting.Profile {
	return cutting.Profile{
		Name:             string(Chamfer),
		Corrections:      []cutting.Correction{cutting.DepthReductionCorrection(cutting.DefaultDepthReduction)},
		ProductionFactor: c.settings.ProductionFactor,
	}
}

// Chamfer computes the standard and production feeds for a chamfer mill.
func (c *Calculator) Chamfer(in ChamferInput) (Output, error) {
	m, err := tooldata.Chamfer.Get(in.Material)
	if err != nil {
		return Output{}, err
	}

	angle := DefaultChamferAngle
	if in.Angle != nil {
		angle = *in.Angle
	}
	dEff, err := cutting.EffectiveDiameter(in.TipDiameter, angle, in.AxialDepth)
	if err != nil {
		return Output{}, err
	}

	vc, err := positive("vc", in.CuttingSpeed, m.CuttingSpeed)
	if err != nil {
		return Output{}, err
	}
	var fz float64
	if in.FeedPerTooth == nil {
		if fz, err = m.Feed.Lookup(dEff); err != nil {
			return Output{}, err
		}
	} else if fz, err = positive("fz", in.FeedPerTooth, 0); err != nil {
		return Output{}, err
	}
	z, err := teeth(in.Teeth, m.Teeth)
	if err != nil {
		return Output{}, err
	}
	maxRPM, err := c.maxRPM(in.MaxRPM)
	if err != nil {
		return Output{}, err
	}

	res, err := c.chamferProfile().Solve(cutting.Params{
		Diameter:     dEff,
		CuttingSpeed: vc,
		BaseFeed:     fz,
		Teeth:        z,
		MaxRPM:       maxRPM,
		AxialDepth:   in.AxialDepth,
	})
	if err != nil {
		return Output{}, err
	}

	return Output{
		Process:      Chamfer,
		Material:     m.Key,
		MaterialName: m.Name,
		Result:       res,
	}, nil
}

package process

import (
	"fmt"

	"cutdata/internal/cutting"
	"cutdata/internal/tooldata"
)

// Insert geometries for face milling.
const (
	GeometryKappa  = "kappa"
	GeometryRadius = "radius"
)

// DefaultLeadAngle is used when a kappa request has no lead angle.
const DefaultLeadAngle = 45.0

// FaceMillingInput is a face milling request. Diameter and Teeth describe
// the cutter body and have no defaults.
type FaceMillingInput struct {
	Material      string   `json:"material"`
	Diameter      float64  `json:"diameter_mm"`
	Teeth         int      `json:"z"`
	AxialDepth    float64  `json:"ap_mm"`
	Geometry      string   `json:"geometry,omitempty"`
	LeadAngle     *float64 `json:"kappa_deg,omitempty"`
	InsertRadius  float64  `json:"insert_radius_mm,omitempty"`
	CuttingSpeed  *float64 `json:"vc_m_min,omitempty"`
	ChipThickness *float64 `json:"hm_mm,omitempty"`
	MaxRPM        *float64 `json:"max_rpm,omitempty"`
}

func (FaceMillingInput) Kind() Kind { return FaceMilling }

var (
	faceMillKappa = cutting.Profile{
		Name:        string(FaceMilling),
		Corrections: []cutting.Correction{cutting.LeadAngleCorrection()},
	}
	faceMillRadius = cutting.Profile{
		Name:        string(FaceMilling),
		Corrections: []cutting.Correction{cutting.RoundInsertCorrection()},
	}
)

// FaceMilling converts the mean chip thickness of the material into fz for
// the insert geometry.
func (c *Calculator) FaceMilling(in FaceMillingInput) (Output, error) {
	m, err := tooldata.FaceMilling.Get(in.Material)
	if err != nil {
		return Output{}, err
	}
	if err := requireDiameter(in.Diameter); err != nil {
		return Output{}, err
	}
	if in.Teeth <= 0 {
		return Output{}, &cutting.InputError{Field: "z", Reason: "must be greater than zero"}
	}

	vc, err := positive("vc", in.CuttingSpeed, m.CuttingSpeed)
	if err != nil {
		return Output{}, err
	}
	hm, err := positive("hm", in.ChipThickness, m.BaseFeed)
	if err != nil {
		return Output{}, err
	}
	maxRPM, err := c.maxRPM(in.MaxRPM)
	if err != nil {
		return Output{}, err
	}

	p := cutting.Params{
		Diameter:     in.Diameter,
		CuttingSpeed: vc,
		BaseFeed:     hm,
		Teeth:        in.Teeth,
		MaxRPM:       maxRPM,
		AxialDepth:   in.AxialDepth,
	}

	var (
		profile    cutting.Profile
		engagement string
	)
	switch in.Geometry {
	case "", GeometryKappa:
		p.LeadAngle = DefaultLeadAngle
		if in.LeadAngle != nil {
			p.LeadAngle = *in.LeadAngle
		}
		profile = faceMillKappa
		engagement = tooldata.RecommendedEngagement(p.LeadAngle)
	case GeometryRadius:
		p.CornerRadius = in.InsertRadius
		profile = faceMillRadius
		engagement = tooldata.DefaultEngagement
	default:
		return Output{}, &cutting.InputError{Field: "geometry", Reason: fmt.Sprintf("unknown geometry %q", in.Geometry)}
	}

	res, err := profile.Solve(p)
	if err != nil {
		return Output{}, err
	}
	res.RecommendedEngagement = engagement

	return Output{
		Process:      FaceMilling,
		Material:     m.Key,
		MaterialName: m.Name,
		Result:       res,
	}, nil
}

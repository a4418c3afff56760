package process

import (
	"fmt"

	"cutdata/internal/cutting"
	"cutdata/internal/tooldata"
)

// DefaultToolMaterial is the cutter material used when a request has none.
const DefaultToolMaterial = "hm"

// TSlotInput is a T-slot cutter request. Side milling fields default to the
// side milling defaults; in full mode they are ignored and engagement is
// 100%.
type TSlotInput struct {
	ToolMaterial  string             `json:"tool_material,omitempty"`
	Mode          tooldata.TSlotMode `json:"mode"`
	Material      string             `json:"material"`
	Diameter      float64            `json:"diameter_mm"`
	CuttingSpeed  *float64           `json:"vc_m_min,omitempty"`
	FeedPerTooth  *float64           `json:"fz_mm,omitempty"`
	Teeth         *int               `json:"z,omitempty"`
	RadialPercent *float64           `json:"ae_percent,omitempty"`
	AxialDepth    *float64           `json:"ap_mm,omitempty"`
	CornerRadius  *float64           `json:"corner_radius_mm,omitempty"`
	Overhang      *float64           `json:"overhang_mm,omitempty"`
	MaxRPM        *float64           `json:"max_rpm,omitempty"`
}

func (TSlotInput) Kind() Kind { return TSlot }

// TSlotDetails are the T-slot specific outputs.
type TSlotDetails struct {
	Mode             tooldata.TSlotMode `json:"mode"`
	RecommendedTeeth int                `json:"recommended_z"`
	BaseTeeth        int                `json:"base_z"`
	TableFeed        float64            `json:"table_fz_mm"`
	RadialPercent    float64            `json:"ae_percent"`
	RadialEngagement float64            `json:"ae_mm"`
	AxialDepthFactor float64            `json:"ap_factor"`
	FeedPerRev       float64            `json:"feed_per_rev_mm"`
	Overhang         float64            `json:"overhang_mm"`
	OverhangRatio    float64            `json:"overhang_ratio"`
}

var (
	tslotFull = cutting.Profile{Name: "tslot_full"}
	tslotSide = cutting.Profile{
		Name: "tslot_side",
		Corrections: []cutting.Correction{
			cutting.CornerRadiusCorrection(),
			cutting.AxialDepthCorrection(),
		},
		Derate: cutting.OverhangDerate,
	}
)

// TSlot computes cutting data for full slotting or side milling with a
// T-slot cutter.
func (c *Calculator) TSlot(in TSlotInput) (Output, error) {
	toolKey := in.ToolMaterial
	if toolKey == "" {
		toolKey = DefaultToolMaterial
	}
	tool, ok := tooldata.TSlot[toolKey]
	if !ok {
		return Output{}, &cutting.InputError{Field: "tool_material", Reason: fmt.Sprintf("no T-slot data for %q", toolKey)}
	}
	mode := in.Mode
	if mode == "" {
		mode = tooldata.TSlotFull
	}
	catalog, err := tool.Mode(mode)
	if err != nil {
		return Output{}, err
	}
	m, err := catalog.Get(in.Material)
	if err != nil {
		return Output{}, err
	}
	if err := requireDiameter(in.Diameter); err != nil {
		return Output{}, err
	}

	recommended := tooldata.RecommendedTSlotTeeth(mode, in.Diameter)
	z, err := teeth(in.Teeth, recommended)
	if err != nil {
		return Output{}, err
	}
	vc, err := positive("vc", in.CuttingSpeed, m.CuttingSpeed)
	if err != nil {
		return Output{}, err
	}
	tableFz, err := m.Feed.Lookup(in.Diameter)
	if err != nil {
		return Output{}, err
	}
	fz, err := positive("fz", in.FeedPerTooth, tableFz*float64(m.Teeth)/float64(z))
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
		BaseFeed:     fz,
		Teeth:        z,
		MaxRPM:       maxRPM,
	}
	profile := tslotFull
	if mode == tooldata.TSlotFull {
		p.RadialPercent = 100
		if p.Overhang, err = nonNegative("overhang", in.Overhang, 0); err != nil {
			return Output{}, err
		}
	} else {
		profile = tslotSide
		if p.RadialPercent, err = positive("ae_percent", in.RadialPercent, tooldata.TSlotSideRadialPercent); err != nil {
			return Output{}, err
		}
		if p.AxialDepth, err = nonNegative("ap", in.AxialDepth, tooldata.TSlotSideAxialDepth); err != nil {
			return Output{}, err
		}
		if p.CornerRadius, err = nonNegative("corner_radius", in.CornerRadius, tooldata.TSlotSideCornerRadius); err != nil {
			return Output{}, err
		}
		if p.Overhang, err = nonNegative("overhang", in.Overhang, tooldata.TSlotSideOverhang); err != nil {
			return Output{}, err
		}
	}

	res, err := profile.Solve(p)
	if err != nil {
		return Output{}, err
	}

	return Output{
		Process:      TSlot,
		Material:     m.Key,
		MaterialName: m.Name,
		Result:       res,
		TSlot: &TSlotDetails{
			Mode:             mode,
			RecommendedTeeth: recommended,
			BaseTeeth:        m.Teeth,
			TableFeed:        tableFz,
			RadialPercent:    p.RadialPercent,
			RadialEngagement: p.Diameter * p.RadialPercent / 100,
			AxialDepthFactor: res.Factor("axial_depth"),
			FeedPerRev:       res.CorrectedFeed * float64(z),
			Overhang:         p.Overhang,
			OverhangRatio:    p.Overhang / p.Diameter,
		},
	}, nil
}

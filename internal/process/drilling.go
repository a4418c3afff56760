package process

import (
	"fmt"

	"cutdata/internal/cutting"
	"cutdata/internal/tooldata"
)

// DrillingInput is a drilling request. The length class is taken from
// LengthClass, else derived from HoleDepth, else 5xD.
type DrillingInput struct {
	ToolMaterial string   `json:"tool_material,omitempty"`
	Material     string   `json:"material"`
	Diameter     float64  `json:"diameter_mm"`
	LengthClass  string   `json:"length_class,omitempty"`
	HoleDepth    *float64 `json:"hole_depth_mm,omitempty"`
	CuttingSpeed *float64 `json:"vc_m_min,omitempty"`
	FeedPerRev   *float64 `json:"fn_mm,omitempty"`
	MaxRPM       *float64 `json:"max_rpm,omitempty"`
}

func (DrillingInput) Kind() Kind { return Drilling }

// DrillingDetails breaks Fn down into its factors.
type DrillingDetails struct {
	ToolMaterial   string  `json:"tool_material"`
	LengthClass    string  `json:"length_class"`
	TableFeed      float64 `json:"fd_mm"`
	CurveFactor    float64 `json:"curve_factor"`
	MaterialFactor float64 `json:"material_factor"`
	HoleDepth      float64 `json:"hole_depth_mm,omitempty"`
}

func scale(name string, f float64) cutting.Correction {
	return cutting.Correction{
		Name: name,
		Apply: func(_ cutting.Params, fz float64) (float64, []cutting.Warning, error) {
			return fz * f, nil, nil
		},
	}
}

// Drilling computes spindle speed and feed for a drill. The feed per
// revolution is Fd * curve * Fm and the drill counts as one cutting edge.
func (c *Calculator) Drilling(in DrillingInput) (Output, error) {
	toolKey := in.ToolMaterial
	if toolKey == "" {
		toolKey = DefaultToolMaterial
	}
	tool, ok := tooldata.Drilling[toolKey]
	if !ok {
		return Output{}, &cutting.InputError{Field: "tool_material", Reason: fmt.Sprintf("no drilling data for %q", toolKey)}
	}
	m, err := tool.Materials.Get(in.Material)
	if err != nil {
		return Output{}, err
	}
	if err := requireDiameter(in.Diameter); err != nil {
		return Output{}, err
	}

	var warnings []cutting.Warning
	class := tooldata.Drill5xD
	depth := 0.0
	switch {
	case in.LengthClass != "":
		if class, err = tooldata.ParseLengthClass(in.LengthClass); err != nil {
			return Output{}, err
		}
	case in.HoleDepth != nil:
		if depth, err = positive("hole_depth", in.HoleDepth, 0); err != nil {
			return Output{}, err
		}
		var fits bool
		class, fits = tooldata.ClassForDepth(depth, in.Diameter)
		if !fits {
			warnings = append(warnings, cutting.Warning{
				Code:    cutting.WarnDepthBeyondClass,
				Message: fmt.Sprintf("hole depth %.1fxD exceeds the longest drill class: %s data used", depth/in.Diameter, class),
			})
		}
	}

	feed, err := tool.FeedTable(class)
	if err != nil {
		return Output{}, err
	}
	fd, err := feed.Lookup(in.Diameter)
	if err != nil {
		return Output{}, err
	}
	curve := 1.0
	if tool.Curve != nil {
		if curve, err = tool.Curve.Lookup(in.Diameter); err != nil {
			return Output{}, err
		}
	}
	fm := tool.FeedFactor[m.Key]

	vc, err := positive("vc", in.CuttingSpeed, m.CuttingSpeed)
	if err != nil {
		return Output{}, err
	}
	maxRPM, err := c.maxRPM(in.MaxRPM)
	if err != nil {
		return Output{}, err
	}

	profile := cutting.Profile{Name: string(Drilling)}
	base := fd
	if in.FeedPerRev != nil {
		if base, err = positive("fn", in.FeedPerRev, 0); err != nil {
			return Output{}, err
		}
	} else {
		profile.Corrections = []cutting.Correction{
			scale("diameter_curve", curve),
			scale("material_factor", fm),
		}
	}

	res, err := profile.Solve(cutting.Params{
		Diameter:     in.Diameter,
		CuttingSpeed: vc,
		BaseFeed:     base,
		Teeth:        1,
		MaxRPM:       maxRPM,
	})
	if err != nil {
		return Output{}, err
	}
	res.Warnings = append(res.Warnings, warnings...)

	return Output{
		Process:      Drilling,
		Material:     m.Key,
		MaterialName: m.Name,
		Result:       res,
		Drilling: &DrillingDetails{
			ToolMaterial:   toolKey,
			LengthClass:    class.String(),
			TableFeed:      fd,
			CurveFactor:    curve,
			MaterialFactor: fm,
			HoleDepth:      depth,
		},
	}, nil
}

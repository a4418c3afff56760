package process

import (
	"fmt"
	"strconv"
)

// Line is one labelled value of a result summary.
type Line struct {
	Label string
	Value string
}

func num(v float64, prec int) string {
	return strconv.FormatFloat(v, 'f', prec, 64)
}

// Lines returns the result as display lines, main outputs first. The CLI and
// the PDF sheet both print these.
func (o Output) Lines() []Line {
	spindle := num(o.SpindleSpeed, 0)
	if o.Capped {
		spindle += " (capped)"
	}

	lines := []Line{
		{"Material", o.MaterialName},
		{"Spindle speed [rpm]", spindle},
		{"Feed rate [mm/min]", strconv.Itoa(o.FeedRate)},
	}
	if o.ProductionFeedRate > 0 {
		lines = append(lines, Line{"Production feed rate [mm/min]", strconv.Itoa(o.ProductionFeedRate)})
	}

	if o.Process == Chamfer {
		lines = append(lines, Line{"Effective diameter [mm]", num(o.EffectiveDiameter, 2)})
	}
	lines = append(lines,
		Line{"Vc requested [m/min]", num(o.RequestedVc, 1)},
		Line{"Vc actual [m/min]", num(o.ActualVc, 1)},
		Line{"Teeth", strconv.Itoa(o.Teeth)},
		Line{"Base feed [mm]", num(o.BaseFeed, 4)},
		Line{"Corrected feed [mm]", num(o.CorrectedFeed, 4)},
	)
	if o.RPMFactor != 1 {
		lines = append(lines, Line{"Spindle derate", fmt.Sprintf("%.0f %%", o.RPMFactor*100)})
	}
	for _, a := range o.Adjustments {
		lines = append(lines, Line{"Factor " + a.Name, num(a.Factor, 3)})
	}
	if o.RecommendedEngagement != "" {
		lines = append(lines, Line{"Recommended ae", o.RecommendedEngagement})
	}

	if d := o.Milling; d != nil {
		lines = append(lines,
			Line{"Stepover ae", fmt.Sprintf("%s %% (%s mm)", num(d.RadialPercent, 1), num(d.RadialEngagement, 2))},
			Line{"Min toolpath radius [mm]", num(d.MinToolpathRadius, 2)},
			Line{"Finishing fz [mm]", num(d.FinishFeed, 3)},
			Line{"Finishing feed rate [mm/min]", strconv.Itoa(d.FinishFeedRate)},
			Line{fmt.Sprintf("Ramping %.1f° feed rate [mm/min]", d.RampAngle), strconv.Itoa(d.RampFeedRate)},
		)
	}
	if d := o.TSlot; d != nil {
		lines = append(lines,
			Line{"Mode", string(d.Mode)},
			Line{"Recommended teeth", strconv.Itoa(d.RecommendedTeeth)},
			Line{"Feed per rev [mm]", num(d.FeedPerRev, 2)},
			Line{"ap factor", num(d.AxialDepthFactor, 2)},
		)
		if d.Overhang > 0 {
			lines = append(lines, Line{"L/D", num(d.OverhangRatio, 1)})
		}
	}
	if d := o.Drilling; d != nil {
		lines = append(lines,
			Line{"Drill", d.ToolMaterial + " " + d.LengthClass},
			Line{"Fd [mm/rev]", num(d.TableFeed, 3)},
			Line{"Curve factor", num(d.CurveFactor, 2)},
			Line{"Material factor", num(d.MaterialFactor, 3)},
		)
	}
	return lines
}

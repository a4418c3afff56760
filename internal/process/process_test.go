package process

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"cutdata/internal/cutting"
	"cutdata/internal/tooldata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T { return &v }

func newCalc() *Calculator { return New(DefaultSettings()) }

func TestParseKind(t *testing.T) {
	tests := map[string]Kind{
		"milling":      Milling,
		"Face Milling": FaceMilling,
		"face_milling": FaceMilling,
		"T-slot":       TSlot,
		" drilling ":   Drilling,
	}
	for in, want := range tests {
		got, err := ParseKind(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got)
	}

	_, err := ParseKind("turning")
	require.ErrorIs(t, err, cutting.ErrInvalidInput)
}

func TestMillingDefaults(t *testing.T) {
	out, err := newCalc().Milling(MillingInput{Material: "steel1080", Diameter: 10})
	require.NoError(t, err)

	assert.Equal(t, Milling, out.Process)
	assert.Equal(t, 4, out.Teeth)
	assert.Equal(t, 0.028, out.BaseFeed)
	assert.InDelta(t, 6366.198, out.SpindleSpeed, 0.001)
	assert.False(t, out.Capped)
	assert.InDelta(t, 0.028*math.Sqrt(10), out.CorrectedFeed, 1e-12)
	assert.Equal(t, 2255, out.FeedRate)

	require.NotNil(t, out.Milling)
	assert.Equal(t, 10.0, out.Milling.RadialPercent)
	assert.Equal(t, 1.0, out.Milling.RadialEngagement)
	assert.Equal(t, 0.5, out.Milling.MinToolpathRadius)
	assert.InDelta(t, 0.05, out.Milling.FinishFeed, 1e-12)
	assert.Equal(t, 1273, out.Milling.FinishFeedRate)
	assert.Equal(t, 2.0, out.Milling.RampAngle)
	assert.InDelta(t, 1.8, out.Milling.RampFactor, 1e-12)
	assert.Equal(t, 1253, out.Milling.RampFeedRate)
}

func TestMillingInterpolatesDefaultFeed(t *testing.T) {
	out, err := newCalc().Milling(MillingInput{Material: "steel1080", Diameter: 7, RadialPercent: ptr(60.0)})
	require.NoError(t, err)
	assert.InDelta(t, 0.019, out.BaseFeed, 1e-12)
	assert.Equal(t, out.BaseFeed, out.CorrectedFeed)
	assert.True(t, cutting.HasWarning(out.Warnings, cutting.WarnRadialEngagement))
}

func TestMillingRampAngle(t *testing.T) {
	calc := newCalc()

	out, err := calc.Milling(MillingInput{Material: "steel1080", Diameter: 10, RampAngle: ptr(4.0)})
	require.NoError(t, err)
	assert.InDelta(t, 2.1, out.Milling.RampFactor, 1e-12)
	assert.False(t, cutting.HasWarning(out.Warnings, cutting.WarnRampAngleRange))

	out, err = calc.Milling(MillingInput{Material: "steel60hrc", Diameter: 10, RampAngle: ptr(4.0)})
	require.NoError(t, err)
	assert.Equal(t, 1.0, out.Milling.RampAngle)
	assert.True(t, cutting.HasWarning(out.Warnings, cutting.WarnRampAngleRange))
	assert.InDelta(t, 0.8*0.05, out.Milling.FinishFeed, 1e-12)
}

func TestRampFactorClamped(t *testing.T) {
	r := tooldata.Ramp{DefaultAngle: 2, BaseFactor: 1.8}
	assert.Equal(t, 1.3, RampFactor(r, -10))
	assert.Equal(t, 3.5, RampFactor(r, 40))
}

func TestMillingOverridesAndCap(t *testing.T) {
	out, err := newCalc().Milling(MillingInput{
		Material:     "nonferrous",
		Diameter:     6,
		CuttingSpeed: ptr(450.0),
		FeedPerTooth: ptr(0.03),
		Teeth:        ptr(3),
		MaxRPM:       ptr(18000.0),
	})
	require.NoError(t, err)
	assert.True(t, out.Capped)
	assert.Equal(t, 18000.0, out.SpindleSpeed)
	assert.Equal(t, 0.03, out.BaseFeed)
	assert.Equal(t, 3, out.Teeth)
	assert.Less(t, out.ActualVc, 450.0)
	assert.True(t, cutting.HasWarning(out.Warnings, cutting.WarnSpindleCapped))
}

func TestDefaultMaxRPMSetting(t *testing.T) {
	calc := New(Settings{ProductionFactor: 1.5, DefaultMaxRPM: 3000})

	out, err := calc.Milling(MillingInput{Material: "steel1080", Diameter: 10})
	require.NoError(t, err)
	assert.Equal(t, 3000.0, out.SpindleSpeed)

	out, err = calc.Milling(MillingInput{Material: "steel1080", Diameter: 10, MaxRPM: ptr(0.0)})
	require.NoError(t, err)
	assert.False(t, out.Capped)
}

func TestChamferScenario(t *testing.T) {
	out, err := newCalc().Chamfer(ChamferInput{
		Material:    "steel1080",
		TipDiameter: 10,
		Angle:       ptr(45.0),
		AxialDepth:  2,
		MaxRPM:      ptr(3000.0),
	})
	require.NoError(t, err)

	assert.InDelta(t, 12.0, out.EffectiveDiameter, 1e-9)
	assert.InDelta(t, 0.075, out.BaseFeed, 1e-9)
	assert.InDelta(t, 3978.87, out.SpindleSpeedRaw, 0.01)
	assert.True(t, out.Capped)
	assert.InDelta(t, 113.1, out.ActualVc, 0.01)
	assert.InDelta(t, 0.95, out.Factor("depth_reduction"), 1e-12)
	assert.InDelta(t, 0.075*0.95*1.5, out.ProductionFeed, 1e-9)
	assert.Greater(t, out.ProductionFeedRate, out.FeedRate)
}

func TestChamferProductionFactorFromSettings(t *testing.T) {
	calc := New(Settings{ProductionFactor: 2})
	out, err := calc.Chamfer(ChamferInput{Material: "toolox44", TipDiameter: 4, AxialDepth: 1})
	require.NoError(t, err)
	assert.InDelta(t, out.CorrectedFeed*2, out.ProductionFeed, 1e-12)

	calc = New(Settings{})
	out, err = calc.Chamfer(ChamferInput{Material: "toolox44", TipDiameter: 4, AxialDepth: 1})
	require.NoError(t, err)
	assert.Zero(t, out.ProductionFeedRate)
}

func TestChamferRejectsBadAngle(t *testing.T) {
	_, err := newCalc().Chamfer(ChamferInput{Material: "steel1080", TipDiameter: 10, Angle: ptr(0.0), AxialDepth: 1})
	require.ErrorIs(t, err, cutting.ErrInvalidInput)
}

func TestFaceMillingKappa(t *testing.T) {
	out, err := newCalc().FaceMilling(FaceMillingInput{Material: "P2", Diameter: 63, Teeth: 5, AxialDepth: 2})
	require.NoError(t, err)
	assert.InDelta(t, 0.15/math.Sin(math.Pi/4), out.CorrectedFeed, 1e-12)
	assert.Equal(t, 943, out.FeedRate)
	assert.Equal(t, "70–80 %", out.RecommendedEngagement)

	_, err = newCalc().FaceMilling(FaceMillingInput{Material: "P2", Diameter: 63, Teeth: 5, LeadAngle: ptr(0.0)})
	require.ErrorIs(t, err, cutting.ErrInvalidInput)
}

func TestFaceMillingRoundInsert(t *testing.T) {
	calc := newCalc()

	out, err := calc.FaceMilling(FaceMillingInput{Material: "K1", Diameter: 50, Teeth: 4, Geometry: GeometryRadius, InsertRadius: 6, AxialDepth: 2})
	require.NoError(t, err)
	ratio := 2.0 / 6
	assert.InDelta(t, 0.25/math.Sqrt(ratio*(2-ratio)), out.CorrectedFeed, 1e-12)
	assert.Equal(t, tooldata.DefaultEngagement, out.RecommendedEngagement)
	assert.Empty(t, out.Warnings)

	out, err = calc.FaceMilling(FaceMillingInput{Material: "K1", Diameter: 50, Teeth: 4, Geometry: GeometryRadius, InsertRadius: 6, AxialDepth: 8})
	require.NoError(t, err)
	assert.Equal(t, 0.25, out.CorrectedFeed)
	assert.True(t, cutting.HasWarning(out.Warnings, cutting.WarnAxialBeyondRadius))

	out, err = calc.FaceMilling(FaceMillingInput{Material: "K1", Diameter: 50, Teeth: 4, Geometry: GeometryRadius, AxialDepth: 2})
	require.NoError(t, err)
	assert.True(t, cutting.HasWarning(out.Warnings, cutting.WarnRadiusMissing))

	_, err = calc.FaceMilling(FaceMillingInput{Material: "K1", Diameter: 50, Teeth: 4, Geometry: "oval"})
	require.ErrorIs(t, err, cutting.ErrInvalidInput)
}

func TestTSlotFull(t *testing.T) {
	out, err := newCalc().TSlot(TSlotInput{Mode: tooldata.TSlotFull, Material: "steel1080", Diameter: 20, Overhang: ptr(100.0)})
	require.NoError(t, err)

	require.NotNil(t, out.TSlot)
	assert.Equal(t, 8, out.Teeth)
	assert.Equal(t, 8, out.TSlot.RecommendedTeeth)
	assert.Equal(t, 0.075, out.BaseFeed)
	assert.Equal(t, out.BaseFeed, out.CorrectedFeed)
	assert.Equal(t, 1.0, out.RPMFactor)
	assert.Equal(t, 100.0, out.TSlot.RadialPercent)
	assert.Equal(t, 5.0, out.TSlot.OverhangRatio)
	assert.Equal(t, 716, out.FeedRate)
}

func TestTSlotScalesFeedToTeeth(t *testing.T) {
	out, err := newCalc().TSlot(TSlotInput{Mode: tooldata.TSlotFull, Material: "steel1080", Diameter: 12})
	require.NoError(t, err)
	assert.Equal(t, 6, out.Teeth)
	assert.InDelta(t, 0.048*8/6, out.BaseFeed, 1e-12)

	out, err = newCalc().TSlot(TSlotInput{Mode: tooldata.TSlotFull, Material: "steel1080", Diameter: 12, FeedPerTooth: ptr(0.05)})
	require.NoError(t, err)
	assert.Equal(t, 0.05, out.BaseFeed)
}

func TestTSlotSide(t *testing.T) {
	out, err := newCalc().TSlot(TSlotInput{Mode: tooldata.TSlotSide, Material: "steel1080", Diameter: 20})
	require.NoError(t, err)

	d := out.TSlot
	require.NotNil(t, d)
	assert.Equal(t, 4, out.Teeth)
	assert.Equal(t, 10.0, d.RadialPercent)
	assert.Equal(t, 1.5, d.OverhangRatio)
	assert.Equal(t, 1.0, out.RPMFactor)
	assert.InDelta(t, 0.75, d.AxialDepthFactor, 1e-12)
	assert.InDelta(t, 0.167125, out.CorrectedFeed, 1e-9)
	assert.InDelta(t, 0.167125*4, d.FeedPerRev, 1e-9)
	assert.Equal(t, 1702, out.FeedRate)
}

func TestTSlotSideOverhangDerate(t *testing.T) {
	out, err := newCalc().TSlot(TSlotInput{Mode: tooldata.TSlotSide, Material: "steel1080", Diameter: 20, Overhang: ptr(90.0)})
	require.NoError(t, err)
	assert.InDelta(t, math.Pow(3/4.5, 1.5), out.RPMFactor, 1e-12)

	out, err = newCalc().TSlot(TSlotInput{Mode: tooldata.TSlotSide, Material: "steel1080", Diameter: 20, Overhang: ptr(0.0)})
	require.NoError(t, err)
	assert.Equal(t, 1.0, out.RPMFactor)
}

func TestTSlotUnknownToolMaterial(t *testing.T) {
	_, err := newCalc().TSlot(TSlotInput{ToolMaterial: "hss", Material: "steel1080", Diameter: 20})
	var inErr *cutting.InputError
	require.True(t, errors.As(err, &inErr))
	assert.Equal(t, "tool_material", inErr.Field)
}

func TestDrillingCarbide(t *testing.T) {
	out, err := newCalc().Drilling(DrillingInput{Material: "soft_steel", Diameter: 10})
	require.NoError(t, err)

	d := out.Drilling
	require.NotNil(t, d)
	assert.Equal(t, "5xD", d.LengthClass)
	assert.Equal(t, 0.27, d.TableFeed)
	assert.InDelta(t, 0.55+0.1/3, d.CurveFactor, 1e-12)
	assert.Equal(t, 1, out.Teeth)
	assert.InDelta(t, 0.27*d.CurveFactor, out.CorrectedFeed, 1e-12)
	assert.Equal(t, 451, out.FeedRate)
}

func TestFeedContinuousAboveSmallestDiameter(t *testing.T) {
	calc := newCalc()

	tests := []struct {
		name string
		run  func(d float64) (Output, error)
		at   float64
	}{
		{
			name: "milling",
			run: func(d float64) (Output, error) {
				return calc.Milling(MillingInput{Material: "steel1080", Diameter: d, RadialPercent: ptr(60.0)})
			},
			at: 1,
		},
		{
			name: "drilling",
			run: func(d float64) (Output, error) {
				return calc.Drilling(DrillingInput{Material: "soft_steel", Diameter: d})
			},
			at: 0.5,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			atKey, err := tc.run(tc.at)
			require.NoError(t, err)
			above, err := tc.run(tc.at + 0.01)
			require.NoError(t, err)

			assert.InDelta(t, atKey.BaseFeed, above.BaseFeed, atKey.BaseFeed*0.02)
			assert.InDelta(t, float64(atKey.FeedRate), float64(above.FeedRate), float64(atKey.FeedRate)*0.05)
		})
	}
}

func TestDrillingHSSHasNoCurve(t *testing.T) {
	out, err := newCalc().Drilling(DrillingInput{ToolMaterial: "hss", Material: "aluminium", Diameter: 8, LengthClass: "12xD"})
	require.NoError(t, err)
	assert.Equal(t, 1.0, out.Drilling.CurveFactor)
	assert.InDelta(t, 0.100*1.4, out.CorrectedFeed, 1e-12)
	assert.Equal(t, "12xD", out.Drilling.LengthClass)
}

func TestDrillingClassFromDepth(t *testing.T) {
	out, err := newCalc().Drilling(DrillingInput{Material: "soft_steel", Diameter: 10, HoleDepth: ptr(70.0)})
	require.NoError(t, err)
	assert.Equal(t, "8xD", out.Drilling.LengthClass)
	assert.Empty(t, out.Warnings)

	out, err = newCalc().Drilling(DrillingInput{Material: "soft_steel", Diameter: 10, HoleDepth: ptr(200.0)})
	require.NoError(t, err)
	assert.Equal(t, "15xD", out.Drilling.LengthClass)
	assert.True(t, cutting.HasWarning(out.Warnings, cutting.WarnDepthBeyondClass))
}

func TestNonPositiveOverridesRejected(t *testing.T) {
	calc := newCalc()
	tests := []struct {
		name  string
		field string
		run   func() error
	}{
		{"milling vc", "vc", func() error {
			_, err := calc.Milling(MillingInput{Material: "steel1080", Diameter: 10, CuttingSpeed: ptr(0.0)})
			return err
		}},
		{"milling diameter", "diameter", func() error {
			_, err := calc.Milling(MillingInput{Material: "steel1080"})
			return err
		}},
		{"milling teeth", "z", func() error {
			_, err := calc.Milling(MillingInput{Material: "steel1080", Diameter: 10, Teeth: ptr(0)})
			return err
		}},
		{"milling ae", "ae_percent", func() error {
			_, err := calc.Milling(MillingInput{Material: "steel1080", Diameter: 10, RadialPercent: ptr(-5.0)})
			return err
		}},
		{"chamfer fz", "fz", func() error {
			_, err := calc.Chamfer(ChamferInput{Material: "steel1080", TipDiameter: 10, FeedPerTooth: ptr(0.0)})
			return err
		}},
		{"face milling teeth", "z", func() error {
			_, err := calc.FaceMilling(FaceMillingInput{Material: "P2", Diameter: 63})
			return err
		}},
		{"tslot max rpm", "max_rpm", func() error {
			_, err := calc.TSlot(TSlotInput{Material: "steel1080", Diameter: 20, MaxRPM: ptr(-1.0)})
			return err
		}},
		{"drilling depth", "hole_depth", func() error {
			_, err := calc.Drilling(DrillingInput{Material: "soft_steel", Diameter: 10, HoleDepth: ptr(0.0)})
			return err
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.run()
			require.ErrorIs(t, err, cutting.ErrInvalidInput)
			var inErr *cutting.InputError
			require.True(t, errors.As(err, &inErr))
			assert.Equal(t, tc.field, inErr.Field)
		})
	}
}

func TestUnknownMaterialPerProcess(t *testing.T) {
	calc := newCalc()
	for _, k := range Kinds {
		in, err := ParseFields(k, map[string]string{"material": "unobtainium", "diameter_mm": "10", "tip_diameter_mm": "10", "z": "4"})
		require.NoError(t, err, k)
		_, err = calc.Calculate(in)
		require.ErrorIs(t, err, cutting.ErrUnknownMaterial, k)
	}
}

func TestParseFields(t *testing.T) {
	in, err := ParseFields(Milling, map[string]string{
		"process":     "milling",
		"material":    "toolox44",
		"diameter_mm": "8",
		"vc_m_min":    "",
		"ae_percent":  "7,5",
		"z":           "3",
	})
	require.NoError(t, err)

	m, ok := in.(*MillingInput)
	require.True(t, ok)
	assert.Equal(t, "toolox44", m.Material)
	assert.Equal(t, 8.0, m.Diameter)
	assert.Nil(t, m.CuttingSpeed)
	require.NotNil(t, m.RadialPercent)
	assert.Equal(t, 7.5, *m.RadialPercent)
	require.NotNil(t, m.Teeth)
	assert.Equal(t, 3, *m.Teeth)

	_, err = ParseFields(Milling, map[string]string{"diameter_mm": "ten"})
	require.ErrorIs(t, err, cutting.ErrInvalidInput)

	_, err = ParseFields(Milling, map[string]string{"z": "3.5"})
	var inErr *cutting.InputError
	require.True(t, errors.As(err, &inErr))
	assert.Equal(t, "z", inErr.Field)
}

func TestCalculateMatchesDirectCall(t *testing.T) {
	calc := newCalc()
	in := TSlotInput{Mode: tooldata.TSlotSide, Material: "vanadis", Diameter: 40}

	direct, err := calc.TSlot(in)
	require.NoError(t, err)
	viaValue, err := calc.Calculate(in)
	require.NoError(t, err)
	viaPtr, err := calc.Calculate(&in)
	require.NoError(t, err)

	assert.Equal(t, direct, viaValue)
	assert.Equal(t, direct, viaPtr)
}

func TestOutputJSONFlattensResult(t *testing.T) {
	out, err := newCalc().Milling(MillingInput{Material: "steel1080", Diameter: 10})
	require.NoError(t, err)

	data, err := json.Marshal(out)
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "milling", doc["process"])
	assert.Contains(t, doc, "spindle_speed_rpm")
	assert.Contains(t, doc, "milling")
	assert.NotContains(t, doc, "tslot")
	assert.NotNil(t, doc["warnings"])
}

func TestFeedTableQuery(t *testing.T) {
	ft, err := FeedTable(TSlot, TableQuery{Material: "toolox44", Mode: tooldata.TSlotSide})
	require.NoError(t, err)
	assert.Equal(t, cutting.FloorKey, ft.Policy())

	ft, err = FeedTable(Drilling, TableQuery{Material: "aluminium", ToolMaterial: "hss", LengthClass: "8xD"})
	require.NoError(t, err)
	v, err := ft.Lookup(10)
	require.NoError(t, err)
	assert.Equal(t, 0.138, v)

	_, err = FeedTable(FaceMilling, TableQuery{Material: "P2"})
	require.ErrorIs(t, err, cutting.ErrInvalidInput)

	_, err = FeedTable(Chamfer, TableQuery{Material: "nope"})
	require.ErrorIs(t, err, cutting.ErrUnknownMaterial)
}

func TestGroupsAndTables(t *testing.T) {
	groups := Groups()
	require.NotEmpty(t, groups)
	assert.Equal(t, Milling, groups[0].Process)

	var drillSets int
	for _, s := range Tables() {
		assert.NotEqual(t, FaceMilling, s.Process)
		for _, nt := range s.Tables {
			require.NotNil(t, nt.Table, s.Title()+" "+nt.Key)
		}
		if s.Process == Drilling {
			drillSets++
		}
	}
	assert.Equal(t, 2, drillSets)
}

func TestLinesMarkCappedSpindle(t *testing.T) {
	out, err := newCalc().Chamfer(ChamferInput{Material: "steel1080", TipDiameter: 10, AxialDepth: 2, MaxRPM: ptr(3000.0)})
	require.NoError(t, err)

	lines := out.Lines()
	require.GreaterOrEqual(t, len(lines), 3)
	assert.Equal(t, Line{"Spindle speed [rpm]", "3000 (capped)"}, lines[1])

	var labels []string
	for _, l := range lines {
		labels = append(labels, l.Label)
	}
	assert.Contains(t, labels, "Production feed rate [mm/min]")
	assert.Contains(t, labels, "Effective diameter [mm]")
}

func TestErrorField(t *testing.T) {
	_, err := newCalc().Milling(MillingInput{Material: "steel1080"})
	assert.Equal(t, "diameter", ErrorField(err))

	_, err = newCalc().Milling(MillingInput{Material: "unobtainium", Diameter: 10})
	assert.Equal(t, "material", ErrorField(err))

	assert.Empty(t, ErrorField(errors.New("disk full")))
}

func TestKindTitle(t *testing.T) {
	assert.Equal(t, "T-slot milling", TSlot.Title())
	assert.Equal(t, "boring", Kind("boring").Title())
}

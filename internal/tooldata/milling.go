package tooldata

import "cutdata/internal/cutting"

// MillingDefaults holds the non-table defaults of a trochoidal milling material.
type MillingDefaults struct {
	RadialPercent float64
	FinishFactor  float64
	Ramp          Ramp
}

// Ramp describes helical ramping limits for a material. Steeper angles than
// the default raise the feed divisor by 0.15 per degree.
type Ramp struct {
	DefaultAngle float64 `json:"default_angle_deg"`
	BaseFactor   float64 `json:"base_factor"`
	MinAngle     float64 `json:"min_angle_deg"`
	MaxAngle     float64 `json:"max_angle_deg"`
}

// Milling is the trochoidal milling catalog (fz tables in mm/tooth keyed by
// tool diameter).
var Milling = cutting.MustCatalog("milling",
	cutting.Material{Key: "steel1080", Name: "Steel (~1080 N/mm²)", Teeth: 4, CuttingSpeed: 200,
		Feed: guardedFeedTable(map[float64]float64{
			1: 0.002, 2: 0.004, 3: 0.007, 4: 0.010, 5: 0.012, 6: 0.016, 8: 0.022, 10: 0.028, 12: 0.032, 16: 0.044, 20: 0.055,
		})},
	cutting.Material{Key: "toolox44", Name: "Toolox 44 (~45 HRC)", Teeth: 4, CuttingSpeed: 100,
		Feed: guardedFeedTable(map[float64]float64{
			1: 0.002, 2: 0.004, 3: 0.006, 4: 0.009, 5: 0.011, 6: 0.014, 8: 0.020, 10: 0.025, 12: 0.030, 16: 0.040, 20: 0.050,
		})},
	cutting.Material{Key: "steel50hrc", Name: "Hardened Steel 50 HRC", Teeth: 4, CuttingSpeed: 80,
		Feed: guardedFeedTable(map[float64]float64{
			1: 0.0015, 2: 0.003, 3: 0.005, 4: 0.007, 5: 0.008, 6: 0.010, 8: 0.013, 10: 0.016, 12: 0.020, 16: 0.027, 20: 0.033,
		})},
	cutting.Material{Key: "steel60hrc", Name: "Hardened Steel 60 HRC", Teeth: 4, CuttingSpeed: 40,
		Feed: guardedFeedTable(map[float64]float64{
			1: 0.0008, 2: 0.0016, 3: 0.0024, 4: 0.0032, 5: 0.004, 6: 0.005, 8: 0.006, 10: 0.008, 12: 0.010, 16: 0.013, 20: 0.017,
		})},
	cutting.Material{Key: "vanadis", Name: "Vanadis / Powder Steel", Teeth: 4, CuttingSpeed: 150,
		Feed: guardedFeedTable(map[float64]float64{
			1: 0.002, 2: 0.004, 3: 0.0065, 4: 0.0095, 5: 0.0115, 6: 0.015, 8: 0.021, 10: 0.0265, 12: 0.031, 16: 0.042, 20: 0.0525,
		})},
	cutting.Material{Key: "nonferrous", Name: "Aluminum / Copper", Teeth: 4, CuttingSpeed: 450,
		Feed: guardedFeedTable(map[float64]float64{
			1: 0.006, 2: 0.012, 3: 0.018, 4: 0.024, 5: 0.030, 6: 0.038, 8: 0.050, 10: 0.061, 12: 0.070, 16: 0.093, 20: 0.116,
		})},
)

// MillingExtras is keyed by the Milling catalog keys.
var MillingExtras = map[string]MillingDefaults{
	"steel1080":  {RadialPercent: 10, FinishFactor: 1.0, Ramp: Ramp{DefaultAngle: 2.0, BaseFactor: 1.8, MinAngle: 1.0, MaxAngle: 5.0}},
	"toolox44":   {RadialPercent: 8, FinishFactor: 1.0, Ramp: Ramp{DefaultAngle: 2.0, BaseFactor: 1.9, MinAngle: 1.0, MaxAngle: 3.0}},
	"steel50hrc": {RadialPercent: 5, FinishFactor: 0.90, Ramp: Ramp{DefaultAngle: 1.5, BaseFactor: 2.25, MinAngle: 1.0, MaxAngle: 3.0}},
	"steel60hrc": {RadialPercent: 3, FinishFactor: 0.80, Ramp: Ramp{DefaultAngle: 1.0, BaseFactor: 2.7, MinAngle: 1.0, MaxAngle: 2.0}},
	"vanadis":    {RadialPercent: 8, FinishFactor: 1.0, Ramp: Ramp{DefaultAngle: 2.0, BaseFactor: 1.85, MinAngle: 1.0, MaxAngle: 3.0}},
	"nonferrous": {RadialPercent: 10, FinishFactor: 1.0, Ramp: Ramp{DefaultAngle: 5.0, BaseFactor: 1.5, MinAngle: 2.0, MaxAngle: 10.0}},
}

package tooldata

import "cutdata/internal/cutting"

// DefaultProductionFactor scales the standard chamfer feed to the production
// feed. It is a business constant without an engineering derivation.
const DefaultProductionFactor = 1.5

// Chamfer tables are keyed by effective diameter; the 0 row is a guard row.
var Chamfer = cutting.MustCatalog("chamfer",
	cutting.Material{Key: "steel1080", Name: "Steel (~1080 N/mm²)", Teeth: 4, CuttingSpeed: 150,
		Feed: cutting.MustFeedTable(cutting.Interpolate, map[float64]float64{
			0: 0.000, 1: 0.010, 2: 0.018, 3: 0.025, 4: 0.032, 5: 0.038, 6: 0.045, 8: 0.055, 10: 0.065, 12: 0.075, 16: 0.095, 20: 0.115,
		})},
	cutting.Material{Key: "toolox44", Name: "Toolox 44 (~45 HRC)", Teeth: 4, CuttingSpeed: 80,
		Feed: cutting.MustFeedTable(cutting.Interpolate, map[float64]float64{
			0: 0.000, 1: 0.008, 2: 0.015, 3: 0.021, 4: 0.027, 5: 0.032, 6: 0.038, 8: 0.048, 10: 0.057, 12: 0.065, 16: 0.082, 20: 0.098,
		})},
	cutting.Material{Key: "steel50hrc", Name: "Hardened Steel 50 HRC", Teeth: 4, CuttingSpeed: 60,
		Feed: cutting.MustFeedTable(cutting.Interpolate, map[float64]float64{
			0: 0.000, 1: 0.006, 2: 0.011, 3: 0.015, 4: 0.019, 5: 0.023, 6: 0.027, 8: 0.033, 10: 0.038, 12: 0.045, 16: 0.055, 20: 0.065,
		})},
	cutting.Material{Key: "steel60hrc", Name: "Hardened Steel 60 HRC", Teeth: 4, CuttingSpeed: 30,
		Feed: cutting.MustFeedTable(cutting.Interpolate, map[float64]float64{
			0: 0.000, 1: 0.003, 2: 0.005, 3: 0.008, 4: 0.010, 5: 0.012, 6: 0.014, 8: 0.018, 10: 0.021, 12: 0.025, 16: 0.030, 20: 0.036,
		})},
	cutting.Material{Key: "vanadis", Name: "Vanadis / Powder Steel", Teeth: 4, CuttingSpeed: 100,
		Feed: cutting.MustFeedTable(cutting.Interpolate, map[float64]float64{
			0: 0.000, 1: 0.008, 2: 0.015, 3: 0.021, 4: 0.027, 5: 0.032, 6: 0.038, 8: 0.048, 10: 0.057, 12: 0.065, 16: 0.082, 20: 0.098,
		})},
	cutting.Material{Key: "nonferrous", Name: "Aluminum / Copper", Teeth: 3, CuttingSpeed: 350,
		Feed: cutting.MustFeedTable(cutting.Interpolate, map[float64]float64{
			0: 0.000, 1: 0.020, 2: 0.040, 3: 0.060, 4: 0.080, 5: 0.100, 6: 0.120, 8: 0.150, 10: 0.180, 12: 0.200, 16: 0.250, 20: 0.300,
		})},
)

package tooldata

import "cutdata/internal/cutting"

// FaceMilling materials carry a mean chip thickness hm (mm) as base feed
// instead of a table. Teeth is left to the tool.
var FaceMilling = cutting.MustCatalog("face_milling",
	cutting.Material{Key: "P2", Name: "Steel: Soft (< 1100 N/mm²)", CuttingSpeed: 176, BaseFeed: 0.15},
	cutting.Material{Key: "M1", Name: "Stainless: Austenitic (< 850 N/mm²)", CuttingSpeed: 120, BaseFeed: 0.12},
	cutting.Material{Key: "P3", Name: "Steel: Hard (> 1100 N/mm²)", CuttingSpeed: 96, BaseFeed: 0.12},
	cutting.Material{Key: "T44", Name: "Steel: Toolox 44 (< 50 HRC)", CuttingSpeed: 80, BaseFeed: 0.10},
	cutting.Material{Key: "K1", Name: "Cast Iron", CuttingSpeed: 240, BaseFeed: 0.25},
	cutting.Material{Key: "N1", Name: "Aluminum", CuttingSpeed: 1200, BaseFeed: 0.30},
)

// engagementByKappa maps common lead angles to the recommended radial
// engagement range.
var engagementByKappa = map[float64]string{
	90: "90–100 %",
	75: "80–90 %",
	45: "70–80 %",
	25: "30–40 %",
	10: "10–20 %",
}

// DefaultEngagement is recommended for round inserts and uncommon lead angles.
const DefaultEngagement = "60–70 %"

// RecommendedEngagement returns the ae range recommended for lead angle kappa.
func RecommendedEngagement(kappaDeg float64) string {
	if s, ok := engagementByKappa[kappaDeg]; ok {
		return s
	}
	return DefaultEngagement
}

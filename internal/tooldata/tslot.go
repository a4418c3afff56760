package tooldata

import (
	"fmt"

	"cutdata/internal/cutting"
)

// TSlotMode selects full slotting or side milling with a T-slot cutter.
type TSlotMode string

const (
	TSlotFull TSlotMode = "full"
	TSlotSide TSlotMode = "side"
)

// TSlotTool holds one catalog per mode for a tool material. Teeth on each
// material is the base tooth count the fz table was calibrated for.
type TSlotTool struct {
	Name string
	Full cutting.Catalog
	Side cutting.Catalog
}

// Mode returns the catalog for m.
func (t TSlotTool) Mode(m TSlotMode) (cutting.Catalog, error) {
	switch m {
	case TSlotFull:
		return t.Full, nil
	case TSlotSide:
		return t.Side, nil
	default:
		return cutting.Catalog{}, &cutting.InputError{Field: "mode", Reason: fmt.Sprintf("unknown mode %q", m)}
	}
}

// Side milling defaults applied when the caller leaves a field unset.
const (
	TSlotSideRadialPercent = 10.0
	TSlotSideAxialDepth    = 5.0
	TSlotSideCornerRadius  = 0.5
	TSlotSideOverhang      = 30.0
	TSlotSideBaseTeeth     = 4
)

type tslotRow struct {
	key, name      string
	vcFull, vcSide float64
	full, side     map[float64]float64
}

// Calibrated 2025 carbide data. HSS tables were never published, so only
// carbide is offered.
var tslotCarbide = []tslotRow{
	{
		key: "steel1080", name: "Steel (~1080 N/mm²)", vcFull: 75, vcSide: 160,
		full: map[float64]float64{10: 0.040, 12: 0.048, 16: 0.060, 20: 0.075, 25: 0.085, 30: 0.090, 40: 0.100, 50: 0.110, 60: 0.118, 80: 0.130, 100: 0.140, 125: 0.148, 150: 0.155},
		side: map[float64]float64{10: 0.075, 12: 0.090, 16: 0.115, 20: 0.140, 25: 0.155, 30: 0.170, 40: 0.190, 50: 0.210, 60: 0.225, 80: 0.250, 100: 0.270, 125: 0.285, 150: 0.300},
	},
	{
		key: "toolox44", name: "Toolox 44 (~45 HRC)", vcFull: 55, vcSide: 100,
		full: map[float64]float64{10: 0.028, 12: 0.035, 16: 0.045, 20: 0.055, 25: 0.062, 30: 0.068, 40: 0.075, 50: 0.085, 60: 0.092, 80: 0.102, 100: 0.110, 125: 0.116, 150: 0.122},
		side: map[float64]float64{10: 0.055, 12: 0.065, 16: 0.085, 20: 0.105, 25: 0.115, 30: 0.125, 40: 0.145, 50: 0.160, 60: 0.172, 80: 0.190, 100: 0.205, 125: 0.215, 150: 0.225},
	},
	{
		key: "steel50hrc", name: "Hardened Steel 50 HRC", vcFull: 35, vcSide: 80,
		full: map[float64]float64{10: 0.018, 12: 0.022, 16: 0.028, 20: 0.036, 25: 0.040, 30: 0.045, 40: 0.050, 50: 0.055, 60: 0.060, 80: 0.068, 100: 0.074, 125: 0.080, 150: 0.085},
		side: map[float64]float64{10: 0.040, 12: 0.048, 16: 0.060, 20: 0.075, 25: 0.085, 30: 0.095, 40: 0.105, 50: 0.120, 60: 0.130, 80: 0.145, 100: 0.158, 125: 0.168, 150: 0.178},
	},
	{
		key: "vanadis", name: "Vanadis / Powder Steel (~60 HRC)", vcFull: 45, vcSide: 90,
		full: map[float64]float64{10: 0.022, 12: 0.027, 16: 0.035, 20: 0.045, 25: 0.050, 30: 0.055, 40: 0.062, 50: 0.070, 60: 0.076, 80: 0.085, 100: 0.092, 125: 0.098, 150: 0.103},
		side: map[float64]float64{10: 0.055, 12: 0.065, 16: 0.085, 20: 0.105, 25: 0.120, 30: 0.135, 40: 0.150, 50: 0.165, 60: 0.178, 80: 0.198, 100: 0.215, 125: 0.228, 150: 0.240},
	},
	{
		key: "nonferrous", name: "Aluminum / Copper", vcFull: 600, vcSide: 900,
		full: map[float64]float64{10: 0.12, 12: 0.15, 16: 0.20, 20: 0.25, 25: 0.28, 30: 0.32, 40: 0.36, 50: 0.40, 60: 0.44, 80: 0.50, 100: 0.55, 125: 0.60, 150: 0.64},
		side: map[float64]float64{10: 0.20, 12: 0.25, 16: 0.32, 20: 0.40, 25: 0.45, 30: 0.50, 40: 0.55, 50: 0.60, 60: 0.65, 80: 0.75, 100: 0.83, 125: 0.90, 150: 0.96},
	},
}

func buildTSlot(name string, rows []tslotRow, fullTeeth int) TSlotTool {
	full := make([]cutting.Material, 0, len(rows))
	side := make([]cutting.Material, 0, len(rows))
	for _, r := range rows {
		full = append(full, cutting.Material{
			Key: r.key, Name: r.name, Teeth: fullTeeth, CuttingSpeed: r.vcFull,
			Feed: cutting.MustFeedTable(cutting.FloorKey, r.full),
		})
		side = append(side, cutting.Material{
			Key: r.key, Name: r.name, Teeth: TSlotSideBaseTeeth, CuttingSpeed: r.vcSide,
			Feed: cutting.MustFeedTable(cutting.FloorKey, r.side),
		})
	}
	return TSlotTool{
		Name: name,
		Full: cutting.MustCatalog("tslot_full", full...),
		Side: cutting.MustCatalog("tslot_side", side...),
	}
}

// TSlot is keyed by tool material.
var TSlot = map[string]TSlotTool{
	"hm": buildTSlot("Carbide", tslotCarbide, 8),
}

// TSlotDiameters lists the stock cutter diameters in mm.
var TSlotDiameters = []float64{10, 12, 16, 20, 25, 30, 35, 40, 45, 50, 60, 70, 80, 90, 100, 110, 120, 130, 140, 150}

// RecommendedTSlotTeeth returns the suggested flute count for a cutter.
// Full slotting favours more flutes for stability.
func RecommendedTSlotTeeth(mode TSlotMode, diameter float64) int {
	if mode != TSlotFull {
		return TSlotSideBaseTeeth
	}
	switch {
	case diameter <= 16:
		return 6
	case diameter <= 32:
		return 8
	default:
		return 10
	}
}

package tooldata

import (
	"fmt"
	"strconv"
	"strings"

	"cutdata/internal/cutting"
)

// LengthClass is a drill length expressed in multiples of its diameter.
type LengthClass int

const (
	Drill5xD  LengthClass = 5
	Drill8xD  LengthClass = 8
	Drill12xD LengthClass = 12
	Drill15xD LengthClass = 15
)

// LengthClasses is ordered from shortest to longest.
var LengthClasses = []LengthClass{Drill5xD, Drill8xD, Drill12xD, Drill15xD}

func (c LengthClass) String() string {
	return strconv.Itoa(int(c)) + "xD"
}

// ParseLengthClass accepts "8xD", "8xd" or "8".
func ParseLengthClass(s string) (LengthClass, error) {
	trimmed := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "xd")
	n, err := strconv.Atoi(trimmed)
	if err == nil {
		for _, c := range LengthClasses {
			if int(c) == n {
				return c, nil
			}
		}
	}
	return 0, &cutting.InputError{Field: "length_class", Reason: fmt.Sprintf("unknown length class %q", s)}
}

// ClassForDepth returns the shortest class that reaches depth/diameter. The
// second value is false when the hole is deeper than the longest class, in
// which case the longest class is returned.
func ClassForDepth(depth, diameter float64) (LengthClass, bool) {
	ratio := depth / diameter
	for _, c := range LengthClasses {
		if ratio <= float64(c) {
			return c, true
		}
	}
	return Drill15xD, false
}

// DrillTool is the data set of one drill material. Fn is Fd * curve * Fm
// where the curve only exists for carbide.
type DrillTool struct {
	Name       string
	Materials  cutting.Catalog
	FeedFactor map[string]float64
	Feed       map[LengthClass]*cutting.FeedTable
	Curve      *cutting.FeedTable
}

// FeedTable returns the Fd table for class c.
func (t DrillTool) FeedTable(c LengthClass) (*cutting.FeedTable, error) {
	ft, ok := t.Feed[c]
	if !ok {
		return nil, &cutting.InputError{Field: "length_class", Reason: fmt.Sprintf("no %s data for %s", c, t.Name)}
	}
	return ft, nil
}

type drillRow struct {
	d                float64
	c5, c8, c12, c15 float64
}

func buildFeedTables(rows []drillRow) map[LengthClass]*cutting.FeedTable {
	cols := map[LengthClass]map[float64]float64{
		Drill5xD: {}, Drill8xD: {}, Drill12xD: {}, Drill15xD: {},
	}
	for _, r := range rows {
		cols[Drill5xD][r.d] = r.c5
		cols[Drill8xD][r.d] = r.c8
		cols[Drill12xD][r.d] = r.c12
		cols[Drill15xD][r.d] = r.c15
	}
	out := make(map[LengthClass]*cutting.FeedTable, len(cols))
	for c, m := range cols {
		out[c] = guardedFeedTable(m)
	}
	return out
}

type drillMaterial struct {
	key, name string
	fm, vc    float64
}

func buildDrillCatalog(name string, ms []drillMaterial) (cutting.Catalog, map[string]float64) {
	mats := make([]cutting.Material, 0, len(ms))
	fm := make(map[string]float64, len(ms))
	for _, m := range ms {
		mats = append(mats, cutting.Material{Key: m.key, Name: m.name, Teeth: 1, CuttingSpeed: m.vc})
		fm[m.key] = m.fm
	}
	return cutting.MustCatalog(name, mats...), fm
}

// Fd in mm/rev.
var drillFeedHM = []drillRow{
	{0.5, 0.040, 0.035, 0.030, 0.025},
	{1.0, 0.055, 0.045, 0.035, 0.030},
	{2.0, 0.075, 0.065, 0.055, 0.050},
	{2.5, 0.090, 0.075, 0.065, 0.055},
	{3.0, 0.100, 0.080, 0.070, 0.060},
	{4.0, 0.110, 0.100, 0.090, 0.080},
	{5.0, 0.140, 0.120, 0.100, 0.090},
	{6.0, 0.160, 0.140, 0.110, 0.100},
	{8.0, 0.210, 0.180, 0.140, 0.120},
	{10.0, 0.270, 0.240, 0.200, 0.180},
	{12.0, 0.300, 0.270, 0.230, 0.200},
	{14.0, 0.330, 0.290, 0.250, 0.220},
	{16.0, 0.350, 0.310, 0.270, 0.240},
	{18.0, 0.370, 0.320, 0.280, 0.250},
	{20.0, 0.400, 0.350, 0.300, 0.270},
	{22.0, 0.420, 0.370, 0.320, 0.290},
	{25.0, 0.460, 0.400, 0.330, 0.280},
}

var drillFeedHSS = []drillRow{
	{0.5, 0.028, 0.024, 0.020, 0.016},
	{1.0, 0.031, 0.027, 0.022, 0.018},
	{2.0, 0.042, 0.036, 0.030, 0.024},
	{2.5, 0.049, 0.042, 0.035, 0.028},
	{3.0, 0.052, 0.045, 0.037, 0.030},
	{4.0, 0.056, 0.048, 0.040, 0.032},
	{5.0, 0.063, 0.054, 0.045, 0.036},
	{6.0, 0.105, 0.090, 0.075, 0.060},
	{8.0, 0.140, 0.120, 0.100, 0.080},
	{10.0, 0.161, 0.138, 0.115, 0.092},
	{12.0, 0.196, 0.168, 0.140, 0.112},
	{14.0, 0.217, 0.186, 0.155, 0.124},
	{16.0, 0.231, 0.198, 0.165, 0.132},
	{18.0, 0.245, 0.210, 0.175, 0.140},
	{20.0, 0.259, 0.222, 0.185, 0.148},
	{22.0, 0.266, 0.228, 0.190, 0.152},
	{25.0, 0.266, 0.228, 0.190, 0.152},
}

// The 0 row is a sentinel; larger drills get a lower share of Fd.
var drillCurveHM = cutting.MustFeedTable(cutting.Interpolate, map[float64]float64{
	0: 1.0, 2: 0.90, 3: 0.85, 6: 0.70, 8: 0.65, 11: 0.55, 13: 0.50, 18: 0.45,
})

var drillMaterialsHM = []drillMaterial{
	{"soft_steel", "Steel: Soft (< 1100 N/mm²)", 1.0, 90},
	{"hard_steel", "Steel: Hard (> 1100 N/mm²)", 0.9, 60},
	{"toolox_44", "Steel: Toolox 44 (< 50 HRC)", 0.77, 25},
	{"stainless_austenitic", "Stainless: Austenitic (< 850 N/mm²)", 0.9, 20},
	{"hardened_steel_65", "Steel: Hardened (<65 HRC)", 0.6, 10},
	{"aluminium", "Aluminum", 1.913, 300},
}

var drillMaterialsHSS = []drillMaterial{
	{"soft_steel", "Steel: Soft (< 1100 N/mm²)", 1.0, 20},
	{"hard_steel", "Steel: Hard (> 1100 N/mm²)", 0.9, 15},
	{"toolox_44", "Steel: Toolox 44 (< 50 HRC)", 0.7, 10},
	{"stainless_austenitic", "Stainless: Austenitic (< 850 N/mm²)", 0.8, 12},
	{"hardened_steel_65", "Steel: Hardened (<65 HRC)", 0.6, 5},
	{"aluminium", "Aluminum", 1.4, 60},
}

func buildDrillTool(name, catalog string, ms []drillMaterial, rows []drillRow, curve *cutting.FeedTable) DrillTool {
	cat, fm := buildDrillCatalog(catalog, ms)
	return DrillTool{
		Name:       name,
		Materials:  cat,
		FeedFactor: fm,
		Feed:       buildFeedTables(rows),
		Curve:      curve,
	}
}

// Drilling is keyed by tool material.
var Drilling = map[string]DrillTool{
	"hm":  buildDrillTool("Carbide", "drilling_hm", drillMaterialsHM, drillFeedHM, drillCurveHM),
	"hss": buildDrillTool("HSS", "drilling_hss", drillMaterialsHSS, drillFeedHSS, nil),
}

package tooldata

import (
	"errors"
	"fmt"

	"cutdata/internal/cutting"
)

// Validate cross-checks the catalogs. It is run once at startup; any error
// is a data defect.
func Validate() error {
	var errs []error

	errs = append(errs, requireTables(Milling)...)
	errs = append(errs, requireTables(Chamfer)...)
	for _, key := range Milling.Keys() {
		if _, ok := MillingExtras[key]; !ok {
			errs = append(errs, fmt.Errorf("milling: %q has no defaults", key))
		}
	}
	for key, d := range MillingExtras {
		if !Milling.Has(key) {
			errs = append(errs, fmt.Errorf("milling defaults: %q not in catalog", key))
		}
		if d.Ramp.MinAngle > d.Ramp.DefaultAngle || d.Ramp.DefaultAngle > d.Ramp.MaxAngle {
			errs = append(errs, fmt.Errorf("milling defaults: %q default ramp angle outside its range", key))
		}
	}

	for _, m := range FaceMilling.Materials() {
		if !(m.BaseFeed > 0) || !(m.CuttingSpeed > 0) {
			errs = append(errs, fmt.Errorf("face milling: %q needs positive vc and hm", m.Key))
		}
	}

	for tool, t := range TSlot {
		errs = append(errs, requireTables(t.Full)...)
		errs = append(errs, requireTables(t.Side)...)
		if !sameKeys(t.Full.Keys(), t.Side.Keys()) {
			errs = append(errs, fmt.Errorf("tslot %s: full and side materials differ", tool))
		}
	}

	for tool, t := range Drilling {
		for _, key := range t.Materials.Keys() {
			if fm, ok := t.FeedFactor[key]; !ok || !(fm > 0) {
				errs = append(errs, fmt.Errorf("drilling %s: %q has no feed factor", tool, key))
			}
		}
		for _, c := range LengthClasses {
			if _, err := t.FeedTable(c); err != nil {
				errs = append(errs, fmt.Errorf("drilling %s: %w", tool, err))
			}
		}
	}

	return errors.Join(errs...)
}

func requireTables(c cutting.Catalog) []error {
	var errs []error
	for _, m := range c.Materials() {
		if m.Feed == nil {
			errs = append(errs, fmt.Errorf("%s: %q: %w", c.Name(), m.Key, cutting.ErrInvalidTable))
			continue
		}
		if m.Teeth <= 0 || !(m.CuttingSpeed > 0) {
			errs = append(errs, fmt.Errorf("%s: %q needs positive teeth and vc", c.Name(), m.Key))
		}
	}
	return errs
}

func sameKeys(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

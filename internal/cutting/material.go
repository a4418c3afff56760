package cutting

import "fmt"

// Material is one machinable material group of a calculator. Feed is nil for
// calculators that use a single base feed per material instead of a table.
type Material struct {
	Key          string     `json:"key"`
	Name         string     `json:"name"`
	Teeth        int        `json:"teeth"`
	CuttingSpeed float64    `json:"vc_m_min"`
	BaseFeed     float64    `json:"base_feed_mm,omitempty"`
	Feed         *FeedTable `json:"-"`
}

// Catalog is an ordered, read-only set of materials.
// Built at startup, read-only after; safe for concurrent use.
type Catalog struct {
	name  string
	order []string
	byKey map[string]Material
}

// NewCatalog returns a catalog preserving the order of ms. Duplicate or
// empty keys are rejected.
func NewCatalog(name string, ms ...Material) (Catalog, error) {
	c := Catalog{name: name, byKey: make(map[string]Material, len(ms))}
	for _, m := range ms {
		if m.Key == "" {
			return Catalog{}, fmt.Errorf("catalog %s: material without key", name)
		}
		if _, dup := c.byKey[m.Key]; dup {
			return Catalog{}, fmt.Errorf("catalog %s: duplicate material %q", name, m.Key)
		}
		c.order = append(c.order, m.Key)
		c.byKey[m.Key] = m
	}
	return c, nil
}

// MustCatalog is like NewCatalog but panics on error.
func MustCatalog(name string, ms ...Material) Catalog {
	c, err := NewCatalog(name, ms...)
	if err != nil {
		panic(err)
	}
	return c
}

func (c Catalog) Name() string { return c.name }

// Get returns the material for key or an error wrapping ErrUnknownMaterial.
func (c Catalog) Get(key string) (Material, error) {
	m, ok := c.byKey[key]
	if !ok {
		return Material{}, fmt.Errorf("%w %q for %s", ErrUnknownMaterial, key, c.name)
	}
	return m, nil
}

// Has reports whether key is in the catalog.
func (c Catalog) Has(key string) bool {
	_, ok := c.byKey[key]
	return ok
}

// Keys returns material keys in catalog order.
func (c Catalog) Keys() []string {
	return append([]string(nil), c.order...)
}

// Materials returns materials in catalog order.
func (c Catalog) Materials() []Material {
	out := make([]Material, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, c.byKey[k])
	}
	return out
}

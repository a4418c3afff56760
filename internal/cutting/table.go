package cutting

import (
	"fmt"
	"math"
	"sort"
)

// LookupPolicy selects how a FeedTable answers queries between or outside
// its keys.
type LookupPolicy int

const (
	// Interpolate returns stored values on exact keys, interpolates linearly
	// between neighbours and clamps at the ends. Queries below the second key
	// return the second key's value: the first row is a guard row.
	Interpolate LookupPolicy = iota

	// FloorKey returns the value at the greatest key <= query, or the first
	// value when the query is below every key.
	FloorKey
)

func (p LookupPolicy) String() string {
	switch p {
	case Interpolate:
		return "interpolate"
	case FloorKey:
		return "floor"
	default:
		return fmt.Sprintf("LookupPolicy(%d)", int(p))
	}
}

// Row is one diameter-keyed entry of a FeedTable.
type Row struct {
	Diameter float64 `json:"diameter"`
	Value    float64 `json:"value"`
}

// FeedTable maps diameters to empirical base feeds (mm/tooth or mm/rev).
// Tables are immutable once built.
type FeedTable struct {
	policy LookupPolicy
	keys   []float64
	values []float64
}

// NewFeedTable validates entries and returns a table using policy.
// At least two entries are required and every value must be >= 0.
func NewFeedTable(policy LookupPolicy, entries map[float64]float64) (*FeedTable, error) {
	if len(entries) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 entries, got %d", ErrInvalidTable, len(entries))
	}

	keys := make([]float64, 0, len(entries))
	for k, v := range entries {
		if math.IsNaN(k) || math.IsInf(k, 0) || k < 0 {
			return nil, fmt.Errorf("%w: bad diameter key %g", ErrInvalidTable, k)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return nil, fmt.Errorf("%w: bad value %g at diameter %g", ErrInvalidTable, v, k)
		}
		keys = append(keys, k)
	}
	sort.Float64s(keys)

	values := make([]float64, len(keys))
	for i, k := range keys {
		values[i] = entries[k]
	}

	return &FeedTable{policy: policy, keys: keys, values: values}, nil
}

// MustFeedTable is like NewFeedTable but panics on a malformed table.
// It is meant for package-level catalogs built at init.
func MustFeedTable(policy LookupPolicy, entries map[float64]float64) *FeedTable {
	t, err := NewFeedTable(policy, entries)
	if err != nil {
		panic(err)
	}
	return t
}

// Policy reports the lookup policy the table was built with.
func (t *FeedTable) Policy() LookupPolicy {
	return t.policy
}

// Rows returns a copy of the table entries in increasing diameter order.
func (t *FeedTable) Rows() []Row {
	if t == nil {
		return nil
	}
	rows := make([]Row, len(t.keys))
	for i := range t.keys {
		rows[i] = Row{Diameter: t.keys[i], Value: t.values[i]}
	}
	return rows
}

// Lookup returns the base value for diameter d according to the table policy.
func (t *FeedTable) Lookup(d float64) (float64, error) {
	if t == nil || len(t.keys) < 2 || len(t.keys) != len(t.values) {
		return 0, fmt.Errorf("%w: table not initialised", ErrInvalidTable)
	}
	if math.IsNaN(d) || d < 0 {
		return 0, &InputError{Field: "diameter", Reason: "must be a non-negative number"}
	}

	switch t.policy {
	case FloorKey:
		return t.floor(d), nil
	default:
		return t.interpolate(d), nil
	}
}

func (t *FeedTable) interpolate(d float64) float64 {
	for i, k := range t.keys {
		if d == k {
			return t.values[i]
		}
	}

	if d < t.keys[1] {
		return t.values[1]
	}

	last := len(t.keys) - 1
	for i := 1; i < last; i++ {
		d1, d2 := t.keys[i], t.keys[i+1]
		if d > d1 && d < d2 {
			v1, v2 := t.values[i], t.values[i+1]
			return v1 + (d-d1)*(v2-v1)/(d2-d1)
		}
	}

	return t.values[last]
}

func (t *FeedTable) floor(d float64) float64 {
	i := sort.Search(len(t.keys), func(i int) bool { return t.keys[i] > d })
	if i == 0 {
		return t.values[0]
	}
	return t.values[i-1]
}

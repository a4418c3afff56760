package process

import (
	"fmt"
	"sort"

	"cutdata/internal/cutting"
	"cutdata/internal/tooldata"
)

// MaterialGroup lists the materials one calculator variant offers.
type MaterialGroup struct {
	Process   Kind               `json:"process"`
	Variant   string             `json:"variant,omitempty"`
	Materials []cutting.Material `json:"materials"`
}

// NamedTable is a feed table with the key it is published under.
type NamedTable struct {
	Key   string
	Name  string
	Table *cutting.FeedTable
}

// TableSet groups the feed tables of one calculator variant.
type TableSet struct {
	Process Kind
	Variant string
	Tables  []NamedTable
}

// Title is a short label such as "tslot hm side".
func (s TableSet) Title() string {
	if s.Variant == "" {
		return string(s.Process)
	}
	return string(s.Process) + " " + s.Variant
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Groups returns every material group in display order.
func Groups() []MaterialGroup {
	groups := []MaterialGroup{
		{Process: Milling, Materials: tooldata.Milling.Materials()},
		{Process: Chamfer, Materials: tooldata.Chamfer.Materials()},
		{Process: FaceMilling, Materials: tooldata.FaceMilling.Materials()},
	}
	for _, tool := range sortedKeys(tooldata.TSlot) {
		t := tooldata.TSlot[tool]
		groups = append(groups,
			MaterialGroup{Process: TSlot, Variant: tool + " " + string(tooldata.TSlotFull), Materials: t.Full.Materials()},
			MaterialGroup{Process: TSlot, Variant: tool + " " + string(tooldata.TSlotSide), Materials: t.Side.Materials()},
		)
	}
	for _, tool := range sortedKeys(tooldata.Drilling) {
		groups = append(groups, MaterialGroup{Process: Drilling, Variant: tool, Materials: tooldata.Drilling[tool].Materials.Materials()})
	}
	return groups
}

func materialTables(c cutting.Catalog) []NamedTable {
	out := make([]NamedTable, 0, len(c.Keys()))
	for _, m := range c.Materials() {
		out = append(out, NamedTable{Key: m.Key, Name: m.Name, Table: m.Feed})
	}
	return out
}

// Tables returns every published feed table. Face milling has none.
func Tables() []TableSet {
	sets := []TableSet{
		{Process: Milling, Tables: materialTables(tooldata.Milling)},
		{Process: Chamfer, Tables: materialTables(tooldata.Chamfer)},
	}
	for _, tool := range sortedKeys(tooldata.TSlot) {
		t := tooldata.TSlot[tool]
		sets = append(sets,
			TableSet{Process: TSlot, Variant: tool + " " + string(tooldata.TSlotFull), Tables: materialTables(t.Full)},
			TableSet{Process: TSlot, Variant: tool + " " + string(tooldata.TSlotSide), Tables: materialTables(t.Side)},
		)
	}
	for _, tool := range sortedKeys(tooldata.Drilling) {
		t := tooldata.Drilling[tool]
		set := TableSet{Process: Drilling, Variant: tool}
		for _, c := range tooldata.LengthClasses {
			set.Tables = append(set.Tables, NamedTable{Key: c.String(), Name: "Fd " + c.String(), Table: t.Feed[c]})
		}
		if t.Curve != nil {
			set.Tables = append(set.Tables, NamedTable{Key: "curve", Name: "Diameter curve", Table: t.Curve})
		}
		sets = append(sets, set)
	}
	return sets
}

// TableQuery selects a feed table. Fields that do not apply to the process
// are ignored.
type TableQuery struct {
	Material     string
	ToolMaterial string
	Mode         tooldata.TSlotMode
	LengthClass  string
}

// FeedTable returns the table a calculation for q would read.
func FeedTable(k Kind, q TableQuery) (*cutting.FeedTable, error) {
	tool := q.ToolMaterial
	if tool == "" {
		tool = DefaultToolMaterial
	}

	var (
		m   cutting.Material
		err error
	)
	switch k {
	case Milling:
		m, err = tooldata.Milling.Get(q.Material)
	case Chamfer:
		m, err = tooldata.Chamfer.Get(q.Material)
	case TSlot:
		t, ok := tooldata.TSlot[tool]
		if !ok {
			return nil, &cutting.InputError{Field: "tool_material", Reason: fmt.Sprintf("no T-slot data for %q", tool)}
		}
		mode := q.Mode
		if mode == "" {
			mode = tooldata.TSlotFull
		}
		c, cerr := t.Mode(mode)
		if cerr != nil {
			return nil, cerr
		}
		m, err = c.Get(q.Material)
	case Drilling:
		t, ok := tooldata.Drilling[tool]
		if !ok {
			return nil, &cutting.InputError{Field: "tool_material", Reason: fmt.Sprintf("no drilling data for %q", tool)}
		}
		if _, err := t.Materials.Get(q.Material); err != nil {
			return nil, err
		}
		class := tooldata.Drill5xD
		if q.LengthClass != "" {
			if class, err = tooldata.ParseLengthClass(q.LengthClass); err != nil {
				return nil, err
			}
		}
		return t.FeedTable(class)
	case FaceMilling:
		return nil, &cutting.InputError{Field: "process", Reason: "face milling uses a chip thickness per material, not a table"}
	default:
		_, err = NewInput(k)
	}
	if err != nil {
		return nil, err
	}
	return m.Feed, nil
}

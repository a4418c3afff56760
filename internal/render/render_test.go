package render

import (
	"strings"
	"testing"

	"cutdata/internal/process"
	"cutdata/internal/report"
	"cutdata/internal/tooldata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildResultStringAlignsValues(t *testing.T) {
	out, err := process.New(process.DefaultSettings()).Milling(process.MillingInput{Material: "steel1080", Diameter: 10})
	require.NoError(t, err)

	s := BuildResultString(out)
	lines := strings.Split(s, "\n")
	require.Len(t, lines, len(out.Lines()))

	assert.True(t, strings.HasPrefix(lines[0], "Material"))
	assert.True(t, strings.HasSuffix(lines[2], "2255"))

	col := strings.Index(lines[1], "6366")
	require.Positive(t, col)
	assert.Equal(t, col, strings.Index(lines[2], "2255"))
}

func TestTableData(t *testing.T) {
	m, err := tooldata.Milling.Get("steel1080")
	require.NoError(t, err)

	data := TableData(m.Feed)
	require.Len(t, data, len(m.Feed.Rows())+1)
	assert.Equal(t, []string{"D [mm]", "Value"}, data[0])
}

func TestMaterialData(t *testing.T) {
	groups := process.Groups()
	total := 0
	for _, g := range groups {
		total += len(g.Materials)
	}

	data := MaterialData(groups)
	assert.Len(t, data, total+1)
	assert.Equal(t, "milling", data[1][0])
}

func TestBatchData(t *testing.T) {
	calc := process.New(process.DefaultSettings())
	results := []report.Result{
		report.Evaluate(calc, report.Row{Line: 2, Process: "drilling", Fields: map[string]string{"material": "soft_steel", "diameter_mm": "10"}}, ""),
		report.Evaluate(calc, report.Row{Line: 3, Process: "milling"}, ""),
	}

	data := BatchData(results)
	require.Len(t, data, 3)
	assert.Equal(t, []string{"2", "drilling", "soft_steel"}, data[1][:3])
	assert.Equal(t, "451", data[1][4])
	assert.Contains(t, data[2][5], "material")
}

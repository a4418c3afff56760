package report

import (
	"bytes"
	"testing"
	"time"

	"cutdata/internal/process"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func workbook(t *testing.T, rows ...[]any) *bytes.Buffer {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, r := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &r))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return &buf
}

func TestReadBatch(t *testing.T) {
	buf := workbook(t,
		[]any{"Process", " Material ", "diameter_mm", "note"},
		[]any{"milling", "steel1080", 10, "roughing"},
		[]any{},
		[]any{"drilling", "soft_steel", 10},
	)

	rows, err := ReadBatch(buf)
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, 2, rows[0].Line)
	assert.Equal(t, "milling", rows[0].Process)
	assert.Equal(t, "steel1080", rows[0].Fields["material"])
	assert.Equal(t, "10", rows[0].Fields["diameter_mm"])
	assert.Equal(t, 4, rows[1].Line)
}

func TestReadBatchRejectsBadInput(t *testing.T) {
	_, err := ReadBatch(bytes.NewReader([]byte("not a workbook")))
	require.ErrorIs(t, err, ErrWorkbook)

	_, err = ReadBatch(workbook(t, []any{"process", "material"}))
	require.ErrorIs(t, err, ErrNoRows)
}

func TestEvaluate(t *testing.T) {
	calc := process.New(process.DefaultSettings())

	res := Evaluate(calc, Row{Line: 2, Process: "milling", Fields: map[string]string{"material": "steel1080", "diameter_mm": "10"}}, "")
	require.True(t, res.OK(), res.Error)
	assert.Equal(t, process.Milling, res.Process)
	assert.Equal(t, 2255, res.Output.FeedRate)

	res = Evaluate(calc, Row{Line: 3, Fields: map[string]string{"material": "steel1080", "diameter_mm": "10"}}, process.Milling)
	assert.True(t, res.OK())

	res = Evaluate(calc, Row{Line: 4, Fields: map[string]string{"material": "steel1080"}}, "")
	assert.False(t, res.OK())
	assert.Equal(t, ProcessColumn, res.Field)

	res = Evaluate(calc, Row{Line: 5, Process: "turning"}, "")
	assert.Equal(t, "process", res.Field)

	res = Evaluate(calc, Row{Line: 6, Process: "milling", Fields: map[string]string{"material": "steel1080"}}, "")
	assert.Equal(t, "diameter", res.Field)
	assert.NotEmpty(t, res.Error)
}

func TestWriteResults(t *testing.T) {
	calc := process.New(process.DefaultSettings())
	results := []Result{
		Evaluate(calc, Row{Line: 2, Process: "milling", Fields: map[string]string{"material": "steel1080", "diameter_mm": "10"}}, ""),
		Evaluate(calc, Row{Line: 3, Process: "turning"}, ""),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteResults(&buf, results))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Results")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Row", rows[0][0])
	assert.Equal(t, "2", rows[1][0])
	assert.Equal(t, "steel1080", rows[1][2])
	assert.Equal(t, "2255", rows[1][8])

	errCell, err := f.GetCellValue("Results", "L3")
	require.NoError(t, err)
	assert.Contains(t, errCell, "turning")
}

func TestWriteTables(t *testing.T) {
	sets := process.Tables()

	var buf bytes.Buffer
	require.NoError(t, WriteTables(&buf, sets))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	titles := make([]string, len(sets))
	for i, s := range sets {
		titles[i] = s.Title()
	}
	assert.Equal(t, titles, f.GetSheetList())

	head, err := f.GetCellValue("milling", "A1")
	require.NoError(t, err)
	assert.Equal(t, "D [mm]", head)

	first, err := f.GetCellValue("milling", "B1")
	require.NoError(t, err)
	assert.Equal(t, sets[0].Tables[0].Name, first)
}

func TestWriteSheet(t *testing.T) {
	calc := process.New(process.DefaultSettings())
	ae := 60.0
	out, err := calc.Milling(process.MillingInput{Material: "steel1080", Diameter: 10, RadialPercent: &ae})
	require.NoError(t, err)
	require.NotEmpty(t, out.Warnings)

	var buf bytes.Buffer
	require.NoError(t, WriteSheet(&buf, out, time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF-")))
}

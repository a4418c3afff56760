package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestMain(m *testing.M) {
	pterm.DisableOutput()
	os.Exit(m.Run())
}

func TestParseAssignments(t *testing.T) {
	fields, err := parseAssignments([]string{"Material=steel1080", "diameter_mm=10", "note="})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"material": "steel1080", "diameter_mm": "10", "note": ""}, fields)

	_, err = parseAssignments([]string{"diameter_mm"})
	require.Error(t, err)

	_, err = parseAssignments([]string{"=10"})
	require.Error(t, err)
}

func TestRunCalculationWritesSheet(t *testing.T) {
	pdf := filepath.Join(t.TempDir(), "sheet.pdf")

	err := run([]string{"-pdf", pdf, "milling", "material=steel1080", "diameter_mm=10"})
	require.NoError(t, err)

	data, err := os.ReadFile(pdf)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF-")))
}

func TestRunRejectsBadInput(t *testing.T) {
	err := run([]string{"milling", "material=steel1080"})
	require.ErrorContains(t, err, "diameter")

	err = run([]string{"turning", "material=steel1080"})
	require.Error(t, err)

	err = run(nil)
	require.ErrorIs(t, err, errUsage)
}

func TestRunTablesAndMaterials(t *testing.T) {
	require.NoError(t, run([]string{"materials"}))
	require.NoError(t, run([]string{"materials", "drilling"}))
	require.NoError(t, run([]string{"table", "tslot", "steel1080", "mode=side"}))
	require.NoError(t, run([]string{"table", "drilling", "soft_steel", "tool=hss", "class=12xD"}))
	require.Error(t, run([]string{"table", "milling"}))
}

func TestRunBatch(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.xlsx")
	out := filepath.Join(dir, "out.xlsx")

	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]any{"material", "diameter_mm"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]any{"soft_steel", 10}))
	require.NoError(t, f.SaveAs(in))
	require.NoError(t, f.Close())

	require.NoError(t, run([]string{"-o", out, "batch", in, "drilling"}))

	res, err := excelize.OpenFile(out)
	require.NoError(t, err)
	defer res.Close()
	feed, err := res.GetCellValue("Results", "I2")
	require.NoError(t, err)
	assert.Equal(t, "451", feed)
}

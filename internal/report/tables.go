package report

import (
	"io"
	"math"
	"sort"

	"cutdata/internal/process"

	"github.com/xuri/excelize/v2"
)

func roundTo(v float64, prec int) float64 {
	p := math.Pow(10, float64(prec))
	return math.Round(v*p) / p
}

// WriteTables writes one sheet per table set. Column A holds the diameters
// of all tables in the set, every further column one table.
func WriteTables(w io.Writer, sets []process.TableSet) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, set := range sets {
		sheet := set.Title()
		if i == 0 {
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return err
			}
		} else if _, err := f.NewSheet(sheet); err != nil {
			return err
		}
		if err := writeTableSet(f, sheet, set); err != nil {
			return err
		}
	}
	f.SetActiveSheet(0)
	return f.Write(w)
}

func writeTableSet(f *excelize.File, sheet string, set process.TableSet) error {
	header := []any{"D [mm]"}
	byDiameter := map[float64][]any{}
	for col, nt := range set.Tables {
		header = append(header, nt.Name)
		for _, row := range nt.Table.Rows() {
			vals, ok := byDiameter[row.Diameter]
			if !ok {
				vals = make([]any, len(set.Tables))
			}
			vals[col] = row.Value
			byDiameter[row.Diameter] = vals
		}
	}

	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}
	if err := boldRow(f, sheet, 1); err != nil {
		return err
	}

	diameters := make([]float64, 0, len(byDiameter))
	for d := range byDiameter {
		diameters = append(diameters, d)
	}
	sort.Float64s(diameters)

	for i, d := range diameters {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		row := append([]any{d}, byDiameter[d]...)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return err
		}
	}
	return nil
}

package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"cutdata/internal/process"

	"github.com/xuri/excelize/v2"
)

var (
	// ErrWorkbook marks an upload that is not a readable workbook.
	ErrWorkbook = errors.New("unreadable workbook")
	// ErrNoRows is returned for a workbook without data rows.
	ErrNoRows = errors.New("workbook has no data rows")
)

// ProcessColumn is the header of the optional column naming the calculator
// for each row.
const ProcessColumn = "process"

// Row is one data row of a batch workbook. Fields are keyed by the
// lower-cased header of their column.
type Row struct {
	Line    int
	Process string
	Fields  map[string]string
}

// ReadBatch reads the first sheet of an xlsx workbook. The first row holds
// input field names, every following non-empty row is one calculation.
func ReadBatch(r io.Reader) ([]Row, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWorkbook, err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWorkbook, err)
	}
	if len(rows) < 2 {
		return nil, ErrNoRows
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = strings.ToLower(strings.TrimSpace(h))
	}

	var out []Row
	for i, cells := range rows[1:] {
		fields := make(map[string]string, len(cells))
		for j, v := range cells {
			v = strings.TrimSpace(v)
			if j >= len(header) || header[j] == "" || v == "" {
				continue
			}
			fields[header[j]] = v
		}
		if len(fields) == 0 {
			continue
		}
		out = append(out, Row{Line: i + 2, Process: fields[ProcessColumn], Fields: fields})
	}
	if len(out) == 0 {
		return nil, ErrNoRows
	}
	return out, nil
}

// Result is the outcome of one batch row.
type Result struct {
	Line    int             `json:"row"`
	Process process.Kind    `json:"process,omitempty"`
	Output  *process.Output `json:"result,omitempty"`
	Error   string          `json:"error,omitempty"`
	Field   string          `json:"field,omitempty"`
}

// OK reports whether the row was calculated.
func (r Result) OK() bool { return r.Output != nil }

// Evaluate calculates one row. Rows without a process column use def; an
// empty def makes the column mandatory.
func Evaluate(calc *process.Calculator, row Row, def process.Kind) Result {
	res := Result{Line: row.Line, Process: def}
	if row.Process != "" {
		k, err := process.ParseKind(row.Process)
		if err != nil {
			return res.failed(err)
		}
		res.Process = k
	}
	if res.Process == "" {
		res.Error = "process column is empty"
		res.Field = ProcessColumn
		return res
	}

	in, err := process.ParseFields(res.Process, row.Fields)
	if err != nil {
		return res.failed(err)
	}
	out, err := calc.Calculate(in)
	if err != nil {
		return res.failed(err)
	}
	res.Output = &out
	return res
}

func (r Result) failed(err error) Result {
	r.Error = err.Error()
	r.Field = process.ErrorField(err)
	return r
}

var resultHeader = []any{
	"Row", "Process", "Material", "Spindle speed [rpm]", "Capped", "Vc actual [m/min]",
	"Teeth", "Corrected feed [mm]", "Feed rate [mm/min]", "Production feed rate [mm/min]",
	"Warnings", "Error",
}

// WriteResults writes results as a single-sheet workbook, one row per input
// row.
func WriteResults(w io.Writer, results []Result) error {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Results"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, "A1", &resultHeader); err != nil {
		return err
	}
	if err := boldRow(f, sheet, 1); err != nil {
		return err
	}

	for i, r := range results {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		values := []any{r.Line, string(r.Process)}
		if o := r.Output; o != nil {
			codes := make([]string, len(o.Warnings))
			for j, warn := range o.Warnings {
				codes[j] = string(warn.Code)
			}
			values = append(values,
				o.Material, roundTo(o.SpindleSpeed, 0), o.Capped, roundTo(o.ActualVc, 1),
				o.Teeth, roundTo(o.CorrectedFeed, 4), o.FeedRate, o.ProductionFeedRate,
				strings.Join(codes, ", "), "",
			)
		} else {
			values = append(values, "", "", "", "", "", "", "", "", "", r.Error)
		}
		if err := f.SetSheetRow(sheet, cell, &values); err != nil {
			return err
		}
	}
	return f.Write(w)
}

func boldRow(f *excelize.File, sheet string, row int) error {
	style, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	return f.SetRowStyle(sheet, row, row, style)
}

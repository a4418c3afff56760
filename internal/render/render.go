// Package render prints calculation results and feed tables to the terminal.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"cutdata/internal/cutting"
	"cutdata/internal/process"
	"cutdata/internal/report"

	"github.com/pterm/pterm"
)

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Result displays out in a titled box followed by its warnings.
func Result(out process.Output) {
	title := fmt.Sprintf("%s | %s", out.Process.Title(), out.MaterialName)
	pterm.DefaultBox.WithTitle(title).WithTitleTopLeft().Println(BuildResultString(out))
	for _, w := range out.Warnings {
		pterm.Warning.Println(w.Message)
	}
}

// BuildResultString lays out the result lines in two aligned columns.
func BuildResultString(out process.Output) string {
	lines := out.Lines()

	width := 0
	for _, l := range lines {
		if n := len([]rune(l.Label)); n > width {
			width = n
		}
	}

	var b strings.Builder
	for i, l := range lines {
		if i > 0 {
			b.WriteString("\n")
		}
		pad := width - len([]rune(l.Label))
		b.WriteString(l.Label)
		b.WriteString(strings.Repeat(" ", pad+2))
		b.WriteString(l.Value)
	}
	return b.String()
}

// Table displays a feed table under a section header.
func Table(title string, t *cutting.FeedTable) error {
	pterm.DefaultSection.Println(title)
	pterm.Info.Printf("Lookup policy: %s\n", t.Policy())
	return pterm.DefaultTable.WithHasHeader().WithData(TableData(t)).Render()
}

// TableData returns the rows of t with a header row.
func TableData(t *cutting.FeedTable) pterm.TableData {
	data := pterm.TableData{{"D [mm]", "Value"}}
	for _, r := range t.Rows() {
		data = append(data, []string{num(r.Diameter), num(r.Value)})
	}
	return data
}

// Materials displays every material group in one table.
func Materials(groups []process.MaterialGroup) error {
	pterm.DefaultHeader.WithFullWidth().Println("Materials")
	return pterm.DefaultTable.WithHasHeader().WithData(MaterialData(groups)).Render()
}

// MaterialData flattens groups to one row per material.
func MaterialData(groups []process.MaterialGroup) pterm.TableData {
	data := pterm.TableData{{"Process", "Variant", "Key", "Name", "Teeth", "Vc [m/min]"}}
	for _, g := range groups {
		for _, m := range g.Materials {
			data = append(data, []string{
				string(g.Process),
				g.Variant,
				m.Key,
				m.Name,
				strconv.Itoa(m.Teeth),
				num(m.CuttingSpeed),
			})
		}
	}
	return data
}

// Batch displays batch results and a summary line.
func Batch(results []report.Result) error {
	if err := pterm.DefaultTable.WithHasHeader().WithData(BatchData(results)).Render(); err != nil {
		return err
	}
	failed := 0
	for _, r := range results {
		if !r.OK() {
			failed++
		}
	}
	if failed > 0 {
		pterm.Warning.Printf("%d of %d rows failed\n", failed, len(results))
		return nil
	}
	pterm.Success.Printf("%d rows calculated\n", len(results))
	return nil
}

// BatchData returns one row per batch result.
func BatchData(results []report.Result) pterm.TableData {
	data := pterm.TableData{{"Row", "Process", "Material", "n [rpm]", "Vf [mm/min]", "Status"}}
	for _, r := range results {
		row := []string{strconv.Itoa(r.Line), string(r.Process)}
		if o := r.Output; o != nil {
			status := "ok"
			if len(o.Warnings) > 0 {
				status = fmt.Sprintf("%d warning(s)", len(o.Warnings))
			}
			row = append(row, o.Material, strconv.FormatFloat(o.SpindleSpeed, 'f', 0, 64), strconv.Itoa(o.FeedRate), status)
		} else {
			row = append(row, "", "", "", r.Error)
		}
		data = append(data, row)
	}
	return data
}

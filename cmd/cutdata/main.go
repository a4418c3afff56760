// Command cutdata calculates cutting data in the terminal.
//
//	cutdata [flags] <process> key=value ...
//	cutdata materials [process]
//	cutdata table <process> <material> [tool=hm] [mode=side] [class=8xD]
//	cutdata batch <workbook.xlsx> [process]
package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"cutdata/internal/config"
	"cutdata/internal/process"
	"cutdata/internal/render"
	"cutdata/internal/report"
	"cutdata/internal/tooldata"

	"github.com/pterm/pterm"
)

var errUsage = errors.New("missing command")

func main() {
	if err := run(os.Args[1:]); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			pterm.Error.Println(err)
		}
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("cutdata", flag.ContinueOnError)
	maxRPM := fs.Float64("max-rpm", -1, "spindle limit in rpm, 0 for none (default CUTDATA_DEFAULT_MAX_RPM)")
	pdfPath := fs.String("pdf", "", "write the result as a PDF sheet to this file")
	outPath := fs.String("o", "", "batch: write the results workbook to this file")
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), "Usage: cutdata [flags] <process> key=value ...")
		fmt.Fprintln(fs.Output(), "       cutdata materials [process]")
		fmt.Fprintln(fs.Output(), "       cutdata table <process> <material> [tool=] [mode=] [class=]")
		fmt.Fprintln(fs.Output(), "       cutdata batch <workbook.xlsx> [process]")
		fmt.Fprintf(fs.Output(), "Processes: %s\n", kindList())
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) == 0 {
		fs.Usage()
		return errUsage
	}

	if err := tooldata.Validate(); err != nil {
		return fmt.Errorf("feed data: %w", err)
	}
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	settings := cfg.Settings()
	if *maxRPM >= 0 {
		settings.DefaultMaxRPM = *maxRPM
	}
	calc := process.New(settings)

	switch rest[0] {
	case "materials":
		return materials(rest[1:])
	case "table":
		return table(rest[1:])
	case "batch":
		return batch(calc, rest[1:], *outPath)
	default:
		return calculate(calc, rest, *pdfPath)
	}
}

func kindList() string {
	names := make([]string, len(process.Kinds))
	for i, k := range process.Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

// parseAssignments splits key=value arguments.
func parseAssignments(args []string) (map[string]string, error) {
	fields := make(map[string]string, len(args))
	for _, a := range args {
		key, value, ok := strings.Cut(a, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("argument %q is not key=value", a)
		}
		fields[strings.ToLower(key)] = value
	}
	return fields, nil
}

func calculate(calc *process.Calculator, args []string, pdfPath string) error {
	kind, err := process.ParseKind(args[0])
	if err != nil {
		return err
	}
	fields, err := parseAssignments(args[1:])
	if err != nil {
		return err
	}
	in, err := process.ParseFields(kind, fields)
	if err != nil {
		return err
	}
	out, err := calc.Calculate(in)
	if err != nil {
		if field := process.ErrorField(err); field != "" {
			return fmt.Errorf("fill in required fields (%s): %w", field, err)
		}
		return err
	}

	render.Result(out)

	if pdfPath == "" {
		return nil
	}
	f, err := os.Create(pdfPath)
	if err != nil {
		return err
	}
	if err := report.WriteSheet(f, out, time.Now()); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", pdfPath, err)
	}
	if err := f.Close(); err != nil {
		return err
	}
	pterm.Success.Printf("Sheet written to %s\n", pdfPath)
	return nil
}

func materials(args []string) error {
	groups := process.Groups()
	if len(args) > 0 {
		kind, err := process.ParseKind(args[0])
		if err != nil {
			return err
		}
		filtered := groups[:0]
		for _, g := range groups {
			if g.Process == kind {
				filtered = append(filtered, g)
			}
		}
		groups = filtered
	}
	return render.Materials(groups)
}

func table(args []string) error {
	if len(args) < 2 {
		return errors.New("table needs a process and a material")
	}
	kind, err := process.ParseKind(args[0])
	if err != nil {
		return err
	}
	opts, err := parseAssignments(args[2:])
	if err != nil {
		return err
	}
	t, err := process.FeedTable(kind, process.TableQuery{
		Material:     args[1],
		ToolMaterial: opts["tool"],
		Mode:         tooldata.TSlotMode(opts["mode"]),
		LengthClass:  opts["class"],
	})
	if err != nil {
		return err
	}
	return render.Table(fmt.Sprintf("%s feed table: %s", kind.Title(), args[1]), t)
}

func batch(calc *process.Calculator, args []string, outPath string) error {
	if len(args) == 0 {
		return errors.New("batch needs a workbook")
	}
	var def process.Kind
	if len(args) > 1 {
		k, err := process.ParseKind(args[1])
		if err != nil {
			return err
		}
		def = k
	}

	f, err := os.Open(args[0])
	if err != nil {
		return err
	}
	rows, err := report.ReadBatch(f)
	f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	results := make([]report.Result, 0, len(rows))
	for _, row := range rows {
		results = append(results, report.Evaluate(calc, row, def))
	}
	if err := render.Batch(results); err != nil {
		return err
	}

	if outPath == "" {
		return nil
	}
	out, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := report.WriteResults(out, results); err != nil {
		out.Close()
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	if err := out.Close(); err != nil {
		return err
	}
	pterm.Success.Printf("Results written to %s\n", outPath)
	return nil
}

// BoxStack — Box Stacking Optimizer
//
// A command-line tool that finds the tallest tower buildable from a list of
// boxes. Each box may be rotated into any of its three upright orientations
// but used at most once, and every box must have a strictly smaller footprint
// than the box below it.
//
// Build:
//   go build -o boxstack ./cmd/boxstack
//
// Usage:
//   boxstack [flags] <input-file>
//   boxstack -set "Nested cubes" [flags]
//
// Input files may be plain text (one box per line as three integers), CSV, or
// Excel (.xlsx). The result is printed to stdout, one level per line from the
// top of the stack down:
//   width depth height cumulative-height

package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fatih/color"

	"github.com/piwi3910/BoxStack/internal/engine"
	"github.com/piwi3910/BoxStack/internal/export"
	"github.com/piwi3910/BoxStack/internal/importer"
	"github.com/piwi3910/BoxStack/internal/model"
	"github.com/piwi3910/BoxStack/internal/project"
)

var (
	statusColor  = color.New(color.FgCyan)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed, color.Bold)
	successColor = color.New(color.FgGreen)
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("boxstack", flag.ExitOnError)

	var (
		temp     = fs.Float64("temp", 0, "initial annealing temperature (0 = configured default)")
		cooling  = fs.Float64("cooling", 0, "cooling rate (0 = configured default)")
		schedule = fs.String("schedule", "", "cooling schedule: geometric or linear (empty = configured default)")
		trials   = fs.Int("trials", 0, "trial moves per temperature step (0 = configured default)")
		seed     = fs.Int64("seed", 0, "random seed (0 = seed from clock)")
		runs     = fs.Int("runs", 1, "number of parallel annealing runs; the tallest result wins")
		compare  = fs.Bool("compare", false, "run what-if scenarios with varied parameters and print a comparison")
		setName  = fs.String("set", "", "solve a named box set from the library instead of an input file")
		saveSet  = fs.String("save-set", "", "save the imported boxes to the library under this name")
		saveProj = fs.String("save-project", "", "write boxes, settings, and result to a project file")
		pdfOut   = fs.String("pdf", "", "export the result as a PDF drawing to this path")
		dxfOut   = fs.String("dxf", "", "export the result as a DXF drawing to this path")
		labels   = fs.String("labels", "", "export QR-coded level labels as a PDF to this path")
		backup   = fs.String("backup", "", "export all application data (config and library) to this path and exit")
		restore  = fs.String("restore", "", "import application data from a backup file and exit")
		quiet    = fs.Bool("quiet", false, "suppress status output on stderr")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	configPath := project.DefaultConfigPath()
	config, err := project.LoadAppConfig(configPath)
	if err != nil {
		warnColor.Fprintf(os.Stderr, "Warning: could not load config, using defaults: %v\n", err)
		config = model.DefaultAppConfig()
	}

	if *backup != "" || *restore != "" {
		return runBackup(configPath, config, *backup, *restore)
	}

	settings := model.DefaultSettings()
	config.ApplyToSettings(&settings)
	if *temp > 0 {
		settings.InitialTemperature = *temp
	}
	if *cooling > 0 {
		settings.CoolingRate = *cooling
	}
	if *schedule != "" {
		settings.Schedule = model.CoolingSchedule(*schedule)
	}
	if *trials > 0 {
		settings.TrialsPerStep = *trials
	}
	settings.Seed = *seed

	boxes, source, err := loadBoxes(fs.Args(), *setName, *quiet)
	if err != nil {
		return err
	}
	if !*quiet {
		statusColor.Fprintf(os.Stderr, "Loaded %d boxes from %s\n", len(boxes), source)
	}

	if *saveSet != "" {
		if err := saveToLibrary(*saveSet, boxes, *quiet); err != nil {
			return err
		}
	}

	if *compare {
		return runComparison(settings, boxes)
	}

	var result model.Stack
	if *runs > 1 {
		if !*quiet {
			statusColor.Fprintf(os.Stderr, "Annealing %d runs in parallel...\n", *runs)
		}
		result, err = engine.SolveParallel(settings, boxes, *runs)
	} else {
		result, err = engine.New(settings).Solve(boxes)
	}
	if err != nil {
		return err
	}

	for _, level := range result.Levels() {
		fmt.Printf("%d %d %d %d\n", level.Width, level.Depth, level.Height, level.CumulativeHeight)
	}
	if !*quiet {
		successColor.Fprintf(os.Stderr, "Total height %d using %d of %d boxes\n",
			result.Height(), len(result), len(boxes))
	}

	if *pdfOut != "" {
		if err := export.ExportPDF(*pdfOut, result); err != nil {
			return fmt.Errorf("PDF export failed: %w", err)
		}
		if !*quiet {
			statusColor.Fprintf(os.Stderr, "Wrote PDF drawing to %s\n", *pdfOut)
		}
	}
	if *dxfOut != "" {
		if err := export.ExportDXF(*dxfOut, result); err != nil {
			return fmt.Errorf("DXF export failed: %w", err)
		}
		if !*quiet {
			statusColor.Fprintf(os.Stderr, "Wrote DXF drawing to %s\n", *dxfOut)
		}
	}
	if *labels != "" {
		if err := export.ExportLabels(*labels, result); err != nil {
			return fmt.Errorf("label export failed: %w", err)
		}
		if !*quiet {
			statusColor.Fprintf(os.Stderr, "Wrote level labels to %s\n", *labels)
		}
	}

	if *saveProj != "" {
		p := model.Project{
			Name:     strings.TrimSuffix(filepath.Base(*saveProj), filepath.Ext(*saveProj)),
			Boxes:    boxes,
			Settings: settings,
			Result:   result,
		}
		if err := project.SaveProject(*saveProj, p); err != nil {
			return fmt.Errorf("failed to save project: %w", err)
		}
		if !*quiet {
			statusColor.Fprintf(os.Stderr, "Saved project to %s\n", *saveProj)
		}
	}

	if len(fs.Args()) > 0 {
		config.RememberInput(fs.Args()[0])
		if err := project.SaveAppConfig(configPath, config); err != nil && !*quiet {
			warnColor.Fprintf(os.Stderr, "Warning: could not save config: %v\n", err)
		}
	}

	return nil
}

// loadBoxes resolves the box list from either a named library set or an
// input file chosen by extension. Project files (.json) are loaded as saved
// projects.
func loadBoxes(args []string, setName string, quiet bool) ([]model.Box, string, error) {
	if setName != "" {
		lib, _, err := project.LoadOrCreateLibrary()
		if err != nil {
			return nil, "", fmt.Errorf("failed to load library: %w", err)
		}
		set := lib.FindSetByName(setName)
		if set == nil {
			return nil, "", fmt.Errorf("no box set named %q in library (available: %s)",
				setName, strings.Join(lib.SetNames(), ", "))
		}
		boxes := make([]model.Box, len(set.Boxes))
		for i, b := range set.Boxes {
			b.Index = i
			boxes[i] = b
		}
		return boxes, fmt.Sprintf("library set %q", setName), nil
	}

	if len(args) == 0 {
		return nil, "", fmt.Errorf("no input file given (or use -set to solve a library set)")
	}
	path := args[0]

	var result importer.ImportResult
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		result = importer.ImportCSV(path)
	case ".xlsx":
		result = importer.ImportExcel(path)
	case ".json":
		p, err := project.LoadProject(path)
		if err != nil {
			return nil, "", err
		}
		if len(p.Boxes) == 0 {
			return nil, "", engine.ErrNoBoxes
		}
		return p.Boxes, fmt.Sprintf("project %q", p.Name), nil
	default:
		result = importer.ImportText(path)
	}

	if !quiet {
		for _, w := range result.Warnings {
			warnColor.Fprintf(os.Stderr, "Warning: %s\n", w)
		}
	}
	if len(result.Errors) > 0 {
		return nil, "", fmt.Errorf("import failed: %s", strings.Join(result.Errors, "; "))
	}
	return result.Boxes, path, nil
}

// saveToLibrary stores the boxes as a named set, replacing any set with the
// same name.
func saveToLibrary(name string, boxes []model.Box, quiet bool) error {
	lib, path, err := project.LoadOrCreateLibrary()
	if err != nil {
		return fmt.Errorf("failed to load library: %w", err)
	}
	if existing := lib.FindSetByName(name); existing != nil {
		existing.Boxes = boxes
	} else {
		lib.Sets = append(lib.Sets, model.NewBoxSet(name, boxes))
	}
	if err := project.SaveLibrary(path, lib); err != nil {
		return fmt.Errorf("failed to save library: %w", err)
	}
	if !quiet {
		statusColor.Fprintf(os.Stderr, "Saved box set %q to library\n", name)
	}
	return nil
}

// runComparison solves the what-if scenarios and prints a comparison table.
func runComparison(settings model.SolveSettings, boxes []model.Box) error {
	scenarios := engine.BuildDefaultScenarios(settings)
	results := engine.CompareScenarios(scenarios, boxes)

	bold := color.New(color.Bold)
	bold.Printf("%-32s %10s %10s\n", "Scenario", "Height", "Boxes")
	fmt.Println(strings.Repeat("-", 54))

	bestHeight := 0
	for _, r := range results {
		if r.Err == nil && r.Height > bestHeight {
			bestHeight = r.Height
		}
	}
	for _, r := range results {
		if r.Err != nil {
			errorColor.Printf("%-32s %s\n", r.Scenario.Name, r.Err)
			continue
		}
		line := fmt.Sprintf("%-32s %10d %10d", r.Scenario.Name, r.Height, r.BoxesUsed)
		if r.Height == bestHeight {
			successColor.Println(line + "  *")
		} else {
			fmt.Println(line)
		}
	}
	return nil
}

// runBackup handles the -backup and -restore modes.
func runBackup(configPath string, config model.AppConfig, backupPath, restorePath string) error {
	if backupPath != "" {
		lib, _, err := project.LoadOrCreateLibrary()
		if err != nil {
			return fmt.Errorf("failed to load library: %w", err)
		}
		if err := project.ExportAllData(backupPath, config, lib); err != nil {
			return err
		}
		successColor.Fprintf(os.Stderr, "Exported application data to %s\n", backupPath)
		return nil
	}

	backup, err := project.ImportAllData(restorePath)
	if err != nil {
		return err
	}
	if err := project.SaveAppConfig(configPath, backup.Config); err != nil {
		return fmt.Errorf("failed to apply imported config: %w", err)
	}
	libPath, err := project.DefaultLibraryPath()
	if err != nil {
		return err
	}
	if err := project.SaveLibrary(libPath, backup.Library); err != nil {
		return fmt.Errorf("failed to apply imported library: %w", err)
	}
	successColor.Fprintf(os.Stderr, "Imported application data from %s\n", restorePath)
	return nil
}

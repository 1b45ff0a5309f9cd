package commands

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/MartinPratoussy/oitools/merger"
	"github.com/MartinPratoussy/oitools/oifits"
	"github.com/MartinPratoussy/oitools/selector"
)

// MergeFlags holds the bound flag.FlagSet variables for the merge command.
type MergeFlags struct {
	Output   string
	Selector string
	Standard string
	Report   string
	Quiet    bool
}

// SetupMergeFlags creates and configures the FlagSet for the merge command.
func SetupMergeFlags() (*flag.FlagSet, *MergeFlags) {
	fs := flag.NewFlagSet("merge", flag.ContinueOnError)
	flags := &MergeFlags{}

	fs.StringVar(&flags.Output, "o", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Output, "output", "", "output file path (default: stdout)")
	fs.StringVar(&flags.Selector, "selector", "", "selector YAML config path restricting the merge")
	fs.StringVar(&flags.Standard, "standard", "", "force the output standard (OIFITS1 or OIFITS2); default picks the max of the inputs")
	fs.StringVar(&flags.Report, "report", "", "write the merge report as JSON to this path")
	fs.BoolVar(&flags.Quiet, "q", false, "quiet mode: suppress diagnostic messages")
	fs.BoolVar(&flags.Quiet, "quiet", false, "quiet mode: suppress diagnostic messages")

	fs.Usage = func() {
		Writef(fs.Output(), "Usage: oifits-merge merge [flags] <file1.json> [file2.json...]\n\n")
		Writef(fs.Output(), "Merge one or more OIFITS documents (JSON interchange format, see docio.go)\n")
		Writef(fs.Output(), "into a single self-consistent document.\n\n")
		Writef(fs.Output(), "Flags:\n")
		fs.PrintDefaults()
		Writef(fs.Output(), "\nExamples:\n")
		Writef(fs.Output(), "  oifits-merge merge -o merged.json night1.json night2.json\n")
		Writef(fs.Output(), "  oifits-merge merge --selector selector.yaml --report report.json a.json b.json\n")
	}

	return fs, flags
}

// HandleMerge executes the merge command.
func HandleMerge(args []string) error {
	fs, flags := SetupMergeFlags()
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if fs.NArg() < 1 {
		fs.Usage()
		return fmt.Errorf("merge command requires at least 1 input file")
	}
	inputPaths := fs.Args()

	var std oifits.Standard
	if flags.Standard != "" {
		parsed, err := parseStandard(flags.Standard)
		if err != nil {
			return err
		}
		std = parsed
	}

	if flags.Output != "" {
		if err := ValidateOutputPath(flags.Output, inputPaths); err != nil {
			return err
		}
	}

	tm := oifits.NewTargetManager()
	files := make([]*oifits.OIFitsFile, 0, len(inputPaths))
	for _, path := range inputPaths {
		f, err := LoadDocument(path, tm)
		if err != nil {
			return err
		}
		files = append(files, f)
	}
	collection := oifits.NewOIFitsCollection(files...)

	var sel *selector.Selector
	if flags.Selector != "" {
		cfg, err := selector.LoadConfig(flags.Selector)
		if err != nil {
			return err
		}
		sel = cfg.Build(collection)
	}

	result, err := merger.MergeWithStandard(collection, sel, std)
	if err != nil {
		return fmt.Errorf("merging: %w", err)
	}

	if err := SaveDocument(flags.Output, result.File); err != nil {
		return err
	}

	if flags.Report != "" {
		data, err := json.MarshalIndent(result.Report, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling merge report: %w", err)
		}
		if err := os.WriteFile(flags.Report, append(data, '\n'), 0o644); err != nil {
			return fmt.Errorf("writing report %s: %w", flags.Report, err)
		}
	}

	if !flags.Quiet {
		Writef(os.Stderr, "oifits-merge\n")
		Writef(os.Stderr, "============\n\n")
		Writef(os.Stderr, "Merged %d input file(s)\n", len(inputPaths))
		Writef(os.Stderr, "Output standard: %s\n", result.File.Standard)
		Writef(os.Stderr, "Data tables: %d\n", len(result.File.Data))
		Writef(os.Stderr, "Run ID: %s\n", result.Report.RunID)
		Writef(os.Stderr, "Collisions resolved: %d (renamed %d, deduped %d)\n",
			result.Report.TotalCollisions, result.Report.ResolvedByRename, result.Report.ResolvedByDedup)
		if result.Report.TotalMissingReferences > 0 {
			Writef(os.Stderr, "Missing references: %d\n", result.Report.TotalMissingReferences)
		}
		if result.Report.TotalTablesDropped > 0 {
			Writef(os.Stderr, "Tables dropped: %d\n", result.Report.TotalTablesDropped)
		}
		if result.Report.TotalRowsDropped > 0 {
			Writef(os.Stderr, "Rows dropped: %d\n", result.Report.TotalRowsDropped)
		}
		if len(result.Warnings) > 0 {
			Writef(os.Stderr, "\nWarnings (%d):\n", len(result.Warnings))
			for _, w := range result.Warnings {
				Writef(os.Stderr, "  - [%s] %s\n", w.Category, w.Message)
			}
		}
		if flags.Output != "" {
			Writef(os.Stderr, "\nOutput written to: %s\n", flags.Output)
		}
	}

	return nil
}

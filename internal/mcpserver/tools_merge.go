package mcpserver

import (
	"context"
	"fmt"
	"strconv"

	"github.com/MartinPratoussy/oitools/cmd/oifits-merge/commands"
	"github.com/MartinPratoussy/oitools/merger"
	"github.com/MartinPratoussy/oitools/oifits"
	"github.com/MartinPratoussy/oitools/selector"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// documentInput represents the two ways a document can be handed to the
// merge tool. Exactly one of File or Content must be set.
type documentInput struct {
	File    string `json:"file,omitempty"    jsonschema:"Path to a JSON interchange document on disk"`
	Content string `json:"content,omitempty" jsonschema:"Inline JSON interchange document content"`
}

func (d documentInput) resolve(tm *oifits.TargetManager) (*oifits.OIFitsFile, error) {
	switch {
	case d.File != "" && d.Content != "":
		return nil, fmt.Errorf("exactly one of file or content must be provided, got both")
	case d.File != "":
		return commands.LoadDocument(d.File, tm)
	case d.Content != "":
		return commands.ParseDocument([]byte(d.Content), tm)
	default:
		return nil, fmt.Errorf("exactly one of file or content must be provided")
	}
}

type mergeInput struct {
	Documents      []documentInput `json:"documents"                 jsonschema:"Array of OIFITS documents to merge (minimum 2)"`
	SelectorConfig string          `json:"selector_config,omitempty" jsonschema:"Inline YAML selector config restricting the merge (targets, instrument modes, nights, baselines, ranges)"`
	Standard       string          `json:"standard,omitempty"        jsonschema:"Force the output standard: OIFITS1 or OIFITS2. Default picks the max of the inputs."`
	Output         string          `json:"output,omitempty"          jsonschema:"File path to write the merged document to. If omitted the result is returned inline."`
}

type mergeWarning struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}

type mergeOutput struct {
	DocumentCount         int            `json:"document_count"`
	Standard              string         `json:"standard"`
	DataTableCount        int            `json:"data_table_count"`
	RunID                 string         `json:"run_id"`
	CollisionCount        int            `json:"collision_count"`
	ResolvedByRename      int            `json:"resolved_by_rename"`
	ResolvedByDedup       int            `json:"resolved_by_dedup"`
	MissingReferenceCount int            `json:"missing_reference_count"`
	TablesDroppedCount    int            `json:"tables_dropped_count"`
	RowsDroppedCount      int            `json:"rows_dropped_count"`
	WarningCount          int            `json:"warning_count"`
	Warnings              []mergeWarning `json:"warnings,omitempty"`
	WrittenTo             string         `json:"written_to,omitempty"`
	Document              string         `json:"document,omitempty"`
	Summary               string         `json:"summary"`
}

func handleMerge(_ context.Context, _ *mcp.CallToolRequest, input mergeInput) (*mcp.CallToolResult, mergeOutput, error) {
	if len(input.Documents) < 2 {
		return errResult(fmt.Errorf("at least 2 documents are required for merging, got %d", len(input.Documents))), mergeOutput{}, nil
	}
	if len(input.Documents) > cfg.MaxInputs {
		return errResult(fmt.Errorf("too many documents: got %d, maximum is %d; set OIFITS_MCP_MAX_INPUTS to increase",
			len(input.Documents), cfg.MaxInputs)), mergeOutput{}, nil
	}

	var std oifits.Standard
	if input.Standard != "" {
		parsed, err := parseStandardArg(input.Standard)
		if err != nil {
			return errResult(err), mergeOutput{}, nil
		}
		std = parsed
	}

	tm := oifits.NewTargetManager()
	files := make([]*oifits.OIFitsFile, 0, len(input.Documents))
	for i, d := range input.Documents {
		f, err := d.resolve(tm)
		if err != nil {
			return errResult(fmt.Errorf("document[%d]: %w", i, err)), mergeOutput{}, nil
		}
		files = append(files, f)
	}
	collection := oifits.NewOIFitsCollection(files...)

	var sel *selector.Selector
	if input.SelectorConfig != "" {
		selCfg, err := selector.ParseConfig([]byte(input.SelectorConfig))
		if err != nil {
			return errResult(fmt.Errorf("selector_config: %w", err)), mergeOutput{}, nil
		}
		sel = selCfg.Build(collection)
	}

	result, err := merger.MergeWithStandard(collection, sel, std)
	if err != nil {
		return errResult(err), mergeOutput{}, nil
	}

	output := mergeOutput{
		DocumentCount:         len(input.Documents),
		Standard:              result.File.Standard.String(),
		DataTableCount:        len(result.File.Data),
		RunID:                 result.Report.RunID,
		CollisionCount:        result.Report.TotalCollisions,
		ResolvedByRename:      result.Report.ResolvedByRename,
		ResolvedByDedup:       result.Report.ResolvedByDedup,
		MissingReferenceCount: result.Report.TotalMissingReferences,
		TablesDroppedCount:    result.Report.TotalTablesDropped,
		RowsDroppedCount:      result.Report.TotalRowsDropped,
		WarningCount:          len(result.Warnings),
	}

	output.Warnings = makeSlice[mergeWarning](len(result.Warnings))
	for _, w := range result.Warnings {
		output.Warnings = append(output.Warnings, mergeWarning{Category: string(w.Category), Message: w.Message})
	}

	output.Summary = buildMergeSummary(output)

	if input.Output != "" {
		if err := commands.SaveDocument(input.Output, result.File); err != nil {
			return errResult(err), mergeOutput{}, nil
		}
		output.WrittenTo = input.Output
	} else {
		data, err := commands.MarshalDocument(result.File)
		if err != nil {
			return errResult(err), mergeOutput{}, nil
		}
		output.Document = string(data)
	}

	return nil, output, nil
}

func parseStandardArg(s string) (oifits.Standard, error) {
	switch s {
	case "OIFITS1", "v1", "V1":
		return oifits.V1, nil
	case "OIFITS2", "v2", "V2":
		return oifits.V2, nil
	default:
		return 0, fmt.Errorf("unknown standard %q (want OIFITS1 or OIFITS2)", s)
	}
}

func buildMergeSummary(output mergeOutput) string {
	summary := "Merged " + strconv.Itoa(output.DocumentCount) + " documents into " + output.Standard + " document"
	summary += " with " + strconv.Itoa(output.DataTableCount) + " data table(s)."

	if output.CollisionCount > 0 {
		summary += " " + strconv.Itoa(output.CollisionCount) + " collision(s) resolved."
	}
	if output.MissingReferenceCount > 0 {
		summary += " " + strconv.Itoa(output.MissingReferenceCount) + " missing reference(s)."
	}
	if output.WarningCount > 0 {
		summary += " " + strconv.Itoa(output.WarningCount) + " warning(s)."
	}

	return summary
}

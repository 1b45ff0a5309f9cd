package mcpserver

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const mergeDocA = `{
  "standard": "OIFITS2",
  "targets": [{"name": "Vega", "raEp0": 279.23, "decEp0": 38.78}],
  "wavelengths": [{"insName": "AMBER", "effWave": [1.6e-6], "effBand": [1e-8]}],
  "data": [{
    "kind": "VIS2",
    "insName": "AMBER",
    "arrName": "",
    "rows": [{"targetName": "Vega", "nightId": 1, "mjd": 58000.1, "values": [0.5], "flags": [false]}]
  }]
}`

const mergeDocB = `{
  "standard": "OIFITS2",
  "targets": [{"name": "Vega", "raEp0": 279.23, "decEp0": 38.78}],
  "wavelengths": [{"insName": "AMBER", "effWave": [1.6e-6], "effBand": [1e-8]}],
  "data": [{
    "kind": "VIS2",
    "insName": "AMBER",
    "arrName": "",
    "rows": [{"targetName": "Vega", "nightId": 2, "mjd": 58010.2, "values": [0.6], "flags": [false]}]
  }]
}`

func TestMergeToolTwoDocuments(t *testing.T) {
	input := mergeInput{
		Documents: []documentInput{
			{Content: mergeDocA},
			{Content: mergeDocB},
		},
	}
	_, output, err := handleMerge(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, 2, output.DocumentCount)
	assert.Equal(t, "OIFITS2", output.Standard)
	assert.Equal(t, 2, output.DataTableCount, "data tables are copied one by one; only their shared wavelength table is deduplicated")
	assert.NotEmpty(t, output.RunID)
	assert.NotEmpty(t, output.Document)
	assert.Empty(t, output.WrittenTo)
	assert.Contains(t, output.Summary, "Merged 2 documents")
}

func TestMergeToolOutputFile(t *testing.T) {
	dir := t.TempDir()
	outPath := filepath.Join(dir, "merged.json")

	input := mergeInput{
		Documents: []documentInput{
			{Content: mergeDocA},
			{Content: mergeDocB},
		},
		Output: outPath,
	}
	_, output, err := handleMerge(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)

	assert.Equal(t, outPath, output.WrittenTo)
	assert.Empty(t, output.Document)

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Vega")
}

func TestMergeToolRejectsTooFewDocuments(t *testing.T) {
	input := mergeInput{Documents: []documentInput{{Content: mergeDocA}}}
	result, _, err := handleMerge(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.True(t, result.IsError)
}

func TestMergeToolRejectsTooManyDocuments(t *testing.T) {
	t.Setenv("OIFITS_MCP_MAX_INPUTS", "1")
	cfg = loadConfig()
	t.Cleanup(func() { cfg = loadConfig() })

	input := mergeInput{Documents: []documentInput{{Content: mergeDocA}, {Content: mergeDocB}}}
	result, _, err := handleMerge(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.True(t, result.IsError)
}

func TestMergeToolRejectsDocumentWithBothFileAndContent(t *testing.T) {
	input := mergeInput{
		Documents: []documentInput{
			{Content: mergeDocA},
			{File: "x.json", Content: mergeDocB},
		},
	}
	result, _, err := handleMerge(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.True(t, result.IsError)
}

func TestMergeToolAppliesSelectorConfig(t *testing.T) {
	input := mergeInput{
		Documents: []documentInput{
			{Content: mergeDocA},
			{Content: mergeDocB},
		},
		SelectorConfig: "nights: [1]\n",
	}
	_, output, err := handleMerge(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.NotContains(t, output.Document, "58010.2", "night 2 rows should be excluded by the selector")
}

func TestMergeToolForcesStandard(t *testing.T) {
	input := mergeInput{
		Documents: []documentInput{
			{Content: mergeDocA},
			{Content: mergeDocB},
		},
		Standard: "OIFITS1",
	}
	_, output, err := handleMerge(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Equal(t, "OIFITS1", output.Standard)
}

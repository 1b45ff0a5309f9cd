package commands

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/MartinPratoussy/oitools/oifits"
)

// fileDoc is the JSON interchange representation of an oifits.OIFitsFile.
// The core oifits model is built around pointer identity (see
// oifits/target.go, oifits/array.go), which a byte-accurate FITS reader
// would preserve automatically via shared table references; that reader is
// out of scope here (see SPEC_FULL.md §10.4), so the CLI round-trips through
// this flat, name-addressed JSON document instead. Cross-file target
// identity is reconstructed by resolving every targetDoc.Name through one
// shared TargetManager across all files passed to a single merge.
type fileDoc struct {
	Standard string `json:"standard"`

	PrimaryKeywords map[string]string `json:"primaryKeywords,omitempty"`
	History         []string          `json:"history,omitempty"`

	Targets     []targetDoc     `json:"targets,omitempty"`
	Wavelengths []wavelengthDoc `json:"wavelengths,omitempty"`
	Arrays      []arrayDoc      `json:"arrays,omitempty"`
	Corrs       []corrDoc       `json:"corrs,omitempty"`
	Inspols     []inspolDoc     `json:"inspols,omitempty"`
	Data        []dataDoc       `json:"data"`
}

type targetDoc struct {
	Name   string  `json:"name"`
	RAEp0  float64 `json:"raEp0"`
	DecEp0 float64 `json:"decEp0"`
}

type wavelengthDoc struct {
	InsName string    `json:"insName"`
	EffWave []float64 `json:"effWave"`
	EffBand []float64 `json:"effBand"`
}

type stationDoc struct {
	StaName string `json:"staName"`
}

type arrayDoc struct {
	ArrName  string       `json:"arrName"`
	Stations []stationDoc `json:"stations"`
}

type corrDoc struct {
	CorrName string `json:"corrName"`
}

type inspolDoc struct {
	InsName string `json:"insName"`
}

type dataDoc struct {
	Kind     string   `json:"kind"` // VIS, VIS2, T3, FLUX
	InsName  string   `json:"insName"`
	ArrName  string   `json:"arrName"`
	CorrName string   `json:"corrName,omitempty"`
	Rows     []rowDoc `json:"rows"`
}

type rowDoc struct {
	TargetName string    `json:"targetName"`
	NightID    int       `json:"nightId"`
	MJD        float64   `json:"mjd"`
	StaNames   []string  `json:"staNames,omitempty"`
	Values     []float64 `json:"values"`
	Flags      []bool    `json:"flags"`
}

func parseKind(s string) (oifits.DataKind, error) {
	switch s {
	case "VIS":
		return oifits.KindVis, nil
	case "VIS2":
		return oifits.KindVis2, nil
	case "T3":
		return oifits.KindT3, nil
	case "FLUX":
		return oifits.KindFlux, nil
	default:
		return 0, fmt.Errorf("unknown data kind %q (want VIS, VIS2, T3, or FLUX)", s)
	}
}

func parseStandard(s string) (oifits.Standard, error) {
	switch s {
	case "", "OIFITS1", "v1", "V1":
		return oifits.V1, nil
	case "OIFITS2", "v2", "V2":
		return oifits.V2, nil
	default:
		return 0, fmt.Errorf("unknown standard %q (want OIFITS1 or OIFITS2)", s)
	}
}

// LoadDocument reads a JSON document at path and builds the equivalent
// oifits.OIFitsFile, resolving target names through tm so the same target
// name across multiple files shares one *oifits.Target.
func LoadDocument(path string, tm *oifits.TargetManager) (*oifits.OIFitsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	f, err := ParseDocument(data, tm)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return f, nil
}

// ParseDocument builds an oifits.OIFitsFile from raw JSON document bytes,
// resolving target names through tm. Shared by LoadDocument (file input) and
// callers that already hold the document in memory (e.g. the MCP server's
// inline-content input).
func ParseDocument(data []byte, tm *oifits.TargetManager) (*oifits.OIFitsFile, error) {
	var doc fileDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing document: %w", err)
	}

	std, err := parseStandard(doc.Standard)
	if err != nil {
		return nil, err
	}
	f := oifits.NewOIFitsFile(std)

	if len(doc.PrimaryKeywords) > 0 || len(doc.History) > 0 {
		primary := oifits.NewOIPrimaryHDU()
		for k, v := range doc.PrimaryKeywords {
			primary.SetKeyword(k, v)
		}
		for _, h := range doc.History {
			primary.AppendHistory(h)
		}
		f.Primary = primary
	}

	if len(doc.Targets) > 0 {
		ot := oifits.NewOITarget()
		for _, td := range doc.Targets {
			ot.Add(tm.Resolve(td.Name, td.RAEp0, td.DecEp0))
		}
		f.Target = ot
	}

	for _, wd := range doc.Wavelengths {
		f.AddWavelength(oifits.NewOIWavelength(wd.InsName, wd.EffWave, wd.EffBand))
	}
	arraysByName := make(map[string]*oifits.OIArray, len(doc.Arrays))
	for _, ad := range doc.Arrays {
		stations := make([]oifits.StationEntry, len(ad.Stations))
		for i, sd := range ad.Stations {
			stations[i] = oifits.StationEntry{StaIndex: oifits.Short(i + 1), StaName: sd.StaName}
		}
		a := oifits.NewOIArray(ad.ArrName, stations)
		f.AddArray(a)
		arraysByName[ad.ArrName] = a
	}
	for _, cd := range doc.Corrs {
		f.AddCorr(oifits.NewOICorr(cd.CorrName, nil))
	}
	for _, pd := range doc.Inspols {
		f.AddInspol(oifits.NewOIInspol(pd.InsName, nil))
	}

	targetIDByName := make(map[string]oifits.Short)
	if f.Target != nil {
		for _, row := range f.Target.Rows {
			targetIDByName[row.Target.Name] = row.TargetID
		}
	}

	for _, dd := range doc.Data {
		kind, err := parseKind(dd.Kind)
		if err != nil {
			return nil, fmt.Errorf("data table %q: %w", dd.InsName, err)
		}
		table := oifits.NewDataTable(kind, dd.InsName, dd.ArrName, dd.CorrName)
		if w, ok := f.WavelengthByName(dd.InsName); ok {
			table.SetWavelength(w)
		}
		arr, hasArr := arraysByName[dd.ArrName]
		if hasArr {
			table.SetArray(arr)
		}
		if dd.CorrName != "" {
			if c, ok := f.CorrByName(dd.CorrName); ok {
				table.SetCorr(c)
			}
		}

		for _, rd := range dd.Rows {
			targetID, ok := targetIDByName[rd.TargetName]
			if !ok {
				targetID = oifits.UndefinedShort
			}
			var sta *oifits.StaIndexArray
			if hasArr && len(rd.StaNames) > 0 {
				byName := make(map[string]oifits.Short, len(arr.Stations))
				for _, s := range arr.Stations {
					byName[s.StaName] = s.StaIndex
				}
				indexes := make([]oifits.Short, len(rd.StaNames))
				for i, name := range rd.StaNames {
					indexes[i] = byName[name]
				}
				sta = arr.Canonicalize(indexes...)
			}
			table.AddRow(targetID, rd.NightID, rd.MJD, sta, rd.Values, rd.Flags)
		}
		f.AddData(table)
	}

	return f, nil
}

// MarshalDocument renders f as indented JSON, the same representation
// SaveDocument writes to disk. Used by callers that want the bytes directly,
// such as the MCP server returning a merged document inline.
func MarshalDocument(f *oifits.OIFitsFile) ([]byte, error) {
	data, err := json.MarshalIndent(toDoc(f), "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling document: %w", err)
	}
	return append(data, '\n'), nil
}

// SaveDocument writes f as a JSON document to path, or to stdout when path
// is empty.
func SaveDocument(path string, f *oifits.OIFitsFile) error {
	data, err := MarshalDocument(f)
	if err != nil {
		return err
	}

	if path == "" {
		if _, err := os.Stdout.Write(data); err != nil {
			return fmt.Errorf("writing merged document to stdout: %w", err)
		}
		return nil
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func toDoc(f *oifits.OIFitsFile) fileDoc {
	doc := fileDoc{Standard: f.Standard.String()}

	if f.Primary != nil {
		doc.History = f.Primary.HistoryLines()
		if p, ok := f.Primary.(*oifits.OIPrimaryHDU); ok && len(p.Keywords) > 0 {
			doc.PrimaryKeywords = p.Keywords
		}
	}

	if f.Target != nil {
		for _, row := range f.Target.Rows {
			doc.Targets = append(doc.Targets, targetDoc{
				Name:   row.Target.Name,
				RAEp0:  row.Target.RAEp0,
				DecEp0: row.Target.DecEp0,
			})
		}
	}

	targetNameByID := make(map[oifits.Short]string)
	if f.Target != nil {
		for _, row := range f.Target.Rows {
			targetNameByID[row.TargetID] = row.Target.Name
		}
	}

	for _, w := range f.Wavelengths {
		doc.Wavelengths = append(doc.Wavelengths, wavelengthDoc{InsName: w.InsName, EffWave: w.EffWave, EffBand: w.EffBand})
	}
	for _, a := range f.Arrays {
		ad := arrayDoc{ArrName: a.ArrName}
		for _, s := range a.Stations {
			ad.Stations = append(ad.Stations, stationDoc{StaName: s.StaName})
		}
		doc.Arrays = append(doc.Arrays, ad)
	}
	for _, c := range f.Corrs {
		doc.Corrs = append(doc.Corrs, corrDoc{CorrName: c.CorrName})
	}
	for _, p := range f.Inspols {
		doc.Inspols = append(doc.Inspols, inspolDoc{InsName: p.InsName})
	}

	for _, d := range f.Data {
		dd := dataDoc{Kind: d.Kind.String()[3:], InsName: d.InsName, ArrName: d.ArrName, CorrName: d.CorrName}
		for i := range d.TargetID {
			rd := rowDoc{
				TargetName: targetNameByID[d.TargetID[i]],
				NightID:    d.NightID[i],
				MJD:        d.MJD[i],
				Values:     d.Values[i],
				Flags:      d.Flags[i],
			}
			if sta := d.StaIndex[i]; sta != nil && d.Array() != nil {
				nameByIndex := make(map[oifits.Short]string, len(d.Array().Stations))
				for _, s := range d.Array().Stations {
					nameByIndex[s.StaIndex] = s.StaName
				}
				for _, idx := range sta.Indexes {
					rd.StaNames = append(rd.StaNames, nameByIndex[idx])
				}
			}
			dd.Rows = append(dd.Rows, rd)
		}
		doc.Data = append(doc.Data, dd)
	}

	return doc
}

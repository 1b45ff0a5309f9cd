package oifits

// KeywordDescriptor describes one primary-header keyword in a version's
// schema: its name, and whether a conforming file must supply it.
type KeywordDescriptor struct {
	Name     string
	Optional bool
}

// MandatoryKeywordsV2 lists the OIFITS v2 primary-header keyword schema:
// the keywords a conforming file must supply, plus a few optional ones
// flagged Optional (which synthesis skips). This is the schema
// PrimaryHeaderSynthesizer walks when it has to synthesize a header from
// multiple, possibly disagreeing, source headers.
var MandatoryKeywordsV2 = []KeywordDescriptor{
	{Name: "ORIGIN"},
	{Name: "TELESCOP"},
	{Name: "INSTRUME"},
	{Name: "OBSERVER"},
	{Name: "OBJECT"},
	{Name: "INSMODE"},
	{Name: "REFERENC", Optional: true},
	{Name: "PROG_ID", Optional: true},
	{Name: "PROCSOFT", Optional: true},
	{Name: "CONTENT"},
}

// HeaderCard is a free-form (non-schema) header card: a keyword/value/comment
// triple preserved verbatim when a primary HDU is adopted by reference
// rather than synthesized.
type HeaderCard struct {
	Name    string
	Value   string
	Comment string
}

// PrimaryHDU is the common surface the merger needs from either a bare
// OIFITS v1 image HDU or a full OIFITS v2 primary HDU: the ability to set
// keywords and append HISTORY lines.
type PrimaryHDU interface {
	Keyword(name string) (string, bool)
	SetKeyword(name, value string)
	AppendHistory(line string)
	HistoryLines() []string
}

// FitsImageHDU is a bare FITS image HDU, used as the OIFITS v1 primary HDU.
// V1 carries no mandatory-keyword schema of its own; the merger only ever
// writes DATE and a HISTORY line to it.
type FitsImageHDU struct {
	keywords map[string]string
	history  []string
}

// NewFitsImageHDU returns an empty FitsImageHDU.
func NewFitsImageHDU() *FitsImageHDU {
	return &FitsImageHDU{keywords: make(map[string]string)}
}

func (h *FitsImageHDU) Keyword(name string) (string, bool) {
	v, ok := h.keywords[name]
	return v, ok
}

func (h *FitsImageHDU) SetKeyword(name, value string) {
	h.keywords[name] = value
}

func (h *FitsImageHDU) AppendHistory(line string) {
	h.history = append(h.history, line)
}

func (h *FitsImageHDU) HistoryLines() []string {
	return h.history
}

// OIPrimaryHDU is a full OIFITS v2 primary HDU: mandatory and optional
// named keywords plus any free-form header cards carried through from a
// source file that was adopted by reference.
type OIPrimaryHDU struct {
	Keywords map[string]string
	Cards    []HeaderCard
	history  []string
}

// NewOIPrimaryHDU returns an empty OIPrimaryHDU.
func NewOIPrimaryHDU() *OIPrimaryHDU {
	return &OIPrimaryHDU{Keywords: make(map[string]string)}
}

func (h *OIPrimaryHDU) Keyword(name string) (string, bool) {
	v, ok := h.Keywords[name]
	return v, ok
}

func (h *OIPrimaryHDU) SetKeyword(name, value string) {
	h.Keywords[name] = value
}

func (h *OIPrimaryHDU) AppendHistory(line string) {
	h.history = append(h.history, line)
}

func (h *OIPrimaryHDU) HistoryLines() []string {
	return h.history
}

// Clone returns a deep copy suitable for independent mutation, used when a
// single source primary HDU is adopted by reference and then needs its
// DATE/HISTORY updated without mutating the source.
func (h *OIPrimaryHDU) Clone() *OIPrimaryHDU {
	out := NewOIPrimaryHDU()
	for k, v := range h.Keywords {
		out.Keywords[k] = v
	}
	out.Cards = append(out.Cards, h.Cards...)
	out.history = append(out.history, h.history...)
	return out
}

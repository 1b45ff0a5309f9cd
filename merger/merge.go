package merger

import (
	"time"

	"github.com/google/uuid"

	"github.com/MartinPratoussy/oitools/oierrors"
	"github.com/MartinPratoussy/oitools/oifits"
	"github.com/MartinPratoussy/oitools/selector"
)

// Result is the full outcome of a merge: the consolidated file plus the
// structured report and warnings the pipeline accumulated, parallel to the
// teacher package's JoinResult.
type Result struct {
	File     *oifits.OIFitsFile
	Report   *MergeReport
	Warnings Warnings
}

// Option configures a merge. The zero value of every option is "use the
// default", the same convention the teacher package's functional options
// follow.
type Option func(*options)

type options struct {
	logger oifits.Logger
}

// WithLogger overrides the Logger used for this merge. Defaults to
// oifits.NoopLogger().
func WithLogger(l oifits.Logger) Option {
	return func(o *options) { o.logger = l }
}

func resolveOptions(opts []Option) *options {
	o := &options{logger: oifits.NoopLogger()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// MergeFiles merges one or more files with no selection criteria applied.
func MergeFiles(files []*oifits.OIFitsFile, opts ...Option) (*Result, error) {
	return Merge(oifits.NewOIFitsCollection(files...), opts...)
}

// Merge merges every file in collection with no selection criteria applied.
func Merge(collection *oifits.OIFitsCollection, opts ...Option) (*Result, error) {
	return MergeWithSelector(collection, nil, opts...)
}

// MergeWithSelector merges collection, applying sel (nil means no filter).
func MergeWithSelector(collection *oifits.OIFitsCollection, sel *selector.Selector, opts ...Option) (*Result, error) {
	return MergeWithStandard(collection, sel, 0, opts...)
}

// MergeWithStandard merges collection under sel, forcing the output to std
// (the zero value means "pick automatically", see buildOutput).
func MergeWithStandard(collection *oifits.OIFitsCollection, sel *selector.Selector, std oifits.Standard, opts ...Option) (*Result, error) {
	if collection.Empty() {
		return nil, &oierrors.InvalidArgumentError{Message: "input collection is missing or empty"}
	}
	selResult := selector.Build(collection, sel)
	return MergeSelectorResult(selResult, std, opts...)
}

// MergeSelectorResult runs the merge pipeline directly over a precomputed
// SelectorResult, forcing the output to std (zero value: pick automatically).
// selResult may be nil, which the pipeline treats as an empty selection.
func MergeSelectorResult(selResult *selector.SelectorResult, std oifits.Standard, opts ...Option) (*Result, error) {
	o := resolveOptions(opts)
	runID := uuid.NewString()

	c := newContext(runID, o.logger.With("run_id", runID), selResult)
	c.report = newMergeReport(runID)

	if selResult == nil {
		c.warnings.Add(newEmptySelectionWarning())
		c.logger.Info("empty selection: returning primary-HDU-only file")
		out := oifits.NewOIFitsFile(std)
		if out.Standard == 0 {
			out.Standard = oifits.V1
		}
		c.output = out
		synthesizePrimaryHeader(c, time.Now())
		return &Result{File: out, Report: c.report, Warnings: c.warnings}, nil
	}

	c.output = buildOutput(selResult, std)       // P1
	collectReferences(c)                         // P2
	synthesizePrimaryHeader(c, time.Now())        // P3
	remapTargets(c)                              // P4
	dedupeWavelengths(c)                         // P5a
	dedupeArrays(c)                              // P5b
	dedupeCorrs(c)                               // P5c
	dedupeInspols(c)                             // P5c (inspol, Open Question resolution)
	rewriteData(c)                               // P6

	return &Result{File: c.output, Report: c.report, Warnings: c.warnings}, nil
}

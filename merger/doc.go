// Package merger implements the OIFITS merge pipeline: a deterministic
// routine that consolidates an arbitrary collection of OIFITS files into a
// single coherent OIFITS file, applying an optional selection and rewriting
// every cross-reference so the result is self-consistent.
//
// Merge is a pure function over a mutable Context that runs six phases, each
// depending only on the phases before it:
//
//	P1  outputBuilder            decide output standard, build empty output
//	P2  referenceCollector       collect the set of referenced metadata tables
//	P3  primaryHeaderSynthesizer build/copy the primary HDU
//	P4  targetRemapper           build the global OI_TARGET table and id maps
//	P5  metadataDeduper  (x3)    copy wavelength/array/corr tables, dedup, filter
//	P6  dataRewriter             copy data tables, remap names/ids, filter rows
//
// The merger never mutates an input file: every table it touches is deep-
// copied before modification, so the input and output object graphs remain
// independently usable after Merge returns.
package merger

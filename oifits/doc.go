// Package oifits implements the in-memory data model for OIFITS files: the
// optical-interferometry profile of the FITS binary container.
//
// This package models only what the merger (package merger) needs to build a
// self-consistent output file: the primary header-data unit, the OI_TARGET,
// OI_WAVELENGTH, OI_ARRAY, OI_CORR and OI_INSPOL metadata tables, and the
// OI_DATA measurement tables that reference them. Reading and writing actual
// FITS byte streams (header cards, BINTABLE columns, BITPIX/NAXIS arithmetic)
// is out of scope here; it belongs to a separate FITS I/O layer that this
// package's callers are expected to supply, the same way parsing YAML/JSON
// into a typed document is a separate concern from joining two already-typed
// documents together.
package oifits

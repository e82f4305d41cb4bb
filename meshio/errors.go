// Package meshio reads and writes the plain-text mesh archive format: a
// sequence of named sections, each a list of whitespace-separated-integer
// (or two-float) records, one record per line, with the record's index
// into its section implicit in line order.
//
// Grounded on original_source/structure-detection/mesh_writer.py and
// write_structure_info.py for the exact section names and field order
// (the original encodes these as a zip of varint-framed protobufs; this
// package uses plain text instead, so only the section catalogue and
// per-record field layout are carried over, not the framing);
// magic_iterators.read_mesh_from_file for the per-section, line-is-a-record
// read model.
package meshio

import "errors"

// ErrMissingSection indicates a required archive entry was absent.
var ErrMissingSection = errors.New("meshio: missing required section")

// ErrTruncatedRecord indicates a record line had fewer fields than its
// section requires, or a field failed to parse as an integer/float.
var ErrTruncatedRecord = errors.New("meshio: truncated or malformed record")

// radoub.dev/go/dlggff - a codec for GFF-based dialog resources
// Copyright (C) 2024  Radoub Project Contributors
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.
// Package dlggff decodes and encodes dialog-tree resources stored in
// the Generic File Format (GFF) container: a seven-section binary
// layout this toolset uses for most of its typed resource files. The
// gff subpackage implements the resource-agnostic container codec, the
// layout subpackage plans list-indices offsets ahead of encoding, and
// the dlg subpackage lifts/lowers the dialog-specific graph on top of
// both. This file wires the three together into the public round-trip
// API.
package dlggff

import (
	"fmt"

	"radoub.dev/go/dlggff/dlg"
	"radoub.dev/go/dlggff/gff"
)

// DecodeDialog parses a complete dialog resource buffer into a dlg.Dialog.
// It validates the container's file-type/version tag before lifting, so
// a non-dialog GFF resource (or one from an unsupported toolset version)
// is rejected early rather than producing a garbage graph.
func DecodeDialog(buf []byte) (*dlg.Dialog, []dlg.Warning, error) {
	header, err := gff.PeekHeader(buf)
	if err != nil {
		return nil, nil, err
	}
	if header.FileType != gff.DialogFileType {
		return nil, nil, fmt.Errorf("dlggff: unexpected file type %q, want %q", header.FileType, gff.DialogFileType)
	}
	if header.Version != gff.DialogVersion {
		return nil, nil, fmt.Errorf("dlggff: unexpected version %q, want %q", header.Version, gff.DialogVersion)
	}

	container, warnings, err := gff.Decode(buf)
	if err != nil {
		return nil, nil, err
	}

	d, liftWarnings, err := dlg.Lift(container)
	if err != nil {
		return nil, nil, err
	}

	out := make([]dlg.Warning, 0, len(warnings)+len(liftWarnings))
	for _, w := range warnings {
		out = append(out, dlg.Warning{Message: w.String()})
	}
	out = append(out, liftWarnings...)
	return d, out, nil
}

// EncodeDialog lowers a dlg.Dialog into a complete dialog resource
// buffer.
func EncodeDialog(d *dlg.Dialog) ([]byte, error) {
	container, err := dlg.Encode(d)
	if err != nil {
		return nil, err
	}
	return gff.Encode(container)
}

// Validate re-exports dlg.Validate for callers that only imported the
// root package.
func Validate(d *dlg.Dialog) dlg.Result {
	return dlg.Validate(d)
}

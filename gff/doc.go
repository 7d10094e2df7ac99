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
// Package gff implements the Generic File Format container: a
// seven-section little-endian binary layout (header, structs, fields,
// labels, field-data, field-indices, list-indices) used by the toolset
// this module supports to store game resources, including the dialog
// ("DLG") resource the dlg package lifts into a graph.
//
// This package knows nothing about dialog semantics. It decodes a
// buffer into a [Container] of [Struct]/[Field]/typed [Value]s and
// encodes a [Container] back into bytes with byte-compatible offsets.
// Higher-level resource schemas, including dlg, are built on top.
package gff

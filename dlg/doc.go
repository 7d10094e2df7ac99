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
// Package dlg lifts a decoded gff.Container that holds a dialog
// resource into an in-memory Dialog graph (entries, replies, starts and
// the pointers between them) and lowers a Dialog graph back into a
// gff.Container using the fixed "Entry-First batched" struct and field
// order the toolset this format targets requires for compatibility.
//
// This package owns all dialog-specific schema knowledge: field labels,
// the pointer-struct heuristic, fallback-start policy and round-trip
// type preservation. It knows nothing about byte layout; that is the
// gff package's job.
package dlg

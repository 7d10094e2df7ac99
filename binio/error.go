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
// Package binio provides little-endian binary primitives shared by the
// gff container codec: fixed-width integers, length-prefixed strings and
// 4-byte alignment padding.
package binio

import "fmt"

// Error reports a Reader read that ran past the bounds of the
// underlying buffer, together with the byte offset at which it was
// attempted.
type Error struct {
	Op     string
	Offset int
	Want   int
	Size   int
}

func (err *Error) Error() string {
	return fmt.Sprintf("binio: %s at offset %d wants %d bytes, have %d", err.Op, err.Offset, err.Want, err.Size)
}

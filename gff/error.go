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

package gff

import (
	"errors"
	"fmt"
)

// Sentinel errors covering the taxonomy of fatal container problems.
// Wrap these with *FormatError to attach section and offset context.
var (
	ErrMalformedHeader = errors.New("gff: malformed header")
	ErrTruncatedBuffer = errors.New("gff: truncated buffer")
	ErrInvalidOffset   = errors.New("gff: invalid offset or index")
	ErrUnknownFieldType = errors.New("gff: unknown field type")
)

// FormatError reports a fatal decode failure together with the section
// and byte offset at which it was found.
type FormatError struct {
	Section string
	Offset  int
	Err     error
}

func (e *FormatError) Error() string {
	if e.Section == "" {
		return fmt.Sprintf("gff: %v (at byte %d)", e.Err, e.Offset)
	}
	return fmt.Sprintf("gff: %v in %s section (at byte %d)", e.Err, e.Section, e.Offset)
}

func (e *FormatError) Unwrap() error { return e.Err }

// Warning is a non-fatal diagnostic produced while decoding. Decoding
// continues after a warning; only a FormatError aborts it.
type Warning struct {
	Section string
	Offset  int
	Message string
}

func (w Warning) String() string {
	if w.Section == "" {
		return w.Message
	}
	return fmt.Sprintf("%s (in %s section, at byte %d)", w.Message, w.Section, w.Offset)
}

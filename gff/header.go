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

import "radoub.dev/go/dlggff/binio"

const (
	headerSize  = 56
	structSize  = 12 // type, data_or_offset, field_count
	fieldSize   = 12 // type, label_index, data_or_offset
	labelSize   = 16
	indexSize   = 4

	// DialogFileType and DialogVersion are the file-type and version
	// tags this module writes. Decode accepts any 4-byte tag pair on
	// input, since GFF is shared across resource kinds and this package
	// only implements the generic container, leaving schema negotiation
	// for other GFF-carried resources to callers. DialogVersion is 4
	// bytes wide, matching the header's fixed 56-byte layout
	// (4 + 4 + 6*8); "V3.2" is the historical 4-character tag this
	// toolset's dialog resources actually carry.
	DialogFileType = "DLG "
	DialogVersion  = "V3.2"
)

// sectionPair is one (offset, count) pair from the header.
type sectionPair struct {
	Offset uint32
	Count  uint32
}

// Header is the 56-byte GFF file header.
type Header struct {
	FileType string
	Version  string

	Structs      sectionPair
	Fields       sectionPair
	Labels       sectionPair
	FieldData    sectionPair
	FieldIndices sectionPair
	ListIndices  sectionPair
}

// PeekHeader decodes just the 56-byte header, without touching the
// remaining sections. Callers that care about a specific resource's
// file-type/version tag (the root dlggff package does, for "DLG "/"V3.2") validate those
// here before running the full Decode.
func PeekHeader(buf []byte) (*Header, error) {
	return decodeHeader(binio.New(buf))
}

func decodeHeader(r *binio.Reader) (*Header, error) {
	if r.Len() < headerSize {
		return nil, &FormatError{Section: "header", Offset: 0, Err: ErrTruncatedBuffer}
	}

	ft, err := r.Bytes(4)
	if err != nil {
		return nil, &FormatError{Section: "header", Offset: r.Pos(), Err: err}
	}
	ver, err := r.Bytes(4)
	if err != nil {
		return nil, &FormatError{Section: "header", Offset: r.Pos(), Err: err}
	}

	h := &Header{FileType: string(ft), Version: string(ver)}

	pairs := []*sectionPair{&h.Structs, &h.Fields, &h.Labels, &h.FieldData, &h.FieldIndices, &h.ListIndices}
	for _, p := range pairs {
		off, err := r.U32()
		if err != nil {
			return nil, &FormatError{Section: "header", Offset: r.Pos(), Err: err}
		}
		cnt, err := r.U32()
		if err != nil {
			return nil, &FormatError{Section: "header", Offset: r.Pos(), Err: err}
		}
		p.Offset, p.Count = off, cnt
	}

	return h, nil
}

func (h *Header) encode(w *binio.Writer) {
	w.PutBytes(padRight(h.FileType, 4))
	w.PutBytes(padRight(h.Version, 4))
	for _, p := range []sectionPair{h.Structs, h.Fields, h.Labels, h.FieldData, h.FieldIndices, h.ListIndices} {
		w.PutU32(p.Offset)
		w.PutU32(p.Count)
	}
}

func padRight(s string, n int) []byte {
	b := make([]byte, n)
	copy(b, s)
	for i := len(s); i < n; i++ {
		if b[i] == 0 {
			b[i] = ' '
		}
	}
	return b
}

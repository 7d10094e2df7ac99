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

package binio

import "encoding/binary"

// Writer accumulates a little-endian byte stream. Unlike Reader it has
// no notion of a "current position" beyond the end of the buffer: every
// Put* call appends, so callers that need to know an offset before
// emitting a payload (the gff encoder's field-data section) query Len() first and
// never patch bytes already written.
type Writer struct {
	buf []byte
}

// NewWriter returns an empty Writer.
func NewWriter() *Writer {
	return &Writer{}
}

// Len returns the number of bytes written so far; this doubles as the
// offset the next Put call will land at.
func (w *Writer) Len() int { return len(w.buf) }

// Bytes returns the accumulated buffer. The caller owns the result.
func (w *Writer) Bytes() []byte { return w.buf }

// PutU8 appends a single byte.
func (w *Writer) PutU8(v byte) { w.buf = append(w.buf, v) }

// PutU16 appends a little-endian uint16.
func (w *Writer) PutU16(v uint16) {
	var b [2]byte
	binary.LittleEndian.PutUint16(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// PutU32 appends a little-endian uint32.
func (w *Writer) PutU32(v uint32) {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// PutI32 appends a little-endian int32.
func (w *Writer) PutI32(v int32) { w.PutU32(uint32(v)) }

// PutF32 appends a little-endian IEEE-754 float32.
func (w *Writer) PutF32(v float32) { w.PutU32(float32bits(v)) }

// PutU64 appends a little-endian uint64.
func (w *Writer) PutU64(v uint64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	w.buf = append(w.buf, b[:]...)
}

// PutI64 appends a little-endian int64.
func (w *Writer) PutI64(v int64) { w.PutU64(uint64(v)) }

// PutF64 appends a little-endian IEEE-754 float64.
func (w *Writer) PutF64(v float64) { w.PutU64(float64bits(v)) }

// PutBytes appends raw bytes.
func (w *Writer) PutBytes(b []byte) { w.buf = append(w.buf, b...) }

// Align4 pads with zero bytes until Len() is a multiple of 4.
func (w *Writer) Align4() {
	for w.Len()%4 != 0 {
		w.buf = append(w.buf, 0)
	}
}

// PutCResRef appends a 4-byte length prefix and the reference bytes,
// aligned to 4 bytes afterwards. Empty references still occupy the full
// 4-byte length field: the caller must never fold an empty reference
// into offset 0, which is reserved as the gff "no data" sentinel.
func (w *Writer) PutCResRef(s string) {
	w.PutU32(uint32(len(s)))
	w.PutBytes([]byte(s))
	w.Align4()
}

// PutCExoString appends a 4-byte length-prefixed string, 4-byte aligned.
func (w *Writer) PutCExoString(s string) {
	w.PutU32(uint32(len(s)))
	w.PutBytes([]byte(s))
	w.Align4()
}

// PutCExoLocString appends a localised string. The total-size field is
// computed up front from the known substring lengths, so no
// placeholder-then-patch step is needed.
func (w *Writer) PutCExoLocString(l *LocString) {
	size := uint32(4 + 4) // strref + count
	for _, s := range l.Substrings {
		size += 4 + 4 + uint32(len(s.Text))
	}
	w.PutU32(size)
	w.PutU32(l.StrRef)
	w.PutU32(uint32(len(l.Substrings)))
	for _, s := range l.Substrings {
		w.PutU32(s.LanguageGender)
		w.PutU32(uint32(len(s.Text)))
		w.PutBytes([]byte(s.Text))
	}
	w.Align4()
}

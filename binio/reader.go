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

// Reader is a little-endian, random-access cursor over a byte buffer.
// Positions are absolute offsets into buf, so alignment operations line
// up with the original file layout even when a caller jumps to an
// arbitrary section before reading sequentially from there.
type Reader struct {
	buf []byte
	pos int
}

// New returns a Reader positioned at the start of buf.
func New(buf []byte) *Reader {
	return &Reader{buf: buf}
}

// NewAt returns a Reader over buf positioned at offset.
func NewAt(buf []byte, offset int) *Reader {
	return &Reader{buf: buf, pos: offset}
}

// Pos returns the current absolute read position.
func (r *Reader) Pos() int { return r.pos }

// Len returns the total length of the underlying buffer.
func (r *Reader) Len() int { return len(r.buf) }

// Seek moves the cursor to an absolute offset.
func (r *Reader) Seek(offset int) { r.pos = offset }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.buf) - r.pos }

func (r *Reader) need(op string, n int) ([]byte, error) {
	if r.pos < 0 || n < 0 || r.pos+n > len(r.buf) {
		return nil, &Error{Op: op, Offset: r.pos, Want: n, Size: len(r.buf)}
	}
	b := r.buf[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// U8 reads a single byte.
func (r *Reader) U8() (byte, error) {
	b, err := r.need("U8", 1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// U16 reads a little-endian uint16.
func (r *Reader) U16() (uint16, error) {
	b, err := r.need("U16", 2)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint16(b), nil
}

// U32 reads a little-endian uint32.
func (r *Reader) U32() (uint32, error) {
	b, err := r.need("U32", 4)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint32(b), nil
}

// I32 reads a little-endian int32.
func (r *Reader) I32() (int32, error) {
	v, err := r.U32()
	return int32(v), err
}

// F32 reads a little-endian IEEE-754 float32.
func (r *Reader) F32() (float32, error) {
	v, err := r.U32()
	if err != nil {
		return 0, err
	}
	return float32frombits(v), nil
}

// U64 reads a little-endian uint64.
func (r *Reader) U64() (uint64, error) {
	b, err := r.need("U64", 8)
	if err != nil {
		return 0, err
	}
	return binary.LittleEndian.Uint64(b), nil
}

// I64 reads a little-endian int64.
func (r *Reader) I64() (int64, error) {
	v, err := r.U64()
	return int64(v), err
}

// F64 reads a little-endian IEEE-754 float64.
func (r *Reader) F64() (float64, error) {
	v, err := r.U64()
	if err != nil {
		return 0, err
	}
	return float64frombits(v), nil
}

// Bytes reads n raw bytes.
func (r *Reader) Bytes(n int) ([]byte, error) {
	b, err := r.need("Bytes", n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, b)
	return out, nil
}

// Align4 advances the cursor to the next multiple of 4, if not already
// aligned. It never reads past the end of the buffer for the purpose of
// the alignment check itself.
func (r *Reader) Align4() error {
	pad := (4 - r.pos%4) % 4
	if pad == 0 {
		return nil
	}
	_, err := r.need("Align4", pad)
	return err
}

// CResRef reads a 4-byte length-prefixed ASCII resource reference,
// aligned to a 4-byte boundary afterwards. A length of zero degenerates
// to the bare zero-length marker some historical writers emit for empty
// references, since both encode as four zero bytes followed by no
// padding.
func (r *Reader) CResRef() (string, error) {
	n, err := r.U32()
	if err != nil {
		return "", err
	}
	b, err := r.Bytes(int(n))
	if err != nil {
		return "", err
	}
	if err := r.Align4(); err != nil {
		return "", err
	}
	return string(b), nil
}

// CExoString reads a 4-byte length-prefixed string, 4-byte aligned.
func (r *Reader) CExoString() (string, error) {
	n, err := r.U32()
	if err != nil {
		return "", err
	}
	b, err := r.Bytes(int(n))
	if err != nil {
		return "", err
	}
	if err := r.Align4(); err != nil {
		return "", err
	}
	return string(b), nil
}

// LocSubstring is one language/gender-tagged string within a
// CExoLocString.
type LocSubstring struct {
	LanguageGender uint32
	Text           string
}

// LocString is a localised string: an optional external-table reference
// plus per-language substrings.
type LocString struct {
	StrRef      uint32
	Substrings  []LocSubstring
}

// HasStrRef reports whether the external string reference is present
// (i.e. not the 0xFFFFFFFF absent sentinel).
func (l *LocString) HasStrRef() bool {
	return l != nil && l.StrRef != 0xFFFFFFFF
}

// CExoLocString reads a localised string: total size, external-string
// reference, substring count, then per substring a language/gender tag,
// length and bytes.
func (r *Reader) CExoLocString() (*LocString, error) {
	if _, err := r.U32(); err != nil { // total size, not needed to interpret the payload
		return nil, err
	}
	strRef, err := r.U32()
	if err != nil {
		return nil, err
	}
	count, err := r.U32()
	if err != nil {
		return nil, err
	}
	out := &LocString{StrRef: strRef}
	for i := uint32(0); i < count; i++ {
		langGender, err := r.U32()
		if err != nil {
			return nil, err
		}
		n, err := r.U32()
		if err != nil {
			return nil, err
		}
		b, err := r.Bytes(int(n))
		if err != nil {
			return nil, err
		}
		out.Substrings = append(out.Substrings, LocSubstring{LanguageGender: langGender, Text: string(b)})
	}
	if err := r.Align4(); err != nil {
		return nil, err
	}
	return out, nil
}

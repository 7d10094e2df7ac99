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

import "testing"

func TestU32RoundTrip(t *testing.T) {
	w := NewWriter()
	w.PutU32(0xDEADBEEF)
	r := New(w.Bytes())
	v, err := r.U32()
	if err != nil {
		t.Fatal(err)
	}
	if v != 0xDEADBEEF {
		t.Fatalf("got %#x, want %#x", v, uint32(0xDEADBEEF))
	}
}

func TestCResRefEmpty(t *testing.T) {
	w := NewWriter()
	w.PutCResRef("")
	if w.Len() != 4 {
		t.Fatalf("empty CResRef should occupy 4 bytes, got %d", w.Len())
	}
	r := New(w.Bytes())
	s, err := r.CResRef()
	if err != nil {
		t.Fatal(err)
	}
	if s != "" {
		t.Fatalf("got %q, want empty", s)
	}
}

func TestCResRefAlignment(t *testing.T) {
	w := NewWriter()
	w.PutCResRef("abc") // 4 + 3 = 7, padded to 8
	if w.Len() != 8 {
		t.Fatalf("got length %d, want 8", w.Len())
	}
	r := New(w.Bytes())
	s, err := r.CResRef()
	if err != nil {
		t.Fatal(err)
	}
	if s != "abc" {
		t.Fatalf("got %q, want %q", s, "abc")
	}
}

func TestCExoLocStringRoundTrip(t *testing.T) {
	loc := &LocString{
		StrRef: 0xFFFFFFFF,
		Substrings: []LocSubstring{
			{LanguageGender: 0, Text: "Hello"},
			{LanguageGender: 2, Text: "Bonjour"},
		},
	}
	w := NewWriter()
	w.PutCExoLocString(loc)
	if w.Len()%4 != 0 {
		t.Fatalf("loc string not 4-byte aligned: %d", w.Len())
	}

	r := New(w.Bytes())
	got, err := r.CExoLocString()
	if err != nil {
		t.Fatal(err)
	}
	if got.HasStrRef() {
		t.Fatalf("expected absent strref")
	}
	if len(got.Substrings) != 2 || got.Substrings[0].Text != "Hello" || got.Substrings[1].Text != "Bonjour" {
		t.Fatalf("got %+v", got)
	}
}

func TestTruncatedBufferReturnsError(t *testing.T) {
	r := New([]byte{1, 2})
	_, err := r.U32()
	if err == nil {
		t.Fatal("expected error reading past end of buffer")
	}
	var binErr *Error
	if !asError(err, &binErr) {
		t.Fatalf("expected *Error, got %T", err)
	}
}

func asError(err error, target **Error) bool {
	e, ok := err.(*Error)
	if ok {
		*target = e
	}
	return ok
}

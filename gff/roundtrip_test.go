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
	"testing"

	"github.com/google/go-cmp/cmp"
	"radoub.dev/go/dlggff/binio"
)

func simpleContainer() *Container {
	return &Container{
		Structs: []Struct{
			{ // struct 0: root, three fields -> indirect field addressing
				Type: 0xFFFFFFFF,
				Fields: []Field{
					{Label: "DelayEntry", Value: DwordValue(5)},
					{Label: "Comment", Value: StringValue("hello")},
					{Label: "EntryList", Value: ListValueAt([]uint32{0}, 0)},
				},
			},
			{ // struct 1: a single-field struct -> inline addressing
				Type:   0,
				Fields: []Field{{Label: "Active", Value: ByteValue(1)}},
			},
		},
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := simpleContainer()
	buf, err := Encode(c)
	if err != nil {
		t.Fatal(err)
	}

	got, warnings, err := Decode(buf)
	if err != nil {
		t.Fatalf("decode: %v (warnings: %v)", err, warnings)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}

	if diff := cmp.Diff(c, got, cmp.AllowUnexported(Value{}, Container{}, Struct{}, Field{}), cmpIgnoreListOffset()); diff != "" {
		t.Fatalf("round trip mismatch (-want +got):\n%s", diff)
	}
}

func cmpIgnoreListOffset() cmp.Option {
	return cmp.Comparer(func(a, b Value) bool {
		if a.Type != b.Type {
			return false
		}
		av, _ := a.AsList()
		bv, _ := b.AsList()
		if a.Type == TypeList {
			return cmp.Equal(av, bv)
		}
		return cmp.Equal(a, b, cmp.AllowUnexported(Value{}))
	})
}

func TestHeaderMagicAndVersion(t *testing.T) {
	c := simpleContainer()
	buf, err := Encode(c)
	if err != nil {
		t.Fatal(err)
	}
	h, err := PeekHeader(buf)
	if err != nil {
		t.Fatal(err)
	}
	if h.FileType != DialogFileType {
		t.Fatalf("file type = %q, want %q", h.FileType, DialogFileType)
	}
	if h.Version != DialogVersion {
		t.Fatalf("version = %q, want %q", h.Version, DialogVersion)
	}
}

func TestDecodeTruncatedHeaderIsFatal(t *testing.T) {
	_, _, err := Decode([]byte{1, 2, 3})
	if err == nil {
		t.Fatal("expected error decoding a truncated header")
	}
}

func TestFieldDataOffsetZeroNeverReused(t *testing.T) {
	c := &Container{
		Structs: []Struct{
			{Fields: []Field{
				{Label: "Script", Value: ResRefValue("")},
				{Label: "Sound", Value: ResRefValue("")},
			}},
		},
	}
	buf, err := Encode(c)
	if err != nil {
		t.Fatal(err)
	}
	h, err := PeekHeader(buf)
	if err != nil {
		t.Fatal(err)
	}
	r := binio.NewAt(buf, int(h.Fields.Offset))
	for i := uint32(0); i < h.Fields.Count; i++ {
		if _, err := r.U32(); err != nil {
			t.Fatal(err)
		}
		if _, err := r.U32(); err != nil {
			t.Fatal(err)
		}
		doff, err := r.U32()
		if err != nil {
			t.Fatal(err)
		}
		if doff == 0 {
			t.Fatalf("field %d has data_or_offset 0, colliding with the sentinel prelude", i)
		}
	}
}

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

// Struct is a decoded GFF struct: its type code and the ordered labeled
// fields it owns. Field order within a struct is preserved exactly as
// encountered, since callers such as the dlg package rely on a fixed
// per-kind field order surviving round-trip.
type Struct struct {
	Type   uint32
	Fields []Field
}

// Field returns the field with the given label, or (Field{}, false) if
// none exists. Labels are unique within a struct in every file this
// codec has to tolerate.
func (s *Struct) Field(label string) (Field, bool) {
	for _, f := range s.Fields {
		if f.Label == label {
			return f, true
		}
	}
	return Field{}, false
}

// Field is a single labeled, typed value within a struct.
type Field struct {
	Label string
	Value Value
}

// Container is the fully decoded tree of structs produced by Decode, or
// consumed by Encode. Root is always struct index 0.
type Container struct {
	Structs []Struct
}

// StructAt returns the struct at a global struct-table index, or
// (nil, false) if index is out of range.
func (c *Container) StructAt(index uint32) (*Struct, bool) {
	if int(index) >= len(c.Structs) {
		return nil, false
	}
	return &c.Structs[index], true
}

// Root returns struct index 0, the container's root struct.
func (c *Container) Root() *Struct {
	if len(c.Structs) == 0 {
		return nil
	}
	return &c.Structs[0]
}

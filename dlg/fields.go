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

package dlg

import "radoub.dev/go/dlggff/gff"

// Small accessor helpers centralising the "field absent or wrong type ->
// use the default" policy Lift applies throughout.

func fieldDword(s *gff.Struct, label string, def uint32) uint32 {
	f, ok := s.Field(label)
	if !ok {
		return def
	}
	if v, err := f.Value.AsDword(); err == nil {
		return v
	}
	return def
}

func fieldByte(s *gff.Struct, label string, def byte) byte {
	f, ok := s.Field(label)
	if !ok {
		return def
	}
	if v, err := f.Value.AsByte(); err == nil {
		return v
	}
	return def
}

func fieldResRef(s *gff.Struct, label, def string) string {
	f, ok := s.Field(label)
	if !ok {
		return def
	}
	if v, err := f.Value.AsResRef(); err == nil {
		return v
	}
	return def
}

func fieldString(s *gff.Struct, label, def string) string {
	f, ok := s.Field(label)
	if !ok {
		return def
	}
	if v, err := f.Value.AsString(); err == nil {
		return v
	}
	return def
}

func fieldList(s *gff.Struct, label string) ([]uint32, bool) {
	f, ok := s.Field(label)
	if !ok {
		return nil, false
	}
	v, err := f.Value.AsList()
	if err != nil {
		return nil, false
	}
	return v, true
}

func fieldLocText(s *gff.Struct, label string) *LocalizedText {
	lt := NewLocalizedText()
	f, ok := s.Field(label)
	if !ok {
		return lt
	}
	loc, err := f.Value.AsLocString()
	if err != nil || loc == nil {
		return lt
	}
	lt.StrRef = loc.StrRef
	for _, sub := range loc.Substrings {
		lt.Strings[sub.LanguageGender] = sub.Text
	}
	return lt
}

// looksLikePointer reports whether a struct found inside a
// RepliesList/EntriesList looks like a pointer rather than
// a misplaced node: it must carry an Index field and none of the fields
// that only a node struct would have.
func looksLikePointer(s *gff.Struct) bool {
	if _, ok := s.Field(lblIndex); !ok {
		return false
	}
	for _, bad := range [...]string{lblText, lblSpeaker, lblAnimation} {
		if _, ok := s.Field(bad); ok {
			return false
		}
	}
	return true
}

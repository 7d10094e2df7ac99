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

// LocalizedText mirrors a CExoLocString: an optional external string
// table reference (StrRef) plus zero or more inline per-language
// substrings keyed by the packed language/gender id the format uses.
type LocalizedText struct {
	StrRef  uint32
	Strings map[uint32]string
}

// NewLocalizedText returns an empty LocalizedText with no external
// string reference.
func NewLocalizedText() *LocalizedText {
	return &LocalizedText{StrRef: unresolvedIndex, Strings: map[uint32]string{}}
}

// HasStrRef reports whether t carries an external string table
// reference rather than (or in addition to) inline text.
func (t *LocalizedText) HasStrRef() bool {
	return t != nil && t.StrRef != unresolvedIndex
}

// Default returns the text for language/gender id 0, the convention
// this format uses for "the" text when only one language is present.
func (t *LocalizedText) Default() string {
	if t == nil {
		return ""
	}
	return t.Strings[0]
}

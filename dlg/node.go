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

// DialogNode is one entry or reply in the conversation. Speaker is only
// meaningful for entries; it is left empty for replies (the player is
// always the speaker there).
type DialogNode struct {
	Kind Kind

	Speaker string
	Comment string

	Quest      string
	QuestEntry uint32

	ScriptAction string
	Sound        string
	Delay        uint32

	Animation     Animation
	AnimationLoop bool

	Text *LocalizedText

	ActionParams *ParamMap

	Pointers []*DialogPtr

	// OriginalStructType records the source struct's type tag (entries
	// and replies are not guaranteed to share one convention) so Encode
	// can reproduce it exactly.
	OriginalStructType    uint32
	HasOriginalStructType bool
}

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

// Kind distinguishes a dialog node's two flavours: something the NPC
// says (Entry) or something the player can say back (Reply). Pointers
// carry the Kind of the node they target since entries and replies
// live in separate lists.
type Kind int

const (
	KindEntry Kind = iota
	KindReply
)

func (k Kind) String() string {
	if k == KindReply {
		return "reply"
	}
	return "entry"
}

// Dialog is the root of a lifted dialog graph: the scalar conversation
// settings plus the three node/pointer collections a dialog resource is
// built from.
type Dialog struct {
	DelayEntry uint32
	DelayReply uint32
	NumWords   uint32

	ScriptEnd   string
	ScriptAbort string
	PreventZoom bool

	Entries []*DialogNode
	Replies []*DialogNode
	Starts  []*DialogPtr

	// OriginalRootType records the root struct's type tag so Encode can
	// reproduce it exactly.
	OriginalRootType    uint32
	HasOriginalRootType bool
}

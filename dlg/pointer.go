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

// DialogPtr is an edge in the dialog graph: a reference from a node (or
// the dialog's own starting list) to an entry or reply, plus the
// appear-script and condition parameters that gate it.
//
// A pointer can either own the node it targets or merely link to a node
// owned elsewhere (IsLink); links carry an editor-only LinkComment and
// never re-emit the target's content, only the reference.
type DialogPtr struct {
	// Index is the target's position in the dialog's Entries or Replies
	// slice (whichever TargetKind names), as read from the source struct,
	// or unresolvedIndex if that struct had no usable Index field. An
	// out-of-range Index is kept as read; Node then stays nil.
	Index      uint32
	TargetKind Kind
	Node       *DialogNode

	ScriptAppears   string
	ConditionParams *ParamMap

	IsLink      bool
	LinkComment string

	// IsStart marks a pointer that lives in the dialog's starting list
	// rather than hanging off an entry/reply's pointer list.
	IsStart bool

	OriginalStructType    uint32
	HasOriginalStructType bool
}

// Resolved reports whether Index named a real node and Lift filled in
// Node.
func (p *DialogPtr) Resolved() bool { return p.Node != nil }

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

import "fmt"

// Result collects the structural problems Validate finds. An empty
// Result means the dialog is internally consistent.
type Result struct {
	Problems []string
}

// OK reports whether no problems were found.
func (r Result) OK() bool { return len(r.Problems) == 0 }

// Validate checks the structural invariants a lifted dialog graph must
// hold: pointer indices must be in range or the unresolved sentinel,
// quest_entry must not be set without a quest name, and starting-list
// pointers must not be links.
func Validate(d *Dialog) Result {
	var r Result

	checkPtr := func(where string, p *DialogPtr, targets []*DialogNode) {
		if p.Index == unresolvedIndex {
			return
		}
		if int(p.Index) >= len(targets) {
			r.Problems = append(r.Problems, fmt.Sprintf("%s: index %d out of range (have %d %ss)", where, p.Index, len(targets), p.TargetKind))
			return
		}
		if p.Node == nil {
			r.Problems = append(r.Problems, fmt.Sprintf("%s: index %d in range but not resolved", where, p.Index))
		}
	}

	checkNode := func(where string, n *DialogNode) {
		if n.Quest == "" && n.QuestEntry != 0 {
			r.Problems = append(r.Problems, fmt.Sprintf("%s: quest_entry %d set without a quest name", where, n.QuestEntry))
		}
	}

	for i, e := range d.Entries {
		checkNode(fmt.Sprintf("entry %d", i), e)
		for j, p := range e.Pointers {
			checkPtr(fmt.Sprintf("entry %d pointer %d", i, j), p, d.Replies)
		}
	}
	for i, rep := range d.Replies {
		checkNode(fmt.Sprintf("reply %d", i), rep)
		for j, p := range rep.Pointers {
			checkPtr(fmt.Sprintf("reply %d pointer %d", i, j), p, d.Entries)
		}
	}
	for i, p := range d.Starts {
		checkPtr(fmt.Sprintf("start %d", i), p, d.Entries)
		if p.IsLink {
			r.Problems = append(r.Problems, fmt.Sprintf("start %d: starting-list pointers cannot be links", i))
		}
	}

	return r
}

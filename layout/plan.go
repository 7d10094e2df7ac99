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
// Package layout implements the list-indices layout planner: a pre-pass
// that assigns every list its final byte offset within the eventual
// list-indices section before any struct or field is emitted, so the
// encoder never has to patch a placeholder offset after the fact. It
// depends only on the shape of the dialog graph (counts), not on gff or
// dlg, so it can be tested in isolation.
package layout

// Kind identifies which family of list a Key belongs to.
type Kind int

const (
	EntryList Kind = iota
	ReplyList
	StartingList
	EntryReplies    // entry's RepliesList, Index = entry position
	ReplyEntries    // reply's EntriesList, Index = reply position
	PointerParams   // a pointer's ConditionParams, Index = global pointer sequence position
	NodeActionParams // a node's ActionParams, Index = global node sequence position
)

// Key identifies one list slot in the plan.
type Key struct {
	Kind  Kind
	Index int
}

// Shape describes the counts the planner needs from the dialog graph.
// All slices must already be in the fixed global orders Build expects:
// EntryReplyCounts/EntryActionParamCounts are per entry in entry order;
// ReplyEntryCounts/ReplyActionParamCounts are per reply in reply order;
// PointerParamCounts is concatenated (all entry pointers in entry/
// pointer order, then all reply pointers, then all start pointers).
type Shape struct {
	NumEntries  int
	NumReplies  int
	NumStarts   int

	EntryReplyCounts []int // len == NumEntries
	ReplyEntryCounts []int // len == NumReplies

	PointerParamCounts []int // len == total pointer count across entries+replies+starts

	EntryActionParamCounts []int // len == NumEntries
	ReplyActionParamCounts []int // len == NumReplies
}

// Plan is the offset assignment computed from a Shape.
type Plan struct {
	offsets map[Key]uint32
	sizes   map[Key]uint32
	order   []Key
	total   uint32
}

func listSize(count int) uint32 {
	return 4 + 4*uint32(count)
}

// Build assigns byte offsets to every list named by s, in a fixed
// order: the three top-level lists, then each entry's RepliesList, then
// each reply's EntriesList, then every pointer's ConditionParams
// (entries, then replies, then starts, in that global order), then
// every node's ActionParams (entries, then replies).
func Build(s Shape) *Plan {
	p := &Plan{offsets: map[Key]uint32{}, sizes: map[Key]uint32{}}

	assign := func(k Key, count int) {
		sz := listSize(count)
		p.offsets[k] = p.total
		p.sizes[k] = sz
		p.order = append(p.order, k)
		p.total += sz
	}

	assign(Key{EntryList, 0}, s.NumEntries)
	assign(Key{ReplyList, 0}, s.NumReplies)
	assign(Key{StartingList, 0}, s.NumStarts)

	for i, c := range s.EntryReplyCounts {
		assign(Key{EntryReplies, i}, c)
	}
	for i, c := range s.ReplyEntryCounts {
		assign(Key{ReplyEntries, i}, c)
	}
	for i, c := range s.PointerParamCounts {
		assign(Key{PointerParams, i}, c)
	}
	for i, c := range s.EntryActionParamCounts {
		assign(Key{NodeActionParams, i}, c)
	}
	// Replies' ActionParams continue the same global NodeActionParams
	// sequence, offset by len(EntryActionParamCounts) so keys stay
	// unique; callers index replies starting at that offset.
	base := len(s.EntryActionParamCounts)
	for i, c := range s.ReplyActionParamCounts {
		assign(Key{NodeActionParams, base + i}, c)
	}

	return p
}

// Offset returns the byte offset assigned to key, relative to the start
// of the list-indices section.
func (p *Plan) Offset(key Key) (uint32, bool) {
	v, ok := p.offsets[key]
	return v, ok
}

// Size returns the byte size reserved for key's list.
func (p *Plan) Size(key Key) (uint32, bool) {
	v, ok := p.sizes[key]
	return v, ok
}

// Order returns the keys in the order offsets were assigned, which is
// also the order their lists occupy within the list-indices section.
func (p *Plan) Order() []Key { return p.order }

// TotalSize is the full byte size of the list-indices section.
func (p *Plan) TotalSize() uint32 { return p.total }

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

package layout

import "testing"

func TestBuildOrderAndOffsets(t *testing.T) {
	s := Shape{
		NumEntries:             2,
		NumReplies:             1,
		NumStarts:              1,
		EntryReplyCounts:       []int{1, 0},
		ReplyEntryCounts:       []int{1},
		PointerParamCounts:     []int{0, 2, 1}, // one entry ptr, one reply ptr, one start ptr
		EntryActionParamCounts: []int{0, 1},
		ReplyActionParamCounts: []int{0},
	}
	p := Build(s)

	// top-level lists first, in fixed order
	wantOrder := []Key{
		{EntryList, 0}, {ReplyList, 0}, {StartingList, 0},
		{EntryReplies, 0}, {EntryReplies, 1},
		{ReplyEntries, 0},
		{PointerParams, 0}, {PointerParams, 1}, {PointerParams, 2},
		{NodeActionParams, 0}, {NodeActionParams, 1}, {NodeActionParams, 2},
	}
	order := p.Order()
	if len(order) != len(wantOrder) {
		t.Fatalf("got %d keys, want %d", len(order), len(wantOrder))
	}
	for i, k := range wantOrder {
		if order[i] != k {
			t.Fatalf("order[%d] = %+v, want %+v", i, order[i], k)
		}
	}

	// EntryList(count=2): 4+4*2=12 bytes, starts at 0
	off, ok := p.Offset(Key{EntryList, 0})
	if !ok || off != 0 {
		t.Fatalf("EntryList offset = %d, ok=%v", off, ok)
	}
	// ReplyList(count=1): 8 bytes, starts right after EntryList (12)
	off, ok = p.Offset(Key{ReplyList, 0})
	if !ok || off != 12 {
		t.Fatalf("ReplyList offset = %d, ok=%v", off, ok)
	}
	// StartingList(count=1): 8 bytes, starts at 20
	off, ok = p.Offset(Key{StartingList, 0})
	if !ok || off != 20 {
		t.Fatalf("StartingList offset = %d, ok=%v", off, ok)
	}
}

func TestTotalSizeMatchesSumOfSizes(t *testing.T) {
	s := Shape{
		NumEntries:             1,
		NumReplies:             0,
		NumStarts:              1,
		EntryReplyCounts:       []int{0},
		PointerParamCounts:     []int{0},
		EntryActionParamCounts: []int{0},
	}
	p := Build(s)
	var sum uint32
	for _, k := range p.Order() {
		sz, _ := p.Size(k)
		sum += sz
	}
	if sum != p.TotalSize() {
		t.Fatalf("sum of sizes %d != TotalSize %d", sum, p.TotalSize())
	}
}

func TestEmptyListStillReservesFourBytes(t *testing.T) {
	s := Shape{NumEntries: 0, NumReplies: 0, NumStarts: 0}
	p := Build(s)
	sz, ok := p.Size(Key{EntryList, 0})
	if !ok || sz != 4 {
		t.Fatalf("empty EntryList size = %d, ok=%v, want 4", sz, ok)
	}
}

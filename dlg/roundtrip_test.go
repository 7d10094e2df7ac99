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

import (
	"testing"

	"radoub.dev/go/dlggff/gff"
)

func encodeDecode(t *testing.T, d *Dialog) (*Dialog, []Warning) {
	t.Helper()
	c, err := Encode(d)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	buf, err := gff.Encode(c)
	if err != nil {
		t.Fatalf("gff.Encode: %v", err)
	}
	got, warnings, err := gff.Decode(buf)
	if err != nil {
		t.Fatalf("gff.Decode: %v", err)
	}
	if len(warnings) != 0 {
		t.Fatalf("unexpected gff warnings: %v", warnings)
	}
	lifted, liftWarnings, err := Lift(got)
	if err != nil {
		t.Fatalf("Lift: %v", err)
	}
	return lifted, liftWarnings
}

func minimalDialog() *Dialog {
	entry := &DialogNode{
		Kind:         KindEntry,
		Speaker:      "NPC",
		Text:         &LocalizedText{StrRef: unresolvedIndex, Strings: map[uint32]string{0: "Hello there."}},
		ActionParams: NewParamMap(),
	}
	reply := &DialogNode{
		Kind:         KindReply,
		Text:         &LocalizedText{StrRef: unresolvedIndex, Strings: map[uint32]string{0: "Hello yourself."}},
		ActionParams: NewParamMap(),
	}
	entry.Pointers = []*DialogPtr{{
		Index:           0,
		TargetKind:      KindReply,
		ConditionParams: NewParamMap(),
	}}
	return &Dialog{
		Entries: []*DialogNode{entry},
		Replies: []*DialogNode{reply},
		Starts: []*DialogPtr{{
			Index:           0,
			TargetKind:      KindEntry,
			IsStart:         true,
			ConditionParams: NewParamMap(),
		}},
	}
}

func TestMinimalDialogRoundTrip(t *testing.T) {
	d := minimalDialog()
	got, warnings := encodeDecode(t, d)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	if len(got.Entries) != 1 || len(got.Replies) != 1 {
		t.Fatalf("got %d entries, %d replies", len(got.Entries), len(got.Replies))
	}
	if got.Entries[0].Speaker != "NPC" {
		t.Fatalf("speaker = %q", got.Entries[0].Speaker)
	}
	if got.Entries[0].Text.Default() != "Hello there." {
		t.Fatalf("entry text = %q", got.Entries[0].Text.Default())
	}
	if len(got.Entries[0].Pointers) != 1 {
		t.Fatalf("got %d entry pointers", len(got.Entries[0].Pointers))
	}
	ptr := got.Entries[0].Pointers[0]
	if !ptr.Resolved() || ptr.Node != got.Replies[0] {
		t.Fatalf("entry pointer did not resolve to reply 0")
	}
	if len(got.Starts) != 1 || got.Starts[0].Node != got.Entries[0] {
		t.Fatalf("start did not resolve to entry 0")
	}
}

func TestFallbackStartSynthesized(t *testing.T) {
	d := minimalDialog()
	d.Starts = nil // force an empty starting list on encode

	got, warnings := encodeDecode(t, d)
	if len(got.Starts) != 1 {
		t.Fatalf("got %d starts, want a synthesised fallback", len(got.Starts))
	}
	if got.Starts[0].Node != got.Entries[0] {
		t.Fatalf("fallback start did not point at entry 0")
	}
	found := false
	for _, w := range warnings {
		if w.Kind == WarnFallbackStart {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a WarnFallbackStart warning, got %v", warnings)
	}
}

func TestLinkPointerRoundTrip(t *testing.T) {
	d := minimalDialog()
	d.Entries[0].Pointers[0].IsLink = true
	d.Entries[0].Pointers[0].LinkComment = "reused from elsewhere"

	got, warnings := encodeDecode(t, d)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	ptr := got.Entries[0].Pointers[0]
	if !ptr.IsLink {
		t.Fatalf("IsLink not preserved")
	}
	if ptr.LinkComment != "reused from elsewhere" {
		t.Fatalf("LinkComment = %q", ptr.LinkComment)
	}
}

func TestQuestEntryOmittedWhenQuestEmpty(t *testing.T) {
	d := minimalDialog()
	c, err := Encode(d)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	entryStruct := c.Structs[1]
	if _, ok := entryStruct.Field(lblQuestEntry); ok {
		t.Fatalf("QuestEntry field present on a node with no quest")
	}

	d.Entries[0].Quest = "fetch_the_amulet"
	d.Entries[0].QuestEntry = 3
	c, err = Encode(d)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	entryStruct = c.Structs[1]
	f, ok := entryStruct.Field(lblQuestEntry)
	if !ok {
		t.Fatal("QuestEntry field missing on a node with a quest set")
	}
	if v, err := f.Value.AsDword(); err != nil || v != 3 {
		t.Fatalf("QuestEntry = %v (err %v), want 3", v, err)
	}
}

func TestStartWrapperOmitsPointerOnlyFields(t *testing.T) {
	d := minimalDialog()
	c, err := Encode(d)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	// structs[0]=root, [1]=entry, [2]=entry's pointer, [3]=reply,
	// [4]=start wrapper, matching minimalDialog's one entry/one reply/one
	// pointer/one start shape.
	startStruct := c.Structs[4]
	if len(startStruct.Fields) != 3 {
		t.Fatalf("got %d fields on the start wrapper, want 3: %+v", len(startStruct.Fields), startStruct.Fields)
	}
	if _, ok := startStruct.Field(lblIsChild); ok {
		t.Fatalf("start wrapper carries IsChild, which only node pointers should have")
	}
	if _, ok := startStruct.Field(lblIndex); !ok {
		t.Fatal("start wrapper missing Index")
	}
	if _, ok := startStruct.Field(lblActive); !ok {
		t.Fatal("start wrapper missing Active")
	}
	if _, ok := startStruct.Field(lblConditionParams); !ok {
		t.Fatal("start wrapper missing ConditionParams")
	}
}

func TestParamMapInsertionOrderPreserved(t *testing.T) {
	d := minimalDialog()
	pm := NewParamMap()
	pm.Set("beta", "2")
	pm.Set("alpha", "1")
	d.Entries[0].ActionParams = pm

	got, warnings := encodeDecode(t, d)
	if len(warnings) != 0 {
		t.Fatalf("unexpected warnings: %v", warnings)
	}
	gotPm := got.Entries[0].ActionParams
	if gotPm.Len() != 2 {
		t.Fatalf("got %d params", gotPm.Len())
	}
	keys := gotPm.Keys()
	if keys[0] != "beta" || keys[1] != "alpha" {
		t.Fatalf("insertion order not preserved: %v", keys)
	}
	if v, _ := gotPm.Get("alpha"); v != "1" {
		t.Fatalf("alpha = %q", v)
	}
}

func TestUnknownAnimationFallsBackToDefault(t *testing.T) {
	root := gff.Struct{
		Type: 0xFFFFFFFF,
		Fields: []gff.Field{
			{Label: lblEntryList, Value: gff.ListValue([]uint32{1})},
			{Label: lblReplyList, Value: gff.ListValue(nil)},
			{Label: lblStartingList, Value: gff.ListValue(nil)},
		},
	}
	entry := gff.Struct{
		Type: 0,
		Fields: []gff.Field{
			{Label: lblAnimation, Value: gff.DwordValue(9999)},
			{Label: lblRepliesList, Value: gff.ListValue(nil)},
		},
	}
	c := &gff.Container{Structs: []gff.Struct{root, entry}}

	d, warnings, err := Lift(c)
	if err != nil {
		t.Fatalf("Lift: %v", err)
	}
	if len(d.Entries) != 1 {
		t.Fatalf("got %d entries", len(d.Entries))
	}
	if d.Entries[0].Animation != AnimationDefault {
		t.Fatalf("animation = %v, want default", d.Entries[0].Animation)
	}
	found := false
	for _, w := range warnings {
		if w.Kind == WarnUnknownAnimation {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a WarnUnknownAnimation warning, got %v", warnings)
	}

	reencoded, err := Encode(d)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	animField, ok := reencoded.Structs[1].Field(lblAnimation)
	if !ok {
		t.Fatal("re-encoded entry struct is missing Animation")
	}
	v, err := animField.Value.AsDword()
	if err != nil || v != uint32(AnimationDefault) {
		t.Fatalf("re-encoded animation = %v (err %v), want %d", v, err, AnimationDefault)
	}
}

func TestMalformedPointerStructSkipped(t *testing.T) {
	root := gff.Struct{
		Type: 0xFFFFFFFF,
		Fields: []gff.Field{
			{Label: lblEntryList, Value: gff.ListValue([]uint32{1})},
			{Label: lblReplyList, Value: gff.ListValue(nil)},
			{Label: lblStartingList, Value: gff.ListValue(nil)},
		},
	}
	// struct 2 sits in the RepliesList but carries a Speaker field, so it
	// fails the pointer-struct heuristic and must be skipped, not crash.
	bogus := gff.Struct{Fields: []gff.Field{
		{Label: lblIndex, Value: gff.DwordValue(0)},
		{Label: lblSpeaker, Value: gff.StringValue("not a pointer")},
	}}
	entry := gff.Struct{
		Fields: []gff.Field{
			{Label: lblRepliesList, Value: gff.ListValue([]uint32{2})},
		},
	}
	c := &gff.Container{Structs: []gff.Struct{root, entry, bogus}}

	d, warnings, err := Lift(c)
	if err != nil {
		t.Fatalf("Lift: %v", err)
	}
	if len(d.Entries[0].Pointers) != 0 {
		t.Fatalf("expected the bogus pointer struct to be skipped")
	}
	found := false
	for _, w := range warnings {
		if w.Kind == WarnMalformedPointerStruct {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a WarnMalformedPointerStruct warning, got %v", warnings)
	}
}
